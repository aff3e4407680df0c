package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IClientController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type clientController struct {
	service service.IClientService
}

func NewClientController(service service.IClientService) IClientController {
	return &clientController{service: service}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clients")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *clientController) GetAll(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetAll(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting clients", res))
}

func (c *clientController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Create(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success creating client", res))
}

func (c *clientController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid client ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Show(ctx.Context(), shopId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting client", res))
}

func (c *clientController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid client ID"))
	}

	var req dto.UpdateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Update(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success updating client", res))
}

func (c *clientController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid client ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.Delete(ctx.Context(), shopId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deleting client", nil))
}
