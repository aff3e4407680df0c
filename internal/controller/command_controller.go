package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommandController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type commandController struct {
	service service.ICommandService
}

func NewCommandController(service service.ICommandService) ICommandController {
	return &commandController{service: service}
}

func (c *commandController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/commands")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.GetAll)
	h.Post("/", c.Open)
	h.Get("/:id", c.Show)
	h.Post("/:id/items", c.AddItem)
	h.Post("/:id/close", c.Close)
	h.Post("/:id/cancel", c.Cancel)
}

func (c *commandController) Open(ctx *fiber.Ctx) error {
	var req dto.OpenCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Open(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success opening command", res))
}

func (c *commandController) AddItem(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid command ID"))
	}

	var req dto.AddCommandItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.CommandId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.AddItem(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success adding item", res))
}

func (c *commandController) Close(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid command ID"))
	}

	var req dto.CloseCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Close(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success closing command", res))
}

func (c *commandController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid command ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.Cancel(ctx.Context(), shopId, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success canceling command", nil))
}

func (c *commandController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid command ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Show(ctx.Context(), shopId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting command", res))
}

func (c *commandController) GetAll(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetAll(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting commands", res))
}
