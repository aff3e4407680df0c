package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Agenda(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type appointmentController struct {
	service service.IAppointmentService
}

func NewAppointmentController(service service.IAppointmentService) IAppointmentController {
	return &appointmentController{service: service}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/appointments")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/agenda", c.Agenda)
	h.Get("/:id", c.Show)
	h.Patch("/:id/status", c.UpdateStatus)
}

func (c *appointmentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
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
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success creating appointment", res))
}

func (c *appointmentController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid appointment ID"))
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.UpdateStatus(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success updating appointment status", res))
}

func (c *appointmentController) Agenda(ctx *fiber.Ctx) error {
	var req dto.AgendaRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Agenda(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting agenda", res))
}

func (c *appointmentController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid appointment ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Show(ctx.Context(), shopId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting appointment", res))
}
