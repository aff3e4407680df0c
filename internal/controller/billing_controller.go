package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	GetSummary(ctx *fiber.Ctx) error
}

type billingController struct {
	service service.IBillingService
}

func NewBillingController(service service.IBillingService) IBillingController {
	return &billingController{service: service}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/summary", c.GetSummary)
}

func (c *billingController) GetSummary(ctx *fiber.Ctx) error {
	var req dto.BillingSummaryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetSummary(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Billing summary", res))
}
