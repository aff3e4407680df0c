package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAutomationController interface {
	RegisterRoutes(r fiber.Router)
	CreateRule(ctx *fiber.Ctx) error
	UpdateRule(ctx *fiber.Ctx) error
	DeleteRule(ctx *fiber.Ctx) error
	GetRules(ctx *fiber.Ctx) error
	GetExecutions(ctx *fiber.Ctx) error
	RunRules(ctx *fiber.Ctx) error
}

type automationController struct {
	service service.IAutomationService
}

func NewAutomationController(service service.IAutomationService) IAutomationController {
	return &automationController{service: service}
}

func (c *automationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/automations")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/rules", c.GetRules)
	h.Post("/rules", c.CreateRule)
	h.Put("/rules/:id", c.UpdateRule)
	h.Delete("/rules/:id", c.DeleteRule)
	h.Get("/executions", c.GetExecutions)
	h.Post("/run", c.RunRules)
}

func (c *automationController) CreateRule(ctx *fiber.Ctx) error {
	var req dto.CreateAutomationRuleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.CreateRule(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success creating rule", res))
}

func (c *automationController) UpdateRule(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid rule ID"))
	}

	var req dto.UpdateAutomationRuleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.UpdateRule(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success updating rule", res))
}

func (c *automationController) DeleteRule(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid rule ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.DeleteRule(ctx.Context(), shopId, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deleting rule", nil))
}

func (c *automationController) GetRules(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetRules(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting rules", res))
}

func (c *automationController) GetExecutions(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetExecutions(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting executions", res))
}

func (c *automationController) RunRules(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.RunRules(ctx.Context(), shopId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Rules executed", res))
}
