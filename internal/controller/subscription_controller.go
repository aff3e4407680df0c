package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ISubscriptionController serves plan management, client subscriptions and
// the shop's receivables ledger.
type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	CreatePlan(ctx *fiber.Ctx) error
	UpdatePlan(ctx *fiber.Ctx) error
	DeletePlan(ctx *fiber.Ctx) error
	GetPlans(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetByClient(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Renew(ctx *fiber.Ctx) error
	UseService(ctx *fiber.Ctx) error
	ValidateUsage(ctx *fiber.Ctx) error
	GetUsages(ctx *fiber.Ctx) error
	GetFinancialRecords(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	p := r.Group("/plans")
	p.Use(serverutils.JwtMiddleware)
	p.Get("/", c.GetPlans)
	p.Post("/", c.CreatePlan)
	p.Put("/:id", c.UpdatePlan)
	p.Delete("/:id", c.DeletePlan)

	h := r.Group("/subscriptions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/client/:clientId", c.GetByClient)
	h.Get("/:id", c.Show)
	h.Post("/:id/cancel", c.Cancel)
	h.Post("/:id/renew", c.Renew)
	h.Post("/:id/use", c.UseService)
	h.Get("/:id/validate", c.ValidateUsage)
	h.Get("/:id/usages", c.GetUsages)

	f := r.Group("/financial-records")
	f.Use(serverutils.JwtMiddleware)
	f.Get("/", c.GetFinancialRecords)
}

func (c *subscriptionController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.CreatePlan(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success creating plan", res))
}

func (c *subscriptionController) UpdatePlan(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan ID"))
	}

	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.UpdatePlan(ctx.Context(), shopId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success updating plan", res))
}

func (c *subscriptionController) DeletePlan(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.DeletePlan(ctx.Context(), shopId, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deleting plan", nil))
}

func (c *subscriptionController) GetPlans(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetPlans(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting plans", res))
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success creating subscription", res))
}

func (c *subscriptionController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Show(ctx.Context(), shopId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting subscription", res))
}

func (c *subscriptionController) GetByClient(ctx *fiber.Ctx) error {
	clientId, err := uuid.Parse(ctx.Params("clientId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid client ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetByClient(ctx.Context(), shopId, clientId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting client subscriptions", res))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.Cancel(ctx.Context(), shopId, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success canceling subscription", nil))
}

func (c *subscriptionController) Renew(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Renew(ctx.Context(), shopId, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success renewing subscription", res))
}

func (c *subscriptionController) UseService(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	var req dto.UseServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SubscriptionId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.UseService(ctx.Context(), shopId, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success registering usage", nil))
}

func (c *subscriptionController) ValidateUsage(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	serviceId, err := uuid.Parse(ctx.Query("service_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "service_id is required"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.ValidateUsage(ctx.Context(), shopId, id, serviceId)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage validation", res))
}

func (c *subscriptionController) GetUsages(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetUsages(ctx.Context(), shopId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting usages", res))
}

func (c *subscriptionController) GetFinancialRecords(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetFinancialRecords(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting financial records", res))
}
