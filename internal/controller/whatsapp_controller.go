package controller

import (
	"fmt"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWhatsAppController interface {
	RegisterRoutes(r fiber.Router)
	Connect(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Disconnect(ctx *fiber.Ctx) error
	Reconcile(ctx *fiber.Ctx) error
	SendTest(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type whatsappController struct {
	service service.IWhatsAppService
}

func NewWhatsAppController(service service.IWhatsAppService) IWhatsAppController {
	return &whatsappController{service: service}
}

func (c *whatsappController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/whatsapp")

	// The gateway posts connection updates here without auth.
	h.Post("/webhook", c.Webhook)

	h.Use(serverutils.JwtMiddleware)
	h.Post("/connect", c.Connect)
	h.Get("/status", c.Status)
	h.Post("/disconnect", c.Disconnect)
	h.Post("/reconcile", c.Reconcile)
	h.Post("/test-message", c.SendTest)
}

func (c *whatsappController) Connect(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Connect(ctx.Context(), shopId)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("WhatsApp instance ready", res))
}

func (c *whatsappController) Status(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Status(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("WhatsApp status", res))
}

func (c *whatsappController) Disconnect(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.Disconnect(ctx.Context(), shopId); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("WhatsApp disconnected", nil))
}

func (c *whatsappController) Reconcile(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.Reconcile(ctx.Context(), shopId)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("WhatsApp reconciled", res))
}

func (c *whatsappController) SendTest(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.SendTest(ctx.Context(), shopId, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Test message sent", nil))
}

func (c *whatsappController) Webhook(ctx *fiber.Ctx) error {
	var req dto.WhatsAppWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		fmt.Printf("[WEBHOOK ERROR] WhatsApp body parsing failed: %v\n", err)
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	if err := c.service.HandleWebhook(ctx.Context(), &req); err != nil {
		fmt.Printf("[WEBHOOK ERROR] WhatsApp handling failed for instance=%s: %v\n", req.Instance, err)
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
