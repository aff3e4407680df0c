package controller

import (
	"barberflow-be/internal/dto"
	"barberflow-be/internal/pkg/serverutils"
	"barberflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ICatalogController serves the per-shop catalog: the providers who do the
// work and the services they sell.
type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetProviders(ctx *fiber.Ctx) error
	CreateProvider(ctx *fiber.Ctx) error
	UpdateProvider(ctx *fiber.Ctx) error
	DeleteProvider(ctx *fiber.Ctx) error
	GetServices(ctx *fiber.Ctx) error
	CreateService(ctx *fiber.Ctx) error
	UpdateService(ctx *fiber.Ctx) error
	DeleteService(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	p := r.Group("/providers")
	p.Use(serverutils.JwtMiddleware)
	p.Get("/", c.GetProviders)
	p.Post("/", c.CreateProvider)
	p.Put("/:id", c.UpdateProvider)
	p.Delete("/:id", c.DeleteProvider)

	s := r.Group("/services")
	s.Use(serverutils.JwtMiddleware)
	s.Get("/", c.GetServices)
	s.Post("/", c.CreateService)
	s.Put("/:id", c.UpdateService)
	s.Delete("/:id", c.DeleteService)
}

func (c *catalogController) GetProviders(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetProviders(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting providers", res))
}

func (c *catalogController) CreateProvider(ctx *fiber.Ctx) error {
	var req dto.CreateProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.CreateProvider(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success creating provider", res))
}

func (c *catalogController) UpdateProvider(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid provider ID"))
	}

	var req dto.UpdateProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.UpdateProvider(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success updating provider", res))
}

func (c *catalogController) DeleteProvider(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid provider ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.DeleteProvider(ctx.Context(), shopId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deleting provider", nil))
}

func (c *catalogController) GetServices(ctx *fiber.Ctx) error {
	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.GetServices(ctx.Context(), shopId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success getting services", res))
}

func (c *catalogController) CreateService(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.CreateService(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success creating service", res))
}

func (c *catalogController) UpdateService(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid service ID"))
	}

	var req dto.UpdateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	res, err := c.service.UpdateService(ctx.Context(), shopId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success updating service", res))
}

func (c *catalogController) DeleteService(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid service ID"))
	}

	shopIdStr := ctx.Locals("barbershop_id").(string)
	shopId, _ := uuid.Parse(shopIdStr)

	if err := c.service.DeleteService(ctx.Context(), shopId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deleting service", nil))
}
