package handlers

import (
	"errors"
	"learning-service/internal/middleware"
	"learning-service/internal/models"
	"learning-service/internal/repository"
	"learning-service/internal/service"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type ModuleHandler struct {
	moduleService *service.ModuleService
	pageService   *service.PageService
	validate      *validator.Validate
}

func NewModuleHandler(moduleService *service.ModuleService, pageService *service.PageService) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
		pageService:   pageService,
		validate:      validator.New(),
	}
}

// RegisterRoutes mounts the module routes. Reads need any valid token,
// writes need the admin claim.
func (h *ModuleHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	app.Post("/modulos", auth.RequireAdmin(h.Create))
	app.Get("/modulos", auth.RequireAuth(h.List))
	app.Get("/modulos/:id", auth.RequireAuth(h.Get))
	app.Put("/modulos/:id", auth.RequireAdmin(h.Update))
	app.Delete("/modulos/:id", auth.RequireAdmin(h.Delete))

	app.Get("/modulos/:modulo_id/paginas", auth.RequireAuth(h.ListPages))
}

type CreateModuleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order" validate:"gte=0"`
}

func (h *ModuleHandler) Create(c fiber.Ctx) error {
	var req CreateModuleRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationMessage(err),
		})
	}

	module := &models.Module{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Order:       req.Order,
	}
	if err := h.moduleService.Create(c.Context(), module); err != nil {
		log.Printf("Error creating module: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating module",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(module)
}

func (h *ModuleHandler) List(c fiber.Ctx) error {
	modules, err := h.moduleService.List(c.Context())
	if err != nil {
		log.Printf("Error listing modules: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving modules",
		})
	}
	return c.Status(fiber.StatusOK).JSON(modules)
}

func (h *ModuleHandler) Get(c fiber.Ctx) error {
	module, err := h.moduleService.Get(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching module %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving module",
		})
	}
	if module == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Module not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(module)
}

type UpdateModuleRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

func (h *ModuleHandler) Update(c fiber.Ctx) error {
	var req UpdateModuleRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationMessage(err),
		})
	}

	upd := models.ModuleUpdate{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Order:       req.Order,
	}
	module, err := h.moduleService.Update(c.Context(), c.Params("id"), upd)
	if err != nil {
		log.Printf("Error updating module %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating module",
		})
	}
	if module == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Module not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(module)
}

func (h *ModuleHandler) Delete(c fiber.Ctx) error {
	if err := h.moduleService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Module not found",
			})
		}
		log.Printf("Error deleting module %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting module",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Module deleted",
	})
}

// ListPages returns the summary projection of a module's pages ordered by
// their position. An unknown module yields an empty list, not a 404.
func (h *ModuleHandler) ListPages(c fiber.Ctx) error {
	pages, err := h.pageService.ListByModule(c.Context(), c.Params("modulo_id"))
	if err != nil {
		log.Printf("Error listing pages for module %s: %v", c.Params("modulo_id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving module pages",
		})
	}
	return c.Status(fiber.StatusOK).JSON(pages)
}
