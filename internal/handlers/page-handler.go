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
	"go.mongodb.org/mongo-driver/v2/bson"
)

type PageHandler struct {
	pageService *service.PageService
	validate    *validator.Validate
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
		validate:    validator.New(),
	}
}

func (h *PageHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	app.Post("/paginas", auth.RequireAdmin(h.Create))
	app.Get("/paginas", auth.RequireAuth(h.List))
	app.Get("/paginas/:id", auth.RequireAuth(h.Get))
	app.Put("/paginas/:id", auth.RequireAdmin(h.Update))
	app.Delete("/paginas/:id", auth.RequireAdmin(h.Delete))
}

type CreatePageRequest struct {
	ModuleID string `json:"module_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Order    int    `json:"order" validate:"gte=0"`
	Content0 string `json:"content0"`
	Content1 string `json:"content1"`
	Content2 string `json:"content2"`
	Type     string `json:"type" validate:"required,oneof=intro info quiz test"`
}

func (h *PageHandler) Create(c fiber.Ctx) error {
	var req CreatePageRequest
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

	moduleOID, err := bson.ObjectIDFromHex(req.ModuleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid module_id",
		})
	}

	page := &models.Page{
		ModuleID: moduleOID,
		Name:     req.Name,
		Order:    req.Order,
		Content0: req.Content0,
		Content1: req.Content1,
		Content2: req.Content2,
		Type:     req.Type,
	}
	if err := h.pageService.Create(c.Context(), page); err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Module not found",
			})
		}
		log.Printf("Error creating page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating page",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(page)
}

func (h *PageHandler) List(c fiber.Ctx) error {
	pages, err := h.pageService.List(c.Context())
	if err != nil {
		log.Printf("Error listing pages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving pages",
		})
	}
	return c.Status(fiber.StatusOK).JSON(pages)
}

func (h *PageHandler) Get(c fiber.Ctx) error {
	page, err := h.pageService.Get(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching page %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving page",
		})
	}
	if page == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Page not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

type UpdatePageRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
	Content0 *string `json:"content0"`
	Content1 *string `json:"content1"`
	Content2 *string `json:"content2"`
	Type     *string `json:"type" validate:"omitempty,oneof=intro info quiz test"`
}

func (h *PageHandler) Update(c fiber.Ctx) error {
	var req UpdatePageRequest
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

	upd := models.PageUpdate{
		Name:     req.Name,
		Order:    req.Order,
		Content0: req.Content0,
		Content1: req.Content1,
		Content2: req.Content2,
		Type:     req.Type,
	}
	page, err := h.pageService.Update(c.Context(), c.Params("id"), upd)
	if err != nil {
		log.Printf("Error updating page %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating page",
		})
	}
	if page == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Page not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *PageHandler) Delete(c fiber.Ctx) error {
	if err := h.pageService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Page not found",
			})
		}
		log.Printf("Error deleting page %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting page",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Page deleted",
	})
}
