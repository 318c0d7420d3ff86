package handlers

import (
	"learning-service/internal/middleware"
	"learning-service/internal/models"
	"learning-service/internal/service"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	userService *service.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	app.Get("/user", auth.RequireAuth(h.GetProfile))
	app.Put("/user", auth.RequireAuth(h.UpdateProfile))
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	user, err := h.userService.GetByID(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("Error fetching user %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving user",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Surname  *string `json:"surname" validate:"omitempty,min=1"`
	Age      *int    `json:"age" validate:"omitempty,gte=0"`
	Category *string `json:"category" validate:"omitempty,oneof=adult young child"`
	Password string  `json:"password" validate:"omitempty,min=6"`
}

// UpdateProfile only ever touches the authenticated user's own document;
// the id comes from the token, never from the body.
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	var req UpdateUserRequest
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

	upd := models.UserProfileUpdate{
		Name:     req.Name,
		Surname:  req.Surname,
		Age:      req.Age,
		Category: req.Category,
	}

	user, err := h.userService.UpdateProfile(c.Context(), claims.UserID, upd, req.Password)
	if err != nil {
		log.Printf("Error updating user %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating user",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
