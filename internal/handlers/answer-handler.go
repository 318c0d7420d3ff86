package handlers

import (
	"errors"
	"learning-service/internal/middleware"
	"learning-service/internal/service"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type AnswerHandler struct {
	answerService *service.AnswerService
	validate      *validator.Validate
}

func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		validate:      validator.New(),
	}
}

func (h *AnswerHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	app.Post("/respuestas", auth.RequireAuth(h.Record))
	app.Get("/respuestas", auth.RequireAuth(h.ListMine))
}

type RecordAnswerRequest struct {
	PageID  string `json:"page_id" validate:"required"`
	Correct bool   `json:"correct"`
}

// Record stores the result for the authenticated user; the user id is taken
// from the token so one user cannot write answers for another.
func (h *AnswerHandler) Record(c fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	var req RecordAnswerRequest
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

	answer, err := h.answerService.Record(c.Context(), claims.UserID, req.PageID, req.Correct)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Page not found",
			})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid user",
			})
		}
		log.Printf("Error recording answer for user %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error recording answer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}

func (h *AnswerHandler) ListMine(c fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	answers, err := h.answerService.ListByUser(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("Error listing answers for user %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving answers",
		})
	}
	return c.Status(fiber.StatusOK).JSON(answers)
}
