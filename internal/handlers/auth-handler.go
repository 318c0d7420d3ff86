package handlers

import (
	"errors"
	"learning-service/internal/models"
	"learning-service/internal/repository"
	"learning-service/internal/service"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Counter for registrations
	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)

	// Counter for password logins
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	// Counter for two-factor verifications
	verificationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_verification_attempts_total",
			Help: "Total number of two-factor verification attempts",
		},
		[]string{"status"},
	)
)

type AuthHandler struct {
	userService      *service.UserService
	twoFactorService *service.TwoFactorService
	jwtService       *service.JWTService
	validate         *validator.Validate
}

func NewAuthHandler(userService *service.UserService, twoFactorService *service.TwoFactorService, jwtService *service.JWTService) *AuthHandler {
	return &AuthHandler{
		userService:      userService,
		twoFactorService: twoFactorService,
		jwtService:       jwtService,
		validate:         validator.New(),
	}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/verify-2fa", h.Verify2FA)
	app.Post("/recover", h.Recover)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Age      int    `json:"age" validate:"gte=0"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Category string `json:"category" validate:"required,oneof=adult young child"`
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationMessage(err),
		})
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Age:      req.Age,
		Email:    req.Email,
		Category: req.Category,
	}

	if err := h.userService.Register(c.Context(), user, req.Password); err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Email already registered",
			})
		}
		log.Printf("Error registering user %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error registering user",
		})
	}

	registrationAttempts.WithLabelValues("success").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and, on success, issues an emailed two-factor
// code. The session token is only handed out by Verify2FA.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationMessage(err),
		})
	}

	user, err := h.userService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		}
		log.Printf("Error authenticating %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error logging in",
		})
	}

	if err := h.twoFactorService.Challenge(c.Context(), user.Email); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		log.Printf("Error issuing verification code for %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error sending verification code",
		})
	}

	loginAttempts.WithLabelValues("success").Inc()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Verification code sent",
	})
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

func (h *AuthHandler) Verify2FA(c fiber.Ctx) error {
	var req VerifyRequest
	if err := c.Bind().Body(&req); err != nil {
		verificationAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		verificationAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationMessage(err),
		})
	}

	user, err := h.twoFactorService.Verify(c.Context(), req.Email, req.Code)
	if err != nil {
		verificationAttempts.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, service.ErrTooManyAttempts):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many verification attempts, request a new code",
			})
		case errors.Is(err, service.ErrInvalidCode):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid verification code",
			})
		}
		log.Printf("Error verifying code for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error verifying code",
		})
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		verificationAttempts.WithLabelValues("failure").Inc()
		log.Printf("Error generating token for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error generating token",
		})
	}

	verificationAttempts.WithLabelValues("success").Inc()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}

type RecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) Recover(c fiber.Ctx) error {
	var req RecoverRequest
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

	if err := h.twoFactorService.Challenge(c.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Error issuing recovery code for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error sending recovery code",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Recovery code sent",
	})
}

func (h *AuthHandler) HealthCheck(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("Learning Service is healthy")
}
