package middleware

import (
	"learning-service/internal/models"
	"learning-service/internal/service"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const claimsKey = "claims"

// AuthMiddleware wraps protected handlers with bearer token checks. A
// missing header fails with 403 (token required) while a bad or expired
// token fails with 401 (invalid token); clients rely on the distinction.
type AuthMiddleware struct {
	jwtService *service.JWTService
}

func NewAuthMiddleware(jwtService *service.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAuth(next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, errResp := m.verify(c)
		if errResp != nil {
			return errResp(c)
		}
		c.Locals(claimsKey, claims)
		return next(c)
	}
}

// RequireAdmin performs the same verification and additionally requires the
// admin claim; a valid non-admin token is still rejected.
func (m *AuthMiddleware) RequireAdmin(next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, errResp := m.verify(c)
		if errResp != nil {
			return errResp(c)
		}
		if !claims.Admin {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authorized",
			})
		}
		c.Locals(claimsKey, claims)
		return next(c)
	}
}

func (m *AuthMiddleware) verify(c fiber.Ctx) (*models.Claims, fiber.Handler) {
	auth := c.Get("Authorization")
	if auth == "" {
		return nil, func(c fiber.Ctx) error {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Token required",
			})
		}
	}

	claims, err := m.jwtService.VerifyToken(extractToken(auth))
	if err != nil {
		log.Printf("Token verification failed: %v", err)
		return nil, func(c fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}
	}
	return claims, nil
}

// ClaimsFromCtx returns the decoded claims placed by RequireAuth or
// RequireAdmin; nil when the request never passed the middleware.
func ClaimsFromCtx(c fiber.Ctx) *models.Claims {
	claims, _ := c.Locals(claimsKey).(*models.Claims)
	return claims
}

func extractToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}
	return header
}
