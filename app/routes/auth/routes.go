package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", RegisterAPI)
	app.Post("/login", LoginAPI)
	app.Get("/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware validates the bearer token and stores the caller's claims
// in the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(401).JSON(fiber.Map{"message": "Missing authorization header"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid authorization format. Use: Bearer <token>"})
	}

	claims, err := ValidateJWT(parts[1])
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid or expired token"})
	}

	c.Locals("user", claims)
	return c.Next()
}

// RequireRoles gates a route to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*JWTClaims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"message": "User not authenticated"})
		}
		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"message": "Access denied for your role"})
	}
}

// CurrentUser returns the authenticated caller's claims.
func CurrentUser(c *fiber.Ctx) *JWTClaims {
	claims, _ := c.Locals("user").(*JWTClaims)
	return claims
}
