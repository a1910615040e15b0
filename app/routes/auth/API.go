package auth

import (
	"database/sql"
	"log"
	"strings"

	"gj-schools/app/config"
	"gj-schools/app/database"
	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	School   string `json:"school" validate:"max=300"`
	Role     string `json:"role" validate:"required,oneof=admin accountant teacher"`
}

func RegisterAPI(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error during registration"})
	}

	user := &models.User{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
		School:   req.School,
		Role:     req.Role,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if err == database.ErrEmailTaken {
			return c.Status(400).JSON(fiber.Map{"message": "Email already registered"})
		}
		log.Printf("Registration error: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Server error during registration"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User registered successfully"})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin accountant teacher"`
}

func LoginAPI(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": helpers.ValidationMessage(err)})
	}

	user, err := database.GetUserByEmail(config.GetDB(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		log.Printf("Login error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Server error during login"})
	}

	if !CheckPasswordHash(req.Password, user.Password) || (req.Role != "" && req.Role != user.Role) {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials or role mismatch"})
	}

	if err := database.TouchLastLogin(config.GetDB(), user.ID); err != nil {
		log.Printf("Failed to update last login for %s: %v", user.Email, err)
	}

	token, err := GenerateJWT(user.ID, user.Role, user.Name, user.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

func MeAPI(c *fiber.Ctx) error {
	claims := CurrentUser(c)
	return c.JSON(fiber.Map{
		"id":    claims.UserID,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
	})
}
