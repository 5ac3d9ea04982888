package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-connect/app/config"
	"campus-connect/app/database"
	"campus-connect/app/metrics"
	"campus-connect/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	// Domain check happens before any credential lookup
	if msg := ValidateInstitutionalEmail(req.Email, config.EmailDomain()); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	role, err := database.GetUserRole(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get user role"})
	}
	user.Role = role

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	setSessionCookie(c, token)
	metrics.Logins.Inc()

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func SignupAPI(c *fiber.Ctx) error {
	type SignupRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	// Validation order: role, institutional domain, password policy.
	// Nothing touches the database until all three pass.
	if req.Role != string(models.RoleStudent) {
		return c.Status(400).JSON(fiber.Map{"error": "Admin accounts cannot be created through signup"})
	}
	if msg := ValidateInstitutionalEmail(req.Email, config.EmailDomain()); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}
	if msg := ValidatePassword(req.Password); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	if _, err := database.GetUserByEmail(config.GetDB(), req.Email); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "An account with this email already exists"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     models.RoleStudent,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Account created successfully",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth")
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})
}
