package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"campus-connect/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Get("/", ShowAuthPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/signup", SignupAPI)
	auth.Post("/logout", LogoutAPI)
}

func ShowAuthPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/calendar")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Sign In - Campus Connect",
	}, "")
}

// CurrentUser returns the authenticated user stored on the request, or
// nil for an anonymous request.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	// Check if this is an API request
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		// For web pages, redirect to the default route
		return c.Redirect("/")
	}

	// Validate JWT token
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/")
	}

	user := &models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  models.RoleStudent,
	}
	if claims.Role == string(models.RoleAdmin) {
		user.Role = models.RoleAdmin
	}

	// Set user context
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user", user)
	c.Locals("is_admin", user.IsAdmin())

	return c.Next()
}

// AdminOnly rejects requests from non-admin sessions. Mutating event
// routes run behind this, so the store is never reached without the
// admin role.
func AdminOnly(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user.IsAdmin() {
		return c.Next()
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")
	if isAPIRequest {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can manage events"})
	}

	return c.Status(403).Render("error", fiber.Map{
		"Title":        "Access Forbidden - Campus Connect",
		"CurrentPage":  "",
		"ErrorCode":    "403",
		"ErrorTitle":   "Access Forbidden",
		"ErrorMessage": "You don't have permission to access this resource.",
		"user":         c.Locals("user"),
	})
}
