package auth

import (
	"strings"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)
	auth.Get("/forgot-password", ShowForgotPasswordPage)
	auth.Post("/forgot-password", ForgotPasswordAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/profile", UpdateProfileAPI)
	auth.Post("/change-password", ChangePasswordAPI)
	auth.Post("/reset-password", RequireUserType(models.UserTypeAdmin), AdminResetPasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - " + config.SiteName(),
	}, "")
}

func ShowForgotPasswordPage(c *fiber.Ctx) error {
	return c.Render("auth/forgot-password", fiber.Map{
		"Title": "Forgot Password - " + config.SiteName(),
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	profile, err := database.GetProfileByUserID(config.GetDB(), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - " + config.SiteName(),
		"CurrentPage": "profile",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"Role":        string(profile.UserType),
		"Profile":     profile,
	})
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")
	fromCookie := tokenString != ""

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
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Validate JWT token
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Cookie logins are backed by a server-side session so logout
	// revokes them; bearer clients rely on the token alone
	if fromCookie {
		sessionID := c.Cookies("session_id")
		if sessionID == "" {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
			}
			return c.Redirect("/auth/login")
		}
		session, err := database.GetSessionByID(config.GetDB(), sessionID)
		if err != nil || session.UserID != claims.UserID {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
			}
			return c.Redirect("/auth/login")
		}
	}

	// Create user object from claims
	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	// Set user context
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_first_name", user.FirstName)
	c.Locals("user_last_name", user.LastName)
	c.Locals("user_type", claims.UserType)
	c.Locals("user", user)

	return c.Next()
}

// RequireUserType checks if the logged-in user holds one of the given
// portal roles.
func RequireUserType(allowedTypes ...models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := c.Locals("user_type").(models.UserType)

		for _, allowed := range allowedTypes {
			if userType == allowed {
				return c.Next()
			}
		}

		// Check if this is an API request
		isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

		if isAPIRequest {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		// For web pages, show 403 error page
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - " + config.SiteName(),
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"user":         c.Locals("user"),
		})
	}
}

// CurrentUserType reads the role the middleware stored on the context.
func CurrentUserType(c *fiber.Ctx) models.UserType {
	if t, ok := c.Locals("user_type").(models.UserType); ok {
		return t
	}
	return ""
}
