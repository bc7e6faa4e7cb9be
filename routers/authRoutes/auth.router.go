package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "academia/controllers/auth"
	authValidator "academia/validators/auth"
)

// SetupAuthRoutes sets up signup and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
