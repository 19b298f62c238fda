package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	api.Post("/auth/token", h.CreateToken)
}
