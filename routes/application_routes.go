package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
)

func ApplicationRoutes(app *fiber.App, h *handlers.ApplicationHandler) {
	api := app.Group("/api/v1")

	applications := api.Group("/instructor-applications")
	applications.Post("", h.Apply)
	applications.Get("/:email", h.GetByEmail)
}
