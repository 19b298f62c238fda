package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
)

func ClassRoutes(app *fiber.App, h *handlers.ClassHandler) {
	api := app.Group("/api/v1")

	classes := api.Group("/classes")
	classes.Post("", h.CreateClass)
	classes.Get("", h.GetApprovedClasses)
	classes.Get("/all", h.GetAllClasses)
	classes.Get("/instructor/:email", h.GetClassesByInstructor)
	classes.Get("/:id", h.GetClassByID)
	classes.Patch("/:id/status", h.ChangeStatus)
	classes.Put("/:id", h.UpdateClass)
}
