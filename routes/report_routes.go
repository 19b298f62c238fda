package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
)

func ReportRoutes(app *fiber.App, h *handlers.ReportHandler) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports")
	reports.Get("/popular-classes", h.PopularClasses)
	reports.Get("/popular-instructors", h.PopularInstructors)

	api.Get("/admin/stats", h.AdminStats)
	api.Get("/enrolled-classes/:email", h.EnrolledClasses)
}
