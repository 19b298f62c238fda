package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
	"github.com/yogamaster/yoga_master/middleware"
)

// Only lookup-by-email and delete carry the auth middleware. The rest of the
// user surface is deliberately open, matching the marketplace's access
// policy.
func UserRoutes(app *fiber.App, h *handlers.UserHandler) {
	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("", h.CreateUser)
	users.Get("", h.GetAllUsers)
	users.Get("/id/:id", h.GetUserByID)
	users.Get("/:email", middleware.Protected(), h.GetUserByEmail)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", middleware.Protected(), h.DeleteUser)
}
