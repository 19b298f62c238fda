package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
)

func CartRoutes(app *fiber.App, h *handlers.CartHandler) {
	api := app.Group("/api/v1")

	cart := api.Group("/cart")
	cart.Post("", h.AddToCart)
	cart.Get("/item/:classId", h.GetCartItem)
	cart.Get("/:email", h.GetCartByEmail)
	cart.Delete("/:classId", h.DeleteCartItem)
}
