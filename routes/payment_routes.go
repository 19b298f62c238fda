package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/handlers"
)

func PaymentRoutes(app *fiber.App, h *handlers.CheckoutHandler) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments")
	payments.Post("/create-payment-intent", h.CreatePaymentIntent)
	payments.Post("/info", h.PostPaymentInfo)
	payments.Get("/history/:email", h.GetPaymentHistory)
	payments.Get("/history-length/:email", h.GetPaymentHistoryLength)
}
