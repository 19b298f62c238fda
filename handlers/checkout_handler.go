package handlers

import (
	"context"
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/notifications"
	"github.com/yogamaster/yoga_master/payments"
	"github.com/yogamaster/yoga_master/services"
	"github.com/yogamaster/yoga_master/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IntentCreator is the slice of the payment gateway the handler needs.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*payments.PaymentIntent, error)
}

type CheckoutHandler struct {
	intents  IntentCreator
	checkout services.CheckoutService
	payments stores.PaymentStore
	mailer   *notifications.EmailService
}

func NewCheckoutHandler(intents IntentCreator, checkout services.CheckoutService, paymentStore stores.PaymentStore, mailer *notifications.EmailService) *CheckoutHandler {
	return &CheckoutHandler{
		intents:  intents,
		checkout: checkout,
		payments: paymentStore,
		mailer:   mailer,
	}
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type PaymentInfoRequest struct {
	UserEmail     string   `json:"user_email" validate:"required,email"`
	TransactionID string   `json:"transaction_id" validate:"required"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	ClassesID     []string `json:"classes_id" validate:"required,min=1,dive,required"`
	// SingleClassID marks a single-item checkout so only that cart entry is
	// removed.
	SingleClassID *string `json:"single_class_id,omitempty"`
}

// CreatePaymentIntent authorizes the cart total with the gateway and hands
// the client secret back for in-browser confirmation.
func (h *CheckoutHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	amount := int64(math.Round(req.Price * 100))

	intent, err := h.intents.CreatePaymentIntent(c.Context(), amount, "usd")
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"client_secret": intent.ClientSecret})
}

// PostPaymentInfo runs the checkout workflow for a confirmed payment.
func (h *CheckoutHandler) PostPaymentInfo(c *fiber.Ctx) error {
	var req PaymentInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	classIDs := make([]primitive.ObjectID, 0, len(req.ClassesID))
	for _, raw := range req.ClassesID {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id: " + raw})
		}
		classIDs = append(classIDs, id)
	}

	in := services.CheckoutInput{
		UserEmail:     req.UserEmail,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		ClassIDs:      classIDs,
	}
	if req.SingleClassID != nil {
		id, err := primitive.ObjectIDFromHex(*req.SingleClassID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid single class id"})
		}
		in.SingleClassID = &id
	}

	result, err := h.checkout.Checkout(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateTransaction):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Transaction already recorded"})
		case errors.Is(err, services.ErrClassNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "One or more classes not found"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Checkout failed"})
		}
	}

	go h.mailer.SendEnrollmentConfirmation(req.UserEmail, len(classIDs), req.TransactionID)

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *CheckoutHandler) GetPaymentHistory(c *fiber.Ctx) error {
	history, err := h.payments.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(history)
}

func (h *CheckoutHandler) GetPaymentHistoryLength(c *fiber.Ctx) error {
	count, err := h.payments.CountByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}
