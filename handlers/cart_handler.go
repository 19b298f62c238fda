package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/models"
	"github.com/yogamaster/yoga_master/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartHandler struct {
	cart stores.CartStore
}

func NewCartHandler(cart stores.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddToCartRequest struct {
	ClassID   string `json:"class_id" validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
}

func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	item := models.CartItem{ClassID: classID, UserEmail: req.UserEmail}

	id, err := h.cart.Insert(c.Context(), &item)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted_id": id.Hex()})
}

// GetCartItem fetches one entry by class id plus the owner email passed as a
// query parameter.
func (h *CartHandler) GetCartItem(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing email query parameter"})
	}

	item, err := h.cart.FindByClassAndEmail(c.Context(), classID, email)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(item)
}

func (h *CartHandler) GetCartByEmail(c *fiber.Ctx) error {
	items, err := h.cart.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(items)
}

func (h *CartHandler) DeleteCartItem(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing email query parameter"})
	}

	deleted, err := h.cart.DeleteByClassAndEmail(c.Context(), classID, email)
	if err != nil {
		return storeError(c, err)
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart item not found"})
	}

	return c.JSON(fiber.Map{"deleted_count": deleted})
}
