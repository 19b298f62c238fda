package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/models"
	"github.com/yogamaster/yoga_master/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	users stores.UserStore
}

func NewUserHandler(users stores.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type NewUserRequest struct {
	Name    string   `json:"name" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	Role    string   `json:"role" validate:"omitempty,oneof=student instructor admin"`
	Gender  string   `json:"gender"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	About   string   `json:"about"`
	Photo   string   `json:"photo_url"`
	Skills  []string `json:"skills"`
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req NewUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user := models.User{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Gender:  req.Gender,
		Phone:   req.Phone,
		Address: req.Address,
		About:   req.About,
		Photo:   req.Photo,
		Skills:  req.Skills,
	}

	id, err := h.users.Insert(c.Context(), &user)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted_id": id.Hex()})
}

func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.users.FindAll(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := h.users.FindByID(c.Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req NewUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	modified, err := h.users.UpdateByID(c.Context(), id, &models.User{
		Name:    req.Name,
		Role:    req.Role,
		Gender:  req.Gender,
		Phone:   req.Phone,
		Address: req.Address,
		About:   req.About,
		Photo:   req.Photo,
		Skills:  req.Skills,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"modified_count": modified})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	deleted, err := h.users.DeleteByID(c.Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"deleted_count": deleted})
}
