package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/models"
	"github.com/yogamaster/yoga_master/stores"
)

type ApplicationHandler struct {
	applications stores.ApplicationStore
}

func NewApplicationHandler(applications stores.ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type ApplicationRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Experience string `json:"experience"`
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	application := models.InstructorApplication{
		Name:       req.Name,
		Email:      req.Email,
		Experience: req.Experience,
	}

	id, err := h.applications.Insert(c.Context(), &application)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted_id": id.Hex()})
}

func (h *ApplicationHandler) GetByEmail(c *fiber.Ctx) error {
	application, err := h.applications.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(application)
}
