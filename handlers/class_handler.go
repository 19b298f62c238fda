package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/models"
	"github.com/yogamaster/yoga_master/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassHandler struct {
	classes stores.ClassStore
}

func NewClassHandler(classes stores.ClassStore) *ClassHandler {
	return &ClassHandler{classes: classes}
}

type NewClassRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructor_name" validate:"required"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	AvailableSeats  int     `json:"available_seats" validate:"required,gt=0"`
	VideoLink       string  `json:"video_link"`
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Reason string `json:"reason"`
}

func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var req NewClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class := models.Class{
		Name:            req.Name,
		Description:     req.Description,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		VideoLink:       req.VideoLink,
	}

	id, err := h.classes.Insert(c.Context(), &class)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted_id": id.Hex()})
}

// GetApprovedClasses is the public catalogue: only classes an admin approved.
func (h *ClassHandler) GetApprovedClasses(c *fiber.Ctx) error {
	classes, err := h.classes.FindApproved(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) GetAllClasses(c *fiber.Ctx) error {
	classes, err := h.classes.FindAll(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) GetClassByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	class, err := h.classes.FindByID(c.Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(class)
}

func (h *ClassHandler) GetClassesByInstructor(c *fiber.Ctx) error {
	classes, err := h.classes.FindByInstructor(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(classes)
}

func (h *ClassHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	var req StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	modified, err := h.classes.SetStatus(c.Context(), id, req.Status, req.Reason)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"modified_count": modified})
}

// UpdateClass is the owner's full edit; it always drops the class back to
// pending for re-approval.
func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	var req NewClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	modified, err := h.classes.UpdateDetails(c.Context(), id, &models.Class{
		Name:           req.Name,
		Description:    req.Description,
		Image:          req.Image,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
		VideoLink:      req.VideoLink,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"modified_count": modified})
}
