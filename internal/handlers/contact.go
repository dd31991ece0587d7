package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/models"
)

// ContactHandler stores contact-form submissions.
type ContactHandler struct {
	db *gorm.DB
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact persists a contact message.
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "An error occurred while saving the contact.")
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.db.Create(&contact).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "An error occurred while saving the contact.")
	}

	return c.JSON(fiber.Map{"message": "Contact saved successfully!"})
}
