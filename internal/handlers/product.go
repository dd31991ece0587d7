package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/models"
	"github.com/example/threadline/internal/utils"
)

// ProductHandler serves the read-only product catalog.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// ListProducts returns the product catalog as a bare array. Pagination is
// optional; without page/limit parameters the full catalog is returned.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Preload("Images")
	if pg.Limit > 0 {
		query = query.Limit(pg.Limit).Offset(pg.Offset)
	}

	products := make([]models.Product, 0)
	if err := query.Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch product data")
	}

	return c.JSON(products)
}
