package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/models"
)

// CouponHandler serves the read-only coupon collection.
type CouponHandler struct {
	db *gorm.DB
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(db *gorm.DB) *CouponHandler {
	return &CouponHandler{db: db}
}

// ListCoupons returns all coupons as a bare array.
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	coupons := make([]models.Coupon, 0)
	if err := h.db.Find(&coupons).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch coupon data")
	}

	return c.JSON(coupons)
}
