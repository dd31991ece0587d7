package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/models"
	"github.com/example/threadline/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	db *gorm.DB
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

type createOrderRequest struct {
	Email         string  `json:"email"`
	OrderNumber   int64   `json:"orderNumber"`
	TotalPrice    float64 `json:"totalPrice"`
	Quantity      int     `json:"quantity"`
	Name          string  `json:"name"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
}

// CreateOrder records a purchase. Orders are immutable; a duplicate order
// number is rejected.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required.")
	}

	if req.Email == "" || req.OrderNumber == 0 || req.TotalPrice == 0 ||
		req.Quantity == 0 || req.Name == "" || req.SelectedSize == "" || req.SelectedColor == "" {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required.")
	}

	var existing models.Order
	if err := h.db.Where("order_number = ?", req.OrderNumber).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Order number already exists.")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	order := models.Order{
		Email:         req.Email,
		OrderNumber:   req.OrderNumber,
		TotalPrice:    req.TotalPrice,
		Quantity:      req.Quantity,
		Name:          req.Name,
		SelectedSize:  req.SelectedSize,
		SelectedColor: req.SelectedColor,
	}

	if err := h.db.Create(&order).Error; err != nil {
		// The unique index still guards against a racing duplicate that
		// slipped past the pre-check.
		return fiber.NewError(fiber.StatusBadRequest, "Order number already exists.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders returns all orders as a bare array. Pagination is optional.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Order("created_at desc")
	if pg.Limit > 0 {
		query = query.Limit(pg.Limit).Offset(pg.Offset)
	}

	orders := make([]models.Order, 0)
	if err := query.Find(&orders).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch order data")
	}

	return c.JSON(orders)
}
