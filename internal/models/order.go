package models

// Order is a single purchase record. Orders are immutable once created and
// the order number is unique across all orders.
type Order struct {
	BaseModel
	Email         string  `json:"email"`
	OrderNumber   int64   `gorm:"uniqueIndex" json:"orderNumber"`
	TotalPrice    float64 `json:"totalPrice"`
	Quantity      int     `json:"quantity"`
	Name          string  `json:"name"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
}
