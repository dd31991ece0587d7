package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Gender      string         `json:"gender"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	Sizes       pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Colors      pq.StringArray `gorm:"type:text[]" json:"colors"`
	Description string         `json:"description"`
	Highlights  pq.StringArray `gorm:"type:text[]" json:"highlights"`
	Images      []ProductImage `json:"images,omitempty"`
}

type ProductImage struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Src          string    `json:"src"`
	Alt          string    `json:"alt"`
	DisplayOrder int       `json:"display_order"`
}
