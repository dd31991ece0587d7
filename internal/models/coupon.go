package models

type Coupon struct {
	BaseModel
	Name     string `json:"name"`
	Discount string `json:"discount"`
}
