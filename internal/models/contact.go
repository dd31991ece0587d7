package models

type Contact struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
