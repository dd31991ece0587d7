package models

import "time"

// User represents a registered customer. Accounts created through Google
// sign-in carry an empty PasswordHash and cannot log in with a password.
type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}

// OtpRecord stores a one-time password issued for an email address. Several
// records may exist per email; verification always reads the newest one.
type OtpRecord struct {
	BaseModel
	Email     string    `gorm:"index" json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
