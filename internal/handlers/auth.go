package handlers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/config"
	"github.com/example/threadline/internal/models"
	"github.com/example/threadline/internal/services"
	"github.com/example/threadline/internal/utils"
)

// otpTTL is the fixed lifetime of an issued one-time password.
const otpTTL = 5 * time.Minute

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer services.Mailer
	google *services.GoogleVerifier
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, mailer services.Mailer, google *services.GoogleVerifier) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, mailer: mailer, google: google}
}

type sendOtpRequest struct {
	Email string `json:"email"`
}

// SendOtp issues a fresh one-time password and emails it to the user. A new
// request does not invalidate codes issued earlier; verification always reads
// the newest record.
func (h *AuthHandler) SendOtp(c *fiber.Ctx) error {
	var req sendOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required.")
	}

	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required.")
	}

	code, err := generateOtp()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send OTP.")
	}

	record := models.OtpRecord{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}

	if err := h.db.Create(&record).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send OTP.")
	}

	// The record is committed before dispatch; a mail failure leaves it
	// behind and the code can still be verified.
	if err := h.mailer.SendOtp(req.Email, code); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send OTP.")
	}

	return c.JSON(fiber.Map{"message": "OTP sent successfully."})
}

type verifyOtpRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// VerifyOtp checks a candidate code against the newest record for the email.
// Expired records are deleted on sight, matched records are consumed, and a
// mismatch leaves the record intact so the user can retry until expiry.
func (h *AuthHandler) VerifyOtp(c *fiber.Ctx) error {
	var req verifyOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email and OTP are required.")
	}

	if req.Email == "" || req.Otp == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and OTP are required.")
	}

	var record models.OtpRecord
	err := h.db.Where("email = ?", req.Email).
		Order("created_at desc").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "OTP not found for this email.")
		}
		return err
	}

	if !record.ExpiresAt.After(time.Now()) {
		if err := h.db.Delete(&models.OtpRecord{}, "id = ?", record.ID).Error; err != nil {
			return err
		}
		return fiber.NewError(fiber.StatusBadRequest, "OTP has expired.")
	}

	if record.Code != req.Otp {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid OTP.")
	}

	if err := h.db.Delete(&models.OtpRecord{}, "id = ?", record.ID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "OTP verified successfully."})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user account and sends a confirmation email.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name, email, and password are required.")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name, email, and password are required.")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email is already registered.")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Signup failed.")
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Signup failed.")
	}

	if err := h.mailer.SendRegistrationConfirmation(req.Email, req.Name); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Signup failed.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully. Confirmation email sent.",
	})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin authenticates a password login and issues a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req signinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required.")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required.")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password.")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password.")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, "", h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Signin failed.")
	}

	return c.JSON(fiber.Map{
		"message": "Signin successful.",
		"token":   token,
	})
}

type tokenSigninRequest struct {
	IDToken string `json:"idtoken"`
}

// TokenSignin authenticates with a Google-issued ID token, creating a local
// passwordless account on first sign-in.
func (h *AuthHandler) TokenSignin(c *fiber.Ctx) error {
	var req tokenSigninRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID token is required.")
	}

	if req.IDToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID token is required.")
	}

	claims, err := h.google.Verify(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID token.")
	}

	var user models.User
	err = h.db.Where("email = ?", claims.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:  claims.Name,
			Email: claims.Email,
		}
		if err := h.db.Create(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.OAuthTokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Signin failed.")
	}

	return c.JSON(fiber.Map{
		"message": "Signin successful.",
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func generateOtp() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
