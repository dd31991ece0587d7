package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/config"
	"github.com/example/threadline/internal/handlers"
	"github.com/example/threadline/internal/middleware"
	"github.com/example/threadline/internal/services"
)

// ErrorHandler maps handler errors to a JSON `{"error": ...}` body with the
// proper status code; unclassified errors become a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mailer := services.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	google := services.NewGoogleVerifier(cfg.GoogleClientID)

	RegisterWithServices(app, db, cfg, mailer, google)
}

// RegisterWithServices wires routes with explicit collaborators. Tests use it
// to substitute the mailer and the token verifier.
func RegisterWithServices(app *fiber.App, db *gorm.DB, cfg *config.Config, mailer services.Mailer, google *services.GoogleVerifier) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	authHandler := handlers.NewAuthHandler(db, cfg, mailer, google)
	profileHandler := handlers.NewProfileHandler(db)
	productHandler := handlers.NewProductHandler(db)
	couponHandler := handlers.NewCouponHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	orderHandler := handlers.NewOrderHandler(db)

	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Server is working"})
	})

	app.Post("/send-otp", authHandler.SendOtp)
	app.Post("/verify-otp", authHandler.VerifyOtp)
	app.Post("/signup", authHandler.Signup)
	app.Post("/signin", authHandler.Signin)
	app.Post("/tokensignin", authHandler.TokenSignin)

	app.Put("/update-profile", middleware.AuthMiddleware(cfg), profileHandler.UpdateProfile)

	app.Get("/product", productHandler.ListProducts)
	app.Get("/coupon", couponHandler.ListCoupons)
	app.Post("/contact", contactHandler.CreateContact)
	app.Post("/order", orderHandler.CreateOrder)
	app.Get("/orderdata", orderHandler.ListOrders)
}
