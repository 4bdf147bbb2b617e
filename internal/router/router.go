package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jrphotography/internal/config"
	"jrphotography/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	packageHandler *handler.PackageHandler,
	portfolioHandler *handler.PortfolioHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded portfolio images are served straight from disk.
	e.Static(cfg.UploadBaseURL, cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/book", bookingHandler.Book)
	api.GET("/availability", bookingHandler.Availability)
	api.GET("/availability/month", bookingHandler.MonthAvailability)
	api.GET("/packages", packageHandler.ListPackages)
	api.GET("/portfolio", portfolioHandler.ListPortfolio)
	api.GET("/portfolio/featured", portfolioHandler.FeaturedPortfolio)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)

	// Secured routes (require admin JWT)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/auth/verify", authHandler.Verify)
	secured.POST("/auth/logout", authHandler.Logout)

	// Booking management
	secured.GET("/bookings", bookingHandler.ListBookings)
	secured.DELETE("/bookings/:id", bookingHandler.DeleteBooking)

	// Package management
	secured.POST("/packages", packageHandler.CreatePackage)
	secured.PUT("/packages/:id", packageHandler.UpdatePackage)
	secured.DELETE("/packages/:id", packageHandler.DeletePackage)

	// Portfolio management
	secured.POST("/admin/portfolio", portfolioHandler.UploadPortfolio)
	secured.DELETE("/admin/portfolio/:id", portfolioHandler.DeletePortfolio)

	// Admin user management
	secured.GET("/users", userHandler.ListUsers)
	secured.POST("/users", userHandler.CreateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
