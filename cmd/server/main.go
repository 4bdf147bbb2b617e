package main

import (
	"log"
	"net/http"
	"os"

	_ "jrphotography/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jrphotography/internal/auth"
	"jrphotography/internal/cache"
	"jrphotography/internal/config"
	"jrphotography/internal/db"
	"jrphotography/internal/handler"
	"jrphotography/internal/model"
	"jrphotography/internal/notify"
	"jrphotography/internal/repository"
	"jrphotography/internal/router"
	"jrphotography/internal/service"
	"jrphotography/internal/storage"
)

// @title Jr Photography API
// @version 1.0
// @description Booking, portfolio and admin API for the Jr Photography studio site.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.PackageFeature{},
			&model.Package{},
			&model.PortfolioItem{},
			&model.AdminUser{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Booking{},
		&model.Package{},
		&model.PackageFeature{},
		&model.PortfolioItem{},
		&model.AdminUser{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploadStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload storage init: %v", err)
	}

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(gormDB)
	packageRepo := repository.NewPackageRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize notification components
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.AdminEmail)
	dispatcher := notify.NewDispatcher(mailer)
	linker := notify.NewWhatsAppLinker(cfg.BusinessWhatsAppNumber, cfg.DefaultCountryCode)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	bookingService := service.NewBookingService(bookingRepo, linker, dispatcher, cacheClient)
	availabilityService := service.NewAvailabilityService(bookingRepo, cacheClient)
	packageService := service.NewPackageService(packageRepo, cacheClient)
	portfolioService := service.NewPortfolioService(portfolioRepo, uploadStorage, cfg.UploadBaseURL)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService, availabilityService)
	packageHandler := handler.NewPackageHandler(packageService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		bookingHandler,
		packageHandler,
		portfolioHandler,
		userHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
