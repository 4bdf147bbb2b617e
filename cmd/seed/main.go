package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"jrphotography/internal/config"
	"jrphotography/internal/db"
	"jrphotography/internal/errors"
	"jrphotography/internal/model"
	"jrphotography/internal/repository"
)

const (
	// Default credentials for the first dashboard login. Change the
	// password immediately after the first login.
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Booking{},
		&model.Package{},
		&model.PackageFeature{},
		&model.PortfolioItem{},
		&model.AdminUser{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	seedAdmin(ctx, repository.NewUserRepository(gormDB))
	seedPackages(ctx, repository.NewPackageRepository(gormDB))
	seedPortfolio(ctx, repository.NewPortfolioRepository(gormDB))

	log.Println("Seed completed")
}

func seedAdmin(ctx context.Context, repo repository.UserRepository) {
	if _, err := repo.FindByUsername(ctx, defaultAdminUsername); err == nil {
		log.Println("Admin user already exists, skipping")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.AdminUser{
		Username:     defaultAdminUsername,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user created (username=%s). Change the password after first login!", defaultAdminUsername)
}

func seedPackages(ctx context.Context, repo repository.PackageRepository) {
	packages := []model.Package{
		{
			Name:        "Portrait Session",
			Price:       decimal.NewFromInt(250),
			Description: "Perfect for headshots, personal branding, or casual photoshoots.",
			Features: []model.PackageFeature{
				{Text: "1 Hour of shooting time"},
				{Text: "1 Location of choice"},
				{Text: "15 Professionally edited images"},
				{Text: "Online proofing gallery"},
				{Text: "Print rights included", Strikethrough: true},
			},
		},
		{
			Name:        "Family Mini-Session",
			Price:       decimal.NewFromInt(350),
			Description: "Ideal for families, maternity, or graduation photos.",
			Features: []model.PackageFeature{
				{Text: "90 Minutes of shooting time"},
				{Text: "Up to 6 people included"},
				{Text: "30 Professionally edited images"},
				{Text: "Online proofing gallery"},
				{Text: "Print rights included"},
			},
		},
		{
			Name:        "Wedding Package A",
			Price:       decimal.NewFromInt(2000),
			Description: "Comprehensive coverage for small to medium weddings.",
			Features: []model.PackageFeature{
				{Text: "8 Hours of continuous coverage"},
				{Text: "Two photographers"},
				{Text: "350+ Professionally edited images"},
				{Text: "Custom USB drive delivery"},
				{Text: "Print rights included"},
			},
		},
	}

	created := 0
	for i := range packages {
		for j := range packages[i].Features {
			packages[i].Features[j].Position = j
		}
		err := repo.Create(ctx, &packages[i])
		if err == errors.ErrPackageExists {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed package %q: %v", packages[i].Name, err)
		}
		created++
	}
	log.Printf("Seeded %d packages (%d already present)", created, len(packages)-created)
}

func seedPortfolio(ctx context.Context, repo repository.PortfolioRepository) {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to check portfolio: %v", err)
	}
	if len(existing) > 0 {
		log.Println("Portfolio already has entries, skipping")
		return
	}

	items := []model.PortfolioItem{
		{Title: "Golden Hour Vows", Category: model.CategoryWedding, ImageURL: "/uploads/seed/wedding-01.jpg", StoragePath: "seed/wedding-01.jpg", AltText: "Bride and groom at sunset"},
		{Title: "First Dance", Category: model.CategoryWedding, ImageURL: "/uploads/seed/wedding-02.jpg", StoragePath: "seed/wedding-02.jpg", AltText: "Couple dancing under string lights"},
		{Title: "Studio Headshot", Category: model.CategoryPortrait, ImageURL: "/uploads/seed/portrait-01.jpg", StoragePath: "seed/portrait-01.jpg", AltText: "Professional headshot against grey backdrop"},
		{Title: "Graduation Day", Category: model.CategoryPortrait, ImageURL: "/uploads/seed/portrait-02.jpg", StoragePath: "seed/portrait-02.jpg", AltText: "Graduate in gown holding diploma"},
		{Title: "Corporate Launch", Category: model.CategoryEvent, ImageURL: "/uploads/seed/event-01.jpg", StoragePath: "seed/event-01.jpg", AltText: "Speaker on stage at product launch"},
		{Title: "Brand Catalogue", Category: model.CategoryCommercial, ImageURL: "/uploads/seed/commercial-01.jpg", StoragePath: "seed/commercial-01.jpg", AltText: "Product flat lay for fashion brand"},
	}
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			log.Fatalf("Failed to seed portfolio item %q: %v", items[i].Title, err)
		}
	}
	log.Printf("Seeded %d portfolio items", len(items))
}
