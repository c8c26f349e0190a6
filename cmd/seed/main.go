package main

import (
	"fmt"
	"log"
	"os"

	"serveez/internal/database"
	"serveez/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "serveez.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM service_listings")
	db.Exec("DELETE FROM service_categories")
	db.Exec("DELETE FROM provider_profiles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@serveez.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@serveez.local / admin123")

	customers := []domain.User{}
	customerEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		customer := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			Name:         fmt.Sprintf("Customer %d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	providers := []domain.User{}
	providerEmails := []string{"aidar@cleanpro.kz", "gulnaz@repairs.kz", "yerlan@tutoring.kz"}
	for i, email := range providerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
		p := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleProvider,
			Name:         fmt.Sprintf("Provider %d", i+1),
			Phone:        fmt.Sprintf("+7 701 555 01%02d", i+10),
		}
		db.Create(&p)
		providers = append(providers, p)
	}

	log.Println("Creating provider profiles...")
	profileNames := []string{"CleanPro Almaty", "Gulnaz Home Repairs", "Yerlan Tutoring"}
	cities := []string{"Almaty", "Astana", "Almaty"}
	for i, p := range providers {
		profile := domain.ProviderProfile{
			UserID:      p.ID,
			DisplayName: profileNames[i],
			Bio:         "Experienced service provider",
			City:        cities[i],
			Phone:       p.Phone,
		}
		db.Create(&profile)
	}

	log.Println("Creating categories and listings...")
	categories := []domain.ServiceCategory{
		{Name: "Cleaning", Description: "Home and office cleaning"},
		{Name: "Repairs", Description: "Household repairs and maintenance"},
		{Name: "Tutoring", Description: "Private lessons and coaching"},
	}
	for i := range categories {
		db.Create(&categories[i])
	}

	listings := []domain.ServiceListing{
		{
			ProviderID:        providers[0].ID,
			CategoryID:        categories[0].ID,
			Title:             "Apartment Deep Cleaning",
			Description:       "Full deep clean, supplies included",
			Price:             15000,
			Location:          "Almaty",
			EstimatedDuration: 180,
			IsActive:          true,
		},
		{
			ProviderID:        providers[1].ID,
			CategoryID:        categories[1].ID,
			Title:             "Plumbing Repair",
			Description:       "Leaks, faucets, pipe replacement",
			Price:             8000,
			Location:          "Astana",
			EstimatedDuration: 90,
			IsActive:          true,
		},
		{
			ProviderID:        providers[2].ID,
			CategoryID:        categories[2].ID,
			Title:             "Math Tutoring (1 hour)",
			Description:       "School and university level math",
			Price:             5000,
			Location:          "Almaty",
			EstimatedDuration: 60,
			IsActive:          true,
		},
	}
	for i := range listings {
		db.Create(&listings[i])
	}

	log.Println("Seed complete.")
	log.Println("Customers: asel@mail.kz / client123 (and friends)")
	log.Println("Providers: aidar@cleanpro.kz / provider123 (and friends)")
}
