package database

import (
	"log"
	"strings"

	"serveez/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" driver used below.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate applies the schema for every persisted entity. The unique index on
// reviews.booking_id is part of the schema, not just an application check.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.ServiceCategory{},
		&domain.ServiceListing{},
		&domain.ProviderProfile{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Notification{},
		&domain.Message{},
	)
}
