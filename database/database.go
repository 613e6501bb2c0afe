package database

import (
	"fmt"
	"log"
	"os"

	"gallery-app/internal/domain/mediablog"
	"gallery-app/internal/domain/payments"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate is shared with the test setup, which runs on sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},

		&works.Series{},
		&works.Artwork{},

		&payments.Transaction{},

		&mediablog.MediaBlogEntry{},
		&mediablog.MediaBlogFile{},
	)
}
