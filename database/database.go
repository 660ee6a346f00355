package database

import (
	"fmt"
	"log"

	"compliance-app/config"
	"compliance-app/internal/domain/billing"
	"compliance-app/internal/domain/properties"
	"compliance-app/internal/domain/reports"
	"compliance-app/internal/domain/todos"
	"compliance-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&billing.Payment{},
		&billing.StripeEvent{},

		// compliance
		&properties.Property{},
		&todos.Todo{},
		&reports.Report{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
