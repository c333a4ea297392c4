package config

import (
	"fmt"

	"github.com/ecomall/ecomall-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes the database connection and runs migrations
func InitDB() {
	if App == nil {
		if _, err := LoadConfig(); err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		App.DBHost, App.DBPort, App.DBUser, App.DBPassword, App.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := Migrate(DB); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}

// Migrate runs the schema migrations on the given connection
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MainCategory{},
		&models.Category{},
		&models.SubCategory{},
		&models.Item{},
		&models.Cart{},
		&models.Wishlist{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.RazorpayWebhookLog{},
	)
}
