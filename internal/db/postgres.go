package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mysterious135/delivery-app/internal/models"
)

var DB *gorm.DB

func Init() {

	// A full connection string wins; otherwise the DSN is assembled from
	// the individual POSTGRES_* variables.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("POSTGRES_HOST", "localhost"),
			getEnv("POSTGRES_USER", "delivery"),
			getEnv("POSTGRES_PASSWORD", "delivery"),
			getEnv("POSTGRES_DB", "delivery"),
			getEnv("DB_PORT", "5432"),
		)
	}

	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	)

	if err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	log.Println("Database connected and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
