package config

import (
	"fmt"
	"log"
	"os"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var err error
	switch os.Getenv("DATABASE_DRIVER") {
	case "sqlite":
		DB, err = openSQLite()
	case "postgres", "postgresql", "":
		DB, err = openPostgres()
	default:
		log.Fatalf("unknown DATABASE_DRIVER: %s", os.Getenv("DATABASE_DRIVER"))
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func openPostgres() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func openSQLite() (*gorm.DB, error) {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "./db/diet_planner.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserPreference{},
		&models.Food{},
		&models.FoodLog{},
		&models.DailySummary{},
	)
}
