package main

import (
	"log"
	"os"

	"barberflow-be/internal/model"
	"barberflow-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding notification types...")
	SeedNotificationTypes(db)

	color.Cyan("Seeding platform admin...")
	seedAdmin(db)

	color.Green("Seeding completed.")
}

// seedAdmin ensures a platform admin exists. The password comes from
// ADMIN_PASSWORD so a default credential never ships.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		color.Yellow("Admin %s already exists, skipping", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Error: Failed checking admin user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed hashing admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Email:         email,
		FullName:      "Platform Admin",
		PasswordHash:  &hashStr,
		Role:          "admin",
		Status:        "active",
		EmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed creating admin user: %v", err)
	}
	color.Green("Admin %s created", email)
}
