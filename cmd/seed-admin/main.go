package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/utils"
)

// Seeds the first admin account. Safe to re-run: an existing email is
// left untouched.
func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "Administrator", "admin full name")
	password := flag.String("password", "", "initial password (min 8 characters)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if *email == "" || !utils.ValidateEmail(*email) {
		log.Fatal("A valid -email is required")
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}

	config.InitDB()

	var existing int64
	if err := config.DB.Model(&models.User{}).
		Where("email = ? AND delete_at IS NULL", *email).
		Count(&existing).Error; err != nil {
		log.Fatal("Failed to check existing user:", err)
	}
	if existing > 0 {
		log.Printf("User %s already exists, nothing to do", *email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()
	admin := models.User{
		FullName: *name,
		Email:    *email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		CreateAt: &now,
		UpdateAt: &now,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Admin %s created (user_id=%d)", admin.Email, admin.UserID)
}
