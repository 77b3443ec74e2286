package initializers

import (
	"log"

	"github.com/mazin-goub/Hameed/models"
	"golang.org/x/crypto/bcrypt"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{})
	log.Println("Database synced successfully.")
}

// SeedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD on
// first boot. Admin privileges come from this role claim, never from a
// hardcoded address.
func SeedAdmin() {
	email := GetEnv("ADMIN_EMAIL", "")
	password := GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("Skipping admin seed: ADMIN_EMAIL/ADMIN_PASSWORD not set.")
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Fullname: "Hameed Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin account:", err)
		return
	}
	log.Println("Admin account seeded:", email)
}
