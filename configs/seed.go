package configs

import (
	"log"

	"grocery/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the privileged user on first boot.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedProducts puts a starter catalog in an empty store.
func SeedProducts() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starter := []entity.Product{
		{Name: "Apples", Description: "Red apples, 1 kg", Price: decimal.RequireFromString("2.50")},
		{Name: "Bread", Description: "White loaf", Price: decimal.RequireFromString("1.20")},
		{Name: "Milk", Description: "Whole milk, 1 L", Price: decimal.RequireFromString("0.99")},
		{Name: "Eggs", Description: "10 pack", Price: decimal.RequireFromString("3.40")},
	}
	for i := range starter {
		if err := db.FirstOrCreate(&starter[i], entity.Product{Name: starter[i].Name}).Error; err != nil {
			return err
		}
	}

	log.Println("starter catalog seeded")
	return nil
}
