package database

import (
	"log"
	"time"

	"sitebuilder-backend/shared/config"
	"sitebuilder-backend/shared/database/models"
	utils "sitebuilder-backend/shared/utils/auth"
)

// SeedDatabase seeds the database with initial data
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	if err := CreateSuperAdminFromConfig(); err != nil {
		return err
	}

	return nil
}

// CreateSuperAdminFromConfig creates the super admin using config values
func CreateSuperAdminFromConfig() error {
	cfg := config.GetConfig()
	return CreateSuperAdmin(cfg.SuperAdminEmail, cfg.SuperAdminPassword, "Super Admin")
}

// CreateSuperAdmin creates a verified super admin account if none exists
func CreateSuperAdmin(email, password, name string) error {
	var existingUser models.User
	if err := DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		log.Println("Super admin already exists")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	superAdmin := models.User{
		Name:       name,
		Email:      email,
		Password:   hashedPassword,
		Role:       models.RoleSuperAdmin,
		IsVerified: true,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := DB.Create(&superAdmin).Error; err != nil {
		return err
	}

	log.Printf("✅ Super admin created: %s", email)
	return nil
}
