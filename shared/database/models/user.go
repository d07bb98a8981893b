package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	Role       string    `json:"role" gorm:"size:20;default:'User'"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
