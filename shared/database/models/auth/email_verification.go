package auth

import (
	"time"

	"sitebuilder-backend/shared/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailVerification - one-time codes for verifying user email addresses.
// Code is stored bcrypt-hashed; Used flips once and never back.
type EmailVerification struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Code      string    `json:"-" gorm:"size:255;not null"` // bcrypt hash of the 6-digit code
	Attempts  int       `json:"attempts" gorm:"default:0"`
	Used      bool      `json:"used" gorm:"default:false"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User models.User `json:"-" gorm:"foreignKey:UserID"`
}

func (e *EmailVerification) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
