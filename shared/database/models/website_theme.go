package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme modes
const (
	ThemeModeLight = "light"
	ThemeModeDark  = "dark"
)

// Typography families
const (
	TypographySerif     = "Serif"
	TypographySansSerif = "Sans-Serif"
	TypographyScript    = "Script"
	TypographyOthers    = "Others"
)

// ThemeColors is the three-color palette of a website theme
type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
}

// WebsiteTheme - one theme per website (unique index on website_id)
type WebsiteTheme struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WebsiteID  uuid.UUID `json:"website_id" gorm:"type:uuid;not null;uniqueIndex"`
	ThemeMode  string    `json:"theme_mode" gorm:"size:10;default:'light'"`
	Colors     Colors    `json:"colors" gorm:"type:jsonb;default:'{}'"`
	Typography string    `json:"typography" gorm:"size:20;default:'Sans-Serif'"`
	CustomFont string    `json:"custom_font" gorm:"size:100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Website Website `json:"-" gorm:"foreignKey:WebsiteID"`
}
