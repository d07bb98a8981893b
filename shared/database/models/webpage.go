package models

import (
	"time"

	"github.com/google/uuid"
)

type Webpage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WebsiteID uuid.UUID `json:"website_id" gorm:"type:uuid;not null;index:idx_webpages_website_order;uniqueIndex:idx_webpages_website_slug"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Slug      string    `json:"slug" gorm:"size:120;not null;uniqueIndex:idx_webpages_website_slug"`
	Status    string    `json:"status" gorm:"size:20;default:'active'"`
	Order     int       `json:"order" gorm:"column:page_order;not null;default:0;index:idx_webpages_website_order"`
	IsDefault bool      `json:"is_default" gorm:"default:false"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Website  Website          `json:"-" gorm:"foreignKey:WebsiteID"`
	Sections []WebpageSection `json:"sections,omitempty" gorm:"foreignKey:WebpageID"`
}
