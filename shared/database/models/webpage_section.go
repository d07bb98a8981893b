package models

import (
	"time"

	"github.com/google/uuid"
)

type WebpageSection struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WebpageID   uuid.UUID `json:"webpage_id" gorm:"type:uuid;not null;index:idx_sections_webpage_order"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	SectionType string    `json:"section_type" gorm:"size:50;not null"`
	Order       int       `json:"order" gorm:"column:section_order;not null;default:0;index:idx_sections_webpage_order"`
	Status      string    `json:"status" gorm:"size:20;default:'active'"`
	Settings    JSONMap   `json:"settings" gorm:"type:jsonb;default:'{}'"`
	IsDefault   bool      `json:"is_default" gorm:"default:false"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Webpage Webpage         `json:"-" gorm:"foreignKey:WebpageID"`
	Content *SectionContent `json:"content,omitempty" gorm:"foreignKey:SectionID"`
}
