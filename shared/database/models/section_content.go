package models

import (
	"time"

	"github.com/google/uuid"
)

// Media types
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Button styles
const (
	ButtonStylePrimary   = "primary"
	ButtonStyleSecondary = "secondary"
	ButtonStyleOutline   = "outline"
)

// MediaItem is a single uploaded asset attached to section content
type MediaItem struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// Button is a call-to-action rendered inside a section
type Button struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style"`
}

// SectionContent holds the editable payload of a section, one row per
// section (unique index on section_id)
type SectionContent struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionID   uuid.UUID  `json:"section_id" gorm:"type:uuid;not null;uniqueIndex"`
	Title       string     `json:"title" gorm:"size:200"`
	Subtitle    string     `json:"subtitle" gorm:"size:300"`
	Description string     `json:"description"`
	Media       MediaItems `json:"media" gorm:"type:jsonb;default:'[]'"`
	Buttons     Buttons    `json:"buttons" gorm:"type:jsonb;default:'[]'"`
	ListItems   StringList `json:"list_items" gorm:"type:jsonb;default:'[]'"`
	CustomData  JSONMap    `json:"custom_data" gorm:"type:jsonb;default:'{}'"`
	Status      string     `json:"status" gorm:"size:20;default:'active'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Section WebpageSection `json:"-" gorm:"foreignKey:SectionID"`
}
