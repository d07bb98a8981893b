package models

import (
	"time"

	"github.com/google/uuid"
)

// Website types
const (
	WebsiteTypeECommerce         = "E-Commerce"
	WebsiteTypeBusinessPortfolio = "Business Portfolio"
	WebsiteTypePersonalPortfolio = "Personal Portfolio"
	WebsiteTypeEducational       = "Educational"
	WebsiteTypeHealthcare        = "Healthcare"
	WebsiteTypeRealEstate        = "Real Estate"
	WebsiteTypeTravelTourism     = "Travel / Tourism"
	WebsiteTypeOthers            = "Others"
)

// WebsiteTypes lists every valid website type
var WebsiteTypes = []string{
	WebsiteTypeECommerce,
	WebsiteTypeBusinessPortfolio,
	WebsiteTypePersonalPortfolio,
	WebsiteTypeEducational,
	WebsiteTypeHealthcare,
	WebsiteTypeRealEstate,
	WebsiteTypeTravelTourism,
	WebsiteTypeOthers,
}

// Brands
const (
	BrandFashion       = "Fashion"
	BrandTech          = "Tech"
	BrandFood          = "Food"
	BrandHealth        = "Health"
	BrandEducation     = "Education"
	BrandFinance       = "Finance"
	BrandEntertainment = "Entertainment"
	BrandTravel        = "Travel"
	BrandRealEstate    = "Real Estate"
	BrandAutomotive    = "Automotive"
	BrandSports        = "Sports"
	BrandBeauty        = "Beauty"
	BrandHomeGarden    = "Home & Garden"
	BrandPets          = "Pets"
	BrandPortfolio     = "Portfolio"
	BrandOthers        = "Others"
)

// Record status shared by websites, pages, sections and content
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// IsValidWebsiteType reports whether t is a known website type
func IsValidWebsiteType(t string) bool {
	for _, known := range WebsiteTypes {
		if known == t {
			return true
		}
	}
	return false
}

type Website struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_websites_user_slug"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Brand       string    `json:"brand" gorm:"size:50;not null"`
	WebsiteType string    `json:"website_type" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"size:500;not null"`
	Status      string    `json:"status" gorm:"size:20;default:'active';index"`
	Slug        string    `json:"slug" gorm:"size:120;not null;uniqueIndex:idx_websites_user_slug"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User  User      `json:"-" gorm:"foreignKey:UserID"`
	Pages []Webpage `json:"pages,omitempty" gorm:"foreignKey:WebsiteID"`
}
