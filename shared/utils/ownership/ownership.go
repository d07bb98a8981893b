// Package ownership resolves whether a user may touch a record in the
// website content tree.
//
// Every lookup walks the ancestor chain up to the website and filters
// the website by user and soft-delete flag. A record that is missing,
// soft-deleted, or owned by someone else produces the same error, so
// responses never reveal whether a foreign record exists.
package ownership

import (
	"errors"

	"sitebuilder-backend/shared/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFoundOrForbidden is returned for absent, deleted and foreign
// records alike. Handlers translate it to 404.
var ErrNotFoundOrForbidden = errors.New("record not found")

// Resolver runs ownership checks against the content tree
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Website returns the website if it exists, is not deleted and belongs
// to userID.
func (r *Resolver) Website(websiteID, userID uuid.UUID) (*models.Website, error) {
	var website models.Website
	err := r.db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", websiteID, userID, false).
		First(&website).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, err
	}
	return &website, nil
}

// Page returns the page plus its owning website after walking
// page -> website.
func (r *Resolver) Page(pageID, userID uuid.UUID) (*models.Webpage, *models.Website, error) {
	var page models.Webpage
	err := r.db.
		Where("id = ? AND is_deleted = ?", pageID, false).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFoundOrForbidden
		}
		return nil, nil, err
	}

	website, err := r.Website(page.WebsiteID, userID)
	if err != nil {
		return nil, nil, err
	}

	return &page, website, nil
}

// Section returns the section plus its ancestors after walking
// section -> page -> website.
func (r *Resolver) Section(sectionID, userID uuid.UUID) (*models.WebpageSection, *models.Webpage, *models.Website, error) {
	var section models.WebpageSection
	err := r.db.
		Where("id = ? AND is_deleted = ?", sectionID, false).
		First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrNotFoundOrForbidden
		}
		return nil, nil, nil, err
	}

	page, website, err := r.Page(section.WebpageID, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	return &section, page, website, nil
}

// Content returns the content row plus its owning section after walking
// content -> section -> page -> website.
func (r *Resolver) Content(contentID, userID uuid.UUID) (*models.SectionContent, *models.WebpageSection, error) {
	var content models.SectionContent
	err := r.db.
		Where("id = ?", contentID).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFoundOrForbidden
		}
		return nil, nil, err
	}

	section, _, _, err := r.Section(content.SectionID, userID)
	if err != nil {
		return nil, nil, err
	}

	return &content, section, nil
}

// Theme returns the theme plus its owning website after walking
// theme -> website.
func (r *Resolver) Theme(themeID, userID uuid.UUID) (*models.WebsiteTheme, *models.Website, error) {
	var theme models.WebsiteTheme
	err := r.db.
		Where("id = ?", themeID).
		First(&theme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFoundOrForbidden
		}
		return nil, nil, err
	}

	website, err := r.Website(theme.WebsiteID, userID)
	if err != nil {
		return nil, nil, err
	}

	return &theme, website, nil
}
