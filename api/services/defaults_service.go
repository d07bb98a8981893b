// Package services holds supporting services used by the API handlers.
package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/defaults"
)

// CreateDefaultPages seeds a website with the default page set of its
// type, each page carrying its default sections. Pages are written
// concurrently as independent rows; on failure the first error is
// reported and rows already written stay in place.
func CreateDefaultPages(db *gorm.DB, websiteID uuid.UUID, websiteType string) error {
	pageConfigs := defaults.PagesForType(websiteType)

	var wg sync.WaitGroup
	errCh := make(chan error, len(pageConfigs))

	for _, pageConfig := range pageConfigs {
		wg.Add(1)
		go func(pc defaults.Page) {
			defer wg.Done()
			if err := createDefaultPage(db, websiteID, websiteType, pc); err != nil {
				errCh <- err
			}
		}(pageConfig)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return fmt.Errorf("failed to create default pages: %w", err)
	}

	return nil
}

func createDefaultPage(db *gorm.DB, websiteID uuid.UUID, websiteType string, pc defaults.Page) error {
	page := models.Webpage{
		WebsiteID: websiteID,
		Name:      pc.Name,
		Slug:      pc.Slug,
		Order:     pc.Order,
		IsDefault: true,
	}

	if err := db.Create(&page).Error; err != nil {
		return err
	}

	sectionConfigs := defaults.SectionsForPage(websiteType, pc.Name)
	for _, sc := range sectionConfigs {
		section := models.WebpageSection{
			WebpageID:   page.ID,
			Name:        sc.Name,
			SectionType: sc.SectionType,
			Order:       sc.Order,
			IsDefault:   true,
		}
		if err := db.Create(&section).Error; err != nil {
			return err
		}
	}

	return nil
}

// RemoveDefaultPages hard-deletes the default pages of a website along
// with their sections. Custom pages are untouched. Used when the
// website type changes and the default content is regenerated.
func RemoveDefaultPages(db *gorm.DB, websiteID uuid.UUID) error {
	var defaultPages []models.Webpage
	err := db.
		Where("website_id = ? AND is_default = ? AND is_deleted = ?", websiteID, true, false).
		Find(&defaultPages).Error
	if err != nil {
		return err
	}

	if len(defaultPages) == 0 {
		return nil
	}

	pageIDs := make([]uuid.UUID, 0, len(defaultPages))
	for _, page := range defaultPages {
		pageIDs = append(pageIDs, page.ID)
	}

	if err := db.Where("webpage_id IN ?", pageIDs).Delete(&models.WebpageSection{}).Error; err != nil {
		return err
	}

	return db.Where("id IN ?", pageIDs).Delete(&models.Webpage{}).Error
}
