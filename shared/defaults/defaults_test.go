package defaults_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/defaults"
)

func TestEveryWebsiteTypeHasPages(t *testing.T) {
	for _, websiteType := range models.WebsiteTypes {
		pages := defaults.PagesForType(websiteType)
		require.NotEmpty(t, pages, "type %s has no default pages", websiteType)

		// Orders are sequential starting at 1, slugs unique per type
		slugs := map[string]bool{}
		for i, page := range pages {
			assert.Equal(t, i+1, page.Order, "type %s page %s", websiteType, page.Name)
			assert.NotEmpty(t, page.Slug)
			assert.False(t, slugs[page.Slug], "type %s duplicate slug %s", websiteType, page.Slug)
			slugs[page.Slug] = true
		}
	}
}

func TestEveryDefaultPageHasSections(t *testing.T) {
	for _, websiteType := range models.WebsiteTypes {
		for _, page := range defaults.PagesForType(websiteType) {
			sections := defaults.SectionsForPage(websiteType, page.Name)
			require.NotEmpty(t, sections, "type %s page %s has no default sections", websiteType, page.Name)

			for i, section := range sections {
				assert.Equal(t, i+1, section.Order, "type %s page %s section %s", websiteType, page.Name, section.Name)
				assert.NotEmpty(t, section.SectionType)
			}
		}
	}
}

func TestUnknownTypeFallsBackToOthers(t *testing.T) {
	assert.Equal(t, defaults.PagesForType(models.WebsiteTypeOthers), defaults.PagesForType("Bakery"))
	assert.Equal(t,
		defaults.SectionsForPage(models.WebsiteTypeOthers, "Home"),
		defaults.SectionsForPage("Bakery", "Home"))
}

func TestUnknownPageHasNoSections(t *testing.T) {
	assert.Empty(t, defaults.SectionsForPage(models.WebsiteTypeECommerce, "No Such Page"))
}

func TestECommercePageSet(t *testing.T) {
	pages := defaults.PagesForType(models.WebsiteTypeECommerce)
	require.Len(t, pages, 7)
	assert.Equal(t, "Home", pages[0].Name)
	assert.Equal(t, "shop", pages[1].Slug)
	assert.Equal(t, "Contact", pages[6].Name)
}

func TestThemePresets(t *testing.T) {
	require.Len(t, defaults.ThemePresets, 5)

	def := defaults.DefaultTheme()
	assert.Equal(t, "Modern Blue", def.Name)
	assert.Equal(t, models.ThemeModeLight, def.ThemeMode)
	assert.Equal(t, "#3B82F6", def.Colors.Primary)
	assert.Equal(t, models.TypographySansSerif, def.Typography)

	preset, ok := defaults.PresetByName("Classic Dark")
	require.True(t, ok)
	assert.Equal(t, models.ThemeModeDark, preset.ThemeMode)

	_, ok = defaults.PresetByName("Nope")
	assert.False(t, ok)
}
