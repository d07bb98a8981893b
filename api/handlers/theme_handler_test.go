package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/database/testutil"
)

func newThemeTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, models.Website) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	userID := uuid.New()

	website := models.Website{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "My Site",
		Brand:       "Acme",
		WebsiteType: models.WebsiteTypeOthers,
		Slug:        "my-site",
		Status:      models.StatusActive,
	}
	require.NoError(t, db.Create(&website).Error)

	handler := NewThemeHandler(db)

	router := gin.New()
	group := router.Group("/api/themes", withUser(userID))
	group.GET("/presets", handler.ListPresets)
	group.GET("/website/:websiteId", handler.GetByWebsite)
	group.PUT("/website/:websiteId", handler.Update)
	group.POST("/website/:websiteId/apply-preset", handler.ApplyPreset)
	group.POST("/website/:websiteId/reset", handler.Reset)

	return router, db, website
}

func TestGetThemeCreatesDefaultLazily(t *testing.T) {
	router, db, website := newThemeTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/themes/website/"+website.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var theme models.WebsiteTheme
	require.NoError(t, db.Where("website_id = ?", website.ID).First(&theme).Error)
	assert.Equal(t, models.ThemeModeLight, theme.ThemeMode)
	assert.Equal(t, "#3B82F6", theme.Colors.Primary)
	assert.Equal(t, models.TypographySansSerif, theme.Typography)

	// Second read must reuse the same row
	w = doJSON(t, router, http.MethodGet, "/api/themes/website/"+website.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.WebsiteTheme{}).Where("website_id = ?", website.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateThemeMergesFields(t *testing.T) {
	router, db, website := newThemeTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/themes/website/"+website.ID.String(), gin.H{
		"theme_mode":  models.ThemeModeDark,
		"custom_font": "Inter",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var theme models.WebsiteTheme
	require.NoError(t, db.Where("website_id = ?", website.ID).First(&theme).Error)
	assert.Equal(t, models.ThemeModeDark, theme.ThemeMode)
	assert.Equal(t, "Inter", theme.CustomFont)
	// Untouched fields keep their defaults
	assert.Equal(t, "#3B82F6", theme.Colors.Primary)
	assert.Equal(t, models.TypographySansSerif, theme.Typography)
}

func TestApplyThemePreset(t *testing.T) {
	router, db, website := newThemeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/themes/website/"+website.ID.String()+"/apply-preset", gin.H{
		"preset_name": "Classic Dark",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var theme models.WebsiteTheme
	require.NoError(t, db.Where("website_id = ?", website.ID).First(&theme).Error)
	assert.Equal(t, models.ThemeModeDark, theme.ThemeMode)
	assert.Equal(t, "#60A5FA", theme.Colors.Primary)
	assert.Equal(t, models.TypographySerif, theme.Typography)
}

func TestApplyUnknownPreset(t *testing.T) {
	router, _, website := newThemeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/themes/website/"+website.ID.String()+"/apply-preset", gin.H{
		"preset_name": "Neon Green",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetThemeRestoresDefault(t *testing.T) {
	router, db, website := newThemeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/themes/website/"+website.ID.String()+"/apply-preset", gin.H{
		"preset_name": "Bold Orange",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/themes/website/"+website.ID.String()+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var theme models.WebsiteTheme
	require.NoError(t, db.Where("website_id = ?", website.ID).First(&theme).Error)
	assert.Equal(t, "#3B82F6", theme.Colors.Primary)
	assert.Equal(t, models.ThemeModeLight, theme.ThemeMode)
	assert.Empty(t, theme.CustomFont)
}

func TestThemeOfForeignWebsite(t *testing.T) {
	router, db, _ := newThemeTestRouter(t)

	foreign := models.Website{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Foreign",
		Brand:       "Acme",
		WebsiteType: models.WebsiteTypeOthers,
		Slug:        "foreign",
		Status:      models.StatusActive,
	}
	require.NoError(t, db.Create(&foreign).Error)

	w := doJSON(t, router, http.MethodGet, "/api/themes/website/"+foreign.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
