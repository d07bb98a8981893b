package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/defaults"
	"sitebuilder-backend/shared/utils/ownership"
)

type ThemeHandler struct {
	db       *gorm.DB
	resolver *ownership.Resolver
}

func NewThemeHandler(db *gorm.DB) *ThemeHandler {
	return &ThemeHandler{
		db:       db,
		resolver: ownership.NewResolver(db),
	}
}

type UpdateThemeRequest struct {
	ThemeMode  string              `json:"theme_mode" binding:"omitempty,oneof=light dark"`
	Colors     *models.ThemeColors `json:"colors"`
	Typography string              `json:"typography" binding:"omitempty,oneof=Serif Sans-Serif Script Others"`
	CustomFont string              `json:"custom_font" binding:"omitempty,max=100"`
}

type ApplyPresetRequest struct {
	PresetName string `json:"preset_name" binding:"required" example:"Modern Blue"`
}

// themeFromPreset builds a theme row for a website out of a preset
func themeFromPreset(websiteID uuid.UUID, preset defaults.ThemePreset) models.WebsiteTheme {
	return models.WebsiteTheme{
		WebsiteID:  websiteID,
		ThemeMode:  preset.ThemeMode,
		Colors:     models.Colors(preset.Colors),
		Typography: preset.Typography,
	}
}

// getOrCreateTheme loads the website's theme, lazily creating it from
// the default preset on first access.
func (h *ThemeHandler) getOrCreateTheme(websiteID uuid.UUID) (*models.WebsiteTheme, error) {
	var theme models.WebsiteTheme
	err := h.db.Where("website_id = ?", websiteID).First(&theme).Error
	if err == nil {
		return &theme, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	theme = themeFromPreset(websiteID, defaults.DefaultTheme())
	if err := h.db.Create(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}

// GET /api/themes/presets
// @Summary List theme presets
// @Description Predefined theme configurations available to every website
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Presets"
// @Router /themes/presets [get]
func (h *ThemeHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": defaults.ThemePresets})
}

// GET /api/themes/website/:websiteId
// @Summary Get website theme
// @Description Theme of a website, created from the default preset on first access
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Param websiteId path string true "Website ID"
// @Success 200 {object} map[string]interface{} "Theme"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /themes/website/{websiteId} [get]
func (h *ThemeHandler) GetByWebsite(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("websiteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	if _, err := h.resolver.Website(websiteID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	theme, err := h.getOrCreateTheme(websiteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": theme})
}

// PUT /api/themes/website/:websiteId
// @Summary Update website theme
// @Description Merge the provided fields into the website's theme
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param websiteId path string true "Website ID"
// @Param theme body UpdateThemeRequest true "Theme fields"
// @Success 200 {object} map[string]interface{} "Updated theme"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /themes/website/{websiteId} [put]
func (h *ThemeHandler) Update(c *gin.Context) {
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("websiteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	if _, err := h.resolver.Website(websiteID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	theme, err := h.getOrCreateTheme(websiteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch theme"})
		return
	}

	updates := map[string]interface{}{}
	if req.ThemeMode != "" {
		updates["theme_mode"] = req.ThemeMode
	}
	if req.Colors != nil {
		updates["colors"] = models.Colors(*req.Colors)
	}
	if req.Typography != "" {
		updates["typography"] = req.Typography
	}
	if req.CustomFont != "" {
		updates["custom_font"] = req.CustomFont
	}

	if len(updates) > 0 {
		if err := h.db.Model(theme).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update theme"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme updated successfully",
		"data":    theme,
	})
}

// POST /api/themes/website/:websiteId/apply-preset
// @Summary Apply theme preset
// @Description Overwrite the website's theme with a named preset
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param websiteId path string true "Website ID"
// @Param preset body ApplyPresetRequest true "Preset name"
// @Success 200 {object} map[string]interface{} "Updated theme"
// @Failure 400 {object} map[string]string "Unknown preset"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /themes/website/{websiteId}/apply-preset [post]
func (h *ThemeHandler) ApplyPreset(c *gin.Context) {
	var req ApplyPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, ok := defaults.PresetByName(req.PresetName)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme preset"})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("websiteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	if _, err := h.resolver.Website(websiteID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	theme, err := h.getOrCreateTheme(websiteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch theme"})
		return
	}

	updates := map[string]interface{}{
		"theme_mode":  preset.ThemeMode,
		"colors":      models.Colors(preset.Colors),
		"typography":  preset.Typography,
		"custom_font": "",
	}
	if err := h.db.Model(theme).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not apply preset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme preset applied successfully",
		"data":    theme,
	})
}

// POST /api/themes/website/:websiteId/reset
// @Summary Reset website theme
// @Description Restore the website's theme to the default preset
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Param websiteId path string true "Website ID"
// @Success 200 {object} map[string]interface{} "Reset theme"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /themes/website/{websiteId}/reset [post]
func (h *ThemeHandler) Reset(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("websiteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	if _, err := h.resolver.Website(websiteID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	theme, err := h.getOrCreateTheme(websiteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch theme"})
		return
	}

	preset := defaults.DefaultTheme()
	updates := map[string]interface{}{
		"theme_mode":  preset.ThemeMode,
		"colors":      models.Colors(preset.Colors),
		"typography":  preset.Typography,
		"custom_font": "",
	}
	if err := h.db.Model(theme).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reset theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme reset successfully",
		"data":    theme,
	})
}
