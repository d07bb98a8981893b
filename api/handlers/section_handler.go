package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/utils/ordering"
	"sitebuilder-backend/shared/utils/ownership"
)

type SectionHandler struct {
	db       *gorm.DB
	resolver *ownership.Resolver
}

func NewSectionHandler(db *gorm.DB) *SectionHandler {
	return &SectionHandler{
		db:       db,
		resolver: ownership.NewResolver(db),
	}
}

type CreateSectionRequest struct {
	WebpageID   string         `json:"webpage_id" binding:"required,uuid"`
	Name        string         `json:"name" binding:"required,max=100" example:"Hero Section"`
	SectionType string         `json:"section_type" binding:"required" example:"hero"`
	Settings    models.JSONMap `json:"settings"`
	Status      string         `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateSectionRequest struct {
	Name        string         `json:"name" binding:"omitempty,max=100"`
	SectionType string         `json:"section_type"`
	Settings    models.JSONMap `json:"settings"`
	Status      string         `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ReorderSectionRequest struct {
	NewOrder int `json:"new_order" binding:"required,min=1"`
}

// POST /api/sections
// @Summary Create section
// @Description Create a section appended at the end of the page's section order
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section body CreateSectionRequest true "Section data"
// @Success 201 {object} map[string]interface{} "Created section"
// @Failure 404 {object} map[string]string "Page not found"
// @Router /sections [post]
func (h *SectionHandler) Create(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)
	webpageID := uuid.MustParse(req.WebpageID)

	if _, _, err := h.resolver.Page(webpageID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	nextOrder, err := ordering.NextOrder(h.db, ordering.SectionScope(&models.WebpageSection{}, webpageID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create section"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	section := models.WebpageSection{
		WebpageID:   webpageID,
		Name:        req.Name,
		SectionType: req.SectionType,
		Settings:    req.Settings,
		Status:      status,
		Order:       nextOrder,
	}

	if err := h.db.Create(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create section"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Section created successfully",
		"data":    section,
	})
}

// GET /api/sections/page/:pageId
// @Summary List sections of a page
// @Description Live sections with their content, sorted by order
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param pageId path string true "Page ID"
// @Success 200 {object} map[string]interface{} "Sections"
// @Failure 404 {object} map[string]string "Page not found"
// @Router /sections/page/{pageId} [get]
func (h *SectionHandler) ListByPage(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	pageID, err := uuid.Parse(c.Param("pageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	if _, _, err := h.resolver.Page(pageID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var sections []models.WebpageSection
	err = h.db.
		Preload("Content").
		Where("webpage_id = ? AND is_deleted = ?", pageID, false).
		Order("section_order ASC").
		Find(&sections).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sections})
}

// GET /api/sections/:id
// @Summary Get section by ID
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {object} map[string]interface{} "Section"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /sections/{id} [get]
func (h *SectionHandler) Get(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	section, _, _, err := h.resolver.Section(sectionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	if err := h.db.Preload("Content").First(section, "id = ?", sectionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch section"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": section})
}

// PUT /api/sections/:id
// @Summary Update section
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param section body UpdateSectionRequest true "Update data"
// @Success 200 {object} map[string]interface{} "Updated section"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /sections/{id} [put]
func (h *SectionHandler) Update(c *gin.Context) {
	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	section, _, _, err := h.resolver.Section(sectionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.SectionType != "" {
		updates["section_type"] = req.SectionType
	}
	if req.Settings != nil {
		updates["settings"] = req.Settings
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := h.db.Model(section).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update section"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Section updated successfully",
		"data":    section,
	})
}

// PATCH /api/sections/:id/reorder
// @Summary Reorder section
// @Description Move a section to a new position; siblings inside the window shift by one
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param reorder body ReorderSectionRequest true "Target order"
// @Success 200 {object} map[string]interface{} "Reordered section"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /sections/{id}/reorder [patch]
func (h *SectionHandler) Reorder(c *gin.Context) {
	var req ReorderSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	section, _, _, err := h.resolver.Section(sectionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	scope := ordering.SectionScope(&models.WebpageSection{}, section.WebpageID)
	if err := ordering.ShiftWindow(h.db, scope, section.ID, section.Order, req.NewOrder); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reorder section"})
		return
	}

	section.Order = req.NewOrder
	c.JSON(http.StatusOK, gin.H{
		"message": "Section reordered successfully",
		"data":    section,
	})
}

// POST /api/sections/:id/duplicate
// @Summary Duplicate section
// @Description Copy a section under a "(Copy)" name, appended at the end of the order
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 201 {object} map[string]interface{} "Duplicated section"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /sections/{id}/duplicate [post]
func (h *SectionHandler) Duplicate(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	original, _, _, err := h.resolver.Section(sectionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	nextOrder, err := ordering.NextOrder(h.db, ordering.SectionScope(&models.WebpageSection{}, original.WebpageID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not duplicate section"})
		return
	}

	duplicate := models.WebpageSection{
		WebpageID:   original.WebpageID,
		Name:        fmt.Sprintf("%s (Copy)", original.Name),
		SectionType: original.SectionType,
		Settings:    original.Settings,
		Status:      original.Status,
		Order:       nextOrder,
	}

	if err := h.db.Create(&duplicate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not duplicate section"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Section duplicated successfully",
		"data":    duplicate,
	})
}

// DELETE /api/sections/:id
// @Summary Delete section
// @Description Soft-delete a section and close the gap in the sibling order
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /sections/{id} [delete]
func (h *SectionHandler) Delete(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	section, _, _, err := h.resolver.Section(sectionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(section).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return ordering.CompactAfter(tx, ordering.SectionScope(&models.WebpageSection{}, section.WebpageID), section.Order)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete section"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}
