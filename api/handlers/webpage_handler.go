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
	"sitebuilder-backend/shared/utils/slug"
)

type WebpageHandler struct {
	db       *gorm.DB
	resolver *ownership.Resolver
}

func NewWebpageHandler(db *gorm.DB) *WebpageHandler {
	return &WebpageHandler{
		db:       db,
		resolver: ownership.NewResolver(db),
	}
}

type CreateWebpageRequest struct {
	WebsiteID string `json:"website_id" binding:"required,uuid" example:"7b0f4f0e-9a1d-4c1e-a111-2f6d3a1b0c9d"`
	Name      string `json:"name" binding:"required,max=100" example:"Pricing"`
	Status    string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateWebpageRequest struct {
	Name   string `json:"name" binding:"omitempty,max=100"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ReorderWebpageRequest struct {
	NewOrder int `json:"new_order" binding:"required,min=1"`
}

type BulkReorderItem struct {
	ID    string `json:"id" binding:"required,uuid"`
	Order int    `json:"order" binding:"required,min=1"`
}

type BulkReorderWebpagesRequest struct {
	WebsiteID string            `json:"website_id" binding:"required,uuid"`
	Pages     []BulkReorderItem `json:"pages" binding:"required,min=1,dive"`
}

// generatePageSlug builds a slug unique among the website's live pages
func (h *WebpageHandler) generatePageSlug(name string, websiteID uuid.UUID) (string, error) {
	baseSlug := slug.Generate(name)

	return slug.GenerateUnique(baseSlug, func(candidate string) (bool, error) {
		var count int64
		err := h.db.Model(&models.Webpage{}).
			Where("website_id = ? AND slug = ? AND is_deleted = ?", websiteID, candidate, false).
			Count(&count).Error
		return count > 0, err
	})
}

// POST /api/pages
// @Summary Create page
// @Description Create a page appended at the end of the website's page order
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page body CreateWebpageRequest true "Page data"
// @Success 201 {object} map[string]interface{} "Created page"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /pages [post]
func (h *WebpageHandler) Create(c *gin.Context) {
	var req CreateWebpageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)
	websiteID := uuid.MustParse(req.WebsiteID)

	if _, err := h.resolver.Website(websiteID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	pageSlug, err := h.generatePageSlug(req.Name, websiteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create page"})
		return
	}

	nextOrder, err := ordering.NextOrder(h.db, ordering.PageScope(&models.Webpage{}, websiteID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create page"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	page := models.Webpage{
		WebsiteID: websiteID,
		Name:      req.Name,
		Slug:      pageSlug,
		Status:    status,
		Order:     nextOrder,
	}

	if err := h.db.Create(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create page"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Page created successfully",
		"data":    page,
	})
}

// GET /api/pages/website/:websiteId
// @Summary List pages of a website
// @Description Live pages sorted by their order column
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param websiteId path string true "Website ID"
// @Success 200 {object} map[string]interface{} "Pages"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /pages/website/{websiteId} [get]
func (h *WebpageHandler) ListByWebsite(c *gin.Context) {
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

	var pages []models.Webpage
	err = h.db.
		Where("website_id = ? AND is_deleted = ?", websiteID, false).
		Order("page_order ASC").
		Find(&pages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pages})
}

// GET /api/pages/:id
// @Summary Get page by ID
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Success 200 {object} map[string]interface{} "Page"
// @Failure 404 {object} map[string]string "Page not found"
// @Router /pages/{id} [get]
func (h *WebpageHandler) Get(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	page, _, err := h.resolver.Page(pageID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": page})
}

// PUT /api/pages/:id
// @Summary Update page
// @Description Update name or status; a name change regenerates the slug
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Param page body UpdateWebpageRequest true "Update data"
// @Success 200 {object} map[string]interface{} "Updated page"
// @Failure 404 {object} map[string]string "Page not found"
// @Router /pages/{id} [put]
func (h *WebpageHandler) Update(c *gin.Context) {
	var req UpdateWebpageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	page, _, err := h.resolver.Page(pageID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	updates := map[string]interface{}{}

	if req.Name != "" && req.Name != page.Name {
		newSlug, err := h.generatePageSlug(req.Name, page.WebsiteID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update page"})
			return
		}
		updates["name"] = req.Name
		updates["slug"] = newSlug
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := h.db.Model(page).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update page"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Page updated successfully",
		"data":    page,
	})
}

// PATCH /api/pages/:id/reorder
// @Summary Reorder page
// @Description Move a page to a new position; siblings inside the window shift by one
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Param reorder body ReorderWebpageRequest true "Target order"
// @Success 200 {object} map[string]interface{} "Reordered page"
// @Failure 404 {object} map[string]string "Page not found"
// @Router /pages/{id}/reorder [patch]
func (h *WebpageHandler) Reorder(c *gin.Context) {
	var req ReorderWebpageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	page, _, err := h.resolver.Page(pageID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	scope := ordering.PageScope(&models.Webpage{}, page.WebsiteID)
	if err := ordering.ShiftWindow(h.db, scope, page.ID, page.Order, req.NewOrder); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reorder page"})
		return
	}

	page.Order = req.NewOrder
	c.JSON(http.StatusOK, gin.H{
		"message": "Page reordered successfully",
		"data":    page,
	})
}

// PATCH /api/pages/bulk-reorder
// @Summary Bulk reorder pages
// @Description Assign explicit order values to several pages of one website
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reorder body BulkReorderWebpagesRequest true "Pages with target orders"
// @Success 200 {object} map[string]interface{} "Reordered"
// @Failure 404 {object} map[string]string "Website or page not found"
// @Router /pages/bulk-reorder [patch]
func (h *WebpageHandler) BulkReorder(c *gin.Context) {
	var req BulkReorderWebpagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)
	websiteID := uuid.MustParse(req.WebsiteID)

	if _, err := h.resolver.Website(websiteID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Pages {
			pageID := uuid.MustParse(item.ID)

			result := tx.Model(&models.Webpage{}).
				Where("id = ? AND website_id = ? AND is_deleted = ?", pageID, websiteID, false).
				Update("page_order", item.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("page %s not found in website", item.ID)
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "One or more pages could not be reordered"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pages reordered successfully"})
}

// DELETE /api/pages/:id
// @Summary Delete page
// @Description Soft-delete a page and close the gap in the sibling order. Default pages cannot be deleted.
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]string "Default pages cannot be deleted"
// @Failure 404 {object} map[string]string "Page not found"
// @Router /pages/{id} [delete]
func (h *WebpageHandler) Delete(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page ID"})
		return
	}

	page, _, err := h.resolver.Page(pageID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	if page.IsDefault {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Default pages cannot be deleted"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(page).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return ordering.CompactAfter(tx, ordering.PageScope(&models.Webpage{}, page.WebsiteID), page.Order)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully"})
}
