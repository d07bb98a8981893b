package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/api/services"
	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/utils/cache"
	"sitebuilder-backend/shared/utils/ownership"
	"sitebuilder-backend/shared/utils/query"
	"sitebuilder-backend/shared/utils/slug"
)

type WebsiteHandler struct {
	db        *gorm.DB
	resolver  *ownership.Resolver
	withCache bool
}

func NewWebsiteHandler(db *gorm.DB) *WebsiteHandler {
	return &WebsiteHandler{
		db:        db,
		resolver:  ownership.NewResolver(db),
		withCache: true,
	}
}

type CreateWebsiteRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"My Shop"`
	Brand       string `json:"brand" binding:"required" example:"Fashion"`
	WebsiteType string `json:"website_type" binding:"required" example:"E-Commerce"`
	Description string `json:"description" binding:"required,max=500" example:"An online fashion store"`
}

type UpdateWebsiteRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Brand       string `json:"brand"`
	WebsiteType string `json:"website_type"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type UpdateWebsiteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// generateWebsiteSlug builds a unique per-user slug from a website name
func (h *WebsiteHandler) generateWebsiteSlug(name string, userID uuid.UUID) (string, error) {
	baseSlug := slug.Generate(name)

	if slug.IsReserved(baseSlug) {
		return "", fmt.Errorf("the slug %q is reserved and cannot be used", baseSlug)
	}

	return slug.GenerateUnique(baseSlug, func(candidate string) (bool, error) {
		var count int64
		err := h.db.Model(&models.Website{}).
			Where("user_id = ? AND slug = ? AND is_deleted = ?", userID, candidate, false).
			Count(&count).Error
		return count > 0, err
	})
}

func (h *WebsiteHandler) invalidateCache(userID uuid.UUID, slugs ...string) {
	cm := cache.GetCacheManager()
	if cm == nil {
		return
	}
	for _, s := range slugs {
		cm.InvalidateWebsite(userID.String(), s)
	}
}

// POST /api/websites
// @Summary Create website
// @Description Create a website and seed its default pages and sections
// @Tags websites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param website body CreateWebsiteRequest true "Website data"
// @Success 201 {object} map[string]interface{} "Created website"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /websites [post]
func (h *WebsiteHandler) Create(c *gin.Context) {
	var req CreateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidWebsiteType(req.WebsiteType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website type"})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	websiteSlug, err := h.generateWebsiteSlug(req.Name, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	website := models.Website{
		UserID:      userID,
		Name:        req.Name,
		Brand:       req.Brand,
		WebsiteType: req.WebsiteType,
		Description: req.Description,
		Slug:        websiteSlug,
		Status:      models.StatusActive,
	}

	if err := h.db.Create(&website).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create website"})
		return
	}

	if err := services.CreateDefaultPages(h.db, website.ID, website.WebsiteType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create default pages"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Website created successfully",
		"data":    website,
	})
}

// GET /api/websites
// @Summary List websites
// @Description Paginated listing of the user's websites with search, filter and sort
// @Tags websites
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search in name, description and brand"
// @Success 200 {object} map[string]interface{} "Websites"
// @Router /websites [get]
func (h *WebsiteHandler) List(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)
	params := query.ParseListParams(c)

	dbQuery := h.db.Model(&models.Website{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)

	dbQuery = query.ApplyFilters(dbQuery, params.Filters, map[string]string{
		"website_type": "website_type",
		"status":       "status",
		"brand":        "brand",
	})
	dbQuery = query.ApplySearch(dbQuery, params.Search, []string{"name", "description", "brand"})

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count websites"})
		return
	}

	dbQuery = query.ApplySort(dbQuery, params.Sort, map[string]string{
		"name":       "name",
		"status":     "status",
		"created_at": "created_at",
		"updated_at": "updated_at",
	})
	dbQuery = query.ApplyPagination(dbQuery, params.Page, params.Limit)

	var websites []models.Website
	if err := dbQuery.Find(&websites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch websites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": websites,
		"meta": query.BuildMeta(params.Page, params.Limit, total),
	})
}

// GET /api/websites/:id
// @Summary Get website by ID
// @Description Website with its pages and sections, sorted by order
// @Tags websites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Website ID"
// @Success 200 {object} map[string]interface{} "Website"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /websites/{id} [get]
func (h *WebsiteHandler) Get(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	website, err := h.resolver.Website(websiteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	err = h.db.
		Preload("Pages", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("page_order ASC")
		}).
		Preload("Pages.Sections", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("section_order ASC")
		}).
		First(website, "id = ?", websiteID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch website"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": website})
}

// GET /api/websites/slug/:slug
// @Summary Get website by slug
// @Description Cached website lookup by slug within the user's scope
// @Tags websites
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Website slug"
// @Success 200 {object} map[string]interface{} "Website"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /websites/slug/{slug} [get]
func (h *WebsiteHandler) GetBySlug(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)
	websiteSlug := c.Param("slug")

	if h.withCache {
		if website, found := cache.GetCacheManager().GetWebsite(userID.String(), websiteSlug); found {
			c.JSON(http.StatusOK, gin.H{"data": website})
			return
		}
	}

	var website models.Website
	err := h.db.
		Where("slug = ? AND user_id = ? AND is_deleted = ?", websiteSlug, userID, false).
		First(&website).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	if h.withCache {
		cache.GetCacheManager().SetWebsite(userID.String(), websiteSlug, &website)
	}

	c.JSON(http.StatusOK, gin.H{"data": website})
}

// PUT /api/websites/:id
// @Summary Update website
// @Description Update fields; a name change regenerates the slug, a type change regenerates default content
// @Tags websites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Website ID"
// @Param website body UpdateWebsiteRequest true "Update data"
// @Success 200 {object} map[string]interface{} "Updated website"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /websites/{id} [put]
func (h *WebsiteHandler) Update(c *gin.Context) {
	var req UpdateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	website, err := h.resolver.Website(websiteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	oldSlug := website.Slug
	updates := map[string]interface{}{}

	if req.Name != "" && req.Name != website.Name {
		newSlug, err := h.generateWebsiteSlug(req.Name, userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates["name"] = req.Name
		updates["slug"] = newSlug
	}

	if req.Brand != "" {
		updates["brand"] = req.Brand
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if req.WebsiteType != "" && req.WebsiteType != website.WebsiteType {
		if !models.IsValidWebsiteType(req.WebsiteType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website type"})
			return
		}

		// Regenerate default content for the new type; custom pages
		// are left alone
		if err := services.RemoveDefaultPages(h.db, websiteID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not regenerate default pages"})
			return
		}
		if err := services.CreateDefaultPages(h.db, websiteID, req.WebsiteType); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not regenerate default pages"})
			return
		}
		updates["website_type"] = req.WebsiteType
	}

	if len(updates) > 0 {
		if err := h.db.Model(website).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update website"})
			return
		}
	}

	h.invalidateCache(userID, oldSlug, website.Slug)

	c.JSON(http.StatusOK, gin.H{
		"message": "Website updated successfully",
		"data":    website,
	})
}

// PATCH /api/websites/:id/status
// @Summary Update website status
// @Tags websites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Website ID"
// @Param status body UpdateWebsiteStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Updated website"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /websites/{id}/status [patch]
func (h *WebsiteHandler) UpdateStatus(c *gin.Context) {
	var req UpdateWebsiteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	website, err := h.resolver.Website(websiteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	if err := h.db.Model(website).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update status"})
		return
	}

	h.invalidateCache(userID, website.Slug)

	website.Status = req.Status
	c.JSON(http.StatusOK, gin.H{
		"message": "Website status updated successfully",
		"data":    website,
	})
}

// DELETE /api/websites/:id
// @Summary Delete website
// @Description Soft-delete a website
// @Tags websites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Website ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /websites/{id} [delete]
func (h *WebsiteHandler) Delete(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	website, err := h.resolver.Website(websiteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	if err := h.db.Model(website).Update("is_deleted", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete website"})
		return
	}

	// Deleting reshuffles what the owner's slugs resolve to, so the
	// whole per-user cache namespace goes
	if cm := cache.GetCacheManager(); cm != nil {
		cm.InvalidateUserWebsites(userID.String())
	}

	c.JSON(http.StatusOK, gin.H{"message": "Website deleted successfully"})
}

// POST /api/websites/:id/clone
// @Summary Clone website
// @Description Duplicate the website record under a "(Copy)" name with a fresh slug
// @Tags websites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Website ID"
// @Success 201 {object} map[string]interface{} "Cloned website"
// @Failure 404 {object} map[string]string "Website not found"
// @Router /websites/{id}/clone [post]
func (h *WebsiteHandler) Clone(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid website ID"})
		return
	}

	original, err := h.resolver.Website(websiteID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
		return
	}

	cloneName := fmt.Sprintf("%s (Copy)", original.Name)
	cloneSlug, err := h.generateWebsiteSlug(cloneName, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clone := models.Website{
		UserID:      original.UserID,
		Name:        cloneName,
		Brand:       original.Brand,
		WebsiteType: original.WebsiteType,
		Description: original.Description,
		Status:      original.Status,
		Slug:        cloneSlug,
	}

	if err := h.db.Create(&clone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clone website"})
		return
	}

	// TODO: deep-clone pages, sections, content, and theme

	c.JSON(http.StatusCreated, gin.H{
		"message": "Website cloned successfully",
		"data":    clone,
	})
}
