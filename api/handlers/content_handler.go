package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/api/services"
	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/utils/ownership"
)

type ContentHandler struct {
	db       *gorm.DB
	resolver *ownership.Resolver
	media    *services.MediaService
}

func NewContentHandler(db *gorm.DB) *ContentHandler {
	media, err := services.NewMediaService()
	if err != nil {
		log.Printf("❌ Media storage unavailable: %v", err)
	}

	return &ContentHandler{
		db:       db,
		resolver: ownership.NewResolver(db),
		media:    media,
	}
}

type UpsertContentRequest struct {
	Title       string            `json:"title" binding:"omitempty,max=200"`
	Subtitle    string            `json:"subtitle" binding:"omitempty,max=300"`
	Description string            `json:"description"`
	Buttons     models.Buttons    `json:"buttons"`
	ListItems   models.StringList `json:"list_items"`
	CustomData  models.JSONMap    `json:"custom_data"`
	Status      string            `json:"status" binding:"omitempty,oneof=active inactive"`
}

// GET /api/content/section/:sectionId
// @Summary Get section content
// @Description Content of a section; an empty structure is returned when none has been saved yet
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Success 200 {object} map[string]interface{} "Content"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /content/section/{sectionId} [get]
func (h *ContentHandler) GetBySection(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	if _, _, _, err := h.resolver.Section(sectionID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var content models.SectionContent
	err = h.db.Where("section_id = ?", sectionID).First(&content).Error
	if err != nil {
		// No saved content yet: hand back an empty shell so the editor
		// always has something to render
		content = models.SectionContent{
			SectionID: sectionID,
			Status:    models.StatusActive,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": content})
}

// PUT /api/content/section/:sectionId
// @Summary Upsert section content
// @Description Create the section's content record on first write, update it afterwards
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param content body UpsertContentRequest true "Content data"
// @Success 200 {object} map[string]interface{} "Saved content"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /content/section/{sectionId} [put]
func (h *ContentHandler) Upsert(c *gin.Context) {
	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	if _, _, _, err := h.resolver.Section(sectionID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var content models.SectionContent
	err = h.db.Where("section_id = ?", sectionID).First(&content).Error
	if err != nil {
		content = models.SectionContent{SectionID: sectionID}
	}

	content.Title = req.Title
	content.Subtitle = req.Subtitle
	content.Description = req.Description
	if req.Buttons != nil {
		content.Buttons = req.Buttons
	}
	if req.ListItems != nil {
		content.ListItems = req.ListItems
	}
	if req.CustomData != nil {
		content.CustomData = req.CustomData
	}
	if req.Status != "" {
		content.Status = req.Status
	}

	if err := h.db.Save(&content).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content saved successfully",
		"data":    content,
	})
}

// POST /api/content/section/:sectionId/media
// @Summary Upload section media
// @Description Store an image or video and attach it to the section's content
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param file formData file true "Media file"
// @Param name formData string false "Display name"
// @Success 201 {object} map[string]interface{} "Uploaded media item"
// @Failure 400 {object} map[string]string "Unsupported file type"
// @Failure 404 {object} map[string]string "Section not found"
// @Router /content/section/{sectionId}/media [post]
func (h *ContentHandler) UploadMedia(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not available"})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}

	if _, _, _, err := h.resolver.Section(sectionID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	if !h.media.IsAllowedType(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	mediaURL, err := h.media.Upload(sectionID, fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not upload media"})
		return
	}

	mediaType := models.MediaTypeImage
	if ct := fileHeader.Header.Get("Content-Type"); strings.HasPrefix(ct, "video/") {
		mediaType = models.MediaTypeVideo
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	item := models.MediaItem{
		ID:   uuid.New().String(),
		URL:  mediaURL,
		Type: mediaType,
		Name: name,
	}

	var content models.SectionContent
	if err := h.db.Where("section_id = ?", sectionID).First(&content).Error; err != nil {
		content = models.SectionContent{SectionID: sectionID, Status: models.StatusActive}
	}
	content.Media = append(content.Media, item)

	if err := h.db.Save(&content).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save media"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Media uploaded successfully",
		"data":    item,
	})
}

// DELETE /api/content/section/:sectionId/media/:mediaId
// @Summary Delete section media
// @Description Detach a media item from the section's content and remove the stored file
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param mediaId path string true "Media item ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]string "Section or media not found"
// @Router /content/section/{sectionId}/media/{mediaId} [delete]
func (h *ContentHandler) DeleteMedia(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section ID"})
		return
	}
	mediaID := c.Param("mediaId")

	if _, _, _, err := h.resolver.Section(sectionID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var content models.SectionContent
	if err := h.db.Where("section_id = ?", sectionID).First(&content).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	var removed *models.MediaItem
	remaining := make(models.MediaItems, 0, len(content.Media))
	for _, item := range content.Media {
		if item.ID == mediaID {
			removed = &item
			continue
		}
		remaining = append(remaining, item)
	}

	if removed == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	content.Media = remaining
	if err := h.db.Save(&content).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete media"})
		return
	}

	if h.media != nil {
		if err := h.media.Remove(removed.URL); err != nil {
			log.Printf("❌ Failed to remove media object: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}
