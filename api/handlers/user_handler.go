package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/utils/query"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GET /api/users/me
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// GET /api/users
// @Summary List users
// @Description Admin-only paginated user listing
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search in name and email"
// @Success 200 {object} map[string]interface{} "Users"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	params := query.ParseListParams(c)

	dbQuery := h.db.Model(&models.User{})

	dbQuery = query.ApplyFilters(dbQuery, params.Filters, map[string]string{
		"role":        "role",
		"is_verified": "is_verified",
		"is_active":   "is_active",
	})
	dbQuery = query.ApplySearch(dbQuery, params.Search, []string{"name", "email"})

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count users"})
		return
	}

	dbQuery = query.ApplySort(dbQuery, params.Sort, map[string]string{
		"name":       "name",
		"email":      "email",
		"created_at": "created_at",
	})
	dbQuery = query.ApplyPagination(dbQuery, params.Page, params.Limit)

	var users []models.User
	if err := dbQuery.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": users,
		"meta": query.BuildMeta(params.Page, params.Limit, total),
	})
}
