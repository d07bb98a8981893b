package handlers

import (
	"encoding/json"
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

func newWebpageTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, models.Website) {
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

	handler := NewWebpageHandler(db)

	router := gin.New()
	group := router.Group("/api/pages", withUser(userID))
	group.POST("", handler.Create)
	group.GET("/website/:websiteId", handler.ListByWebsite)
	group.PATCH("/bulk-reorder", handler.BulkReorder)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.PATCH("/:id/reorder", handler.Reorder)
	group.DELETE("/:id", handler.Delete)

	return router, db, website
}

func createPage(t *testing.T, router *gin.Engine, websiteID uuid.UUID, name string) models.Webpage {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/pages", gin.H{
		"website_id": websiteID.String(),
		"name":       name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Webpage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreatePagesAppendWithGap(t *testing.T) {
	router, _, website := newWebpageTestRouter(t)

	first := createPage(t, router, website.ID, "Pricing")
	second := createPage(t, router, website.ID, "Team")

	assert.Equal(t, 10, first.Order)
	assert.Equal(t, 20, second.Order)
	assert.Equal(t, "pricing", first.Slug)
}

func TestCreatePageDeduplicatesSlugWithinWebsite(t *testing.T) {
	router, _, website := newWebpageTestRouter(t)

	first := createPage(t, router, website.ID, "Pricing")
	second := createPage(t, router, website.ID, "Pricing")

	assert.Equal(t, "pricing", first.Slug)
	assert.Equal(t, "pricing-1", second.Slug)
}

func TestCreatePageOnForeignWebsite(t *testing.T) {
	router, db, _ := newWebpageTestRouter(t)

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

	w := doJSON(t, router, http.MethodPost, "/api/pages", gin.H{
		"website_id": foreign.ID.String(),
		"name":       "Sneaky",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPagesSortedByOrder(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)
	createPage(t, router, website.ID, "First")
	createPage(t, router, website.ID, "Second")

	// Orders are not insertion order
	require.NoError(t, db.Model(&models.Webpage{}).
		Where("website_id = ? AND name = ?", website.ID, "First").
		Update("page_order", 30).Error)

	w := doJSON(t, router, http.MethodGet, "/api/pages/website/"+website.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Webpage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Second", resp.Data[0].Name)
	assert.Equal(t, "First", resp.Data[1].Name)
}

func seedOrderedPages(t *testing.T, db *gorm.DB, websiteID uuid.UUID, names ...string) []models.Webpage {
	t.Helper()

	pages := make([]models.Webpage, len(names))
	for i, name := range names {
		pages[i] = models.Webpage{
			ID:        uuid.New(),
			WebsiteID: websiteID,
			Name:      name,
			Slug:      name,
			Status:    models.StatusActive,
			Order:     i + 1,
		}
		require.NoError(t, db.Create(&pages[i]).Error)
	}
	return pages
}

func TestReorderPageShiftsWindow(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)
	pages := seedOrderedPages(t, db, website.ID, "a", "b", "c", "d")

	w := doJSON(t, router, http.MethodPatch, "/api/pages/"+pages[0].ID.String()+"/reorder", gin.H{
		"new_order": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	orders := map[string]int{}
	var all []models.Webpage
	require.NoError(t, db.Where("website_id = ?", website.ID).Find(&all).Error)
	for _, p := range all {
		orders[p.Name] = p.Order
	}

	assert.Equal(t, 3, orders["a"])
	assert.Equal(t, 1, orders["b"])
	assert.Equal(t, 2, orders["c"])
	assert.Equal(t, 4, orders["d"])
}

func TestBulkReorderPages(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)
	pages := seedOrderedPages(t, db, website.ID, "a", "b", "c")

	w := doJSON(t, router, http.MethodPatch, "/api/pages/bulk-reorder", gin.H{
		"website_id": website.ID.String(),
		"pages": []gin.H{
			{"id": pages[0].ID.String(), "order": 3},
			{"id": pages[1].ID.String(), "order": 1},
			{"id": pages[2].ID.String(), "order": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reloaded models.Webpage
	require.NoError(t, db.First(&reloaded, "id = ?", pages[0].ID).Error)
	assert.Equal(t, 3, reloaded.Order)
}

func TestBulkReorderRejectsForeignPage(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)
	seedOrderedPages(t, db, website.ID, "a")

	foreignPage := models.Webpage{
		ID:        uuid.New(),
		WebsiteID: uuid.New(),
		Name:      "foreign",
		Slug:      "foreign",
		Status:    models.StatusActive,
		Order:     1,
	}
	require.NoError(t, db.Create(&foreignPage).Error)

	w := doJSON(t, router, http.MethodPatch, "/api/pages/bulk-reorder", gin.H{
		"website_id": website.ID.String(),
		"pages": []gin.H{
			{"id": foreignPage.ID.String(), "order": 2},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var reloaded models.Webpage
	require.NoError(t, db.First(&reloaded, "id = ?", foreignPage.ID).Error)
	assert.Equal(t, 1, reloaded.Order, "foreign page must stay untouched")
}

func TestDeletePageCompactsOrder(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)
	pages := seedOrderedPages(t, db, website.ID, "a", "b", "c", "d")

	w := doJSON(t, router, http.MethodDelete, "/api/pages/"+pages[1].ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var deleted models.Webpage
	require.NoError(t, db.First(&deleted, "id = ?", pages[1].ID).Error)
	assert.True(t, deleted.IsDeleted)

	orders := map[string]int{}
	var live []models.Webpage
	require.NoError(t, db.Where("website_id = ? AND is_deleted = ?", website.ID, false).Find(&live).Error)
	for _, p := range live {
		orders[p.Name] = p.Order
	}
	assert.Equal(t, 1, orders["a"])
	assert.Equal(t, 2, orders["c"])
	assert.Equal(t, 3, orders["d"])
}

func TestDeleteDefaultPageRefused(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)

	page := models.Webpage{
		ID:        uuid.New(),
		WebsiteID: website.ID,
		Name:      "Home",
		Slug:      "home",
		Status:    models.StatusActive,
		Order:     1,
		IsDefault: true,
	}
	require.NoError(t, db.Create(&page).Error)

	w := doJSON(t, router, http.MethodDelete, "/api/pages/"+page.ID.String(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reloaded models.Webpage
	require.NoError(t, db.First(&reloaded, "id = ?", page.ID).Error)
	assert.False(t, reloaded.IsDeleted)
}

func TestUpdatePageNameRegeneratesSlug(t *testing.T) {
	router, db, website := newWebpageTestRouter(t)
	page := createPage(t, router, website.ID, "Pricing")

	w := doJSON(t, router, http.MethodPut, "/api/pages/"+page.ID.String(), gin.H{
		"name": "Plans",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Webpage
	require.NoError(t, db.First(&reloaded, "id = ?", page.ID).Error)
	assert.Equal(t, "Plans", reloaded.Name)
	assert.Equal(t, "plans", reloaded.Slug)
}
