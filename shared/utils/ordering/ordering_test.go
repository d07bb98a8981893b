package ordering_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/database/testutil"
	"sitebuilder-backend/shared/utils/ordering"
)

func TestShiftDelta(t *testing.T) {
	tests := []struct {
		name     string
		order    int
		oldOrder int
		newOrder int
		want     int
	}{
		{"moving down shifts window up", 3, 2, 4, -1},
		{"moving down includes target", 4, 2, 4, -1},
		{"moving down excludes old position", 2, 2, 4, 0},
		{"moving down ignores rows above", 1, 2, 4, 0},
		{"moving down ignores rows below", 5, 2, 4, 0},
		{"moving up shifts window down", 3, 4, 2, 1},
		{"moving up includes target", 2, 4, 2, 1},
		{"moving up excludes old position", 4, 4, 2, 0},
		{"moving up ignores rows above", 1, 4, 2, 0},
		{"no move", 3, 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ordering.ShiftDelta(tt.order, tt.oldOrder, tt.newOrder))
		})
	}
}

func seedPages(t *testing.T, db *gorm.DB, websiteID uuid.UUID, orders ...int) []models.Webpage {
	t.Helper()

	pages := make([]models.Webpage, len(orders))
	for i, order := range orders {
		pages[i] = models.Webpage{
			ID:        uuid.New(),
			WebsiteID: websiteID,
			Name:      "Page",
			Slug:      uuid.NewString(),
			Status:    models.StatusActive,
			Order:     order,
		}
		require.NoError(t, db.Create(&pages[i]).Error)
	}
	return pages
}

func pageOrders(t *testing.T, db *gorm.DB, websiteID uuid.UUID) map[uuid.UUID]int {
	t.Helper()

	var pages []models.Webpage
	require.NoError(t, db.Where("website_id = ?", websiteID).Find(&pages).Error)

	orders := make(map[uuid.UUID]int, len(pages))
	for _, p := range pages {
		orders[p.ID] = p.Order
	}
	return orders
}

func TestNextOrderEmptyScope(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()

	order, err := ordering.NextOrder(db, ordering.PageScope(&models.Webpage{}, websiteID))
	require.NoError(t, err)
	assert.Equal(t, 10, order)
}

func TestNextOrderAppendsWithGap(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()
	seedPages(t, db, websiteID, 10, 20)

	order, err := ordering.NextOrder(db, ordering.PageScope(&models.Webpage{}, websiteID))
	require.NoError(t, err)
	assert.Equal(t, 30, order)
}

func TestNextOrderIgnoresDeletedAndForeignSiblings(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()
	pages := seedPages(t, db, websiteID, 10, 20)

	// Soft-delete the highest sibling
	require.NoError(t, db.Model(&pages[1]).Update("is_deleted", true).Error)

	// Another website's pages must not leak into the scope
	seedPages(t, db, uuid.New(), 10, 20, 30)

	order, err := ordering.NextOrder(db, ordering.PageScope(&models.Webpage{}, websiteID))
	require.NoError(t, err)
	assert.Equal(t, 20, order)
}

func TestShiftWindowMovingDown(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()
	pages := seedPages(t, db, websiteID, 1, 2, 3, 4, 5)

	scope := ordering.PageScope(&models.Webpage{}, websiteID)
	require.NoError(t, ordering.ShiftWindow(db, scope, pages[1].ID, 2, 4))

	orders := pageOrders(t, db, websiteID)
	assert.Equal(t, 1, orders[pages[0].ID])
	assert.Equal(t, 4, orders[pages[1].ID])
	assert.Equal(t, 2, orders[pages[2].ID])
	assert.Equal(t, 3, orders[pages[3].ID])
	assert.Equal(t, 5, orders[pages[4].ID])
}

func TestShiftWindowMovingUp(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()
	pages := seedPages(t, db, websiteID, 1, 2, 3, 4, 5)

	scope := ordering.PageScope(&models.Webpage{}, websiteID)
	require.NoError(t, ordering.ShiftWindow(db, scope, pages[3].ID, 4, 2))

	orders := pageOrders(t, db, websiteID)
	assert.Equal(t, 1, orders[pages[0].ID])
	assert.Equal(t, 3, orders[pages[1].ID])
	assert.Equal(t, 4, orders[pages[2].ID])
	assert.Equal(t, 2, orders[pages[3].ID])
	assert.Equal(t, 5, orders[pages[4].ID])
}

func TestShiftWindowSamePositionIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()
	pages := seedPages(t, db, websiteID, 1, 2, 3)

	scope := ordering.PageScope(&models.Webpage{}, websiteID)
	require.NoError(t, ordering.ShiftWindow(db, scope, pages[1].ID, 2, 2))

	orders := pageOrders(t, db, websiteID)
	assert.Equal(t, 1, orders[pages[0].ID])
	assert.Equal(t, 2, orders[pages[1].ID])
	assert.Equal(t, 3, orders[pages[2].ID])
}

func TestCompactAfterClosesGap(t *testing.T) {
	db := testutil.NewTestDB(t)
	websiteID := uuid.New()
	pages := seedPages(t, db, websiteID, 1, 2, 3, 4, 5)

	require.NoError(t, db.Model(&pages[1]).Update("is_deleted", true).Error)

	scope := ordering.PageScope(&models.Webpage{}, websiteID)
	require.NoError(t, ordering.CompactAfter(db, scope, pages[1].Order))

	orders := pageOrders(t, db, websiteID)
	assert.Equal(t, 1, orders[pages[0].ID])
	assert.Equal(t, 2, orders[pages[2].ID])
	assert.Equal(t, 3, orders[pages[3].ID])
	assert.Equal(t, 4, orders[pages[4].ID])
}

func TestSectionScopeUsesSectionColumns(t *testing.T) {
	db := testutil.NewTestDB(t)
	webpageID := uuid.New()

	for _, order := range []int{10, 20} {
		section := models.WebpageSection{
			ID:          uuid.New(),
			WebpageID:   webpageID,
			Name:        "Section",
			SectionType: "hero",
			Status:      models.StatusActive,
			Order:       order,
		}
		require.NoError(t, db.Create(&section).Error)
	}

	order, err := ordering.NextOrder(db, ordering.SectionScope(&models.WebpageSection{}, webpageID))
	require.NoError(t, err)
	assert.Equal(t, 30, order)
}
