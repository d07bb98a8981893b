package ownership_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/database/testutil"
	"sitebuilder-backend/shared/utils/ownership"
)

type tree struct {
	userID  uuid.UUID
	website models.Website
	page    models.Webpage
	section models.WebpageSection
	content models.SectionContent
	theme   models.WebsiteTheme
}

func seedTree(t *testing.T, db *gorm.DB) tree {
	t.Helper()

	tr := tree{userID: uuid.New()}

	tr.website = models.Website{
		ID:          uuid.New(),
		UserID:      tr.userID,
		Name:        "My Site",
		Brand:       "Acme",
		WebsiteType: models.WebsiteTypeOthers,
		Description: "test site",
		Slug:        "my-site",
		Status:      models.StatusActive,
	}
	require.NoError(t, db.Create(&tr.website).Error)

	tr.page = models.Webpage{
		ID:        uuid.New(),
		WebsiteID: tr.website.ID,
		Name:      "Home",
		Slug:      "home",
		Status:    models.StatusActive,
		Order:     10,
	}
	require.NoError(t, db.Create(&tr.page).Error)

	tr.section = models.WebpageSection{
		ID:          uuid.New(),
		WebpageID:   tr.page.ID,
		Name:        "Hero",
		SectionType: "hero",
		Status:      models.StatusActive,
		Order:       10,
	}
	require.NoError(t, db.Create(&tr.section).Error)

	tr.content = models.SectionContent{
		ID:        uuid.New(),
		SectionID: tr.section.ID,
		Title:     "Welcome",
		Status:    models.StatusActive,
	}
	require.NoError(t, db.Create(&tr.content).Error)

	tr.theme = models.WebsiteTheme{
		ID:         uuid.New(),
		WebsiteID:  tr.website.ID,
		ThemeMode:  models.ThemeModeLight,
		Typography: models.TypographySansSerif,
	}
	require.NoError(t, db.Create(&tr.theme).Error)

	return tr
}

func TestResolveOwnChain(t *testing.T) {
	db := testutil.NewTestDB(t)
	tr := seedTree(t, db)
	r := ownership.NewResolver(db)

	website, err := r.Website(tr.website.ID, tr.userID)
	require.NoError(t, err)
	assert.Equal(t, tr.website.ID, website.ID)

	page, pageWebsite, err := r.Page(tr.page.ID, tr.userID)
	require.NoError(t, err)
	assert.Equal(t, tr.page.ID, page.ID)
	assert.Equal(t, tr.website.ID, pageWebsite.ID)

	section, sectionPage, _, err := r.Section(tr.section.ID, tr.userID)
	require.NoError(t, err)
	assert.Equal(t, tr.section.ID, section.ID)
	assert.Equal(t, tr.page.ID, sectionPage.ID)

	content, contentSection, err := r.Content(tr.content.ID, tr.userID)
	require.NoError(t, err)
	assert.Equal(t, tr.content.ID, content.ID)
	assert.Equal(t, tr.section.ID, contentSection.ID)

	theme, themeWebsite, err := r.Theme(tr.theme.ID, tr.userID)
	require.NoError(t, err)
	assert.Equal(t, tr.theme.ID, theme.ID)
	assert.Equal(t, tr.website.ID, themeWebsite.ID)
}

func TestForeignUserGetsSameErrorAsMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	tr := seedTree(t, db)
	r := ownership.NewResolver(db)

	stranger := uuid.New()

	_, err := r.Website(tr.website.ID, stranger)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, _, err = r.Page(tr.page.ID, stranger)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, _, _, err = r.Section(tr.section.ID, stranger)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, _, err = r.Content(tr.content.ID, stranger)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, _, err = r.Theme(tr.theme.ID, stranger)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, err = r.Website(uuid.New(), tr.userID)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, _, err = r.Page(uuid.New(), tr.userID)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)
}

func TestDeletedAncestorBreaksChain(t *testing.T) {
	db := testutil.NewTestDB(t)
	tr := seedTree(t, db)
	r := ownership.NewResolver(db)

	require.NoError(t, db.Model(&tr.website).Update("is_deleted", true).Error)

	_, _, err := r.Page(tr.page.ID, tr.userID)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	_, _, _, err = r.Section(tr.section.ID, tr.userID)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)
}

func TestDeletedLeafIsNotResolvable(t *testing.T) {
	db := testutil.NewTestDB(t)
	tr := seedTree(t, db)
	r := ownership.NewResolver(db)

	require.NoError(t, db.Model(&tr.section).Update("is_deleted", true).Error)

	_, _, _, err := r.Section(tr.section.ID, tr.userID)
	assert.ErrorIs(t, err, ownership.ErrNotFoundOrForbidden)

	// The parent page is still reachable
	_, _, err = r.Page(tr.page.ID, tr.userID)
	assert.NoError(t, err)
}
