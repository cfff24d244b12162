package services

import (
	"testing"

	"faithstories/models"
	"faithstories/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestTaxonomyService(t *testing.T) (TaxonomyService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewTaxonomyService(
		repositories.NewCategoryRepository(db),
		repositories.NewTagRepository(db),
	)
	return svc, db
}

func TestCategoryCRUD(t *testing.T) {
	svc, _ := newTestTaxonomyService(t)

	created, err := svc.CreateCategory(models.CreateTaxonomyRequest{Name: "Faith", Slug: "faith"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = svc.CreateCategory(models.CreateTaxonomyRequest{Name: "Faith Again", Slug: "faith"})
	require.ErrorIs(t, err, ErrConflict)

	updated, err := svc.UpdateCategory(created.ID, models.UpdateTaxonomyRequest{Name: ptrString("Faith & Hope")})
	require.NoError(t, err)
	require.Equal(t, "Faith & Hope", updated.Name)
	require.Equal(t, "faith", updated.Slug)

	_, err = svc.UpdateCategory(created.ID, models.UpdateTaxonomyRequest{})
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.DeleteCategory(created.ID))
	require.ErrorIs(t, svc.DeleteCategory(created.ID), ErrNotFound)
}

func TestListCategoriesOrderedByName(t *testing.T) {
	svc, _ := newTestTaxonomyService(t)

	for _, c := range []models.CreateTaxonomyRequest{
		{Name: "Zeal", Slug: "zeal"},
		{Name: "Advent", Slug: "advent"},
		{Name: "Mercy", Slug: "mercy"},
	} {
		_, err := svc.CreateCategory(c)
		require.NoError(t, err)
	}

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "Advent", categories[0].Name)
	require.Equal(t, "Zeal", categories[2].Name)
}

func TestDeleteCategoryRemovesAssociations(t *testing.T) {
	svc, db := newTestTaxonomyService(t)
	postSvc := NewPostService(repositories.NewPostRepository(db))

	category, err := svc.CreateCategory(models.CreateTaxonomyRequest{Name: "Gone", Slug: "gone"})
	require.NoError(t, err)

	post, err := postSvc.CreatePost(models.CreatePostRequest{Title: "Holder", Slug: "holder"}, 1)
	require.NoError(t, err)

	_, err = postSvc.SetCategories(post.ID, []uint{category.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(category.ID))

	remaining, err := postSvc.SetCategories(post.ID, []uint{})
	require.NoError(t, err)
	require.Empty(t, remaining)

	var joinCount int64
	db.Model(&models.PostCategory{}).Where("category_id = ?", category.ID).Count(&joinCount)
	require.Zero(t, joinCount)
}

func TestTagCRUD(t *testing.T) {
	svc, _ := newTestTaxonomyService(t)

	created, err := svc.CreateTag(models.CreateTaxonomyRequest{Name: "Hope", Slug: "hope"})
	require.NoError(t, err)

	_, err = svc.CreateTag(models.CreateTaxonomyRequest{Name: "Hope 2", Slug: "hope"})
	require.ErrorIs(t, err, ErrConflict)

	updated, err := svc.UpdateTag(created.ID, models.UpdateTaxonomyRequest{Slug: ptrString("hopeful")})
	require.NoError(t, err)
	require.Equal(t, "hopeful", updated.Slug)

	require.NoError(t, svc.DeleteTag(created.ID))
	require.ErrorIs(t, svc.DeleteTag(created.ID), ErrNotFound)
}
