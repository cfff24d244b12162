package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"faithstories/models"

	"github.com/stretchr/testify/require"
)

func TestCreatePostValidation(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"short title", map[string]interface{}{"title": "ab", "slug": "ok-slug"}},
		{"uppercase slug", map[string]interface{}{"title": "Valid Title", "slug": "Not-Valid"}},
		{"slug with spaces", map[string]interface{}{"title": "Valid Title", "slug": "not valid"}},
		{"bad status", map[string]interface{}{"title": "Valid Title", "slug": "ok-slug", "status": "bogus"}},
		{"missing slug", map[string]interface{}{"title": "Valid Title"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/admin/posts", token, tc.payload)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	createPost(t, router, token, models.CreatePostRequest{Title: "Original", Slug: "taken"})

	w := doJSON(router, http.MethodPost, "/api/v1/admin/posts", token,
		models.CreatePostRequest{Title: "Copycat", Slug: "taken"})
	require.Equal(t, http.StatusConflict, w.Code)

	// First post is untouched.
	w = doJSON(router, http.MethodGet, "/api/v1/admin/posts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list postListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	require.Equal(t, "Original", list.Data[0].Title)
}

func TestPublishAndUnpublishEndpoints(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	post := createPost(t, router, token, models.CreatePostRequest{Title: "Lifecycle", Slug: "lifecycle"})

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/admin/posts/%d/publish", post.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	published := decodePost(t, w)
	require.Equal(t, models.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	w = doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/admin/posts/%d/unpublish", post.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	unpublished := decodePost(t, w)
	require.Equal(t, models.StatusDraft, unpublished.Status)
	require.Nil(t, unpublished.PublishedAt)

	w = doJSON(router, http.MethodPost, "/api/v1/admin/posts/99999/publish", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePostRequiresFields(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	post := createPost(t, router, token, models.CreatePostRequest{Title: "Static", Slug: "static"})

	w := doJSON(router, http.MethodPut, fmt.Sprintf("/api/v1/admin/posts/%d", post.ID), token,
		map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePostEndpoint(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	post := createPost(t, router, token, models.CreatePostRequest{Title: "Disposable", Slug: "disposable"})

	w := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetCategoriesEndpointReplaces(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	post := createPost(t, router, token, models.CreatePostRequest{Title: "Sorted", Slug: "sorted"})

	var created []uint
	for _, name := range []string{"alpha", "beta"} {
		w := doJSON(router, http.MethodPost, "/api/v1/admin/categories", token,
			models.CreateTaxonomyRequest{Name: name, Slug: name})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var env struct {
			Data models.Category `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		created = append(created, env.Data.ID)
	}

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/admin/posts/%d/categories", post.ID), token,
		models.SetCategoriesRequest{Categories: created})
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []models.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 2)

	// Empty list empties the set.
	w = doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/admin/posts/%d/categories", post.ID), token,
		models.SetCategoriesRequest{Categories: []uint{}})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Empty(t, env.Data)
}

func TestSetCategoriesMissingPostEndpoint(t *testing.T) {
	router, _ := setupTestApp(t)
	token := registerUser(t, router, models.RoleAdmin)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/posts/999/categories", token,
		models.SetCategoriesRequest{Categories: []uint{1}})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _ := setupTestApp(t)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/posts", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/admin/posts", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router, _ := setupTestApp(t)
	authorToken := registerUser(t, router, models.RoleAuthor)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/posts", authorToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}
