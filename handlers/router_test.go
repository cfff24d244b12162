package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"faithstories/config"
	"faithstories/helper"
	"faithstories/middleware"
	"faithstories/models"
	"faithstories/repositories"
	"faithstories/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	helper.RegisterCustomValidators()
}

// setupTestApp wires the full route table against an in-memory database,
// mirroring main.
func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	taxonomyService := services.NewTaxonomyService(categoryRepo, tagRepo)

	authHandler := NewAuthHandler(authService)
	postHandler := NewPostHandler(postService)
	adminPostHandler := NewAdminPostHandler(postService)
	taxonomyHandler := NewTaxonomyHandler(taxonomyService)

	router := gin.New()

	router.GET("/sitemap.xml", postHandler.Sitemap)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/posts", postHandler.ListPosts)
		v1.GET("/posts/:slug", postHandler.GetPostBySlug)
		v1.GET("/featured", postHandler.ListFeatured)
		v1.GET("/categories", taxonomyHandler.ListCategories)
		v1.GET("/tags", taxonomyHandler.ListTags)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(string(models.RoleAdmin)))
		{
			posts := admin.Group("/posts")
			{
				posts.POST("", adminPostHandler.CreatePost)
				posts.GET("", adminPostHandler.ListPosts)
				posts.GET("/:id", adminPostHandler.GetPost)
				posts.PUT("/:id", adminPostHandler.UpdatePost)
				posts.DELETE("/:id", adminPostHandler.DeletePost)
				posts.POST("/:id/publish", adminPostHandler.PublishPost)
				posts.POST("/:id/unpublish", adminPostHandler.UnpublishPost)
				posts.POST("/:id/categories", adminPostHandler.SetCategories)
				posts.POST("/:id/tags", adminPostHandler.SetTags)
			}

			categories := admin.Group("/categories")
			{
				categories.POST("", taxonomyHandler.CreateCategory)
				categories.PUT("/:id", taxonomyHandler.UpdateCategory)
				categories.DELETE("/:id", taxonomyHandler.DeleteCategory)
			}

			tags := admin.Group("/tags")
			{
				tags.POST("", taxonomyHandler.CreateTag)
				tags.PUT("/:id", taxonomyHandler.UpdateTag)
				tags.DELETE("/:id", taxonomyHandler.DeleteTag)
			}
		}
	}

	return router, db
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, router *gin.Engine, role models.UserRole) string {
	t.Helper()

	payload := models.RegisterRequest{
		Name:     "Test " + string(role),
		Email:    string(role) + "@example.com",
		Password: "password123",
		Role:     role,
	}

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type postEnvelope struct {
	Data models.Post `json:"data"`
}

type postListEnvelope struct {
	Data []models.Post `json:"data"`
	Meta struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
	} `json:"meta"`
}

func decodePost(t *testing.T, w *httptest.ResponseRecorder) models.Post {
	t.Helper()
	var env postEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func createPost(t *testing.T, router *gin.Engine, token string, req models.CreatePostRequest) models.Post {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/admin/posts", token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodePost(t, w)
}
