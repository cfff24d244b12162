package main

import (
	"log"
	"net/http"
	"os"

	"faithstories/config"
	"faithstories/handlers"
	"faithstories/helper"
	"faithstories/middleware"
	"faithstories/models"
	"faithstories/repositories"
	"faithstories/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	taxonomyService := services.NewTaxonomyService(categoryRepo, tagRepo)
	mediaService := services.NewMediaService(mediaRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	adminPostHandler := handlers.NewAdminPostHandler(postService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	// Setup router
	helper.RegisterCustomValidators()
	router := gin.Default()
	router.Use(cors.Default())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Sitemap and media files sit outside the API prefix
	router.GET("/sitemap.xml", postHandler.Sitemap)
	router.Static("/uploads", config.UploadDir)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Public read surface
		v1.GET("/posts", postHandler.ListPosts)
		v1.GET("/posts/:slug", postHandler.GetPostBySlug)
		v1.GET("/featured", postHandler.ListFeatured)
		v1.GET("/categories", taxonomyHandler.ListCategories)
		v1.GET("/tags", taxonomyHandler.ListTags)

		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
		}

		// Admin routes
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
				categories.GET("", taxonomyHandler.ListCategories)
				categories.POST("", taxonomyHandler.CreateCategory)
				categories.PUT("/:id", taxonomyHandler.UpdateCategory)
				categories.DELETE("/:id", taxonomyHandler.DeleteCategory)
			}

			tags := admin.Group("/tags")
			{
				tags.GET("", taxonomyHandler.ListTags)
				tags.POST("", taxonomyHandler.CreateTag)
				tags.PUT("/:id", taxonomyHandler.UpdateTag)
				tags.DELETE("/:id", taxonomyHandler.DeleteTag)
			}

			media := admin.Group("/media")
			{
				media.POST("", mediaHandler.Upload)
				media.GET("", mediaHandler.ListMedia)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
