package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"promptvault/cmd/api/handlers"
	"promptvault/cmd/api/middleware"
	"promptvault/cmd/api/services"
	"promptvault/cmd/api/uploader"
	"promptvault/config"
	"promptvault/db"
	_ "promptvault/docs"
	"promptvault/repositories"
)

func New() (*gin.Engine, error) {
	cfg := config.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	up, err := uploader.New(cfg.CloudinaryURL, cfg.Upload.StagingDir, cfg.Upload.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	promptRepo := repositories.NewPromptRepository(db.Database())
	blogRepo := repositories.NewBlogRepository(db.Database())
	collectionRepo := repositories.NewCollectionRepository(db.Database())

	promptSvc := services.NewPromptService(promptRepo)
	blogSvc := services.NewBlogService(blogRepo)
	collectionSvc := services.NewCollectionService(collectionRepo, promptRepo)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler())

		api.GET("/prompts", handlers.ListPromptsHandler(promptSvc))
		api.GET("/prompts/prompt-of-the-day", handlers.PromptOfTheDayHandler(promptSvc))
		api.GET("/prompts/:id", handlers.GetPromptHandler(promptSvc))
		api.POST("/prompts/:id/copy", handlers.IncrementCopyCountHandler(promptSvc))

		api.GET("/blogs", handlers.ListBlogsHandler(blogSvc))
		api.GET("/blogs/:slug", handlers.GetBlogHandler(blogSvc))

		api.GET("/collections", handlers.ListCollectionsHandler(collectionSvc))
		api.GET("/collections/:slug", handlers.GetCollectionHandler(collectionSvc))
		api.POST("/collections/:slug/download", handlers.IncrementDownloadsHandler(collectionSvc))

		// Mutations sit behind the admin gate; it runs before any
		// validation or upload work.
		admin := api.Group("", middleware.AdminAuth(cfg.AdminAPIKey))
		{
			admin.POST("/prompts", handlers.CreatePromptHandler(promptSvc, up))
			admin.DELETE("/prompts/:id", handlers.DeletePromptHandler(promptSvc))

			admin.POST("/blogs", handlers.CreateBlogHandler(blogSvc, up))
			admin.DELETE("/blogs/:slug", handlers.DeleteBlogHandler(blogSvc))

			admin.POST("/collections", handlers.CreateCollectionHandler(collectionSvc, up))
			admin.DELETE("/collections/:slug", handlers.DeleteCollectionHandler(collectionSvc))
		}
	}

	// Unmatched routes get the generic JSON not-found body.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r, nil
}
