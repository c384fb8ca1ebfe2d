package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AniD-z/PersonalWeb/internal/config"
	"github.com/AniD-z/PersonalWeb/internal/service"
	"github.com/AniD-z/PersonalWeb/internal/transport/http/handlers"
)

type Router = *gin.Engine

func NewRouter(cfg *config.Config, svc *service.ContentService) Router {
	if mode := gin.Mode(); mode == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type"},
		MaxAge:       5 * time.Minute,
	}))

	// Bare 404s everywhere, so a gated admin path and an unknown path
	// give identical responses.
	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(404)
	})

	h := handlers.NewPostHandler(svc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/posts", h.ListPublished)
		api.GET("/posts/latest", h.Latest)
		api.GET("/posts/:slug", h.GetBySlug)
		api.GET("/slugs", h.ListSlugs)

		// The admin surface answers 404 on a bad key, indistinguishable
		// from an unknown route.
		admin := api.Group("/admin", AdminGate(cfg.AdminSecretKey))
		{
			admin.GET("/posts", h.ListAll)
			admin.POST("/posts/:slug/publish", h.Publish)
			admin.POST("/posts/:slug/unpublish", h.Unpublish)
			admin.GET("/cache/stats", h.CacheStats)
		}
	}

	return r
}
