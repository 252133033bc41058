package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kcvvelewijt/clubsite-api/api/health"
	"github.com/kcvvelewijt/clubsite-api/api/search"
	"github.com/kcvvelewijt/clubsite-api/api/types"
	"github.com/kcvvelewijt/clubsite-api/api/version"
	_ "github.com/kcvvelewijt/clubsite-api/docs/swagger"
	"github.com/kcvvelewijt/clubsite-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// Search gets its own per-client rate limit budget
	rps := config.GetInt("rate_limiting.search_rps")
	if rps <= 0 {
		rps = 5
	}
	burst := config.GetInt("rate_limiting.search_burst")
	if burst <= 0 {
		burst = 10
	}

	searchGroup := engine.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	search.RegisterRoutes(searchGroup, deps)

	return nil
}
