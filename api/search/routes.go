package search

import (
	"github.com/gin-gonic/gin"

	"github.com/kcvvelewijt/clubsite-api/api/types"
)

// RegisterRoutes registers search routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /search (router already includes the /search prefix)
	router.GET("", Get(deps))
}
