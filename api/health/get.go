package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kcvvelewijt/clubsite-api/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps == nil || deps.SearchService == nil {
			response["search"] = gin.H{"status": "not configured"}
		} else {
			response["search"] = gin.H{"status": "healthy"}
		}

		c.JSON(http.StatusOK, response)
	}
}
