package search

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kcvvelewijt/clubsite-api/api/types"
	searchsvc "github.com/kcvvelewijt/clubsite-api/internal/services/search"
)

// Get handles search requests
// @Summary      Search site content
// @Description  Case-insensitive substring search across articles, people and teams, ranked by relevance
// @Tags         search
// @Produce      json
// @Param        q    query string true  "Search query (min 2 characters)"
// @Param        type query string false "Restrict results to one content type" Enums(article, person, team)
// @Success      200 {object} searchsvc.Response "Ranked search results"
// @Failure      400 {object} types.ErrorResponse "Invalid query or type"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Query validation always precedes type validation, so a request
		// with both problems reports the query error.
		query, err := searchsvc.NormalizeQuery(c.Query("q"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: validationMessage(err)})
			return
		}

		filter, err := searchsvc.ParseTypeFilter(c.Query("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: types.MsgInvalidType})
			return
		}

		if deps.SearchService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.MsgInternalError})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		resp, err := deps.SearchService.Search(ctx, query, filter)
		if err != nil {
			// Upstream detail stays in the logs, the client gets an opaque error
			log.Error().Err(err).Str("query", query).Msg("search failed")
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.MsgInternalError})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, searchsvc.ErrQueryRequired):
		return types.MsgQueryRequired
	case errors.Is(err, searchsvc.ErrQueryTooShort):
		return types.MsgQueryTooShort
	default:
		return err.Error()
	}
}
