package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

const defaultSimilarLimit = 5

// GetSimilarArticlesHandler returns the nearest analyzed articles by
// embedding similarity.
func GetSimilarArticlesHandler(c echo.Context) error {
	type similarArticle struct {
		Article        articleResponse `json:"article"`
		Similarity     float64         `json:"similarity"`
		SharedConcepts []string        `json:"shared_concepts"`
	}

	type getSimilarResponse struct {
		Message  string           `json:"message,omitempty"`
		Articles []similarArticle `json:"articles"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getSimilarResponse{
			Message: "Unauthorized",
		})
	}

	k := defaultSimilarLimit
	if parsed, err := strconv.Atoi(c.QueryParam("limit")); err == nil && parsed > 0 {
		k = parsed
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	target, err := app.Store.GetArticle(ctx, user.UserID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getSimilarResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to load article", "err", err)
		return c.JSON(http.StatusInternalServerError, getSimilarResponse{
			Message: "Internal server error",
		})
	}
	var targetConcepts []string
	if target.Summary != nil {
		targetConcepts = target.Summary.Concepts
	}

	neighbors, err := app.Store.SimilarArticles(ctx, user.UserID, id, k)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getSimilarResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to find similar articles", "err", err)
		return c.JSON(http.StatusInternalServerError, getSimilarResponse{
			Message: "Internal server error",
		})
	}

	resp := getSimilarResponse{Articles: make([]similarArticle, 0, len(neighbors))}
	for _, n := range neighbors {
		article, err := app.Store.GetArticle(ctx, user.UserID, n.NeighborID)
		if err != nil {
			continue
		}
		var neighborConcepts []string
		if article.Summary != nil {
			neighborConcepts = article.Summary.Concepts
		}
		resp.Articles = append(resp.Articles, similarArticle{
			Article:        toArticleResponse(article, false),
			Similarity:     n.Similarity,
			SharedConcepts: sharedConcepts(targetConcepts, neighborConcepts),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// sharedConcepts intersects two stored concept lists, keeping the target
// list's order so responses are stable.
func sharedConcepts(target, neighbor []string) []string {
	inNeighbor := make(map[string]struct{}, len(neighbor))
	for _, concept := range neighbor {
		inNeighbor[concept] = struct{}{}
	}
	shared := []string{}
	for _, concept := range target {
		if _, ok := inNeighbor[concept]; ok {
			shared = append(shared, concept)
		}
	}
	return shared
}
