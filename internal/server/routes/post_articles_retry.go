package routes

import (
	"errors"
	"net/http"

	"github.com/nodhq/nod/backend/internal/queue"
	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// RetryArticleHandler re-queues a failed article for analysis.
func RetryArticleHandler(c echo.Context) error {
	type retryArticleResponse struct {
		Message string `json:"message"`
		Status  string `json:"status,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, retryArticleResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	article, err := app.Store.GetArticle(ctx, user.UserID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, retryArticleResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to get article", "err", err)
		return c.JSON(http.StatusInternalServerError, retryArticleResponse{
			Message: "Internal server error",
		})
	}

	if article.Status != store.StatusFailed {
		return c.JSON(http.StatusConflict, retryArticleResponse{
			Message: "Only failed articles can be retried",
			Status:  string(article.Status),
		})
	}

	if err := app.Store.SetArticleStatus(ctx, id, store.StatusPending); err != nil {
		logger.Error("Failed to reset article status", "article_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, retryArticleResponse{
			Message: "Internal server error",
		})
	}

	if err := queue.PublishArticleJob(app.Queue, queue.AnalyzeQueue, id); err != nil {
		logger.Error("Failed to queue article analysis", "article_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, retryArticleResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, retryArticleResponse{
		Message: "Article queued for analysis",
		Status:  string(store.StatusPending),
	})
}
