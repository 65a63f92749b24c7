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

// DeleteArticleHandler removes an article and queues cleanup of its
// uploaded source file.
func DeleteArticleHandler(c echo.Context) error {
	type deleteArticleResponse struct {
		Message string `json:"message"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, deleteArticleResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	article, err := app.Store.GetArticle(ctx, user.UserID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, deleteArticleResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to get article", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteArticleResponse{
			Message: "Internal server error",
		})
	}

	if err := app.Store.DeleteArticle(ctx, user.UserID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, deleteArticleResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to delete article", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteArticleResponse{
			Message: "Internal server error",
		})
	}

	if err := queue.PublishDeleteJob(app.Queue, id, article.Source); err != nil {
		logger.Error("Failed to queue article cleanup", "article_id", id, "err", err)
	}

	return c.JSON(http.StatusOK, deleteArticleResponse{
		Message: "Article deleted",
	})
}
