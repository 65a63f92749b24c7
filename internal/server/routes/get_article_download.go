package routes

import (
	"errors"
	"net/http"

	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/internal/storage"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetArticleDownloadHandler returns a presigned download link for the
// uploaded source file of a PDF article.
func GetArticleDownloadHandler(c echo.Context) error {
	type downloadResponse struct {
		Message string `json:"message,omitempty"`
		URL     string `json:"url,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, downloadResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	id := c.Param("id")

	article, err := app.Store.GetArticle(ctx, user.UserID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, downloadResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to load article", "err", err)
		return c.JSON(http.StatusInternalServerError, downloadResponse{
			Message: "Internal server error",
		})
	}
	if article.Source != store.SourcePDF {
		return c.JSON(http.StatusNotFound, downloadResponse{
			Message: "Article has no uploaded source file",
		})
	}

	link, err := storage.GenerateDownloadLink(ctx, app.S3, storage.SourceKey(article.ID))
	if err != nil {
		logger.Error("Failed to generate download link", "article_id", article.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, downloadResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, downloadResponse{URL: link})
}
