package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/nodhq/nod/backend/internal/queue"
	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/internal/storage"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// UploadArticleHandler accepts a PDF upload, stores it in object storage
// and queues the article for analysis.
func UploadArticleHandler(c echo.Context) error {
	type uploadArticleResponse struct {
		Message string `json:"message"`
		ID      string `json:"id,omitempty"`
		Status  string `json:"status,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, uploadArticleResponse{
			Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadArticleResponse{
			Message: "Missing file",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return c.JSON(http.StatusBadRequest, uploadArticleResponse{
			Message: "Only PDF uploads are supported",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		title = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadArticleResponse{
			Message: "Invalid request body",
		})
	}
	defer src.Close()

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	id, err := app.Store.CreateArticle(ctx, &store.Article{
		UserID:            user.UserID,
		Title:             title,
		RequestedLanguage: c.FormValue("language"),
		Source:            store.SourcePDF,
		Status:            store.StatusPending,
	})
	if err != nil {
		logger.Error("Failed to create article", "err", err)
		return c.JSON(http.StatusInternalServerError, uploadArticleResponse{
			Message: "Internal server error",
		})
	}

	if _, err := storage.PutSource(ctx, app.S3, id, "application/pdf", src); err != nil {
		logger.Error("Failed to upload article source", "article_id", id, "err", err)
		if statusErr := app.Store.SetArticleStatus(ctx, id, store.StatusFailed); statusErr != nil {
			logger.Warn("Failed to mark article as failed", "article_id", id, "err", statusErr)
		}
		return c.JSON(http.StatusInternalServerError, uploadArticleResponse{
			Message: "Internal server error",
		})
	}

	if err := queue.PublishArticleJob(app.Queue, queue.AnalyzeQueue, id); err != nil {
		logger.Error("Failed to queue article analysis", "article_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadArticleResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, uploadArticleResponse{
		Message: "Article queued for analysis",
		ID:      id,
		Status:  string(store.StatusPending),
	})
}
