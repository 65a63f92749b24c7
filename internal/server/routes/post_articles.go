package routes

import (
	"net/http"

	"github.com/nodhq/nod/backend/internal/queue"
	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/internal/util"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// CreateArticleHandler saves a new article and queues it for analysis.
// The extension sends page content along; when it is absent the worker
// fetches the URL itself.
func CreateArticleHandler(c echo.Context) error {
	type createArticleBody struct {
		URL      string `json:"url" validate:"required,url"`
		Title    string `json:"title"`
		Content  string `json:"content"`
		Language string `json:"language"`
	}

	type createArticleResponse struct {
		Message string `json:"message"`
		ID      string `json:"id,omitempty"`
		Status  string `json:"status,omitempty"`
	}

	data := new(createArticleBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createArticleResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createArticleResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createArticleResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	id, err := app.Store.CreateArticle(ctx, &store.Article{
		UserID:            user.UserID,
		URL:               data.URL,
		Title:             data.Title,
		Content:           util.SanitizePostgresText(data.Content),
		RequestedLanguage: data.Language,
		Source:            store.SourceWeb,
		Status:            store.StatusPending,
	})
	if err != nil {
		logger.Error("Failed to create article", "err", err)
		return c.JSON(http.StatusInternalServerError, createArticleResponse{
			Message: "Internal server error",
		})
	}

	if err := queue.PublishArticleJob(app.Queue, queue.AnalyzeQueue, id); err != nil {
		logger.Error("Failed to queue article analysis", "article_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, createArticleResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, createArticleResponse{
		Message: "Article queued for analysis",
		ID:      id,
		Status:  string(store.StatusPending),
	})
}
