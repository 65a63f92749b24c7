package routes

import (
	"errors"
	"net/http"

	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetArticleHandler returns one article with its content and summary.
func GetArticleHandler(c echo.Context) error {
	type getArticleResponse struct {
		Message string           `json:"message,omitempty"`
		Article *articleResponse `json:"article,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getArticleResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	article, err := app.Store.GetArticle(ctx, user.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getArticleResponse{
				Message: "Article not found",
			})
		}
		logger.Error("Failed to get article", "err", err)
		return c.JSON(http.StatusInternalServerError, getArticleResponse{
			Message: "Internal server error",
		})
	}

	resp := toArticleResponse(article, true)
	return c.JSON(http.StatusOK, getArticleResponse{Article: &resp})
}
