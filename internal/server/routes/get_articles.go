package routes

import (
	"net/http"
	"strconv"

	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetArticlesHandler lists the caller's articles, newest first.
func GetArticlesHandler(c echo.Context) error {
	type getArticlesResponse struct {
		Message  string            `json:"message,omitempty"`
		Articles []articleResponse `json:"articles"`
		Total    int               `json:"total"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getArticlesResponse{
			Message: "Unauthorized",
		})
	}

	filter := store.ListFilter{}
	if status := c.QueryParam("status"); status != "" {
		if !store.ValidStatus(store.ArticleStatus(status)) {
			return c.JSON(http.StatusBadRequest, getArticlesResponse{
				Message: "Invalid status filter",
			})
		}
		filter.Status = store.ArticleStatus(status)
	}
	filter.Search = c.QueryParam("search")
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		filter.Offset = offset
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	articles, total, err := app.Store.ListArticles(ctx, user.UserID, filter)
	if err != nil {
		logger.Error("Failed to list articles", "err", err)
		return c.JSON(http.StatusInternalServerError, getArticlesResponse{
			Message: "Internal server error",
		})
	}

	resp := getArticlesResponse{
		Articles: make([]articleResponse, 0, len(articles)),
		Total:    total,
	}
	for _, a := range articles {
		resp.Articles = append(resp.Articles, toArticleResponse(a, false))
	}

	return c.JSON(http.StatusOK, resp)
}
