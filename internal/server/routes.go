package server

import (
	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Article routes
	apiRoutes.POST("/articles", routes.CreateArticleHandler)
	apiRoutes.POST("/articles/upload", routes.UploadArticleHandler)
	apiRoutes.GET("/articles", routes.GetArticlesHandler)
	apiRoutes.GET("/articles/:id", routes.GetArticleHandler)
	apiRoutes.GET("/articles/:id/download", routes.GetArticleDownloadHandler)
	apiRoutes.DELETE("/articles/:id", routes.DeleteArticleHandler)
	apiRoutes.POST("/articles/:id/retry", routes.RetryArticleHandler)
	apiRoutes.GET("/articles/:id/similar", routes.GetSimilarArticlesHandler)

	// Concept graph routes
	apiRoutes.GET("/graph/concepts", routes.GetGraphHandler)
}
