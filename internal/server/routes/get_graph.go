package routes

import (
	"net/http"
	"strconv"

	"github.com/nodhq/nod/backend/internal/server/middleware"
	"github.com/nodhq/nod/backend/pkg/graph"
	"github.com/nodhq/nod/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetGraphHandler assembles the caller's concept graph. Without
// parameters it returns the root concept overview; root=<concept>
// focuses on one concept and mode=global builds the full knowledge map.
func GetGraphHandler(c echo.Context) error {
	type getGraphResponse struct {
		Message string `json:"message"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getGraphResponse{
			Message: "Unauthorized",
		})
	}

	maxNodes := 0
	if parsed, err := strconv.Atoi(c.QueryParam("max_nodes")); err == nil {
		maxNodes = parsed
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	builder := graph.NewBuilder(app.Store)
	resp, err := builder.Build(
		ctx,
		user.UserID,
		c.QueryParam("root"),
		c.QueryParam("mode"),
		maxNodes,
	)
	if err != nil {
		logger.Error("Failed to build concept graph", "err", err)
		return c.JSON(http.StatusInternalServerError, getGraphResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, resp)
}
