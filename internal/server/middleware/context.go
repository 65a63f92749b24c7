package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/nodhq/nod/backend/pkg/ai"
	"github.com/nodhq/nod/backend/pkg/store"
)

// AppUser is the authenticated caller of a request.
type AppUser struct {
	UserID string
}

// App bundles the shared dependencies handlers reach through the
// request context.
type App struct {
	DBConn       *pgxpool.Pool
	Store        store.ArticleStorage
	Queue        *amqp091.Channel
	Key          *keyfunc.Keyfunc
	S3           *s3.Client
	AiClient     ai.ArticleAIClient
	MasterAPIKey string
	MasterUserID string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
