package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/inkpress/blog-api/docs" // registers the swagger document
	"github.com/inkpress/blog-api/internal/api/handler"
	"github.com/inkpress/blog-api/internal/api/middleware"
	"github.com/inkpress/blog-api/internal/core/ports"
	infrahttp "github.com/inkpress/blog-api/internal/infrastructure/http"
	"github.com/inkpress/blog-api/internal/infrastructure/http/handlers"
)

const metricsNamespace = "blog"

// Services are the use cases exposed over HTTP.
type Services struct {
	Sessions ports.SessionService
	Posts    ports.PostService
	Comments ports.CommentService
	Users    ports.UserService
}

// Options tune the router. Zero values select the process-wide defaults.
// Checks are served under /health/ready, keyed by dependency name.
type Options struct {
	Logger     zerolog.Logger
	Checks     map[string]handlers.Check
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Registerer: opts.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Sessions)
	postHandler := handler.NewPostHandler(svc.Posts)
	commentHandler := handler.NewCommentHandler(svc.Comments)
	userHandler := handler.NewUserHandler(svc.Users)

	// --- v1 routes; the session header is optional everywhere ---
	v1 := e.Group("/v1", middleware.Session())

	v1.POST("/auth/login", authHandler.Login)

	v1.GET("/posts", postHandler.List)
	v1.POST("/posts", postHandler.Create)
	v1.GET("/posts/:id", postHandler.Get)
	v1.DELETE("/posts/:id", postHandler.Delete)
	v1.GET("/posts/:id/comments", commentHandler.ListByPost)
	v1.POST("/posts/:id/comments", commentHandler.Create)

	v1.GET("/users/:id", userHandler.Get)
	v1.GET("/users/:id/posts", postHandler.ListByUser)
	v1.GET("/users/:id/comments", commentHandler.ListByUser)

	// --- Operational routes ---
	infrahttp.RegisterHealth(e, opts.Checks)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: opts.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
