package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"

	"github.com/rushhirosan/soccer-practice-search/internal/handler"
	"github.com/rushhirosan/soccer-practice-search/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Search   *handler.SearchHandler
	Meta     *handler.MetaHandler
	Feedback *handler.FeedbackHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins, staticDir string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and metrics (no rate limit)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Search API
	searchLimit := middleware.NewSearchRateLimiter()
	app.Get("/search", h.Search.Search, searchLimit.Handler())

	// Filter options for the search form
	app.Get("/get_unique_values/:column", h.Meta.UniqueValues)
	app.Get("/get_levels", h.Meta.Levels)
	app.Get("/get_channels", h.Meta.Channels)

	// Feedback form
	feedbackLimit := middleware.NewFeedbackRateLimiter()
	app.Post("/submit-feedback", h.Feedback.Submit, feedbackLimit.Handler())

	// Landing page and assets
	app.Get("/*", static.New(staticDir))
}
