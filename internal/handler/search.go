package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rushhirosan/soccer-practice-search/internal/middleware"
	"github.com/rushhirosan/soccer-practice-search/internal/search"
)

type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// Search handles GET /search?q=&type=&players=&level=&channel=&sort=&limit=&offset=
func (h *SearchHandler) Search(c fiber.Ctx) error {
	params := search.Params{
		Query:    middleware.TruncateQuery(fiber.Query[string](c, "q")),
		Category: fiber.Query[string](c, "type"),
		Players:  fiber.Query[string](c, "players"),
		Level:    fiber.Query[string](c, "level"),
		Channel:  fiber.Query[string](c, "channel"),
		Sort:     fiber.Query[string](c, "sort", search.DefaultSort),
		Limit:    middleware.ParseCount(fiber.Query[string](c, "limit"), search.DefaultLimit),
		Offset:   middleware.ParseCount(fiber.Query[string](c, "offset"), search.DefaultOffset),
	}

	mode := "two_phase"
	if params.SinglePhase() {
		mode = "single_phase"
	}

	resp, err := h.engine.Search(c.Context(), params)
	if err != nil {
		Metrics.SearchErrors.Inc()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
	}

	Metrics.SearchesTotal.WithLabelValues(mode).Inc()
	return c.JSON(resp)
}
