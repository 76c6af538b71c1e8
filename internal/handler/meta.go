package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/rushhirosan/soccer-practice-search/internal/model"
	"github.com/rushhirosan/soccer-practice-search/internal/repository"
)

// MetaHandler serves the filter-option endpoints the search form populates
// itself from: distinct facet values, levels, and the channel registry.
type MetaHandler struct {
	facets   *repository.CategoryRepo
	channels *repository.ChannelRepo
}

func NewMetaHandler(facets *repository.CategoryRepo, channels *repository.ChannelRepo) *MetaHandler {
	return &MetaHandler{facets: facets, channels: channels}
}

// UniqueValues handles GET /get_unique_values/:column
func (h *MetaHandler) UniqueValues(c fiber.Ctx) error {
	column := c.Params("column")

	values, err := h.facets.UniqueValues(c.Context(), column)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidColumn) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid column"})
		}
		// Degrade to an empty list rather than surfacing storage errors.
		return c.JSON([]string{})
	}

	if values == nil {
		values = []string{}
	}
	return c.JSON(values)
}

// Levels handles GET /get_levels
func (h *MetaHandler) Levels(c fiber.Ctx) error {
	levels, err := h.facets.Levels(c.Context())
	if err != nil || levels == nil {
		levels = []model.LevelResponse{}
	}
	return c.JSON(levels)
}

// Channels handles GET /get_channels
func (h *MetaHandler) Channels(c fiber.Ctx) error {
	channels, err := h.channels.List(c.Context())
	if err != nil || channels == nil {
		channels = []model.ChannelResponse{}
	}
	return c.JSON(channels)
}
