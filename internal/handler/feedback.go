package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/rushhirosan/soccer-practice-search/internal/middleware"
	"github.com/rushhirosan/soccer-practice-search/internal/model"
	"github.com/rushhirosan/soccer-practice-search/internal/repository"
)

type FeedbackHandler struct {
	repo *repository.FeedbackRepo
}

func NewFeedbackHandler(repo *repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{repo: repo}
}

// Submit handles POST /submit-feedback. Fields are free text and persisted
// unconditionally; only field length is constrained.
func (h *FeedbackHandler) Submit(c fiber.Ctx) error {
	var req model.FeedbackRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Body must be JSON")
	}

	req.Name = middleware.TruncateFeedback(req.Name)
	req.Email = middleware.TruncateFeedback(req.Email)
	req.Category = middleware.TruncateFeedback(req.Category)
	req.Message = middleware.TruncateFeedback(req.Message)

	if err := h.repo.Insert(c.Context(), req); err != nil {
		middleware.Logger.Error().Err(err).Msg("feedback insert failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save feedback")
	}

	return c.JSON(fiber.Map{"message": "Feedback submitted successfully"})
}
