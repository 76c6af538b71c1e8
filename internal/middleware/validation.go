package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits for user-supplied values.
const (
	MaxQueryLen    = 200
	MaxFeedbackLen = 4000
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ParseCount parses a non-negative integer query value; anything missing,
// malformed, or negative yields the fallback.
func ParseCount(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// TruncateQuery trims a free-text query and caps its length so oversized
// inputs never reach the search engine.
func TruncateQuery(q string) string {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLen {
		q = q[:MaxQueryLen]
	}
	return q
}

// TruncateFeedback caps a feedback field to its storage-friendly length.
func TruncateFeedback(s string) string {
	if len(s) > MaxFeedbackLen {
		return s[:MaxFeedbackLen]
	}
	return s
}
