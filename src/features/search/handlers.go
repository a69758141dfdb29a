package search

import (
	"errors"
	"log/slog"

	"github.com/contre95/soundwell/src/music"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the search feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the search feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search answers a text query against one of the three entity scopes.
func (h *Handler) Search(c *fiber.Ctx) error {
	req := Request{
		Query:    c.Query("q"),
		Scope:    music.ParseScope(c.Query("scope")),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 20),
	}

	result, err := h.service.Search(c.Context(), req)
	if err != nil {
		if errors.Is(err, music.ErrEmptyQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "q is required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "search failed",
		})
	}

	return c.JSON(result)
}

// Suggestions returns autocomplete entries for a partial query.
func (h *Handler) Suggestions(c *fiber.Ctx) error {
	suggestions, err := h.service.Suggestions(c.Context(), c.Query("q"), c.QueryInt("limit", 10))
	if err != nil {
		slog.Error("Suggestions handler failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "suggestions failed",
		})
	}

	return c.JSON(fiber.Map{"suggestions": suggestions})
}
