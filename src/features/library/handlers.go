package library

import (
	"errors"

	"github.com/contre95/soundwell/src/music"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the library feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListSongs lists songs with optional q/genre/artist filters and ordering.
func (h *Handler) ListSongs(c *fiber.Ctx) error {
	listing, err := h.service.List(c.Context(), ListRequest{
		Query:    c.Query("q"),
		Genre:    c.Query("genre"),
		Artist:   c.Query("artist"),
		Order:    music.ParseTrackOrder(c.Query("order")),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to list songs",
		})
	}
	return c.JSON(listing)
}

// ListTopSongs lists songs by all-time play count.
func (h *Handler) ListTopSongs(c *fiber.Ctx) error {
	listing, err := h.service.Top(c.Context(), c.QueryInt("page", 1), c.QueryInt("pageSize", defaultPageSize))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to list top songs",
		})
	}
	return c.JSON(listing)
}

// ListTrendingSongs lists recently played songs within a day window.
func (h *Handler) ListTrendingSongs(c *fiber.Ctx) error {
	listing, err := h.service.Trending(c.Context(),
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", defaultPageSize),
		c.QueryInt("windowDays", defaultTrendingWindowDays),
		int64(c.QueryInt("minPlays", 0)),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to list trending songs",
		})
	}
	return c.JSON(listing)
}

// GetSong returns a single song.
func (h *Handler) GetSong(c *fiber.Ctx) error {
	track, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, music.ErrTrackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "song not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to get song",
		})
	}
	return c.JSON(track)
}
