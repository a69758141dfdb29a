package plays

import (
	"errors"
	"strings"

	"github.com/contre95/soundwell/src/music"
	"github.com/gofiber/fiber/v2"
)

// accountIDLocal is set by the hosting identity middleware when the caller
// presented a valid listener token.
const accountIDLocal = "accountID"

// Handler is the handler for the plays feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the plays feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PlaySong records a playback of the song in the path.
func (h *Handler) PlaySong(c *fiber.Ctx) error {
	trackID := strings.TrimSpace(c.Params("id"))
	if trackID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"message": "song id is required",
		})
	}

	accountID, _ := c.Locals(accountIDLocal).(string)

	receipt, err := h.service.Record(c.Context(), trackID, accountID)
	if err != nil {
		if errors.Is(err, music.ErrTrackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"ok":      false,
				"message": "song not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":      false,
			"message": "failed to record play",
		})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "play recorded",
		"data":    receipt,
	})
}
