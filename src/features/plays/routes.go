package plays

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the plays feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	songs := app.Group("/songs")
	songs.Post("/:id/play", handler.PlaySong)
}
