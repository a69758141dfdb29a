package library

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the library feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	songs := app.Group("/songs")
	songs.Get("/", handler.ListSongs)
	songs.Get("/top", handler.ListTopSongs)
	songs.Get("/trending", handler.ListTrendingSongs)
	songs.Get("/:id", handler.GetSong)
}
