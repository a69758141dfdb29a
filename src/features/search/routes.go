package search

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the search feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	app.Get("/search", handler.Search)
	app.Get("/search/suggestions", handler.Suggestions)
}
