package hosting

import (
	"fmt"
	"log/slog"

	"github.com/contre95/soundwell/src/features/config"
	"github.com/contre95/soundwell/src/features/library"
	"github.com/contre95/soundwell/src/features/metrics"
	"github.com/contre95/soundwell/src/features/plays"
	"github.com/contre95/soundwell/src/features/search"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, playsService *plays.Service, searchService *search.Service, libraryService *library.Service) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"ok":      false,
				"message": "internal server error",
			})
		},
		AppName:               "Soundwell",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(RequestLoggerMiddleware())
	app.Use(ListenerIdentity(cfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	plays.RegisterRoutes(app, playsService)
	search.RegisterRoutes(app, searchService)
	library.RegisterRoutes(app, libraryService)
	metrics.RegisterRoutes(app)

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
