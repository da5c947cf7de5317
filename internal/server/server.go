package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mailtriage/internal/classifier"
	"mailtriage/internal/extract"
	"mailtriage/internal/notify"
	"mailtriage/internal/storage"
)

type Server struct {
	app        *fiber.App
	classifier classifier.Classifier
	store      storage.FeedbackStore
	notifier   notify.Notifier
	logger     *zap.Logger
	version    string
}

func New(clf classifier.Classifier, store storage.FeedbackStore, notifier notify.Notifier, version string, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName: "mailtriage",
		// Slightly above the upload cap so the handler owns the 400 for
		// oversize files instead of fiber's generic 413.
		BodyLimit: extract.MaxFileSize + 1024*1024,
	})

	s := &Server{
		app:        app,
		classifier: clf,
		store:      store,
		notifier:   notifier,
		logger:     logger,
		version:    version,
	}

	api := app.Group("/api")
	api.Post("/analyze/text", s.analyzeText)
	api.Post("/analyze/file", s.analyzeFile)
	api.Post("/analyze", s.analyze)
	api.Post("/feedback", s.submitFeedback)
	api.Get("/health", s.health)

	return s
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
