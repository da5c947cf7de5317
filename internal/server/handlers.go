package server

import (
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mailtriage/internal/extract"
	"mailtriage/internal/models"
)

const textPreviewLimit = 100

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(models.HealthStatus{
		Status:    "ok",
		Service:   "mailtriage",
		Version:   s.version,
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) analyzeText(c *fiber.Ctx) error {
	text := c.FormValue("text")

	s.logger.Info("Text analysis requested", zap.Int("text_length", len(text)))

	result, err := s.classifier.Classify(c.Context(), text)
	if err != nil {
		return s.errorResponse(c, err)
	}

	if result.NeedsReview {
		go s.notifier.ReviewNeeded(result)
	}

	return c.JSON(result)
}

func (s *Server) analyzeFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return s.errorResponse(c, errors.New("nome do arquivo não fornecido"))
	}

	s.logger.Info("File analysis requested",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size))

	if header.Size > extract.MaxFileSize {
		return s.errorResponse(c, models.ErrFileTooLarge)
	}

	data, err := readUpload(header)
	if err != nil {
		return s.errorResponse(c, err)
	}

	text, err := extract.FromFile(header.Filename, data)
	if err != nil {
		return s.errorResponse(c, err)
	}

	result, err := s.classifier.Classify(c.Context(), text)
	if err != nil {
		return s.errorResponse(c, err)
	}

	if result.NeedsReview {
		go s.notifier.ReviewNeeded(result)
	}

	return c.JSON(result)
}

// analyze dispatches to file or text analysis depending on which payload is
// present in the request.
func (s *Server) analyze(c *fiber.Ctx) error {
	if _, err := c.FormFile("file"); err == nil {
		return s.analyzeFile(c)
	}
	if c.FormValue("text") != "" {
		return s.analyzeText(c)
	}
	return s.errorResponse(c, errors.New("forneça um arquivo ou texto para análise"))
}

func (s *Server) submitFeedback(c *fiber.Ctx) error {
	original := c.FormValue("original_category")
	corrected := c.FormValue("corrected_category")
	preview := c.FormValue("text_preview")

	if original == "" || corrected == "" {
		return s.errorResponse(c, errors.New("categorias original e corrigida são obrigatórias"))
	}

	record := &models.FeedbackRecord{
		ID:                uuid.New().String(),
		Timestamp:         time.Now().UTC(),
		OriginalCategory:  original,
		CorrectedCategory: corrected,
		TextPreview:       truncate(preview, textPreviewLimit),
	}

	if err := s.store.Append(c.Context(), record); err != nil {
		s.logger.Error("Failed to save feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "erro ao salvar feedback",
		})
	}

	s.logger.Info("Feedback recorded",
		zap.String("original", original),
		zap.String("corrected", corrected))

	go s.notifier.FeedbackReceived(record)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Feedback registrado com sucesso",
	})
}

// errorResponse maps the error taxonomy onto HTTP statuses: configuration
// and upstream failures are operator faults, everything else is a
// user-correctable input problem.
func (s *Server) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, models.ErrMissingAPIKey) || errors.Is(err, models.ErrUpstream) {
		status = fiber.StatusInternalServerError
		s.logger.Error("Request failed", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"detail": err.Error()})
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
