package models

import "time"

// Category is one of the two fixed classification outcomes for an email.
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

// ClassificationResult is the structured outcome of analyzing one email.
type ClassificationResult struct {
	Category      Category `json:"category"`
	Confidence    *float64 `json:"confidence,omitempty"`
	Reply         string   `json:"reply,omitempty"`
	NeedsReview   bool     `json:"needs_review"`
	ExtractedText string   `json:"extracted_text,omitempty"`
}

// FeedbackRecord is one user correction of an automated classification.
type FeedbackRecord struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	OriginalCategory  string    `json:"original_category"`
	CorrectedCategory string    `json:"corrected_category"`
	TextPreview       string    `json:"text_preview"`
}

// HealthStatus is the liveness payload returned by the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
