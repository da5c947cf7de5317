package classifier

import (
	"regexp"
	"strings"

	"mailtriage/internal/models"

	"github.com/tidwall/gjson"
)

// Confidence reported when the reply had no parseable JSON and the category
// came from substring matching alone.
const fallbackConfidence = 0.7

var (
	fencedBlock   = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	braceSpan     = regexp.MustCompile(`(?s)\{.*\}`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// parseReply turns a free-form model reply into a ClassificationResult. It
// degrades instead of failing: when no JSON can be recovered the result comes
// from the heuristic fallback and is flagged for review.
func parseReply(raw string) models.ClassificationResult {
	if candidate, ok := extractJSON(raw); ok {
		if result, ok := resultFromJSON(candidate); ok {
			return result
		}
	}
	return fallbackResult(raw)
}

// extractJSON recovers a JSON candidate from the reply: the whole string if
// it is a bare object, otherwise the contents of a fenced code block,
// otherwise the span from the first "{" to the last "}". Trailing commas
// before a closing brace or bracket are stripped from the candidate.
func extractJSON(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)

	var candidate string
	switch {
	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		candidate = trimmed
	default:
		if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
			candidate = m[1]
		} else if span := braceSpan.FindString(trimmed); span != "" {
			candidate = span
		} else {
			return "", false
		}
	}

	return trailingComma.ReplaceAllString(candidate, "$1"), true
}

func resultFromJSON(candidate string) (models.ClassificationResult, bool) {
	if !gjson.Valid(candidate) {
		return models.ClassificationResult{}, false
	}

	parsed := gjson.Parse(candidate)
	if !parsed.IsObject() {
		return models.ClassificationResult{}, false
	}

	category, resolved := normalizeCategory(parsed.Get("category").String())

	result := models.ClassificationResult{
		Category: category,
		Reply:    parsed.Get("reply").String(),
		// An unresolved category forces review no matter what the model said.
		NeedsReview: parsed.Get("needs_review").Bool() || !resolved,
	}

	if confidence := parsed.Get("confidence"); confidence.Type == gjson.Number {
		v := clamp(confidence.Float())
		result.Confidence = &v
	}

	return result, true
}

// normalizeCategory maps the model's category field onto the two fixed
// outcomes. Anything that is not exactly "produtivo" or "improdutivo" after
// trimming and lowercasing is unresolved and defaults to Improdutivo.
func normalizeCategory(value string) (models.Category, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "produtivo":
		return models.CategoryProductive, true
	case "improdutivo":
		return models.CategoryUnproductive, true
	}
	return models.CategoryUnproductive, false
}

func fallbackResult(raw string) models.ClassificationResult {
	category := models.CategoryUnproductive
	if strings.Contains(strings.ToLower(raw), "produtivo") {
		category = models.CategoryProductive
	}

	confidence := fallbackConfidence
	return models.ClassificationResult{
		Category:    category,
		Confidence:  &confidence,
		Reply:       raw,
		NeedsReview: true,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
