package normalize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	punctRun      = regexp.MustCompile(`[!?.]{2,}`)
	urlToken      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	// Broader than a strict email pattern on purpose: it also catches dotted
	// tokens like "empresa.com.br" that leak domain information. Known
	// over-matching, kept as documented behavior.
	emailToken = regexp.MustCompile(`[a-z0-9._%+\-]+(?:@[a-z0-9.\-]+)?\.[a-z]{2,}`)
)

// Normalize shrinks text before it is sent for classification: lowercase,
// collapsed whitespace and punctuation runs, masked URLs and email-like
// tokens, stop words removed. Applied only to the classification copy of the
// text; the reply is always generated from the original phrasing.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = whitespaceRun.ReplaceAllString(t, " ")
	t = punctRun.ReplaceAllString(t, ".")
	t = urlToken.ReplaceAllString(t, "[URL]")
	t = emailToken.ReplaceAllString(t, "[EMAIL]")

	tokens := strings.Fields(t)
	kept := tokens[:0]
	for _, token := range tokens {
		if _, stop := stopWords[token]; stop {
			continue
		}
		kept = append(kept, token)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
