package sanitize

import "regexp"

// Compiled once at startup; read-only afterwards, safe for concurrent use.
// Order matters: each replacement runs over the output of the previous one,
// so a numeric sequence is claimed by the first pattern that matches it.
var replacements = []struct {
	pattern *regexp.Regexp
	mask    string
}{
	{regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`), "[EMAIL]"},
	{regexp.MustCompile(`(?:\+55[\s.\-]?)?(?:\(\d{2}\)[\s.\-]?|\b\d{2}[\s.\-])?\b\d{4,5}[\s.\-]?\d{4}\b`), "[TELEFONE]"},
	{regexp.MustCompile(`\b\d{3}\.?\d{3}\.?\d{3}-?\d{2}\b`), "[CPF]"},
	{regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}\b`), "[CNPJ]"},
}

// Sanitize masks emails, Brazilian phone numbers, CPFs and CNPJs before the
// text crosses the system boundary. Pure function; text without PII passes
// through unchanged.
func Sanitize(text string) string {
	for _, r := range replacements {
		text = r.pattern.ReplaceAllString(text, r.mask)
	}
	return text
}
