// Package document produces keyword-emphasized copies of a candidate's
// resume and cover letter.
package document

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// KeywordLimit caps how many ranked keywords are emphasized per document.
const KeywordLimit = 10

type Customizer struct {
	limit  int
	logger *slog.Logger
}

func NewCustomizer(logger *slog.Logger) *Customizer {
	return &Customizer{limit: KeywordLimit, logger: logger}
}

// Customize reads the document at path, emphasizes the top-ranked keywords,
// and writes the result next to the original as customized_<name>. The source
// document is never modified.
func (c *Customizer) Customize(path string, keywords []string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	out := Emphasize(string(data), keywords, c.limit)

	outPath := filepath.Join(filepath.Dir(path), "customized_"+filepath.Base(path))
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("write customized document: %w", err)
	}

	c.logger.Debug("customized document",
		"source", path,
		"output", outPath,
		"keywords", min(c.limit, len(keywords)),
	)

	return outPath, nil
}

// Emphasize wraps whole-word, case-insensitive matches of the first limit
// keywords in <strong> markers. Substitutions run in ranked order and each
// pass operates on the already-modified text.
func Emphasize(text string, keywords []string, limit int) string {
	if limit > len(keywords) {
		limit = len(keywords)
	}
	for _, kw := range keywords[:limit] {
		if kw == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		text = re.ReplaceAllString(text, "<strong>"+kw+"</strong>")
	}
	return text
}
