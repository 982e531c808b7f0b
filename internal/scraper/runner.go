// Package scraper extracts raw job records from a source page and applies
// the configured inclusion policy.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jobpilot/internal/browser"
	"jobpilot/internal/domain"
)

// Runner drives one browser session per source and extracts raw listings via
// the source's selector map.
type Runner struct {
	driver     browser.Driver
	navTimeout time.Duration
	logger     *slog.Logger
}

func NewRunner(driver browser.Driver, navTimeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{driver: driver, navTimeout: navTimeout, logger: logger}
}

// Scrape opens an isolated session for the source, navigates to its URL and
// extracts one raw record per listing container. Field-level extraction
// failures degrade to empty values; only session and navigation failures are
// fatal. The session is closed on every exit path.
func (r *Runner) Scrape(ctx context.Context, src domain.Source) ([]domain.RawListing, error) {
	logger := r.logger.With("source", src.Name)

	session, err := r.driver.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	if len(src.Headers) > 0 {
		if err := session.SetHeaders(src.Headers); err != nil {
			logger.Warn("failed to set source headers", "error", err)
		}
	}

	if err := session.Navigate(ctx, src.URL, r.navTimeout); err != nil {
		return nil, &domain.NavigationError{URL: src.URL, Err: err}
	}

	raw, err := r.extractPage(session, src.Selectors, logger)
	if err != nil {
		return nil, err
	}

	maxPages := src.Pagination.MaxPages
	for page := 2; src.Pagination.Type == domain.PaginationButton && page <= maxPages; page++ {
		if !r.nextPage(session, src.Pagination.Selector, logger) {
			break
		}
		more, err := r.extractPage(session, src.Selectors, logger)
		if err != nil {
			logger.Warn("pagination extraction failed, keeping earlier pages",
				"page", page, "error", err)
			break
		}
		raw = append(raw, more...)
	}

	logger.Info("extracted raw listings", "count", len(raw))
	return raw, nil
}

func (r *Runner) extractPage(session browser.Session, sel domain.SelectorMap, logger *slog.Logger) ([]domain.RawListing, error) {
	containers, err := session.Elements(sel.JobListing)
	if err != nil {
		return nil, fmt.Errorf("query listing containers: %w", err)
	}

	raw := make([]domain.RawListing, 0, len(containers))
	for _, el := range containers {
		raw = append(raw, domain.RawListing{
			Title:           r.text(el, sel.Title, logger),
			Company:         r.text(el, sel.Company, logger),
			Location:        r.text(el, sel.Location, logger),
			Description:     r.text(el, sel.Description, logger),
			Link:            r.attr(el, sel.Link, "href", logger),
			Salary:          r.text(el, sel.Salary, logger),
			PostedDate:      r.text(el, sel.PostedDate, logger),
			JobType:         r.text(el, sel.JobType, logger),
			ExperienceLevel: r.text(el, sel.ExperienceLevel, logger),
			RequiredSkills:  r.texts(el, sel.RequiredSkills, logger),
			Benefits:        r.texts(el, sel.Benefits, logger),
		})
	}
	return raw, nil
}

func (r *Runner) nextPage(session browser.Session, selector string, logger *slog.Logger) bool {
	if selector == "" {
		return false
	}
	next, err := session.Find(selector, r.navTimeout)
	if err != nil {
		return false
	}
	wait := session.PrepareNavigation(r.navTimeout)
	if err := next.Click(); err != nil {
		logger.Warn("next-page click failed", "selector", selector, "error", err)
		return false
	}
	if err := wait(); err != nil {
		logger.Warn("next-page navigation timed out", "selector", selector)
		return false
	}
	return true
}

// text extracts trimmed text from the first match under el, degrading to ""
// on a missing selector or extraction error.
func (r *Runner) text(el browser.Element, selector string, logger *slog.Logger) string {
	if selector == "" {
		return ""
	}
	matches, err := el.Elements(selector)
	if err != nil || len(matches) == 0 {
		return ""
	}
	text, err := matches[0].Text()
	if err != nil {
		logger.Warn("field extraction failed", "selector", selector, "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}

func (r *Runner) attr(el browser.Element, selector, name string, logger *slog.Logger) string {
	if selector == "" {
		return ""
	}
	matches, err := el.Elements(selector)
	if err != nil || len(matches) == 0 {
		return ""
	}
	value, err := matches[0].Attr(name)
	if err != nil {
		logger.Warn("attribute extraction failed", "selector", selector, "attr", name, "error", err)
		return ""
	}
	return strings.TrimSpace(value)
}

func (r *Runner) texts(el browser.Element, selector string, logger *slog.Logger) []string {
	if selector == "" {
		return nil
	}
	matches, err := el.Elements(selector)
	if err != nil {
		return nil
	}
	var out []string
	for _, m := range matches {
		text, err := m.Text()
		if err != nil {
			logger.Warn("field extraction failed", "selector", selector, "error", err)
			continue
		}
		if t := strings.TrimSpace(text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
