// Package submitter fills and submits a job application form in a dedicated
// browser session.
package submitter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"jobpilot/internal/browser"
	"jobpilot/internal/domain"
)

const submitSelector = `button[type="submit"]`

// formField is one declarative selector → value binding. Fields are filled
// in order; a field missing from the page is skipped, never fatal.
type formField struct {
	Selector string
	Value    string
}

type upload struct {
	Name     string
	Selector string
	Path     string
}

// FormRunner owns one browser session per submission attempt: it fills the
// mapped fields, uploads the customized documents, clicks submit and waits
// for the confirming navigation.
type FormRunner struct {
	driver       browser.Driver
	navTimeout   time.Duration
	fieldTimeout time.Duration
	logger       *slog.Logger
}

func NewFormRunner(driver browser.Driver, navTimeout, fieldTimeout time.Duration, logger *slog.Logger) *FormRunner {
	return &FormRunner{
		driver:       driver,
		navTimeout:   navTimeout,
		fieldTimeout: fieldTimeout,
		logger:       logger,
	}
}

// Submit runs one application attempt against listing.Link. progress is
// invoked as each stage begins. The session is released on every exit path.
func (r *FormRunner) Submit(
	ctx context.Context,
	listing *domain.Listing,
	profile *domain.Profile,
	docs domain.DocumentSet,
	progress func(domain.Stage),
) error {
	logger := r.logger.With("job_id", listing.ID, "user_id", profile.UserID)

	session, err := r.driver.NewSession(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	if err := session.Navigate(ctx, listing.Link, r.navTimeout); err != nil {
		return &domain.NavigationError{URL: listing.Link, Err: err}
	}

	progress(domain.StageFormFilling)
	r.fillFields(session, fieldMapping(profile, listing), logger)

	progress(domain.StageUploading)
	r.uploadDocuments(session, docs, logger)

	progress(domain.StageSubmitting)
	return r.submit(session, logger)
}

// fieldMapping binds the candidate snapshot and listing to form selectors in
// a fixed fill order.
func fieldMapping(p *domain.Profile, l *domain.Listing) []formField {
	return []formField{
		{Selector: "#name", Value: p.Name},
		{Selector: "#email", Value: p.Email},
		{Selector: "#phone", Value: p.Phone},
		{Selector: "#experience", Value: strconv.Itoa(p.YearsOfExperience)},
		{Selector: "#current-company", Value: p.CurrentCompany},
		{Selector: "#desired-salary", Value: p.DesiredSalary},
		{Selector: "#position-applied", Value: l.Title},
	}
}

func (r *FormRunner) fillFields(session browser.Session, fields []formField, logger *slog.Logger) {
	for _, f := range fields {
		el, err := session.Find(f.Selector, r.fieldTimeout)
		if err != nil {
			logger.Warn("form field not found, skipping", "selector", f.Selector)
			continue
		}
		if err := el.Input(f.Value); err != nil {
			logger.Warn("form field input failed, skipping", "selector", f.Selector, "error", err)
		}
	}
}

func (r *FormRunner) uploadDocuments(session browser.Session, docs domain.DocumentSet, logger *slog.Logger) {
	uploads := []upload{
		{Name: "resume", Selector: "#resume-upload", Path: docs.ResumePath},
		{Name: "cover_letter", Selector: "#cover-letter-upload", Path: docs.CoverLetterPath},
	}
	for _, u := range uploads {
		el, err := session.Find(u.Selector, r.fieldTimeout)
		if err != nil {
			logger.Warn("upload control not found, skipping", "document", u.Name, "selector", u.Selector)
			continue
		}
		if err := el.SetFiles(u.Path); err != nil {
			logger.Warn("document upload failed, skipping", "document", u.Name, "error", err)
		}
	}
}

func (r *FormRunner) submit(session browser.Session, logger *slog.Logger) error {
	el, err := session.Find(submitSelector, r.fieldTimeout)
	if err != nil {
		return &domain.FormError{Selector: submitSelector, Err: domain.ErrSubmitControlMissing}
	}
	// The navigation listener must be live before the click, otherwise a
	// fast confirmation page can settle unobserved.
	wait := session.PrepareNavigation(r.navTimeout)
	if err := el.Click(); err != nil {
		return &domain.FormError{Selector: submitSelector, Err: err}
	}
	if err := wait(); err != nil {
		return &domain.FormError{Selector: submitSelector, Err: fmt.Errorf("confirm submission: %w", err)}
	}
	logger.Info("form submitted")
	return nil
}
