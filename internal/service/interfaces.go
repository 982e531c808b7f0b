package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"jobpilot/internal/domain"
)

// SourceRegistry holds per-source configuration plus scheduling/telemetry
// state. RecordOutcome must update counters atomically at the store level.
type SourceRegistry interface {
	FindDue(ctx context.Context, now time.Time) ([]domain.Source, error)
	RecordOutcome(ctx context.Context, source *domain.Source, outcome domain.ScrapeOutcome) error
}

type ListingStore interface {
	// Upsert writes by natural key (title, company, source) and reports the
	// stored id and whether a new row was created.
	Upsert(ctx context.Context, listing *domain.Listing) (int64, bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type ApplicationStore interface {
	// Upsert writes by (user, job); re-attempts overwrite the prior status.
	Upsert(ctx context.Context, app *domain.Application) (int64, error)
	AddNote(ctx context.Context, applicationID int64, content string) error
}

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}

type SessionRunner interface {
	Scrape(ctx context.Context, source domain.Source) ([]domain.RawListing, error)
}

type RecordFilter interface {
	Apply(in []domain.RawListing) []domain.RawListing
}

type Customizer interface {
	Customize(path string, keywords []string) (string, error)
}

type FormFiller interface {
	Submit(ctx context.Context, listing *domain.Listing, profile *domain.Profile, docs domain.DocumentSet, progress func(domain.Stage)) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishListing(ctx context.Context, listing *domain.Listing, isNew bool) error
	PublishSubmission(ctx context.Context, app *domain.Application) error
	Close() error
}
