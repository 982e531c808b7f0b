package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"jobpilot/internal/domain"
)

// SourceStore is the source registry: per-source configuration plus
// scheduling and telemetry state.
type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

const sourceColumns = `
	id, name, url, type, selectors, cadence,
	last_scraped, last_successful_scrape, next_scheduled_scrape, is_active,
	credentials, headers, pagination, proxy,
	rate_max_requests, rate_per_minutes,
	success_rate, successful_scrapes, total_attempts, error_log,
	created_at, updated_at`

// FindDue returns every active source whose next scheduled scrape is at or
// before now. Ordering carries no meaning; callers treat the result as a set.
func (s *SourceStore) FindDue(ctx context.Context, now time.Time) ([]domain.Source, error) {
	query := `SELECT ` + sourceColumns + `
		FROM sources
		WHERE is_active = true AND next_scheduled_scrape <= $1
		ORDER BY next_scheduled_scrape`

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []domain.Source
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *src)
	}
	return sources, rows.Err()
}

func (s *SourceStore) GetByID(ctx context.Context, id int64) (*domain.Source, error) {
	query := `SELECT ` + sourceColumns + ` FROM sources WHERE id = $1`

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrSourceNotFound
	}
	return scanSource(rows)
}

// Create registers a new source. Scheduling defaults make a never-scraped
// active source due immediately.
func (s *SourceStore) Create(ctx context.Context, src *domain.Source) (int64, error) {
	selectors, err := json.Marshal(src.Selectors)
	if err != nil {
		return 0, fmt.Errorf("marshal selectors: %w", err)
	}
	credentials, err := json.Marshal(src.Credentials)
	if err != nil {
		return 0, fmt.Errorf("marshal credentials: %w", err)
	}
	headers, err := json.Marshal(src.Headers)
	if err != nil {
		return 0, fmt.Errorf("marshal headers: %w", err)
	}
	pagination, err := json.Marshal(src.Pagination)
	if err != nil {
		return 0, fmt.Errorf("marshal pagination: %w", err)
	}
	proxy, err := json.Marshal(src.Proxy)
	if err != nil {
		return 0, fmt.Errorf("marshal proxy: %w", err)
	}

	nextScrape := src.NextScheduledScrape
	if nextScrape.IsZero() {
		nextScrape = time.Now()
	}

	query := `
		INSERT INTO sources (
			name, url, type, selectors, cadence, next_scheduled_scrape, is_active,
			credentials, headers, pagination, proxy,
			rate_max_requests, rate_per_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		src.Name,
		src.URL,
		src.Type,
		selectors,
		src.Cadence,
		nextScrape,
		src.IsActive,
		credentials,
		headers,
		pagination,
		proxy,
		src.RateLimit.MaxRequests,
		src.RateLimit.PerMinutes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RecordOutcome applies one scrape attempt's result in a single UPDATE so
// counters and the derived success rate never race under concurrent cycles.
// The next scheduled scrape is recomputed from the source cadence.
func (s *SourceStore) RecordOutcome(ctx context.Context, source *domain.Source, outcome domain.ScrapeOutcome) error {
	next := source.Cadence.Next(outcome.At)

	query := `
		UPDATE sources SET
			last_scraped = $2,
			last_successful_scrape = CASE WHEN $3 THEN $2 ELSE last_successful_scrape END,
			successful_scrapes = successful_scrapes + CASE WHEN $3 THEN 1 ELSE 0 END,
			total_attempts = total_attempts + 1,
			success_rate = LEAST(100.0,
				(successful_scrapes + CASE WHEN $3 THEN 1 ELSE 0 END) * 100.0 / (total_attempts + 1)),
			next_scheduled_scrape = $4,
			error_log = CASE WHEN $5::text = ''
				THEN error_log
				ELSE error_log || jsonb_build_array(jsonb_build_object('date', $2::timestamptz, 'message', $5::text))
			END,
			updated_at = NOW()
		WHERE id = $1`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		source.ID,
		outcome.At,
		outcome.Success,
		next,
		outcome.Message,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSourceNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (*domain.Source, error) {
	var (
		src                  domain.Source
		selectors            []byte
		credentials          []byte
		headers              []byte
		pagination           []byte
		proxy                []byte
		errorLog             []byte
		lastScraped          sql.NullTime
		lastSuccessfulScrape sql.NullTime
	)

	err := row.Scan(
		&src.ID, &src.Name, &src.URL, &src.Type, &selectors, &src.Cadence,
		&lastScraped, &lastSuccessfulScrape, &src.NextScheduledScrape, &src.IsActive,
		&credentials, &headers, &pagination, &proxy,
		&src.RateLimit.MaxRequests, &src.RateLimit.PerMinutes,
		&src.SuccessRate, &src.SuccessfulScrapes, &src.TotalAttempts, &errorLog,
		&src.CreatedAt, &src.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastScraped.Valid {
		src.LastScraped = &lastScraped.Time
	}
	if lastSuccessfulScrape.Valid {
		src.LastSuccessfulScrape = &lastSuccessfulScrape.Time
	}

	if err := json.Unmarshal(selectors, &src.Selectors); err != nil {
		return nil, fmt.Errorf("unmarshal selectors: %w", err)
	}
	if err := json.Unmarshal(credentials, &src.Credentials); err != nil {
		return nil, fmt.Errorf("unmarshal credentials: %w", err)
	}
	if err := json.Unmarshal(headers, &src.Headers); err != nil {
		return nil, fmt.Errorf("unmarshal headers: %w", err)
	}
	if err := json.Unmarshal(pagination, &src.Pagination); err != nil {
		return nil, fmt.Errorf("unmarshal pagination: %w", err)
	}
	if err := json.Unmarshal(proxy, &src.Proxy); err != nil {
		return nil, fmt.Errorf("unmarshal proxy: %w", err)
	}
	if err := json.Unmarshal(errorLog, &src.ErrorLog); err != nil {
		return nil, fmt.Errorf("unmarshal error log: %w", err)
	}

	return &src, nil
}
