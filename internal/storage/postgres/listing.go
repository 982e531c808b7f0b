package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"jobpilot/internal/domain"
)

type ListingStore struct {
	db *sqlx.DB
}

func NewListingStore(db *sqlx.DB) *ListingStore {
	return &ListingStore{db: db}
}

// Upsert writes the listing by its natural key (title, company, source).
// An existing row is replaced in place except for identity and creation
// metadata. Returns the stored id and whether a new row was created.
func (s *ListingStore) Upsert(ctx context.Context, listing *domain.Listing) (int64, bool, error) {
	query := `
		INSERT INTO listings (
			title, company, location, description, short_description, link, source_id,
			salary_min, salary_max, salary_currency, salary_period,
			job_type, experience_level, required_skills, preferred_skills, benefits,
			is_remote, posted_date, scraped_at, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		ON CONFLICT (title, company, source_id) DO UPDATE SET
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			short_description = EXCLUDED.short_description,
			link = EXCLUDED.link,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			salary_period = EXCLUDED.salary_period,
			job_type = EXCLUDED.job_type,
			experience_level = EXCLUDED.experience_level,
			required_skills = EXCLUDED.required_skills,
			preferred_skills = EXCLUDED.preferred_skills,
			benefits = EXCLUDED.benefits,
			is_remote = EXCLUDED.is_remote,
			posted_date = EXCLUDED.posted_date,
			scraped_at = EXCLUDED.scraped_at,
			updated_at = NOW()
		RETURNING id, (xmax = 0) AS inserted`

	var (
		id       int64
		inserted bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		listing.Title,
		listing.Company,
		listing.Location,
		listing.Description,
		listing.ShortDescription,
		listing.Link,
		listing.SourceID,
		listing.Salary.Min,
		listing.Salary.Max,
		listing.Salary.Currency,
		listing.Salary.Period,
		listing.JobType,
		listing.ExperienceLevel,
		pq.Array(listing.RequiredSkills),
		pq.Array(listing.PreferredSkills),
		pq.Array(listing.Benefits),
		listing.IsRemote,
		listing.PostedDate,
		listing.ScrapedAt,
		listing.Status,
	).Scan(&id, &inserted)
	if err != nil {
		return 0, false, err
	}

	return id, inserted, nil
}

func (s *ListingStore) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `
		SELECT id, title, company, location, description, short_description, link, source_id,
			salary_min, salary_max, salary_currency, salary_period,
			job_type, experience_level, required_skills, preferred_skills, benefits,
			is_remote, posted_date, scraped_at, status, created_at, updated_at
		FROM listings
		WHERE id = $1`

	var (
		l          domain.Listing
		postedDate sql.NullTime
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, id).Scan(
		&l.ID, &l.Title, &l.Company, &l.Location, &l.Description, &l.ShortDescription,
		&l.Link, &l.SourceID,
		&l.Salary.Min, &l.Salary.Max, &l.Salary.Currency, &l.Salary.Period,
		&l.JobType, &l.ExperienceLevel,
		pq.Array(&l.RequiredSkills), pq.Array(&l.PreferredSkills), pq.Array(&l.Benefits),
		&l.IsRemote, &postedDate, &l.ScrapedAt, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}

	if postedDate.Valid {
		l.PostedDate = &postedDate.Time
	}
	return &l, nil
}
