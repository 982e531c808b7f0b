package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"jobpilot/internal/domain"
)

type ApplicationStore struct {
	db *sqlx.DB
}

func NewApplicationStore(db *sqlx.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// Upsert writes the application keyed by (user, job). A re-attempt
// overwrites the prior status instead of creating a second record; the
// original applied_at is preserved.
func (s *ApplicationStore) Upsert(ctx context.Context, app *domain.Application) (int64, error) {
	query := `
		INSERT INTO applications (
			user_id, job_id, status, applied_at, updated_at,
			resume_version, cover_letter_version, salary_offered, salary_negotiated, currency
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, job_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			resume_version = COALESCE(EXCLUDED.resume_version, applications.resume_version),
			cover_letter_version = COALESCE(EXCLUDED.cover_letter_version, applications.cover_letter_version),
			salary_offered = COALESCE(EXCLUDED.salary_offered, applications.salary_offered),
			salary_negotiated = COALESCE(EXCLUDED.salary_negotiated, applications.salary_negotiated)
		RETURNING id`

	currency := app.Currency
	if currency == "" {
		currency = "USD"
	}

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		app.UserID,
		app.JobID,
		app.Status,
		app.AppliedAt,
		app.UpdatedAt,
		app.ResumeVersion,
		app.CoverLetterVersion,
		app.SalaryOffered,
		app.SalaryNegotiated,
		currency,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AddNote appends a timestamped note to the application's history.
func (s *ApplicationStore) AddNote(ctx context.Context, applicationID int64, content string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO application_notes (application_id, content) VALUES ($1, $2)`,
		applicationID, content,
	)
	return err
}

// GetByUserAndJob loads the application for one (user, job) pair together
// with its notes, oldest first.
func (s *ApplicationStore) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	query := `
		SELECT id, user_id, job_id, status, applied_at, updated_at,
			resume_version, cover_letter_version, salary_offered, salary_negotiated, currency
		FROM applications
		WHERE user_id = $1 AND job_id = $2`

	var app domain.Application
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, userID, jobID).Scan(
		&app.ID, &app.UserID, &app.JobID, &app.Status, &app.AppliedAt, &app.UpdatedAt,
		&app.ResumeVersion, &app.CoverLetterVersion,
		&app.SalaryOffered, &app.SalaryNegotiated, &app.Currency,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	noteQuery := `
		SELECT id, content, created_at
		FROM application_notes
		WHERE application_id = $1
		ORDER BY created_at, id`

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, noteQuery, app.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		app.Notes = append(app.Notes, note)
	}
	return &app, rows.Err()
}
