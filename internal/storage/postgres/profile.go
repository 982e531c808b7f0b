package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"jobpilot/internal/domain"
)

// ProfileStore reads candidate snapshots. Profiles are owned by the account
// service; this store never writes them.
type ProfileStore struct {
	db *sqlx.DB
}

func NewProfileStore(db *sqlx.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, name, email, phone, resume_path, cover_letter_path,
			desired_salary, years_of_experience, current_company
		FROM profiles
		WHERE user_id = $1`

	var p domain.Profile
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone,
		&p.ResumePath, &p.CoverLetterPath,
		&p.DesiredSalary, &p.YearsOfExperience, &p.CurrentCompany,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
