package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobpilot/internal/analyze"
	"jobpilot/internal/document"
	"jobpilot/internal/domain"
)

// SubmitService orchestrates one automated application attempt:
// started → analyzing → customizing → form_filling → uploading → submitting.
// Any fatal step error records status=failed for the (user, job) pair and is
// re-raised to the caller; success records status=submitted. Either way the
// write is an upsert, so re-attempts overwrite rather than duplicate.
type SubmitService struct {
	listings   ListingStore
	profiles   ProfileStore
	apps       ApplicationStore
	txManager  TransactionManager
	customizer Customizer
	form       FormFiller
	publisher  Publisher
	logger     *slog.Logger
}

func NewSubmitService(
	listings ListingStore,
	profiles ProfileStore,
	apps ApplicationStore,
	txManager TransactionManager,
	customizer Customizer,
	form FormFiller,
	publisher Publisher,
	logger *slog.Logger,
) *SubmitService {
	return &SubmitService{
		listings:   listings,
		profiles:   profiles,
		apps:       apps,
		txManager:  txManager,
		customizer: customizer,
		form:       form,
		publisher:  publisher,
		logger:     logger,
	}
}

// Submit runs the full attempt for one (user, job) pair.
func (s *SubmitService) Submit(ctx context.Context, userID, jobID int64) error {
	logger := s.logger.With("user_id", userID, "job_id", jobID)
	stage := domain.StageStarted
	logger.Info("submission started")

	listing, err := s.listings.GetByID(ctx, jobID)
	if err != nil {
		return s.fail(ctx, userID, jobID, stage, fmt.Errorf("load listing: %w", err), logger)
	}
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return s.fail(ctx, userID, jobID, stage, fmt.Errorf("load profile: %w", err), logger)
	}

	stage = domain.StageAnalyzing
	keywords := analyze.Top(listing.Description, document.KeywordLimit)

	stage = domain.StageCustomizing
	resume, err := s.customizer.Customize(profile.ResumePath, keywords)
	if err != nil {
		return s.fail(ctx, userID, jobID, stage, fmt.Errorf("customize resume: %w", err), logger)
	}
	coverLetter, err := s.customizer.Customize(profile.CoverLetterPath, keywords)
	if err != nil {
		return s.fail(ctx, userID, jobID, stage, fmt.Errorf("customize cover letter: %w", err), logger)
	}
	docs := domain.DocumentSet{ResumePath: resume, CoverLetterPath: coverLetter}

	err = s.form.Submit(ctx, listing, profile, docs, func(next domain.Stage) {
		stage = next
		logger.Debug("submission stage", "stage", next)
	})
	if err != nil {
		return s.fail(ctx, userID, jobID, stage, fmt.Errorf("submit application: %w", err), logger)
	}

	app := &domain.Application{
		UserID:             userID,
		JobID:              jobID,
		Status:             domain.StatusSubmitted,
		AppliedAt:          time.Now(),
		UpdatedAt:          time.Now(),
		ResumeVersion:      &resume,
		CoverLetterVersion: &coverLetter,
	}
	if err := s.record(ctx, app, ""); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSubmission(ctx, app); err != nil {
			logger.Warn("submission publish failed", "error", err)
		}
	}

	logger.Info("submission succeeded")
	return nil
}

// fail records the failed attempt and re-raises cause to the caller. A
// persistence failure while recording is logged, not allowed to mask cause.
func (s *SubmitService) fail(ctx context.Context, userID, jobID int64, stage domain.Stage, cause error, logger *slog.Logger) error {
	logger.Error("submission failed", "stage", stage, "error", cause)

	app := &domain.Application{
		UserID:    userID,
		JobID:     jobID,
		Status:    domain.StatusFailed,
		AppliedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	note := fmt.Sprintf("automated submission failed at stage %s: %v", stage, cause)
	if err := s.record(ctx, app, note); err != nil {
		logger.Error("failed to record submission failure", "error", err)
	}

	return cause
}

// record upserts the application and appends the note, if any, in one
// transaction.
func (s *SubmitService) record(ctx context.Context, app *domain.Application, note string) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.apps.Upsert(txCtx, app)
		if err != nil {
			return fmt.Errorf("upsert application: %w", err)
		}
		app.ID = id

		if note != "" {
			if err := s.apps.AddNote(txCtx, id, note); err != nil {
				return fmt.Errorf("add note: %w", err)
			}
		}
		return nil
	})
}
