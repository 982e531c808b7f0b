package domain

import "time"

type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "applied"
	StatusScreening    ApplicationStatus = "screening"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusRejected     ApplicationStatus = "rejected"
	StatusAccepted     ApplicationStatus = "accepted"
	StatusWithdrawn    ApplicationStatus = "withdrawn"
	StatusSubmitted    ApplicationStatus = "submitted"
	StatusFailed       ApplicationStatus = "failed"
)

// Stage names one step of an automated submission attempt. The orchestrator
// moves strictly forward through these and records the stage a failure
// happened in.
type Stage string

const (
	StageStarted     Stage = "started"
	StageAnalyzing   Stage = "analyzing"
	StageCustomizing Stage = "customizing"
	StageFormFilling Stage = "form_filling"
	StageUploading   Stage = "uploading"
	StageSubmitting  Stage = "submitting"
)

type Note struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}

// Application is one user's pursuit of one listing. At most one row exists
// per (user, job); automated re-attempts overwrite the prior status.
type Application struct {
	ID                 int64
	UserID             int64
	JobID              int64
	Status             ApplicationStatus
	AppliedAt          time.Time
	UpdatedAt          time.Time
	ResumeVersion      *string
	CoverLetterVersion *string
	SalaryOffered      *float64
	SalaryNegotiated   *float64
	Currency           string
	Notes              []Note
}

// Profile is the candidate snapshot used to fill application forms.
// Read-only to this service.
type Profile struct {
	ID                int64
	UserID            int64
	Name              string
	Email             string
	Phone             string
	ResumePath        string
	CoverLetterPath   string
	DesiredSalary     string
	YearsOfExperience int
	CurrentCompany    string
}

// DocumentSet holds the customized artifacts uploaded with one attempt.
type DocumentSet struct {
	ResumePath      string
	CoverLetterPath string
}
