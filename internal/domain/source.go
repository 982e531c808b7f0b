package domain

import "time"

// Cadence is the scheduling frequency tier of a source.
type Cadence string

const (
	CadenceHourly  Cadence = "hourly"
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Next returns the scrape time that follows from, derived only from the
// cadence tier. Unknown tiers fall back to daily.
func (c Cadence) Next(from time.Time) time.Time {
	switch c {
	case CadenceHourly:
		return from.Add(time.Hour)
	case CadenceWeekly:
		return from.AddDate(0, 0, 7)
	case CadenceMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, 1)
	}
}

type SourceType string

const (
	SourceJobBoard    SourceType = "job_board"
	SourceCareerPage  SourceType = "company_career_page"
	SourceAggregator  SourceType = "aggregator"
	SourceSocialMedia SourceType = "social_media"
	SourceOther       SourceType = "other"
)

// SelectorMap maps listing fields to CSS selectors. JobListing matches the
// container element of one posting; the remaining selectors are resolved
// relative to that container. Empty selectors yield empty fields.
type SelectorMap struct {
	JobListing      string `json:"jobListing"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	Link            string `json:"link"`
	Salary          string `json:"salary"`
	PostedDate      string `json:"postedDate"`
	RequiredSkills  string `json:"requiredSkills"`
	JobType         string `json:"jobType"`
	ExperienceLevel string `json:"experienceLevel"`
	Benefits        string `json:"benefits"`
}

type Credentials struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
}

type ProxyConfig struct {
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type PaginationType string

const (
	PaginationNone           PaginationType = "none"
	PaginationURL            PaginationType = "url"
	PaginationButton         PaginationType = "button"
	PaginationInfiniteScroll PaginationType = "infinite_scroll"
)

type Pagination struct {
	Type     PaginationType `json:"type"`
	Selector string         `json:"selector,omitempty"`
	MaxPages int            `json:"maxPages"`
}

// RateLimit is a source's request budget: at most MaxRequests dispatches per
// PerMinutes-minute window.
type RateLimit struct {
	MaxRequests int `json:"maxRequests"`
	PerMinutes  int `json:"perMinutes"`
}

func (r RateLimit) Window() time.Duration {
	if r.PerMinutes <= 0 {
		return time.Minute
	}
	return time.Duration(r.PerMinutes) * time.Minute
}

// ErrorEntry is one timestamped message in a source's append-only error log.
type ErrorEntry struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// Source is one configured scraping target together with its scheduling and
// telemetry state. Scheduling fields are mutated only through the registry's
// RecordOutcome after a scrape attempt.
type Source struct {
	ID                   int64
	Name                 string
	URL                  string
	Type                 SourceType
	Selectors            SelectorMap
	Cadence              Cadence
	LastScraped          *time.Time
	LastSuccessfulScrape *time.Time
	NextScheduledScrape  time.Time
	IsActive             bool
	Credentials          Credentials
	Headers              map[string]string
	Pagination           Pagination
	Proxy                ProxyConfig
	RateLimit            RateLimit
	SuccessRate          float64
	SuccessfulScrapes    int64
	TotalAttempts        int64
	ErrorLog             []ErrorEntry
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Due reports whether the source should be scraped at now.
func (s *Source) Due(now time.Time) bool {
	return s.IsActive && !s.NextScheduledScrape.After(now)
}

// ScrapeOutcome is the result of one scrape attempt, recorded against the
// source by the registry.
type ScrapeOutcome struct {
	At      time.Time
	Success bool
	Message string
}
