package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ListingStatus string

const (
	ListingActive  ListingStatus = "active"
	ListingFilled  ListingStatus = "filled"
	ListingExpired ListingStatus = "expired"
)

type SalaryPeriod string

const (
	SalaryHourly SalaryPeriod = "hourly"
	SalaryYearly SalaryPeriod = "yearly"
)

type SalaryRange struct {
	Min      float64      `json:"min"`
	Max      float64      `json:"max"`
	Currency string       `json:"currency"`
	Period   SalaryPeriod `json:"period"`
}

// RawListing is one candidate record extracted from a source page before
// filtering. Field extraction failures degrade to empty values, so any field
// may be blank.
type RawListing struct {
	Title           string
	Company         string
	Location        string
	Description     string
	Link            string
	Salary          string
	PostedDate      string
	JobType         string
	ExperienceLevel string
	RequiredSkills  []string
	Benefits        []string
}

// Listing is one normalized job posting. The natural key
// (title, company, source) is unique; re-scrapes update in place.
type Listing struct {
	ID               int64
	Title            string
	Company          string
	Location         string
	Description      string
	ShortDescription string
	Link             string
	SourceID         int64
	Salary           SalaryRange
	JobType          string
	ExperienceLevel  string
	RequiredSkills   []string
	PreferredSkills  []string
	Benefits         []string
	IsRemote         bool
	PostedDate       *time.Time
	ScrapedAt        time.Time
	Status           ListingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var salaryNumber = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParseSalary extracts a salary range from free-form text like
// "$80,000 - $100,000 / year". A single number fills both bounds; text with
// no numbers yields a zero range.
func ParseSalary(text string) SalaryRange {
	r := SalaryRange{Currency: "USD", Period: SalaryYearly}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "/hr") || strings.Contains(lower, "hour") {
		r.Period = SalaryHourly
	}

	matches := salaryNumber.FindAllString(text, 2)
	if len(matches) == 0 {
		return r
	}
	r.Min, _ = strconv.ParseFloat(strings.ReplaceAll(matches[0], ",", ""), 64)
	r.Max = r.Min
	if len(matches) > 1 {
		r.Max, _ = strconv.ParseFloat(strings.ReplaceAll(matches[1], ",", ""), 64)
	}
	return r
}

var postedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"02/01/2006",
}

// ListingFromRaw normalizes a raw record into a Listing scraped from sourceID
// at scrapedAt. Unparseable posted dates are dropped rather than guessed.
func ListingFromRaw(raw RawListing, sourceID int64, scrapedAt time.Time) *Listing {
	l := &Listing{
		Title:           strings.TrimSpace(raw.Title),
		Company:         strings.TrimSpace(raw.Company),
		Location:        strings.TrimSpace(raw.Location),
		Description:     strings.TrimSpace(raw.Description),
		Link:            strings.TrimSpace(raw.Link),
		SourceID:        sourceID,
		Salary:          ParseSalary(raw.Salary),
		JobType:         strings.TrimSpace(raw.JobType),
		ExperienceLevel: strings.TrimSpace(raw.ExperienceLevel),
		RequiredSkills:  raw.RequiredSkills,
		Benefits:        raw.Benefits,
		IsRemote:        strings.Contains(strings.ToLower(raw.Location), "remote"),
		ScrapedAt:       scrapedAt,
		Status:          ListingActive,
	}
	l.ShortDescription = shorten(l.Description)

	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw.PostedDate)); err == nil {
			l.PostedDate = &t
			break
		}
	}
	return l
}

// shorten truncates on runes, never bytes, so a multi-byte character at the
// boundary cannot produce an invalid-UTF-8 short description.
func shorten(description string) string {
	runes := []rune(description)
	if len(runes) <= 200 {
		return description
	}
	return string(runes[:197]) + "..."
}
