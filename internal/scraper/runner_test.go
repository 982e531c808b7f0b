package scraper

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpilot/internal/browser"
	"jobpilot/internal/domain"
)

// fakeDriver simulates the browser capability with an in-memory element tree.

type fakeDriver struct {
	session *fakeSession
	openErr error
	opened  int
}

func (d *fakeDriver) NewSession(ctx context.Context) (browser.Session, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.opened++
	return d.session, nil
}

type fakeSession struct {
	navErr     error
	containers []*fakeElement
	headers    map[string]string
	closed     int
}

func (s *fakeSession) SetHeaders(headers map[string]string) error {
	s.headers = headers
	return nil
}

func (s *fakeSession) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	return s.navErr
}

func (s *fakeSession) Elements(selector string) ([]browser.Element, error) {
	out := make([]browser.Element, len(s.containers))
	for i, el := range s.containers {
		out[i] = el
	}
	return out, nil
}

func (s *fakeSession) Find(selector string, timeout time.Duration) (browser.Element, error) {
	return nil, errors.New("not found")
}

func (s *fakeSession) PrepareNavigation(timeout time.Duration) func() error {
	return func() error { return nil }
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeElement struct {
	text    string
	href    string
	textErr error
	// children maps a sub-selector to its matches.
	children map[string][]*fakeElement
}

func (e *fakeElement) Text() (string, error) {
	if e.textErr != nil {
		return "", e.textErr
	}
	return e.text, nil
}

func (e *fakeElement) Attr(name string) (string, error) {
	if name == "href" {
		return e.href, nil
	}
	return "", nil
}

func (e *fakeElement) Elements(selector string) ([]browser.Element, error) {
	matches := e.children[selector]
	out := make([]browser.Element, len(matches))
	for i, m := range matches {
		out[i] = m
	}
	return out, nil
}

func (e *fakeElement) Input(value string) error       { return nil }
func (e *fakeElement) SetFiles(paths ...string) error { return nil }
func (e *fakeElement) Click() error                   { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSelectors() domain.SelectorMap {
	return domain.SelectorMap{
		JobListing:     ".job",
		Title:          ".title",
		Company:        ".company",
		Location:       ".location",
		Description:    ".description",
		Link:           "a.apply",
		Salary:         ".salary",
		RequiredSkills: ".skill",
	}
}

func jobElement(title, company, location string, skills ...string) *fakeElement {
	skillEls := make([]*fakeElement, len(skills))
	for i, s := range skills {
		skillEls[i] = &fakeElement{text: s}
	}
	return &fakeElement{children: map[string][]*fakeElement{
		".title":    {{text: title}},
		".company":  {{text: company}},
		".location": {{text: location}},
		"a.apply":   {{href: "https://example.com/apply/" + title}},
		".skill":    skillEls,
	}}
}

func TestScrape_ExtractsRecordsPerContainer(t *testing.T) {
	session := &fakeSession{containers: []*fakeElement{
		jobElement("Engineer", "Acme", "Remote", "Go", "React"),
		jobElement("Designer", "Globex", "Paris"),
	}}
	runner := NewRunner(&fakeDriver{session: session}, time.Second, testLogger())

	src := domain.Source{
		Name:      "board",
		URL:       "https://example.com/jobs",
		Selectors: testSelectors(),
		Headers:   map[string]string{"Accept-Language": "en-US"},
	}
	raw, err := runner.Scrape(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, "Engineer", raw[0].Title)
	assert.Equal(t, "Acme", raw[0].Company)
	assert.Equal(t, "https://example.com/apply/Engineer", raw[0].Link)
	assert.Equal(t, []string{"Go", "React"}, raw[0].RequiredSkills)
	assert.Equal(t, map[string]string{"Accept-Language": "en-US"}, session.headers)
	assert.Equal(t, 1, session.closed)
}

func TestScrape_FieldFailureDegradesToEmpty(t *testing.T) {
	broken := jobElement("Engineer", "Acme", "Remote")
	broken.children[".title"] = []*fakeElement{{textErr: errors.New("stale element")}}
	// No description/salary selectors matched at all.
	session := &fakeSession{containers: []*fakeElement{broken}}
	runner := NewRunner(&fakeDriver{session: session}, time.Second, testLogger())

	raw, err := runner.Scrape(context.Background(), domain.Source{Selectors: testSelectors()})

	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Empty(t, raw[0].Title)
	assert.Empty(t, raw[0].Description)
	assert.Equal(t, "Acme", raw[0].Company)
}

func TestScrape_NavigationFailureIsTyped(t *testing.T) {
	session := &fakeSession{navErr: errors.New("timeout")}
	runner := NewRunner(&fakeDriver{session: session}, time.Second, testLogger())

	_, err := runner.Scrape(context.Background(), domain.Source{URL: "https://slow.example.com", Selectors: testSelectors()})

	var navErr *domain.NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, "https://slow.example.com", navErr.URL)
	assert.Equal(t, 1, session.closed, "session must be released on the failure path")
}

func TestScrape_SessionOpenFailure(t *testing.T) {
	runner := NewRunner(&fakeDriver{openErr: errors.New("browser gone")}, time.Second, testLogger())

	_, err := runner.Scrape(context.Background(), domain.Source{Selectors: testSelectors()})

	assert.Error(t, err)
}
