package submitter

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

type fakeDriver struct {
	session *fakeSession
	openErr error
}

func (d *fakeDriver) NewSession(ctx context.Context) (browser.Session, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.session, nil
}

type fakeSession struct {
	// elements maps selector → element; missing selectors fail Find.
	elements map[string]*fakeElement
	navErr   error
	waitErr  error
	closed   int
	// events records navigation-listener activity in order, interleaved
	// with element clicks via the onClick hook.
	events []string
}

func (s *fakeSession) SetHeaders(headers map[string]string) error { return nil }

func (s *fakeSession) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	return s.navErr
}

func (s *fakeSession) Elements(selector string) ([]browser.Element, error) {
	return nil, nil
}

func (s *fakeSession) Find(selector string, timeout time.Duration) (browser.Element, error) {
	el, ok := s.elements[selector]
	if !ok {
		return nil, errors.New("element not found: " + selector)
	}
	return el, nil
}

func (s *fakeSession) PrepareNavigation(timeout time.Duration) func() error {
	s.events = append(s.events, "listener-armed")
	return func() error {
		s.events = append(s.events, "waited")
		return s.waitErr
	}
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeElement struct {
	typed   []string
	files   []string
	clicked int
	onClick func()
}

func (e *fakeElement) Text() (string, error)                               { return "", nil }
func (e *fakeElement) Attr(name string) (string, error)                    { return "", nil }
func (e *fakeElement) Elements(selector string) ([]browser.Element, error) { return nil, nil }

func (e *fakeElement) Input(value string) error {
	e.typed = append(e.typed, value)
	return nil
}

func (e *fakeElement) SetFiles(paths ...string) error {
	e.files = append(e.files, paths...)
	return nil
}

func (e *fakeElement) Click() error {
	e.clicked++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func fullForm() map[string]*fakeElement {
	return map[string]*fakeElement{
		"#name":                {},
		"#email":               {},
		"#phone":               {},
		"#experience":          {},
		"#current-company":     {},
		"#desired-salary":      {},
		"#position-applied":    {},
		"#resume-upload":       {},
		"#cover-letter-upload": {},
		submitSelector:         {},
	}
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		UserID:            7,
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		Phone:             "+1 555 0100",
		YearsOfExperience: 9,
		CurrentCompany:    "Analytical Engines",
		DesiredSalary:     "120000",
	}
}

func testListing() *domain.Listing {
	return &domain.Listing{ID: 42, Title: "Backend Engineer", Link: "https://example.com/jobs/42"}
}

func noProgress(domain.Stage) {}

func TestSubmit_FillsUploadsAndSubmits(t *testing.T) {
	form := fullForm()
	session := &fakeSession{elements: form}
	runner := NewFormRunner(&fakeDriver{session: session}, time.Second, time.Second, testLogger())

	docs := domain.DocumentSet{ResumePath: "/tmp/customized_resume.txt", CoverLetterPath: "/tmp/customized_cover.txt"}
	var stages []domain.Stage
	err := runner.Submit(context.Background(), testListing(), testProfile(), docs, func(s domain.Stage) {
		stages = append(stages, s)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Ada Lovelace"}, form["#name"].typed)
	assert.Equal(t, []string{"9"}, form["#experience"].typed)
	assert.Equal(t, []string{"Backend Engineer"}, form["#position-applied"].typed)
	assert.Equal(t, []string{"/tmp/customized_resume.txt"}, form["#resume-upload"].files)
	assert.Equal(t, []string{"/tmp/customized_cover.txt"}, form["#cover-letter-upload"].files)
	assert.Equal(t, 1, form[submitSelector].clicked)
	assert.Equal(t, []domain.Stage{domain.StageFormFilling, domain.StageUploading, domain.StageSubmitting}, stages)
	assert.Equal(t, 1, session.closed)
}

func TestSubmit_MissingFieldIsSkipped(t *testing.T) {
	form := fullForm()
	delete(form, "#phone")
	delete(form, "#cover-letter-upload")
	session := &fakeSession{elements: form}
	runner := NewFormRunner(&fakeDriver{session: session}, time.Second, time.Second, testLogger())

	err := runner.Submit(context.Background(), testListing(), testProfile(), domain.DocumentSet{}, noProgress)

	require.NoError(t, err)
	assert.Equal(t, 1, form[submitSelector].clicked)
}

func TestSubmit_MissingSubmitControlIsFatal(t *testing.T) {
	form := fullForm()
	delete(form, submitSelector)
	session := &fakeSession{elements: form}
	runner := NewFormRunner(&fakeDriver{session: session}, time.Second, time.Second, testLogger())

	err := runner.Submit(context.Background(), testListing(), testProfile(), domain.DocumentSet{}, noProgress)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmitControlMissing)
	assert.Equal(t, 1, session.closed, "session must be released on the failure path")
}

func TestSubmit_NavigationFailure(t *testing.T) {
	session := &fakeSession{navErr: errors.New("timeout"), elements: fullForm()}
	runner := NewFormRunner(&fakeDriver{session: session}, time.Second, time.Second, testLogger())

	err := runner.Submit(context.Background(), testListing(), testProfile(), domain.DocumentSet{}, noProgress)

	var navErr *domain.NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, 1, session.closed)
}

func TestSubmit_ArmsNavigationListenerBeforeClick(t *testing.T) {
	// A confirmation page that loads before the listener exists would be
	// missed entirely, so the wait must be live when the click fires.
	form := fullForm()
	session := &fakeSession{elements: form}
	form[submitSelector].onClick = func() {
		session.events = append(session.events, "click")
	}
	runner := NewFormRunner(&fakeDriver{session: session}, time.Second, time.Second, testLogger())

	err := runner.Submit(context.Background(), testListing(), testProfile(), domain.DocumentSet{}, noProgress)

	require.NoError(t, err)
	assert.Equal(t, []string{"listener-armed", "click", "waited"}, session.events)
}

func TestSubmit_ConfirmNavigationTimeout(t *testing.T) {
	session := &fakeSession{elements: fullForm(), waitErr: context.DeadlineExceeded}
	runner := NewFormRunner(&fakeDriver{session: session}, time.Second, time.Second, testLogger())

	err := runner.Submit(context.Background(), testListing(), testProfile(), domain.DocumentSet{}, noProgress)

	var formErr *domain.FormError
	require.ErrorAs(t, err, &formErr)
}
