// Package browser abstracts the headless-browser capability the session
// runners depend on. Each Session is one isolated automation context owned by
// a single unit of work, which must close it on every exit path.
package browser

import (
	"context"
	"time"
)

type Driver interface {
	NewSession(ctx context.Context) (Session, error)
}

type Session interface {
	// SetHeaders attaches extra HTTP headers to every request of the session.
	SetHeaders(headers map[string]string) error
	// Navigate loads url and waits for network quiescence, bounded by timeout.
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	// Elements returns all current matches without waiting.
	Elements(selector string) ([]Element, error)
	// Find waits up to timeout for a match.
	Find(selector string, timeout time.Duration) (Element, error)
	// PrepareNavigation subscribes to the next navigation immediately and
	// returns a wait bounded by timeout. Callers arm it before triggering
	// the navigation so a fast page change is never missed.
	PrepareNavigation(timeout time.Duration) func() error
	Close() error
}

type Element interface {
	Text() (string, error)
	Attr(name string) (string, error)
	Elements(selector string) ([]Element, error)
	Input(value string) error
	SetFiles(paths ...string) error
	Click() error
}
