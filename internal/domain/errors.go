package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound       = errors.New("source not found")
	ErrListingNotFound      = errors.New("listing not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrSubmitControlMissing = errors.New("submit control not found")
)

// NavigationError is a page load or timeout failure. It is fatal to its unit
// of work only; a failed source is retried on its next scheduled cycle.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// FormError is a fatal form interaction failure during submission. Missing
// optional fields are skipped and never produce a FormError; only the submit
// control itself is mandatory.
type FormError struct {
	Selector string
	Err      error
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form interaction %q: %v", e.Selector, e.Err)
}

func (e *FormError) Unwrap() error { return e.Err }
