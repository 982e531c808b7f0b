package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

type Config struct {
	ControlURL string
	UserAgent  string
}

// RodDriver drives a Chromium instance over the devtools protocol. One
// browser process is shared; isolation happens at the page level, one page
// per session.
type RodDriver struct {
	browser *rod.Browser
	ua      string
}

func NewRodDriver(cfg Config) (*RodDriver, error) {
	controlURL := cfg.ControlURL
	if controlURL == "" {
		u, err := launcher.New().Headless(true).NoSandbox(true).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	return &RodDriver{browser: b, ua: cfg.UserAgent}, nil
}

func (d *RodDriver) NewSession(ctx context.Context) (Session, error) {
	page, err := d.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	page = page.Context(ctx)

	if d.ua != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: d.ua}); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("set user agent: %w", err)
		}
	}

	return &rodSession{page: page}, nil
}

func (d *RodDriver) Close() error {
	return d.browser.Close()
}

type rodSession struct {
	page *rod.Page
}

func (s *rodSession) SetHeaders(headers map[string]string) error {
	pairs := make([]string, 0, len(headers)*2)
	for k, v := range headers {
		pairs = append(pairs, k, v)
	}
	_, err := s.page.SetExtraHeaders(pairs)
	return err
}

func (s *rodSession) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	page := s.page.Context(ctx).Timeout(timeout)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitIdle(timeout)
}

func (s *rodSession) Elements(selector string) ([]Element, error) {
	els, err := s.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = &rodElement{el: el}
	}
	return out, nil
}

func (s *rodSession) Find(selector string, timeout time.Duration) (Element, error) {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, err
	}
	return &rodElement{el: el.CancelTimeout()}, nil
}

func (s *rodSession) PrepareNavigation(timeout time.Duration) func() error {
	ctx, cancel := context.WithTimeout(s.page.GetContext(), timeout)

	// The event subscription starts here, before the caller triggers the
	// navigation, so a fast page change cannot slip past the wait.
	wait := s.page.Context(ctx).WaitNavigation(proto.PageLifecycleEventNameNetworkAlmostIdle)

	return func() error {
		defer cancel()
		wait()

		// wait returns silently on context expiry, so surface the timeout.
		if err := ctx.Err(); err == context.DeadlineExceeded {
			return err
		}
		return nil
	}
}

func (s *rodSession) Close() error {
	return s.page.Close()
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

func (e *rodElement) Attr(name string) (string, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func (e *rodElement) Elements(selector string) ([]Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = &rodElement{el: el}
	}
	return out, nil
}

func (e *rodElement) Input(value string) error {
	return e.el.Input(value)
}

func (e *rodElement) SetFiles(paths ...string) error {
	return e.el.SetFiles(paths)
}

func (e *rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}
