// Package scheduler drives the recurring scrape cycle: it asks the source
// registry which sources are due, dispatches each as an isolated unit of
// work under a global concurrency budget and per-source rate limits, and
// records every outcome back against the source.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"jobpilot/internal/domain"
)

// SourceScraper runs one source's scrape end to end.
type SourceScraper interface {
	ScrapeSource(ctx context.Context, source domain.Source) (*domain.ScrapeStats, error)
}

// Registry is the scheduling-state side of the source registry.
type Registry interface {
	FindDue(ctx context.Context, now time.Time) ([]domain.Source, error)
	RecordOutcome(ctx context.Context, source *domain.Source, outcome domain.ScrapeOutcome) error
}

type Scheduler struct {
	scraper      SourceScraper
	registry     Registry
	interval     time.Duration
	cycleTimeout time.Duration
	concurrency  int
	logger       *slog.Logger

	mu       sync.Mutex
	limiters map[int64]*rate.Limiter

	now func() time.Time
}

func NewScheduler(
	scraper SourceScraper,
	registry Registry,
	interval time.Duration,
	cycleTimeout time.Duration,
	concurrency int,
	logger *slog.Logger,
) *Scheduler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scheduler{
		scraper:      scraper,
		registry:     registry,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		concurrency:  concurrency,
		logger:       logger,
		limiters:     make(map[int64]*rate.Limiter),
		now:          time.Now,
	}
}

// Start runs cycles until ctx is cancelled. The first cycle runs immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "concurrency", s.concurrency)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	if _, err := s.RunCycle(cycleCtx); err != nil {
		s.logger.Error("cycle failed", "error", err)
	}
}

// RunCycle executes one scheduling cycle at the injected clock's now. A
// failing source is recorded and skipped; it never aborts the cycle or any
// other source's scrape.
func (s *Scheduler) RunCycle(ctx context.Context) (*domain.CycleStats, error) {
	startTime := s.now()

	due, err := s.registry.FindDue(ctx, startTime)
	if err != nil {
		return nil, fmt.Errorf("find due sources: %w", err)
	}

	stats := &domain.CycleStats{Due: len(due)}
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i := range due {
		src := due[i]

		if !s.limiter(&src).Allow() {
			stats.Skipped++
			s.logger.Warn("rate budget exhausted, skipping dispatch",
				"source", src.Name,
				"max_requests", src.RateLimit.MaxRequests,
				"per_minutes", src.RateLimit.PerMinutes,
			)
			continue
		}

		stats.Dispatched++
		g.Go(func() error {
			result, scrapeErr := s.scraper.ScrapeSource(ctx, src)

			outcome := domain.ScrapeOutcome{At: s.now(), Success: scrapeErr == nil}
			if scrapeErr != nil {
				outcome.Message = scrapeErr.Error()
				s.logger.Error("source scrape failed", "source", src.Name, "error", scrapeErr)
			}
			if err := s.registry.RecordOutcome(ctx, &src, outcome); err != nil {
				s.logger.Error("record outcome failed", "source", src.Name, "error", err)
			}

			mu.Lock()
			defer mu.Unlock()
			if scrapeErr != nil {
				stats.Failed++
			} else {
				stats.Succeeded++
				stats.Upserted += result.New + result.Updated
			}
			return nil
		})
	}

	_ = g.Wait()

	stats.Duration = time.Since(startTime)

	s.logger.Info("cycle completed",
		"due", stats.Due,
		"dispatched", stats.Dispatched,
		"skipped", stats.Skipped,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"upserted", stats.Upserted,
		"duration", stats.Duration,
	)

	return stats, nil
}

// limiter returns the per-source limiter, creating it from the source's
// budget on first dispatch. Budget: MaxRequests tokens refilled evenly over
// the source's window.
func (s *Scheduler) limiter(src *domain.Source) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[src.ID]
	if !ok {
		maxRequests := src.RateLimit.MaxRequests
		if maxRequests <= 0 {
			maxRequests = 60
		}
		limit := rate.Limit(float64(maxRequests) / src.RateLimit.Window().Seconds())
		l = rate.NewLimiter(limit, maxRequests)
		s.limiters[src.ID] = l
	}
	return l
}
