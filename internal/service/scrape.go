package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobpilot/internal/domain"
)

// ScrapeService runs one source's scrape as an isolated unit of work:
// session extraction, filtering, natural-key upsert and event publishing.
type ScrapeService struct {
	runner    SessionRunner
	filter    RecordFilter
	listings  ListingStore
	publisher Publisher
	logger    *slog.Logger
}

func NewScrapeService(
	runner SessionRunner,
	filter RecordFilter,
	listings ListingStore,
	publisher Publisher,
	logger *slog.Logger,
) *ScrapeService {
	return &ScrapeService{
		runner:    runner,
		filter:    filter,
		listings:  listings,
		publisher: publisher,
		logger:    logger,
	}
}

// ScrapeSource extracts, filters and upserts listings for one source.
// Per-record persistence failures are counted, not fatal; extraction and
// navigation failures abort this source only.
func (s *ScrapeService) ScrapeSource(ctx context.Context, src domain.Source) (*domain.ScrapeStats, error) {
	startTime := time.Now()
	logger := s.logger.With("source", src.Name)

	raw, err := s.runner.Scrape(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("scrape source: %w", err)
	}

	kept := s.filter.Apply(raw)
	logger.Debug("applied inclusion policy", "scraped", len(raw), "kept", len(kept))

	stats := &domain.ScrapeStats{
		SourceID: src.ID,
		Scraped:  len(raw),
		Filtered: len(raw) - len(kept),
	}

	for i := range kept {
		listing := domain.ListingFromRaw(kept[i], src.ID, time.Now())
		if listing.Title == "" || listing.Company == "" {
			stats.Errors++
			logger.Warn("dropping record without natural key", "link", listing.Link)
			continue
		}

		id, isNew, err := s.listings.Upsert(ctx, listing)
		if err != nil {
			stats.Errors++
			logger.Warn("listing upsert failed", "title", listing.Title, "error", err)
			continue
		}
		listing.ID = id

		if s.publisher != nil {
			if err := s.publisher.PublishListing(ctx, listing, isNew); err != nil {
				stats.Errors++
				logger.Warn("listing publish failed", "listing_id", id, "error", err)
			} else {
				stats.Published++
			}
		}

		if isNew {
			stats.New++
		} else {
			stats.Updated++
		}
	}

	stats.Duration = time.Since(startTime)

	logger.Info("source scrape completed",
		"scraped", stats.Scraped,
		"filtered", stats.Filtered,
		"new", stats.New,
		"updated", stats.Updated,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}
