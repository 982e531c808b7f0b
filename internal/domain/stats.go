package domain

import "time"

// ScrapeStats holds statistics for one source's scrape.
type ScrapeStats struct {
	SourceID  int64
	Scraped   int
	Filtered  int
	New       int
	Updated   int
	Errors    int
	Published int
	Duration  time.Duration
}

// CycleStats aggregates one scheduling cycle across all due sources.
type CycleStats struct {
	Due        int
	Dispatched int
	Skipped    int
	Succeeded  int
	Failed     int
	Upserted   int
	Duration   time.Duration
}
