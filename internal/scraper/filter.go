package scraper

import (
	"strings"

	"jobpilot/internal/config"
	"jobpilot/internal/domain"
)

// Filter applies the declarative inclusion policy to raw records. An empty
// allow-list admits every value for that dimension.
type Filter struct {
	skills    map[string]struct{}
	locations map[string]struct{}
}

func NewFilter(cfg config.FilterConfig) *Filter {
	return &Filter{
		skills:    toSet(cfg.Skills),
		locations: toSet(cfg.Locations),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

// Keep reports whether the record passes the policy: at least one required
// skill intersects the allow-list, and the location is allowed.
func (f *Filter) Keep(raw domain.RawListing) bool {
	return f.keepSkills(raw.RequiredSkills) && f.keepLocation(raw.Location)
}

// Apply returns the records that pass the policy, preserving order.
func (f *Filter) Apply(in []domain.RawListing) []domain.RawListing {
	kept := make([]domain.RawListing, 0, len(in))
	for _, raw := range in {
		if f.Keep(raw) {
			kept = append(kept, raw)
		}
	}
	return kept
}

func (f *Filter) keepSkills(skills []string) bool {
	if len(f.skills) == 0 {
		return true
	}
	for _, s := range skills {
		if _, ok := f.skills[strings.ToLower(strings.TrimSpace(s))]; ok {
			return true
		}
	}
	return false
}

func (f *Filter) keepLocation(location string) bool {
	if len(f.locations) == 0 {
		return true
	}
	_, ok := f.locations[strings.ToLower(strings.TrimSpace(location))]
	return ok
}
