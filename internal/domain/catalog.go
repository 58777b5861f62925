package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CatalogEntry is a reusable activity template, independent of any trip.
type CatalogEntry struct {
	ID                     uuid.UUID
	Title                  string
	Description            *string
	Location               string
	Country                string
	Category               string
	TypicalDurationMinutes *int
	AverageCost            *float64
	// Tags is a comma-delimited list, e.g. "temple,culture".
	Tags      string
	IsPopular bool
	// RecommendedTime is a time of day formatted as "HH:MM".
	RecommendedTime *string
}

// TagList splits Tags into trimmed, non-empty values.
func (e CatalogEntry) TagList() []string {
	return SplitTags(e.Tags)
}

// TagDelimiter separates tags inside CatalogEntry.Tags.
const TagDelimiter = ","

// SplitTags splits a delimited tag string, trimming whitespace and dropping
// empty and duplicate values. Order of first occurrence is preserved.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, TagDelimiter)
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// JoinTags is the inverse of SplitTags.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagDelimiter)
}

// CatalogFilter is a set of optional criteria. A nil field does not narrow
// the result; all non-nil fields are combined with AND. Bounds are inclusive.
type CatalogFilter struct {
	Country     *string
	Location    *string
	Category    *string
	MinCost     *float64
	MaxCost     *float64
	MinDuration *int
	MaxDuration *int
	Popular     *bool
}

// FilterOptions lists the distinct values a CatalogFilter can match.
type FilterOptions struct {
	Countries  []string
	Locations  []string
	Categories []string
	Tags       []string
}

// CostRange holds min/max average cost. Both are nil for an empty catalog.
type CostRange struct {
	Min *float64
	Max *float64
}

// DurationRange holds min/max typical duration in minutes. Both are nil for
// an empty catalog.
type DurationRange struct {
	Min *int
	Max *int
}

// FilterRanges groups the numeric ranges of the catalog.
type FilterRanges struct {
	Cost     CostRange
	Duration DurationRange
}
