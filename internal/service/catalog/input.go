package catalog

import (
	"fmt"
	"math"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// SearchInput holds optional filter criteria and paging parameters.
// SortBy accepts API names (averageCost) and column names (average_cost).
type SearchInput struct {
	Country     *string
	Location    *string
	Category    *string
	MinCost     *float64
	MaxCost     *float64
	MinDuration *int
	MaxDuration *int
	Popular     *bool

	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 || i.Page > MaxPage {
		errs = append(errs, domain.FieldError{Field: "page", Message: fmt.Sprintf("must be between 0 and %d", MaxPage)})
	}
	if i.Size <= 0 || i.Size > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: fmt.Sprintf("must be between 1 and %d", MaxPageSize)})
	}
	if _, ok := domain.ParseCatalogSortField(i.SortBy); !ok {
		errs = append(errs, domain.FieldError{Field: "sort", Message: fmt.Sprintf("unknown field %q", i.SortBy)})
	}
	if _, ok := domain.ParseSortDirection(i.Direction); !ok {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be asc or desc"})
	}

	if i.MinCost != nil && !finite(*i.MinCost) {
		errs = append(errs, domain.FieldError{Field: "minCost", Message: "must be a finite number"})
	} else if i.MinCost != nil && *i.MinCost < 0 {
		errs = append(errs, domain.FieldError{Field: "minCost", Message: "must be >= 0"})
	}
	if i.MaxCost != nil && !finite(*i.MaxCost) {
		errs = append(errs, domain.FieldError{Field: "maxCost", Message: "must be a finite number"})
	} else if i.MinCost != nil && i.MaxCost != nil && *i.MinCost > *i.MaxCost {
		errs = append(errs, domain.FieldError{Field: "maxCost", Message: "must be >= minCost"})
	}
	if i.MinDuration != nil && *i.MinDuration < 0 {
		errs = append(errs, domain.FieldError{Field: "minDuration", Message: "must be >= 0"})
	}
	if i.MinDuration != nil && i.MaxDuration != nil && *i.MinDuration > *i.MaxDuration {
		errs = append(errs, domain.FieldError{Field: "maxDuration", Message: "must be >= minDuration"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter converts the criteria, normalizing label values the same way
// ingestion stores them. Blank labels mean "no constraint".
func (i SearchInput) filter() domain.CatalogFilter {
	return domain.CatalogFilter{
		Country:     label(i.Country),
		Location:    label(i.Location),
		Category:    label(i.Category),
		MinCost:     i.MinCost,
		MaxCost:     i.MaxCost,
		MinDuration: i.MinDuration,
		MaxDuration: i.MaxDuration,
		Popular:     i.Popular,
	}
}

// pageRequest must only be called after Validate succeeded.
func (i SearchInput) pageRequest() domain.PageRequest {
	sortBy, _ := domain.ParseCatalogSortField(i.SortBy)
	dir, _ := domain.ParseSortDirection(i.Direction)
	return domain.PageRequest{Page: i.Page, Size: i.Size, SortBy: sortBy, Direction: dir}
}

// RecommendInput selects recommendations by the first supplied criterion in
// the order category, location, country, popular.
type RecommendInput struct {
	Category *string
	Location *string
	Country  *string
	Popular  *bool

	Page int
	Size int
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func label(s *string) *string {
	s = domain.TrimOrNil(s)
	if s == nil {
		return nil
	}
	v := domain.NormalizeLabel(*s)
	return &v
}
