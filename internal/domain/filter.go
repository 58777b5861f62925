package domain

import "strings"

// SortDirection is the direction of a sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) String() string { return string(d) }

// ParseSortDirection accepts "asc"/"desc" in any case. Empty means asc.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	default:
		return "", false
	}
}

// CatalogSortField names a sortable catalog attribute.
type CatalogSortField string

const (
	CatalogSortTitle           CatalogSortField = "title"
	CatalogSortLocation        CatalogSortField = "location"
	CatalogSortCountry         CatalogSortField = "country"
	CatalogSortCategory        CatalogSortField = "category"
	CatalogSortAverageCost     CatalogSortField = "averageCost"
	CatalogSortDuration        CatalogSortField = "typicalDurationMinutes"
	CatalogSortIsPopular       CatalogSortField = "isPopular"
	CatalogSortRecommendedTime CatalogSortField = "recommendedTime"
)

func (f CatalogSortField) String() string { return string(f) }

var catalogSortAliases = map[string]CatalogSortField{
	"title":                    CatalogSortTitle,
	"location":                 CatalogSortLocation,
	"country":                  CatalogSortCountry,
	"category":                 CatalogSortCategory,
	"averagecost":              CatalogSortAverageCost,
	"average_cost":             CatalogSortAverageCost,
	"typicaldurationminutes":   CatalogSortDuration,
	"typical_duration_minutes": CatalogSortDuration,
	"ispopular":                CatalogSortIsPopular,
	"is_popular":               CatalogSortIsPopular,
	"recommendedtime":          CatalogSortRecommendedTime,
	"recommended_time":         CatalogSortRecommendedTime,
}

// ParseCatalogSortField resolves API (camelCase) and column (snake_case)
// names, case-insensitively. Empty resolves to title.
func ParseCatalogSortField(s string) (CatalogSortField, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CatalogSortTitle, true
	}
	f, ok := catalogSortAliases[s]
	return f, ok
}

// PageRequest is a zero-based page with a single sort key.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    CatalogSortField
	Direction SortDirection
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results plus the metadata needed for paging controls.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int
	TotalPages    int
}

// NewPage builds a Page, computing TotalPages as ceil(total/size).
// Items is never nil.
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
