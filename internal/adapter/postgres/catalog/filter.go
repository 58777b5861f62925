package catalog

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// sortColumns maps API sort fields onto table columns. A field that is not
// listed here can never reach SQL.
var sortColumns = map[domain.CatalogSortField]string{
	domain.CatalogSortTitle:           "c.title",
	domain.CatalogSortLocation:        "c.location",
	domain.CatalogSortCountry:         "c.country",
	domain.CatalogSortCategory:        "c.category",
	domain.CatalogSortAverageCost:     "c.average_cost",
	domain.CatalogSortDuration:        "c.typical_duration_minutes",
	domain.CatalogSortIsPopular:       "c.is_popular",
	domain.CatalogSortRecommendedTime: "c.recommended_time",
}

// predicate accumulates one condition per supplied criterion. Nil criteria
// add nothing, so an empty filter yields an empty And.
func predicate(f domain.CatalogFilter) squirrel.And {
	and := squirrel.And{}

	if f.Country != nil {
		and = append(and, squirrel.Eq{"c.country": *f.Country})
	}
	if f.Location != nil {
		and = append(and, squirrel.Eq{"c.location": *f.Location})
	}
	if f.Category != nil {
		and = append(and, squirrel.Eq{"c.category": *f.Category})
	}
	if f.MinCost != nil {
		and = append(and, squirrel.GtOrEq{"c.average_cost": *f.MinCost})
	}
	if f.MaxCost != nil {
		and = append(and, squirrel.LtOrEq{"c.average_cost": *f.MaxCost})
	}
	if f.MinDuration != nil {
		and = append(and, squirrel.GtOrEq{"c.typical_duration_minutes": *f.MinDuration})
	}
	if f.MaxDuration != nil {
		and = append(and, squirrel.LtOrEq{"c.typical_duration_minutes": *f.MaxDuration})
	}
	if f.Popular != nil {
		and = append(and, squirrel.Eq{"c.is_popular": *f.Popular})
	}

	return and
}

// orderBy returns the ORDER BY terms for p: the requested column, then id so
// equal sort values still page deterministically.
func orderBy(p domain.PageRequest) ([]string, bool) {
	col, ok := sortColumns[p.SortBy]
	if !ok {
		return nil, false
	}
	dir := "ASC"
	if p.Direction == domain.SortDesc {
		dir = "DESC"
	}
	return []string{col + " " + dir, "c.id ASC"}, true
}
