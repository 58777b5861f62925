// Package catalog implements the activity catalog repository: the dynamic
// filter-and-page query and the distinct/range metadata derived from the
// same table.
package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

const table = "activity_catalog c"

var selectColumns = []string{
	"c.id",
	"c.title",
	"c.description",
	"c.location",
	"c.country",
	"c.category",
	"c.typical_duration_minutes",
	"c.average_cost",
	"c.tags",
	"c.is_popular",
	"to_char(c.recommended_time, 'HH24:MI') AS recommended_time",
}

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

// Search returns one page of entries matching every non-nil criterion of f,
// plus the total number of matches. The count and the page share the same
// predicate; run Search inside a read transaction to make them agree under
// concurrent writes.
func (r *Repo) Search(ctx context.Context, f domain.CatalogFilter, p domain.PageRequest) ([]domain.CatalogEntry, int, error) {
	order, ok := orderBy(p)
	if !ok {
		return nil, 0, domain.NewValidationError("sort", fmt.Sprintf("unknown sort field %q", p.SortBy))
	}

	where := predicate(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQ := postgres.Builder().Select("count(*)").From(table)
	if len(where) > 0 {
		countQ = countQ.Where(where)
	}
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build catalog count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "catalog", uuid.Nil)
	}

	if total == 0 || p.Offset() >= total {
		return []domain.CatalogEntry{}, total, nil
	}

	pageQ := postgres.Builder().
		Select(selectColumns...).
		From(table).
		OrderBy(order...).
		Limit(uint64(p.Size)).
		Offset(uint64(p.Offset()))
	if len(where) > 0 {
		pageQ = pageQ.Where(where)
	}
	pageSQL, pageArgs, err := pageQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build catalog page: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, pageSQL, pageArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "catalog", uuid.Nil)
	}

	return toDomainEntries(rows), total, nil
}

// ---------------------------------------------------------------------------
// Ingestion
// ---------------------------------------------------------------------------

const insertEntrySQL = `
INSERT INTO activity_catalog
    (title, description, location, country, category, typical_duration_minutes,
     average_cost, tags, is_popular, recommended_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::time)`

// CreateBatch inserts entries with a pgx.Batch and returns the number of
// rows written. Wrap it in a transaction for all-or-nothing semantics.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.CatalogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertEntrySQL,
			e.Title, e.Description, e.Location, e.Country, e.Category,
			e.TypicalDurationMinutes, e.AverageCost, e.Tags, e.IsPopular, e.RecommendedTime,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("catalog row %d: %w", i+1, postgres.MapError(err, "catalog_entry", uuid.Nil))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Metadata
// ---------------------------------------------------------------------------

// DistinctCountries returns every non-empty country, sorted ascending.
func (r *Repo) DistinctCountries(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "country")
}

// DistinctLocations returns every non-empty location, sorted ascending.
func (r *Repo) DistinctLocations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "location")
}

// DistinctCategories returns every non-empty category, sorted ascending.
func (r *Repo) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

const distinctTagsSQL = `
SELECT DISTINCT btrim(tag) AS tag
FROM activity_catalog, unnest(string_to_array(tags, ',')) AS tag
WHERE btrim(tag) <> ''
ORDER BY 1`

// DistinctTags splits every tags value on ",", trims the parts and returns
// the distinct non-empty ones, sorted ascending.
func (r *Repo) DistinctTags(ctx context.Context) ([]string, error) {
	return r.selectStrings(ctx, distinctTagsSQL)
}

// CostRange returns min/max average cost; both nil when no entry has a cost.
func (r *Repo) CostRange(ctx context.Context) (domain.CostRange, error) {
	var out domain.CostRange
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT min(average_cost), max(average_cost) FROM activity_catalog`).
		Scan(&out.Min, &out.Max)
	if err != nil {
		return domain.CostRange{}, postgres.MapError(err, "catalog", uuid.Nil)
	}
	return out, nil
}

// DurationRange returns min/max typical duration; both nil when no entry
// has a duration.
func (r *Repo) DurationRange(ctx context.Context) (domain.DurationRange, error) {
	var out domain.DurationRange
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT min(typical_duration_minutes), max(typical_duration_minutes) FROM activity_catalog`).
		Scan(&out.Min, &out.Max)
	if err != nil {
		return domain.DurationRange{}, postgres.MapError(err, "catalog", uuid.Nil)
	}
	return out, nil
}

func (r *Repo) distinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := postgres.Builder().
		Select(column).
		Distinct().
		From("activity_catalog").
		Where(squirrel.And{
			squirrel.NotEq{column: nil},
			squirrel.NotEq{column: ""},
		}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distinct %s: %w", column, err)
	}
	return r.selectStrings(ctx, query, args...)
}

func (r *Repo) selectStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	var out []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "catalog", uuid.Nil)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type entryRow struct {
	ID                     uuid.UUID `db:"id"`
	Title                  string    `db:"title"`
	Description            *string   `db:"description"`
	Location               string    `db:"location"`
	Country                string    `db:"country"`
	Category               string    `db:"category"`
	TypicalDurationMinutes *int      `db:"typical_duration_minutes"`
	AverageCost            *float64  `db:"average_cost"`
	Tags                   string    `db:"tags"`
	IsPopular              bool      `db:"is_popular"`
	RecommendedTime        *string   `db:"recommended_time"`
}

func toDomainEntries(rows []entryRow) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CatalogEntry{
			ID:                     row.ID,
			Title:                  row.Title,
			Description:            row.Description,
			Location:               row.Location,
			Country:                row.Country,
			Category:               row.Category,
			TypicalDurationMinutes: row.TypicalDurationMinutes,
			AverageCost:            row.AverageCost,
			Tags:                   row.Tags,
			IsPopular:              row.IsPopular,
			RecommendedTime:        row.RecommendedTime,
		})
	}
	return out
}
