// Package catalog serves the activity catalog: filtered, paged search,
// filter metadata, recommendations and CSV ingestion.
package catalog

import (
	"context"
	"log/slog"
	"math"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

const (
	// DefaultPageSize is used by callers that omit a page size.
	DefaultPageSize = 10
	// MaxPageSize bounds a single search page.
	MaxPageSize = 100
	// MaxPage keeps Page*Size well inside the range of a Postgres OFFSET.
	MaxPage = math.MaxInt32 / MaxPageSize
	// DefaultMaxIngestRows bounds a single CSV upload.
	DefaultMaxIngestRows = 10000
)

type catalogRepo interface {
	Search(ctx context.Context, f domain.CatalogFilter, p domain.PageRequest) ([]domain.CatalogEntry, int, error)
	CreateBatch(ctx context.Context, entries []domain.CatalogEntry) (int, error)
	DistinctCountries(ctx context.Context) ([]string, error)
	DistinctLocations(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctTags(ctx context.Context) ([]string, error)
	CostRange(ctx context.Context) (domain.CostRange, error)
	DurationRange(ctx context.Context) (domain.DurationRange, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	repo          catalogRepo
	tx            txManager
	log           *slog.Logger
	maxIngestRows int
}

// NewService creates a new catalog service. maxIngestRows <= 0 selects
// DefaultMaxIngestRows.
func NewService(log *slog.Logger, repo catalogRepo, tx txManager, maxIngestRows int) *Service {
	if maxIngestRows <= 0 {
		maxIngestRows = DefaultMaxIngestRows
	}
	return &Service{
		repo:          repo,
		tx:            tx,
		log:           log.With("service", "catalog"),
		maxIngestRows: maxIngestRows,
	}
}
