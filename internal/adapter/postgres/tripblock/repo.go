// Package tripblock implements the TripBlock repository using PostgreSQL.
// Blocks are always listed by start_time ascending, ties broken by id.
package tripblock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

const table = "trip_blocks"

var columns = []string{
	"id", "itinerary_id", "title", "description", "start_time", "end_time",
	"location", "country", "created_at", "updated_at",
}

// Repo provides trip block persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trip block repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Single-row operations
// ---------------------------------------------------------------------------

// Create inserts a block. An unknown itinerary yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, p domain.TripBlockParams) (*domain.TripBlock, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("itinerary_id", "title", "description", "start_time", "end_time", "location", "country").
		Values(p.ItineraryID, p.Title, p.Description, p.StartTime, p.EndTime, p.Location, p.Country).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert trip block: %w", err)
	}

	var row blockRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary", p.ItineraryID)
	}

	b := toDomainBlock(row)
	return &b, nil
}

// GetByID returns a block without activities.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TripBlock, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select trip block: %w", err)
	}

	var row blockRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip_block", id)
	}

	b := toDomainBlock(row)
	return &b, nil
}

// Update overwrites every writable field, including the parent itinerary.
// A missing block or an unknown itinerary yields domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.TripBlockParams) (*domain.TripBlock, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("itinerary_id", p.ItineraryID).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("start_time", p.StartTime).
		Set("end_time", p.EndTime).
		Set("location", p.Location).
		Set("country", p.Country).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update trip block: %w", err)
	}

	var row blockRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip_block", id)
	}

	b := toDomainBlock(row)
	return &b, nil
}

// Delete removes one block. Its activities must be gone already.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM trip_blocks WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "trip_block", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip_block %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Per-itinerary operations
// ---------------------------------------------------------------------------

// ListByItinerary returns the blocks of an itinerary ordered by start time.
// Activities are left empty.
func (r *Repo) ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.TripBlock, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"itinerary_id": itineraryID}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trip blocks: %w", err)
	}

	var rows []blockRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary", itineraryID)
	}

	blocks := make([]domain.TripBlock, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, toDomainBlock(row))
	}
	return blocks, nil
}

// IDsByItinerary returns the ids of the itinerary's blocks.
func (r *Repo) IDsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids,
		`SELECT id FROM trip_blocks WHERE itinerary_id = $1 ORDER BY start_time, id`, itineraryID)
	if err != nil {
		return nil, postgres.MapError(err, "itinerary", itineraryID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// DeleteByItinerary removes every block of the itinerary and returns how
// many were deleted. Their activities must be gone already.
func (r *Repo) DeleteByItinerary(ctx context.Context, itineraryID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM trip_blocks WHERE itinerary_id = $1`, itineraryID)
	if err != nil {
		return 0, postgres.MapError(err, "itinerary", itineraryID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type blockRow struct {
	ID          uuid.UUID `db:"id"`
	ItineraryID uuid.UUID `db:"itinerary_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Location    *string   `db:"location"`
	Country     *string   `db:"country"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDomainBlock(row blockRow) domain.TripBlock {
	return domain.TripBlock{
		ID:          row.ID,
		ItineraryID: row.ItineraryID,
		Title:       row.Title,
		Description: row.Description,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		Location:    row.Location,
		Country:     row.Country,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Activities:  []domain.Activity{},
	}
}
