// Package activity implements the Activity repository using PostgreSQL.
// Activities are always listed by start_time ascending, ties broken by id.
package activity

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

const table = "activities"

var columns = []string{
	"id", "trip_block_id", "title", "description", "start_time", "end_time",
	"location", "category", "created_at", "updated_at",
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Single-row operations
// ---------------------------------------------------------------------------

// Create inserts an activity. An unknown trip block yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("trip_block_id", "title", "description", "start_time", "end_time", "location", "category").
		Values(p.TripBlockID, p.Title, p.Description, p.StartTime, p.EndTime, p.Location, p.Category).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip_block", p.TripBlockID)
	}

	a := toDomainActivity(row)
	return &a, nil
}

// GetByID returns an activity by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}

	a := toDomainActivity(row)
	return &a, nil
}

// Update overwrites every writable field, including the parent block.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.ActivityParams) (*domain.Activity, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("trip_block_id", p.TripBlockID).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("start_time", p.StartTime).
		Set("end_time", p.EndTime).
		Set("location", p.Location).
		Set("category", p.Category).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}

	a := toDomainActivity(row)
	return &a, nil
}

// Delete removes one activity.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "activity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Per-block operations
// ---------------------------------------------------------------------------

// ListByTripBlock returns a block's activities ordered by start time.
func (r *Repo) ListByTripBlock(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error) {
	return r.list(ctx, squirrel.Eq{"trip_block_id": tripBlockID}, tripBlockID)
}

// ListByTripBlockIDs returns the activities of all given blocks in one
// query, ordered by block then start time. Callers group by TripBlockID.
func (r *Repo) ListByTripBlockIDs(ctx context.Context, tripBlockIDs []uuid.UUID) ([]domain.Activity, error) {
	if len(tripBlockIDs) == 0 {
		return []domain.Activity{}, nil
	}
	return r.list(ctx, squirrel.Eq{"trip_block_id": tripBlockIDs}, uuid.Nil)
}

// DeleteByTripBlockIDs removes every activity of the given blocks and
// returns how many were deleted.
func (r *Repo) DeleteByTripBlockIDs(ctx context.Context, tripBlockIDs []uuid.UUID) (int, error) {
	if len(tripBlockIDs) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"trip_block_id": tripBlockIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete activities: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) ([]domain.Activity, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("trip_block_id", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip_block", id)
	}

	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainActivity(row))
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type activityRow struct {
	ID          uuid.UUID `db:"id"`
	TripBlockID uuid.UUID `db:"trip_block_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Location    string    `db:"location"`
	Category    *string   `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDomainActivity(row activityRow) domain.Activity {
	return domain.Activity{
		ID:          row.ID,
		TripBlockID: row.TripBlockID,
		Title:       row.Title,
		Description: row.Description,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		Location:    row.Location,
		Category:    row.Category,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
