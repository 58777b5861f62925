// Package itinerary implements the Itinerary repository using PostgreSQL.
// A trip has at most one itinerary (unique trip_id).
package itinerary

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

const table = "itineraries"

var columns = []string{"id", "trip_id", "title", "description", "created_at", "updated_at"}

// Repo provides itinerary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new itinerary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an itinerary. A second itinerary for the same trip yields
// domain.ErrAlreadyExists; an unknown trip yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("trip_id", "title", "description").
		Values(it.TripID, it.Title, it.Description).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert itinerary: %w", err)
	}

	var row itineraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary for trip", it.TripID)
	}

	result := toDomainItinerary(row)
	return &result, nil
}

// GetByID returns an itinerary by primary key. TripBlocks is left empty.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "itinerary", id)
}

// GetByTripID returns the itinerary of a trip, or domain.ErrNotFound when
// the trip has none.
func (r *Repo) GetByTripID(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error) {
	return r.getOne(ctx, squirrel.Eq{"trip_id": tripID}, "itinerary for trip", tripID)
}

// LockForUpdate takes a row lock on the itinerary for the rest of the
// surrounding transaction. Inserts of child trip blocks block on it.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT id FROM itineraries WHERE id = $1 FOR UPDATE`, id).
		Scan(&locked)
	if err != nil {
		return postgres.MapError(err, "itinerary", id)
	}
	return nil
}

// Delete removes the itinerary row only. Blocks must be gone already.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "itinerary", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, entity string, id uuid.UUID) (*domain.Itinerary, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select itinerary: %w", err)
	}

	var row itineraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	result := toDomainItinerary(row)
	return &result, nil
}

type itineraryRow struct {
	ID          uuid.UUID `db:"id"`
	TripID      uuid.UUID `db:"trip_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDomainItinerary(row itineraryRow) domain.Itinerary {
	return domain.Itinerary{
		ID:          row.ID,
		TripID:      row.TripID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		TripBlocks:  []domain.TripBlock{},
	}
}
