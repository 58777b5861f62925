// Package trip implements the Trip repository using PostgreSQL.
// A trip is the root of the planning aggregate; its itinerary lives in the
// itinerary package and is only referenced here through has_itinerary.
package trip

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

const table = "trips"

var columns = []string{
	"id", "user_id", "title", "description", "start_date", "end_date", "destinations", "created_at", "updated_at",
}

// Repo provides trip persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trip repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a trip for t.UserID. An unknown user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error) {
	destinations := t.Destinations
	if destinations == nil {
		destinations = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "description", "start_date", "end_date", "destinations").
		Values(t.UserID, t.Title, t.Description, t.StartDate, t.EndDate, destinations).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", t.UserID)
	}

	result := toDomainTrip(row)
	return &result, nil
}

// GetByID returns a trip by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", id)
	}

	result := toDomainTrip(row)
	return &result, nil
}

// ListByUser returns the user's trips ordered by start date, then creation
// time. Each summary carries whether an itinerary exists.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripSummary, error) {
	query, args, err := postgres.Builder().
		Select(qualified("t")...).
		Column("EXISTS (SELECT 1 FROM itineraries i WHERE i.trip_id = t.id) AS has_itinerary").
		From(table + " t").
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.start_date ASC", "t.created_at ASC", "t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trips: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", uuid.Nil)
	}

	result := make([]domain.TripSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.TripSummary{
			Trip:         toDomainTrip(row.trip()),
			HasItinerary: row.HasItinerary,
		})
	}
	return result, nil
}

// Delete removes the trip row only. The itinerary must be gone already;
// otherwise the RESTRICT foreign key makes this fail.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "trip", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type tripRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Destinations []string  `db:"destinations"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type summaryRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Destinations []string  `db:"destinations"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	HasItinerary bool      `db:"has_itinerary"`
}

func (s summaryRow) trip() tripRow {
	return tripRow{
		ID:           s.ID,
		UserID:       s.UserID,
		Title:        s.Title,
		Description:  s.Description,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Destinations: s.Destinations,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toDomainTrip(row tripRow) domain.Trip {
	destinations := row.Destinations
	if destinations == nil {
		destinations = []string{}
	}
	return domain.Trip{
		ID:           row.ID,
		UserID:       row.UserID,
		Title:        row.Title,
		Description:  row.Description,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		Destinations: destinations,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func qualified(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
