package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Ptr returns a pointer to v. Handy for optional fields in test fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// SeedUser creates a user with role "user". Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "traveler-" + suffix,
		Email:        "traveler-" + suffix + "@example.com",
		FullName:     "Test Traveler " + suffix,
		PasswordHash: "not-a-real-hash",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, full_name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Username, user.Email, user.FullName, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTrip creates a trip owned by userID spanning start..start+days.
func SeedTrip(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, start time.Time, days int) domain.Trip {
	t.Helper()
	ctx := context.Background()

	trip := domain.Trip{
		UserID:       userID,
		Title:        "Trip " + uniqueSuffix(),
		StartDate:    start.UTC().Truncate(24 * time.Hour),
		EndDate:      start.UTC().Truncate(24*time.Hour).AddDate(0, 0, days),
		Destinations: []string{"Bangkok", "Chiang Mai"},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO trips (user_id, title, start_date, end_date, destinations)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		trip.UserID, trip.Title, trip.StartDate, trip.EndDate, trip.Destinations,
	).Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTrip: %v", err)
	}

	return trip
}

// SeedItinerary creates the itinerary of tripID.
func SeedItinerary(t *testing.T, pool *pgxpool.Pool, tripID uuid.UUID) domain.Itinerary {
	t.Helper()
	ctx := context.Background()

	it := domain.Itinerary{
		TripID: tripID,
		Title:  "Itinerary " + uniqueSuffix(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO itineraries (trip_id, title) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		it.TripID, it.Title,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItinerary: %v", err)
	}

	return it
}

// SeedTripBlock creates a block of itineraryID lasting from start to start+dur.
func SeedTripBlock(t *testing.T, pool *pgxpool.Pool, itineraryID uuid.UUID, start time.Time, dur time.Duration) domain.TripBlock {
	t.Helper()
	ctx := context.Background()

	start = start.UTC().Truncate(time.Microsecond)
	b := domain.TripBlock{
		ItineraryID: itineraryID,
		Title:       "Block " + uniqueSuffix(),
		StartTime:   start,
		EndTime:     start.Add(dur),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO trip_blocks (itinerary_id, title, start_time, end_time)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		b.ItineraryID, b.Title, b.StartTime, b.EndTime,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTripBlock: %v", err)
	}

	return b
}

// SeedActivity creates an activity of blockID lasting from start to start+dur.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, blockID uuid.UUID, start time.Time, dur time.Duration) domain.Activity {
	t.Helper()
	ctx := context.Background()

	start = start.UTC().Truncate(time.Microsecond)
	a := domain.Activity{
		TripBlockID: blockID,
		Title:       "Activity " + uniqueSuffix(),
		StartTime:   start,
		EndTime:     start.Add(dur),
		Location:    "Old Town",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO activities (trip_block_id, title, start_time, end_time, location)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		a.TripBlockID, a.Title, a.StartTime, a.EndTime, a.Location,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}

	return a
}

// SeedCatalogEntry inserts e as is (ID is ignored) and returns it with its
// generated ID.
func SeedCatalogEntry(t *testing.T, pool *pgxpool.Pool, e domain.CatalogEntry) domain.CatalogEntry {
	t.Helper()
	ctx := context.Background()

	err := pool.QueryRow(ctx,
		`INSERT INTO activity_catalog
		     (title, description, location, country, category, typical_duration_minutes,
		      average_cost, tags, is_popular, recommended_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::time)
		 RETURNING id`,
		e.Title, e.Description, e.Location, e.Country, e.Category, e.TypicalDurationMinutes,
		e.AverageCost, e.Tags, e.IsPopular, e.RecommendedTime,
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCatalogEntry: %v", err)
	}

	return e
}

// TruncateCatalog empties activity_catalog. The catalog has no owner column,
// so tests that assert on totals must start from an empty table and must not
// run in parallel with each other.
func TruncateCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE activity_catalog`); err != nil {
		t.Fatalf("testhelper: TruncateCatalog: %v", err)
	}
}
