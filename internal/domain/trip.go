package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the root of the planning aggregate. It owns at most one Itinerary.
type Trip struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Description  *string
	StartDate    time.Time
	EndDate      time.Time
	Destinations []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Itinerary belongs to exactly one Trip. TripBlocks is populated only by
// tree assembly; repositories return it empty.
type Itinerary struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	TripBlocks []TripBlock
}

// TripBlock is a time-bounded segment of an itinerary (a city, a leg).
// Activities, when loaded, are ordered by StartTime ascending.
type TripBlock struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    *string
	Country     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Activities []Activity
}

// Activity is a leaf of the aggregate.
type Activity struct {
	ID          uuid.UUID
	TripBlockID uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TripTree is a Trip with its optional, fully assembled Itinerary.
// HasItinerary is false and Itinerary nil when no itinerary exists yet.
type TripTree struct {
	Trip         Trip
	HasItinerary bool
	Itinerary    *Itinerary
}

// TripSummary is a Trip as shown in listings: no nested data, only the
// itinerary marker.
type TripSummary struct {
	Trip
	HasItinerary bool
}

// TripBlockParams holds the writable fields of a TripBlock.
type TripBlockParams struct {
	ItineraryID uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    *string
	Country     *string
}

// ActivityParams holds the writable fields of an Activity.
type ActivityParams struct {
	TripBlockID uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Category    *string
}
