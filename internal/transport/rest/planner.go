package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/internal/service/planner"
	"github.com/heartmarshall/voyagewise-backend/internal/transport/middleware"
)

type plannerService interface {
	CreateTrip(ctx context.Context, input planner.CreateTripInput) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]domain.TripSummary, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*domain.TripTree, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error

	CreateItinerary(ctx context.Context, input planner.CreateItineraryInput) (*domain.Itinerary, error)
	GetItineraryByTrip(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error)
	DeleteItinerary(ctx context.Context, id uuid.UUID) error

	CreateTripBlock(ctx context.Context, input planner.TripBlockInput) (*domain.TripBlock, error)
	UpdateTripBlock(ctx context.Context, id uuid.UUID, input planner.TripBlockInput) (*domain.TripBlock, error)
	GetTripBlock(ctx context.Context, id uuid.UUID) (*domain.TripBlock, error)
	ListTripBlocks(ctx context.Context, itineraryID uuid.UUID) ([]domain.TripBlock, error)
	DeleteTripBlock(ctx context.Context, id uuid.UUID) error

	CreateActivity(ctx context.Context, input planner.ActivityInput) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input planner.ActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	ListActivities(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error)
}

// PlannerHandler serves the trip aggregate: trips, itineraries, trip blocks
// and activities. Every route requires an authenticated principal.
type PlannerHandler struct {
	svc plannerService
	log *slog.Logger
}

// NewPlannerHandler creates a PlannerHandler.
func NewPlannerHandler(svc plannerService, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{svc: svc, log: logger.With("handler", "planner")}
}

// authed wraps a handler with the principal check.
func (h *PlannerHandler) authed(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := middleware.RequireAuth(r.Context()); err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		fn(w, r)
	}
}

// ---------------------------------------------------------------------------
// Trips
// ---------------------------------------------------------------------------

// CreateTrip handles POST /api/trips.
func (h *PlannerHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	trip, err := h.svc.CreateTrip(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripResponse(*trip, false))
}

// ListTrips handles GET /api/trips.
func (h *PlannerHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.svc.ListTrips(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t.Trip, t.HasItinerary))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTrip handles GET /api/trips/{tripId}.
func (h *PlannerHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	tree, err := h.svc.GetTrip(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripTreeResponse(tree))
}

// DeleteTrip handles DELETE /api/trips/{tripId}.
func (h *PlannerHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTrip(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Itineraries
// ---------------------------------------------------------------------------

// CreateItinerary handles POST /api/itineraries.
func (h *PlannerHandler) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req createItineraryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	it, err := h.svc.CreateItinerary(r.Context(), planner.CreateItineraryInput{
		TripID:      req.TripID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItineraryResponse(*it))
}

// GetItineraryByTrip handles GET /api/trips/{tripId}/itinerary.
func (h *PlannerHandler) GetItineraryByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	it, err := h.svc.GetItineraryByTrip(r.Context(), tripID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItineraryResponse(*it))
}

// DeleteItinerary handles DELETE /api/itineraries/{id}.
func (h *PlannerHandler) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteItinerary(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Trip blocks
// ---------------------------------------------------------------------------

// ListTripBlocks handles GET /api/itineraries/{itineraryId}/trip-blocks.
func (h *PlannerHandler) ListTripBlocks(w http.ResponseWriter, r *http.Request) {
	itineraryID, err := pathUUID(r, "itineraryId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	blocks, err := h.svc.ListTripBlocks(r.Context(), itineraryID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripBlockResponses(blocks))
}

// CreateTripBlock handles POST /api/trip-blocks.
func (h *PlannerHandler) CreateTripBlock(w http.ResponseWriter, r *http.Request) {
	var req tripBlockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	block, err := h.svc.CreateTripBlock(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripBlockResponse(*block))
}

// GetTripBlock handles GET /api/trip-blocks/{id}.
func (h *PlannerHandler) GetTripBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	block, err := h.svc.GetTripBlock(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripBlockResponse(*block))
}

// UpdateTripBlock handles PUT /api/trip-blocks/{id}.
func (h *PlannerHandler) UpdateTripBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req tripBlockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	block, err := h.svc.UpdateTripBlock(r.Context(), id, req.toInput())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripBlockResponse(*block))
}

// DeleteTripBlock handles DELETE /api/trip-blocks/{id}.
func (h *PlannerHandler) DeleteTripBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTripBlock(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Activities
// ---------------------------------------------------------------------------

// ListActivities handles GET /api/trip-blocks/{id}/activities.
func (h *PlannerHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	blockID, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	activities, err := h.svc.ListActivities(r.Context(), blockID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponses(activities))
}

// CreateActivity handles POST /api/activities.
func (h *PlannerHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	activity, err := h.svc.CreateActivity(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(*activity))
}

// UpdateActivity handles PUT /api/activities/{id}.
func (h *PlannerHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	activity, err := h.svc.UpdateActivity(r.Context(), id, req.toInput())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*activity))
}

// DeleteActivity handles DELETE /api/activities/{id}.
func (h *PlannerHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteActivity(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
