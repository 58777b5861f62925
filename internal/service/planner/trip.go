package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// CreateTrip creates a trip owned by the authenticated user.
func (s *Service) CreateTrip(ctx context.Context, input CreateTripInput) (*domain.Trip, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	trip, err := s.trips.Create(ctx, &domain.Trip{
		UserID:       user.ID,
		Title:        strings.TrimSpace(input.Title),
		Description:  domain.TrimOrNil(input.Description),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Destinations: cleanDestinations(input.Destinations),
	})
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.log.InfoContext(ctx, "trip created",
		slog.String("username", user.Username),
		slog.String("trip_id", trip.ID.String()),
	)

	return trip, nil
}

// ListTrips returns the trips of the authenticated user, without nested data.
func (s *Service) ListTrips(ctx context.Context) ([]domain.TripSummary, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	trips, err := s.trips.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

// GetTrip returns the trip with its itinerary, blocks and activities fully
// assembled. A trip without an itinerary is not an error.
func (s *Service) GetTrip(ctx context.Context, tripID uuid.UUID) (*domain.TripTree, error) {
	var tree *domain.TripTree

	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		trip, err := s.trips.GetByID(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		tree = &domain.TripTree{Trip: *trip}

		itinerary, err := s.itineraries.GetByTripID(txCtx, tripID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}

		if err := s.assembleItinerary(txCtx, itinerary); err != nil {
			return err
		}

		tree.HasItinerary = true
		tree.Itinerary = itinerary
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tree, nil
}

// DeleteTrip removes the trip and everything below it in one transaction.
func (s *Service) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}

	var stats cascadeStats

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		trip, err := s.trips.GetByID(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		// Someone else's trip looks the same as a missing one.
		if trip.UserID != user.ID {
			return fmt.Errorf("trip %s: %w", tripID, domain.ErrNotFound)
		}

		itinerary, err := s.itineraries.GetByTripID(txCtx, tripID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return fmt.Errorf("get itinerary: %w", err)
		default:
			if stats, err = s.cascadeItinerary(txCtx, itinerary.ID); err != nil {
				return err
			}
		}

		if err := s.trips.Delete(txCtx, tripID); err != nil {
			return fmt.Errorf("delete trip: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "trip deleted",
		slog.String("trip_id", tripID.String()),
		slog.Int("trip_blocks", stats.blocks),
		slog.Int("activities", stats.activities),
	)

	return nil
}
