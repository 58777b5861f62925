package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// CreateItinerary attaches an itinerary to an existing trip. A trip holds at
// most one itinerary; a second one yields ErrAlreadyExists.
func (s *Service) CreateItinerary(ctx context.Context, input CreateItineraryInput) (*domain.Itinerary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.trips.GetByID(ctx, input.TripID); err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	itinerary, err := s.itineraries.Create(ctx, &domain.Itinerary{
		TripID:      input.TripID,
		Title:       strings.TrimSpace(input.Title),
		Description: domain.TrimOrNil(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create itinerary: %w", err)
	}

	s.log.InfoContext(ctx, "itinerary created",
		slog.String("trip_id", input.TripID.String()),
		slog.String("itinerary_id", itinerary.ID.String()),
	)

	return itinerary, nil
}

// GetItineraryByTrip returns the assembled itinerary of a trip.
func (s *Service) GetItineraryByTrip(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error) {
	var itinerary *domain.Itinerary

	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		itinerary, err = s.itineraries.GetByTripID(txCtx, tripID)
		if err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}
		return s.assembleItinerary(txCtx, itinerary)
	})
	if err != nil {
		return nil, err
	}

	return itinerary, nil
}

// DeleteItinerary removes the itinerary with its blocks and activities.
// The owning trip is kept.
func (s *Service) DeleteItinerary(ctx context.Context, id uuid.UUID) error {
	var stats cascadeStats

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.itineraries.GetByID(txCtx, id); err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}

		var err error
		stats, err = s.cascadeItinerary(txCtx, id)
		return err
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "itinerary deleted",
		slog.String("itinerary_id", id.String()),
		slog.Int("trip_blocks", stats.blocks),
		slog.Int("activities", stats.activities),
	)

	return nil
}

// ---------------------------------------------------------------------------
// Tree helpers
// ---------------------------------------------------------------------------

// assembleItinerary loads ordered blocks and their ordered activities into it.
func (s *Service) assembleItinerary(ctx context.Context, itinerary *domain.Itinerary) error {
	blocks, err := s.blocks.ListByItinerary(ctx, itinerary.ID)
	if err != nil {
		return fmt.Errorf("list trip blocks: %w", err)
	}

	if err := s.attachActivities(ctx, blocks); err != nil {
		return err
	}

	itinerary.TripBlocks = blocks
	return nil
}

type cascadeStats struct {
	blocks     int
	activities int
}

// cascadeItinerary deletes activities, then blocks, then the itinerary.
// Must run inside a transaction.
func (s *Service) cascadeItinerary(ctx context.Context, itineraryID uuid.UUID) (cascadeStats, error) {
	var stats cascadeStats

	// Held until commit so no trip block can be added between listing and delete.
	if err := s.itineraries.LockForUpdate(ctx, itineraryID); err != nil {
		return stats, fmt.Errorf("lock itinerary: %w", err)
	}

	blockIDs, err := s.blocks.IDsByItinerary(ctx, itineraryID)
	if err != nil {
		return stats, fmt.Errorf("list trip block ids: %w", err)
	}

	if len(blockIDs) > 0 {
		if stats.activities, err = s.activities.DeleteByTripBlockIDs(ctx, blockIDs); err != nil {
			return stats, fmt.Errorf("delete activities: %w", err)
		}
		if stats.blocks, err = s.blocks.DeleteByItinerary(ctx, itineraryID); err != nil {
			return stats, fmt.Errorf("delete trip blocks: %w", err)
		}
	}

	if err := s.itineraries.Delete(ctx, itineraryID); err != nil {
		return stats, fmt.Errorf("delete itinerary: %w", err)
	}

	return stats, nil
}
