package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// CreateTripBlock adds a block to an existing itinerary.
func (s *Service) CreateTripBlock(ctx context.Context, input TripBlockInput) (*domain.TripBlock, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.itineraries.GetByID(ctx, input.ItineraryID); err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}

	block, err := s.blocks.Create(ctx, input.params())
	if err != nil {
		return nil, fmt.Errorf("create trip block: %w", err)
	}

	s.log.InfoContext(ctx, "trip block created",
		slog.String("itinerary_id", block.ItineraryID.String()),
		slog.String("trip_block_id", block.ID.String()),
	)

	return block, nil
}

// UpdateTripBlock replaces the writable fields of a block. Pointing it at
// another itinerary moves it there.
func (s *Service) UpdateTripBlock(ctx context.Context, id uuid.UUID, input TripBlockInput) (*domain.TripBlock, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.itineraries.GetByID(ctx, input.ItineraryID); err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}

	block, err := s.blocks.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("update trip block: %w", err)
	}

	s.log.InfoContext(ctx, "trip block updated",
		slog.String("itinerary_id", block.ItineraryID.String()),
		slog.String("trip_block_id", block.ID.String()),
	)

	return block, nil
}

// GetTripBlock returns the block with its activities ordered by start time.
func (s *Service) GetTripBlock(ctx context.Context, id uuid.UUID) (*domain.TripBlock, error) {
	var block *domain.TripBlock

	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		block, err = s.blocks.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get trip block: %w", err)
		}

		activities, err := s.activities.ListByTripBlock(txCtx, id)
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}
		block.Activities = activities
		return nil
	})
	if err != nil {
		return nil, err
	}

	return block, nil
}

// ListTripBlocks returns the ordered blocks of an itinerary, each with its
// activities.
func (s *Service) ListTripBlocks(ctx context.Context, itineraryID uuid.UUID) ([]domain.TripBlock, error) {
	var blocks []domain.TripBlock

	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		if _, err := s.itineraries.GetByID(txCtx, itineraryID); err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}

		var err error
		blocks, err = s.blocks.ListByItinerary(txCtx, itineraryID)
		if err != nil {
			return fmt.Errorf("list trip blocks: %w", err)
		}
		return s.attachActivities(txCtx, blocks)
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// DeleteTripBlock removes the block and its activities in one transaction.
func (s *Service) DeleteTripBlock(ctx context.Context, id uuid.UUID) error {
	var removed int

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.blocks.GetByID(txCtx, id); err != nil {
			return fmt.Errorf("get trip block: %w", err)
		}

		var err error
		removed, err = s.activities.DeleteByTripBlockIDs(txCtx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("delete activities: %w", err)
		}

		if err := s.blocks.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete trip block: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "trip block deleted",
		slog.String("trip_block_id", id.String()),
		slog.Int("activities", removed),
	)

	return nil
}
