package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// CreateActivity adds an activity to an existing trip block.
func (s *Service) CreateActivity(ctx context.Context, input ActivityInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.blocks.GetByID(ctx, input.TripBlockID); err != nil {
		return nil, fmt.Errorf("get trip block: %w", err)
	}

	activity, err := s.activities.Create(ctx, input.params())
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity created",
		slog.String("trip_block_id", activity.TripBlockID.String()),
		slog.String("activity_id", activity.ID.String()),
	)

	return activity, nil
}

// UpdateActivity replaces the writable fields of an activity. Pointing it at
// another trip block moves it there.
func (s *Service) UpdateActivity(ctx context.Context, id uuid.UUID, input ActivityInput) (*domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.blocks.GetByID(ctx, input.TripBlockID); err != nil {
		return nil, fmt.Errorf("get trip block: %w", err)
	}

	activity, err := s.activities.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity updated",
		slog.String("trip_block_id", activity.TripBlockID.String()),
		slog.String("activity_id", activity.ID.String()),
	)

	return activity, nil
}

// DeleteActivity removes a single activity.
func (s *Service) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity deleted", slog.String("activity_id", id.String()))
	return nil
}

// ListActivities returns the activities of a block ordered by start time.
func (s *Service) ListActivities(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error) {
	var activities []domain.Activity

	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		if _, err := s.blocks.GetByID(txCtx, tripBlockID); err != nil {
			return fmt.Errorf("get trip block: %w", err)
		}

		var err error
		activities, err = s.activities.ListByTripBlock(txCtx, tripBlockID)
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return activities, nil
}
