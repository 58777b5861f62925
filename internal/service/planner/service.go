// Package planner owns the Trip → Itinerary → TripBlock → Activity aggregate:
// validation, parent checks, explicit tree assembly and cascading deletes.
package planner

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type tripRepo interface {
	Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itineraryRepo interface {
	Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
	GetByTripID(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tripBlockRepo interface {
	Create(ctx context.Context, p domain.TripBlockParams) (*domain.TripBlock, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TripBlock, error)
	Update(ctx context.Context, id uuid.UUID, p domain.TripBlockParams) (*domain.TripBlock, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.TripBlock, error)
	IDsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]uuid.UUID, error)
	DeleteByItinerary(ctx context.Context, itineraryID uuid.UUID) (int, error)
}

type activityRepo interface {
	Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ActivityParams) (*domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTripBlock(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error)
	ListByTripBlockIDs(ctx context.Context, tripBlockIDs []uuid.UUID) ([]domain.Activity, error)
	DeleteByTripBlockIDs(ctx context.Context, tripBlockIDs []uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides trip planning operations.
type Service struct {
	users       userRepo
	trips       tripRepo
	itineraries itineraryRepo
	blocks      tripBlockRepo
	activities  activityRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new planner service.
func NewService(
	log *slog.Logger,
	users userRepo,
	trips tripRepo,
	itineraries itineraryRepo,
	blocks tripBlockRepo,
	activities activityRepo,
	tx txManager,
) *Service {
	return &Service{
		users:       users,
		trips:       trips,
		itineraries: itineraries,
		blocks:      blocks,
		activities:  activities,
		tx:          tx,
		log:         log.With("service", "planner"),
	}
}

// currentUser resolves the authenticated principal to a stored user.
func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	username, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.users.GetByUsername(ctx, username)
}
