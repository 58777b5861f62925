package planner

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"sync"
)

var _ itineraryRepo = &itineraryRepoMock{}

type itineraryRepoMock struct {
	CreateFunc        func(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
	GetByTripIDFunc   func(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error)
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			It  *domain.Itinerary
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByTripID []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetByTripID   sync.RWMutex
	lockLockForUpdate sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *itineraryRepoMock) Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	if mock.CreateFunc == nil {
		panic("itineraryRepoMock.CreateFunc: method is nil but itineraryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.Itinerary
	}{
		Ctx: ctx,
		It:  it,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itineraryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	It  *domain.Itinerary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	if mock.GetByIDFunc == nil {
		panic("itineraryRepoMock.GetByIDFunc: method is nil but itineraryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itineraryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) GetByTripID(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error) {
	if mock.GetByTripIDFunc == nil {
		panic("itineraryRepoMock.GetByTripIDFunc: method is nil but itineraryRepo.GetByTripID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
	}
	mock.lockGetByTripID.Lock()
	mock.calls.GetByTripID = append(mock.calls.GetByTripID, callInfo)
	mock.lockGetByTripID.Unlock()
	return mock.GetByTripIDFunc(ctx, tripID)
}

func (mock *itineraryRepoMock) GetByTripIDCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockGetByTripID.RLock()
	calls := mock.calls.GetByTripID
	mock.lockGetByTripID.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("itineraryRepoMock.LockForUpdateFunc: method is nil but itineraryRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *itineraryRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itineraryRepoMock.DeleteFunc: method is nil but itineraryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itineraryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
