package planner

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc               func(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error)
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	UpdateFunc               func(ctx context.Context, id uuid.UUID, p domain.ActivityParams) (*domain.Activity, error)
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	ListByTripBlockFunc      func(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error)
	ListByTripBlockIDsFunc   func(ctx context.Context, tripBlockIDs []uuid.UUID) ([]domain.Activity, error)
	DeleteByTripBlockIDsFunc func(ctx context.Context, tripBlockIDs []uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.ActivityParams
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.ActivityParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByTripBlock []struct {
			Ctx         context.Context
			TripBlockID uuid.UUID
		}
		ListByTripBlockIDs []struct {
			Ctx          context.Context
			TripBlockIDs []uuid.UUID
		}
		DeleteByTripBlockIDs []struct {
			Ctx          context.Context
			TripBlockIDs []uuid.UUID
		}
	}
	lockCreate               sync.RWMutex
	lockGetByID              sync.RWMutex
	lockUpdate               sync.RWMutex
	lockDelete               sync.RWMutex
	lockListByTripBlock      sync.RWMutex
	lockListByTripBlockIDs   sync.RWMutex
	lockDeleteByTripBlockIDs sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.ActivityParams
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.ActivityParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
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

func (mock *activityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *activityRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.ActivityParams) (*domain.Activity, error) {
	if mock.UpdateFunc == nil {
		panic("activityRepoMock.UpdateFunc: method is nil but activityRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.ActivityParams
	}{
		Ctx: ctx,
		ID:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *activityRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.ActivityParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *activityRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("activityRepoMock.DeleteFunc: method is nil but activityRepo.Delete was just called")
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

func (mock *activityRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByTripBlock(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error) {
	if mock.ListByTripBlockFunc == nil {
		panic("activityRepoMock.ListByTripBlockFunc: method is nil but activityRepo.ListByTripBlock was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TripBlockID uuid.UUID
	}{
		Ctx:         ctx,
		TripBlockID: tripBlockID,
	}
	mock.lockListByTripBlock.Lock()
	mock.calls.ListByTripBlock = append(mock.calls.ListByTripBlock, callInfo)
	mock.lockListByTripBlock.Unlock()
	return mock.ListByTripBlockFunc(ctx, tripBlockID)
}

func (mock *activityRepoMock) ListByTripBlockCalls() []struct {
	Ctx         context.Context
	TripBlockID uuid.UUID
} {
	mock.lockListByTripBlock.RLock()
	calls := mock.calls.ListByTripBlock
	mock.lockListByTripBlock.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByTripBlockIDs(ctx context.Context, tripBlockIDs []uuid.UUID) ([]domain.Activity, error) {
	if mock.ListByTripBlockIDsFunc == nil {
		panic("activityRepoMock.ListByTripBlockIDsFunc: method is nil but activityRepo.ListByTripBlockIDs was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TripBlockIDs []uuid.UUID
	}{
		Ctx:          ctx,
		TripBlockIDs: tripBlockIDs,
	}
	mock.lockListByTripBlockIDs.Lock()
	mock.calls.ListByTripBlockIDs = append(mock.calls.ListByTripBlockIDs, callInfo)
	mock.lockListByTripBlockIDs.Unlock()
	return mock.ListByTripBlockIDsFunc(ctx, tripBlockIDs)
}

func (mock *activityRepoMock) ListByTripBlockIDsCalls() []struct {
	Ctx          context.Context
	TripBlockIDs []uuid.UUID
} {
	mock.lockListByTripBlockIDs.RLock()
	calls := mock.calls.ListByTripBlockIDs
	mock.lockListByTripBlockIDs.RUnlock()
	return calls
}

func (mock *activityRepoMock) DeleteByTripBlockIDs(ctx context.Context, tripBlockIDs []uuid.UUID) (int, error) {
	if mock.DeleteByTripBlockIDsFunc == nil {
		panic("activityRepoMock.DeleteByTripBlockIDsFunc: method is nil but activityRepo.DeleteByTripBlockIDs was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TripBlockIDs []uuid.UUID
	}{
		Ctx:          ctx,
		TripBlockIDs: tripBlockIDs,
	}
	mock.lockDeleteByTripBlockIDs.Lock()
	mock.calls.DeleteByTripBlockIDs = append(mock.calls.DeleteByTripBlockIDs, callInfo)
	mock.lockDeleteByTripBlockIDs.Unlock()
	return mock.DeleteByTripBlockIDsFunc(ctx, tripBlockIDs)
}

func (mock *activityRepoMock) DeleteByTripBlockIDsCalls() []struct {
	Ctx          context.Context
	TripBlockIDs []uuid.UUID
} {
	mock.lockDeleteByTripBlockIDs.RLock()
	calls := mock.calls.DeleteByTripBlockIDs
	mock.lockDeleteByTripBlockIDs.RUnlock()
	return calls
}
