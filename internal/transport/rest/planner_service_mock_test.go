package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/internal/service/planner"
	"sync"
)

var _ plannerService = &plannerServiceMock{}

type plannerServiceMock struct {
	CreateActivityFunc     func(ctx context.Context, input planner.ActivityInput) (*domain.Activity, error)
	CreateItineraryFunc    func(ctx context.Context, input planner.CreateItineraryInput) (*domain.Itinerary, error)
	CreateTripFunc         func(ctx context.Context, input planner.CreateTripInput) (*domain.Trip, error)
	CreateTripBlockFunc    func(ctx context.Context, input planner.TripBlockInput) (*domain.TripBlock, error)
	DeleteActivityFunc     func(ctx context.Context, id uuid.UUID) error
	DeleteItineraryFunc    func(ctx context.Context, id uuid.UUID) error
	DeleteTripFunc         func(ctx context.Context, tripID uuid.UUID) error
	DeleteTripBlockFunc    func(ctx context.Context, id uuid.UUID) error
	GetItineraryByTripFunc func(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error)
	GetTripFunc            func(ctx context.Context, tripID uuid.UUID) (*domain.TripTree, error)
	GetTripBlockFunc       func(ctx context.Context, id uuid.UUID) (*domain.TripBlock, error)
	ListActivitiesFunc     func(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error)
	ListTripBlocksFunc     func(ctx context.Context, itineraryID uuid.UUID) ([]domain.TripBlock, error)
	ListTripsFunc          func(ctx context.Context) ([]domain.TripSummary, error)
	UpdateActivityFunc     func(ctx context.Context, id uuid.UUID, input planner.ActivityInput) (*domain.Activity, error)
	UpdateTripBlockFunc    func(ctx context.Context, id uuid.UUID, input planner.TripBlockInput) (*domain.TripBlock, error)

	calls struct {
		CreateActivity []struct {
			Ctx   context.Context
			Input planner.ActivityInput
		}
		CreateItinerary []struct {
			Ctx   context.Context
			Input planner.CreateItineraryInput
		}
		CreateTrip []struct {
			Ctx   context.Context
			Input planner.CreateTripInput
		}
		CreateTripBlock []struct {
			Ctx   context.Context
			Input planner.TripBlockInput
		}
		DeleteActivity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteItinerary []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		DeleteTripBlock []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetItineraryByTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		GetTrip []struct {
			Ctx    context.Context
			TripID uuid.UUID
		}
		GetTripBlock []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListActivities []struct {
			Ctx         context.Context
			TripBlockID uuid.UUID
		}
		ListTripBlocks []struct {
			Ctx         context.Context
			ItineraryID uuid.UUID
		}
		ListTrips []struct {
			Ctx context.Context
		}
		UpdateActivity []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input planner.ActivityInput
		}
		UpdateTripBlock []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input planner.TripBlockInput
		}
	}
	lockCreateActivity     sync.RWMutex
	lockCreateItinerary    sync.RWMutex
	lockCreateTrip         sync.RWMutex
	lockCreateTripBlock    sync.RWMutex
	lockDeleteActivity     sync.RWMutex
	lockDeleteItinerary    sync.RWMutex
	lockDeleteTrip         sync.RWMutex
	lockDeleteTripBlock    sync.RWMutex
	lockGetItineraryByTrip sync.RWMutex
	lockGetTrip            sync.RWMutex
	lockGetTripBlock       sync.RWMutex
	lockListActivities     sync.RWMutex
	lockListTripBlocks     sync.RWMutex
	lockListTrips          sync.RWMutex
	lockUpdateActivity     sync.RWMutex
	lockUpdateTripBlock    sync.RWMutex
}

func (mock *plannerServiceMock) CreateActivity(ctx context.Context, input planner.ActivityInput) (*domain.Activity, error) {
	if mock.CreateActivityFunc == nil {
		panic("plannerServiceMock.CreateActivityFunc: method is nil but plannerService.CreateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input planner.ActivityInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateActivity.Lock()
	mock.calls.CreateActivity = append(mock.calls.CreateActivity, callInfo)
	mock.lockCreateActivity.Unlock()
	return mock.CreateActivityFunc(ctx, input)
}

func (mock *plannerServiceMock) CreateActivityCalls() []struct {
	Ctx   context.Context
	Input planner.ActivityInput
} {
	mock.lockCreateActivity.RLock()
	calls := mock.calls.CreateActivity
	mock.lockCreateActivity.RUnlock()
	return calls
}

func (mock *plannerServiceMock) CreateItinerary(ctx context.Context, input planner.CreateItineraryInput) (*domain.Itinerary, error) {
	if mock.CreateItineraryFunc == nil {
		panic("plannerServiceMock.CreateItineraryFunc: method is nil but plannerService.CreateItinerary was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input planner.CreateItineraryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateItinerary.Lock()
	mock.calls.CreateItinerary = append(mock.calls.CreateItinerary, callInfo)
	mock.lockCreateItinerary.Unlock()
	return mock.CreateItineraryFunc(ctx, input)
}

func (mock *plannerServiceMock) CreateItineraryCalls() []struct {
	Ctx   context.Context
	Input planner.CreateItineraryInput
} {
	mock.lockCreateItinerary.RLock()
	calls := mock.calls.CreateItinerary
	mock.lockCreateItinerary.RUnlock()
	return calls
}

func (mock *plannerServiceMock) CreateTrip(ctx context.Context, input planner.CreateTripInput) (*domain.Trip, error) {
	if mock.CreateTripFunc == nil {
		panic("plannerServiceMock.CreateTripFunc: method is nil but plannerService.CreateTrip was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input planner.CreateTripInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTrip.Lock()
	mock.calls.CreateTrip = append(mock.calls.CreateTrip, callInfo)
	mock.lockCreateTrip.Unlock()
	return mock.CreateTripFunc(ctx, input)
}

func (mock *plannerServiceMock) CreateTripCalls() []struct {
	Ctx   context.Context
	Input planner.CreateTripInput
} {
	mock.lockCreateTrip.RLock()
	calls := mock.calls.CreateTrip
	mock.lockCreateTrip.RUnlock()
	return calls
}

func (mock *plannerServiceMock) CreateTripBlock(ctx context.Context, input planner.TripBlockInput) (*domain.TripBlock, error) {
	if mock.CreateTripBlockFunc == nil {
		panic("plannerServiceMock.CreateTripBlockFunc: method is nil but plannerService.CreateTripBlock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input planner.TripBlockInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTripBlock.Lock()
	mock.calls.CreateTripBlock = append(mock.calls.CreateTripBlock, callInfo)
	mock.lockCreateTripBlock.Unlock()
	return mock.CreateTripBlockFunc(ctx, input)
}

func (mock *plannerServiceMock) CreateTripBlockCalls() []struct {
	Ctx   context.Context
	Input planner.TripBlockInput
} {
	mock.lockCreateTripBlock.RLock()
	calls := mock.calls.CreateTripBlock
	mock.lockCreateTripBlock.RUnlock()
	return calls
}

func (mock *plannerServiceMock) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteActivityFunc == nil {
		panic("plannerServiceMock.DeleteActivityFunc: method is nil but plannerService.DeleteActivity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteActivity.Lock()
	mock.calls.DeleteActivity = append(mock.calls.DeleteActivity, callInfo)
	mock.lockDeleteActivity.Unlock()
	return mock.DeleteActivityFunc(ctx, id)
}

func (mock *plannerServiceMock) DeleteActivityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteActivity.RLock()
	calls := mock.calls.DeleteActivity
	mock.lockDeleteActivity.RUnlock()
	return calls
}

func (mock *plannerServiceMock) DeleteItinerary(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteItineraryFunc == nil {
		panic("plannerServiceMock.DeleteItineraryFunc: method is nil but plannerService.DeleteItinerary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteItinerary.Lock()
	mock.calls.DeleteItinerary = append(mock.calls.DeleteItinerary, callInfo)
	mock.lockDeleteItinerary.Unlock()
	return mock.DeleteItineraryFunc(ctx, id)
}

func (mock *plannerServiceMock) DeleteItineraryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteItinerary.RLock()
	calls := mock.calls.DeleteItinerary
	mock.lockDeleteItinerary.RUnlock()
	return calls
}

func (mock *plannerServiceMock) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	if mock.DeleteTripFunc == nil {
		panic("plannerServiceMock.DeleteTripFunc: method is nil but plannerService.DeleteTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
	}
	mock.lockDeleteTrip.Lock()
	mock.calls.DeleteTrip = append(mock.calls.DeleteTrip, callInfo)
	mock.lockDeleteTrip.Unlock()
	return mock.DeleteTripFunc(ctx, tripID)
}

func (mock *plannerServiceMock) DeleteTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockDeleteTrip.RLock()
	calls := mock.calls.DeleteTrip
	mock.lockDeleteTrip.RUnlock()
	return calls
}

func (mock *plannerServiceMock) DeleteTripBlock(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTripBlockFunc == nil {
		panic("plannerServiceMock.DeleteTripBlockFunc: method is nil but plannerService.DeleteTripBlock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteTripBlock.Lock()
	mock.calls.DeleteTripBlock = append(mock.calls.DeleteTripBlock, callInfo)
	mock.lockDeleteTripBlock.Unlock()
	return mock.DeleteTripBlockFunc(ctx, id)
}

func (mock *plannerServiceMock) DeleteTripBlockCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTripBlock.RLock()
	calls := mock.calls.DeleteTripBlock
	mock.lockDeleteTripBlock.RUnlock()
	return calls
}

func (mock *plannerServiceMock) GetItineraryByTrip(ctx context.Context, tripID uuid.UUID) (*domain.Itinerary, error) {
	if mock.GetItineraryByTripFunc == nil {
		panic("plannerServiceMock.GetItineraryByTripFunc: method is nil but plannerService.GetItineraryByTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
	}
	mock.lockGetItineraryByTrip.Lock()
	mock.calls.GetItineraryByTrip = append(mock.calls.GetItineraryByTrip, callInfo)
	mock.lockGetItineraryByTrip.Unlock()
	return mock.GetItineraryByTripFunc(ctx, tripID)
}

func (mock *plannerServiceMock) GetItineraryByTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockGetItineraryByTrip.RLock()
	calls := mock.calls.GetItineraryByTrip
	mock.lockGetItineraryByTrip.RUnlock()
	return calls
}

func (mock *plannerServiceMock) GetTrip(ctx context.Context, tripID uuid.UUID) (*domain.TripTree, error) {
	if mock.GetTripFunc == nil {
		panic("plannerServiceMock.GetTripFunc: method is nil but plannerService.GetTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID uuid.UUID
	}{
		Ctx:    ctx,
		TripID: tripID,
	}
	mock.lockGetTrip.Lock()
	mock.calls.GetTrip = append(mock.calls.GetTrip, callInfo)
	mock.lockGetTrip.Unlock()
	return mock.GetTripFunc(ctx, tripID)
}

func (mock *plannerServiceMock) GetTripCalls() []struct {
	Ctx    context.Context
	TripID uuid.UUID
} {
	mock.lockGetTrip.RLock()
	calls := mock.calls.GetTrip
	mock.lockGetTrip.RUnlock()
	return calls
}

func (mock *plannerServiceMock) GetTripBlock(ctx context.Context, id uuid.UUID) (*domain.TripBlock, error) {
	if mock.GetTripBlockFunc == nil {
		panic("plannerServiceMock.GetTripBlockFunc: method is nil but plannerService.GetTripBlock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetTripBlock.Lock()
	mock.calls.GetTripBlock = append(mock.calls.GetTripBlock, callInfo)
	mock.lockGetTripBlock.Unlock()
	return mock.GetTripBlockFunc(ctx, id)
}

func (mock *plannerServiceMock) GetTripBlockCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetTripBlock.RLock()
	calls := mock.calls.GetTripBlock
	mock.lockGetTripBlock.RUnlock()
	return calls
}

func (mock *plannerServiceMock) ListActivities(ctx context.Context, tripBlockID uuid.UUID) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("plannerServiceMock.ListActivitiesFunc: method is nil but plannerService.ListActivities was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TripBlockID uuid.UUID
	}{
		Ctx:         ctx,
		TripBlockID: tripBlockID,
	}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, tripBlockID)
}

func (mock *plannerServiceMock) ListActivitiesCalls() []struct {
	Ctx         context.Context
	TripBlockID uuid.UUID
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *plannerServiceMock) ListTripBlocks(ctx context.Context, itineraryID uuid.UUID) ([]domain.TripBlock, error) {
	if mock.ListTripBlocksFunc == nil {
		panic("plannerServiceMock.ListTripBlocksFunc: method is nil but plannerService.ListTripBlocks was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ItineraryID uuid.UUID
	}{
		Ctx:         ctx,
		ItineraryID: itineraryID,
	}
	mock.lockListTripBlocks.Lock()
	mock.calls.ListTripBlocks = append(mock.calls.ListTripBlocks, callInfo)
	mock.lockListTripBlocks.Unlock()
	return mock.ListTripBlocksFunc(ctx, itineraryID)
}

func (mock *plannerServiceMock) ListTripBlocksCalls() []struct {
	Ctx         context.Context
	ItineraryID uuid.UUID
} {
	mock.lockListTripBlocks.RLock()
	calls := mock.calls.ListTripBlocks
	mock.lockListTripBlocks.RUnlock()
	return calls
}

func (mock *plannerServiceMock) ListTrips(ctx context.Context) ([]domain.TripSummary, error) {
	if mock.ListTripsFunc == nil {
		panic("plannerServiceMock.ListTripsFunc: method is nil but plannerService.ListTrips was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTrips.Lock()
	mock.calls.ListTrips = append(mock.calls.ListTrips, callInfo)
	mock.lockListTrips.Unlock()
	return mock.ListTripsFunc(ctx)
}

func (mock *plannerServiceMock) ListTripsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTrips.RLock()
	calls := mock.calls.ListTrips
	mock.lockListTrips.RUnlock()
	return calls
}

func (mock *plannerServiceMock) UpdateActivity(ctx context.Context, id uuid.UUID, input planner.ActivityInput) (*domain.Activity, error) {
	if mock.UpdateActivityFunc == nil {
		panic("plannerServiceMock.UpdateActivityFunc: method is nil but plannerService.UpdateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input planner.ActivityInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdateActivity.Lock()
	mock.calls.UpdateActivity = append(mock.calls.UpdateActivity, callInfo)
	mock.lockUpdateActivity.Unlock()
	return mock.UpdateActivityFunc(ctx, id, input)
}

func (mock *plannerServiceMock) UpdateActivityCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input planner.ActivityInput
} {
	mock.lockUpdateActivity.RLock()
	calls := mock.calls.UpdateActivity
	mock.lockUpdateActivity.RUnlock()
	return calls
}

func (mock *plannerServiceMock) UpdateTripBlock(ctx context.Context, id uuid.UUID, input planner.TripBlockInput) (*domain.TripBlock, error) {
	if mock.UpdateTripBlockFunc == nil {
		panic("plannerServiceMock.UpdateTripBlockFunc: method is nil but plannerService.UpdateTripBlock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input planner.TripBlockInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdateTripBlock.Lock()
	mock.calls.UpdateTripBlock = append(mock.calls.UpdateTripBlock, callInfo)
	mock.lockUpdateTripBlock.Unlock()
	return mock.UpdateTripBlockFunc(ctx, id, input)
}

func (mock *plannerServiceMock) UpdateTripBlockCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input planner.TripBlockInput
} {
	mock.lockUpdateTripBlock.RLock()
	calls := mock.calls.UpdateTripBlock
	mock.lockUpdateTripBlock.RUnlock()
	return calls
}
