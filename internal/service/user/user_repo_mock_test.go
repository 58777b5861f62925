package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, email string, fullName string) (*domain.User, error)
	UpdateRoleFunc    func(ctx context.Context, username string, role domain.UserRole) (*domain.User, error)
	ListFunc          func(ctx context.Context, limit int, offset int) ([]domain.User, error)
	CountFunc         func(ctx context.Context) (int, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		UpdateProfile []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Email    string
			FullName string
		}
		UpdateRole []struct {
			Ctx      context.Context
			Username string
			Role     domain.UserRole
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByUsername sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockUpdateRole    sync.RWMutex
	lockList          sync.RWMutex
	lockCount         sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, email string, fullName string) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Email    string
		FullName string
	}{
		Ctx:      ctx,
		ID:       id,
		Email:    email,
		FullName: fullName,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, email, fullName)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Email    string
	FullName string
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Role     domain.UserRole
	}{
		Ctx:      ctx,
		Username: username,
		Role:     role,
	}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, username, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx      context.Context
	Username string
	Role     domain.UserRole
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
