package subscription

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	ListForUserFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
	CreateFunc         func(ctx context.Context, s domain.Subscription) (*domain.Subscription, error)
	CreateIfAbsentFunc func(ctx context.Context, s domain.Subscription) (bool, error)
	SetActiveFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID, active bool) (*domain.Subscription, error)
	DeleteFunc         func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		ListForUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   domain.Subscription
		}
		CreateIfAbsent []struct {
			Ctx context.Context
			S   domain.Subscription
		}
		SetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Active bool
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockListForUser    sync.RWMutex
	lockCreate         sync.RWMutex
	lockCreateIfAbsent sync.RWMutex
	lockSetActive      sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *subscriptionRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	if mock.ListForUserFunc == nil {
		panic("subscriptionRepoMock.ListForUserFunc: method is nil but subscriptionRepo.ListForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *subscriptionRepoMock) ListForUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListForUser.RLock()
	calls = mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Create(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	if mock.CreateFunc == nil {
		panic("subscriptionRepoMock.CreateFunc: method is nil but subscriptionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subscription
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *subscriptionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Subscription
} {
	var calls []struct {
		Ctx context.Context
		S   domain.Subscription
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) CreateIfAbsent(ctx context.Context, s domain.Subscription) (bool, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("subscriptionRepoMock.CreateIfAbsentFunc: method is nil but subscriptionRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subscription
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, s)
}

func (mock *subscriptionRepoMock) CreateIfAbsentCalls() []struct {
	Ctx context.Context
	S   domain.Subscription
} {
	var calls []struct {
		Ctx context.Context
		S   domain.Subscription
	}
	mock.lockCreateIfAbsent.RLock()
	calls = mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) SetActive(ctx context.Context, userID uuid.UUID, id uuid.UUID, active bool) (*domain.Subscription, error) {
	if mock.SetActiveFunc == nil {
		panic("subscriptionRepoMock.SetActiveFunc: method is nil but subscriptionRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Active bool
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, userID, id, active)
}

func (mock *subscriptionRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Active bool
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Active bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("subscriptionRepoMock.DeleteFunc: method is nil but subscriptionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *subscriptionRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
