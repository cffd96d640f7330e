package changetrack

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ dependencyRepo = &dependencyRepoMock{}

type dependencyRepoMock struct {
	ListByEntityFunc   func(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error)
	CreateFunc         func(ctx context.Context, d domain.Dependency) (*domain.Dependency, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (*domain.Dependency, error)
	DeleteByEntityFunc func(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error)

	calls struct {
		ListByEntity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			D   domain.Dependency
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteByEntity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListByEntity   sync.RWMutex
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockDeleteByEntity sync.RWMutex
}

func (mock *dependencyRepoMock) ListByEntity(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error) {
	if mock.ListByEntityFunc == nil {
		panic("dependencyRepoMock.ListByEntityFunc: method is nil but dependencyRepo.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, id)
}

func (mock *dependencyRepoMock) ListByEntityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockListByEntity.RLock()
	calls = mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}

func (mock *dependencyRepoMock) Create(ctx context.Context, d domain.Dependency) (*domain.Dependency, error) {
	if mock.CreateFunc == nil {
		panic("dependencyRepoMock.CreateFunc: method is nil but dependencyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Dependency
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dependencyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Dependency
} {
	var calls []struct {
		Ctx context.Context
		D   domain.Dependency
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dependencyRepoMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Dependency, error) {
	if mock.DeleteFunc == nil {
		panic("dependencyRepoMock.DeleteFunc: method is nil but dependencyRepo.Delete was just called")
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

func (mock *dependencyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dependencyRepoMock) DeleteByEntity(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error) {
	if mock.DeleteByEntityFunc == nil {
		panic("dependencyRepoMock.DeleteByEntityFunc: method is nil but dependencyRepo.DeleteByEntity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteByEntity.Lock()
	mock.calls.DeleteByEntity = append(mock.calls.DeleteByEntity, callInfo)
	mock.lockDeleteByEntity.Unlock()
	return mock.DeleteByEntityFunc(ctx, id)
}

func (mock *dependencyRepoMock) DeleteByEntityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteByEntity.RLock()
	calls = mock.calls.DeleteByEntity
	mock.lockDeleteByEntity.RUnlock()
	return calls
}
