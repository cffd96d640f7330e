package changetrack

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ customizationRepo = &customizationRepoMock{}

type customizationRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Customization, error)
	LockByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Customization, error)
	ListFunc     func(ctx context.Context, f domain.CustomizationFilter, page domain.Page) ([]domain.Customization, error)
	CreateFunc   func(ctx context.Context, c domain.Customization) (*domain.Customization, error)
	UpdateFunc   func(ctx context.Context, c domain.Customization) (*domain.Customization, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx  context.Context
			F    domain.CustomizationFilter
			Page domain.Page
		}
		Create []struct {
			Ctx context.Context
			C   domain.Customization
		}
		Update []struct {
			Ctx context.Context
			C   domain.Customization
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockLockByID sync.RWMutex
	lockList     sync.RWMutex
	lockCreate   sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
}

func (mock *customizationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error) {
	if mock.GetByIDFunc == nil {
		panic("customizationRepoMock.GetByIDFunc: method is nil but customizationRepo.GetByID was just called")
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

func (mock *customizationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customizationRepoMock) LockByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error) {
	if mock.LockByIDFunc == nil {
		panic("customizationRepoMock.LockByIDFunc: method is nil but customizationRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

func (mock *customizationRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockLockByID.RLock()
	calls = mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}

func (mock *customizationRepoMock) List(ctx context.Context, f domain.CustomizationFilter, page domain.Page) ([]domain.Customization, error) {
	if mock.ListFunc == nil {
		panic("customizationRepoMock.ListFunc: method is nil but customizationRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.CustomizationFilter
		Page domain.Page
	}{
		Ctx:  ctx,
		F:    f,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, page)
}

func (mock *customizationRepoMock) ListCalls() []struct {
	Ctx  context.Context
	F    domain.CustomizationFilter
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		F    domain.CustomizationFilter
		Page domain.Page
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customizationRepoMock) Create(ctx context.Context, c domain.Customization) (*domain.Customization, error) {
	if mock.CreateFunc == nil {
		panic("customizationRepoMock.CreateFunc: method is nil but customizationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Customization
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *customizationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Customization
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Customization
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *customizationRepoMock) Update(ctx context.Context, c domain.Customization) (*domain.Customization, error) {
	if mock.UpdateFunc == nil {
		panic("customizationRepoMock.UpdateFunc: method is nil but customizationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Customization
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *customizationRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   domain.Customization
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Customization
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *customizationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("customizationRepoMock.DeleteFunc: method is nil but customizationRepo.Delete was just called")
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

func (mock *customizationRepoMock) DeleteCalls() []struct {
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
