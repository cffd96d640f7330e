package history

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListByEntityFunc func(ctx context.Context, entityID uuid.UUID, page domain.Page) ([]domain.AuditRecord, error)
	ListFunc         func(ctx context.Context, page domain.Page) ([]domain.AuditRecord, error)

	calls struct {
		ListByEntity []struct {
			Ctx      context.Context
			EntityID uuid.UUID
			Page     domain.Page
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
	}
	lockListByEntity sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *auditRepoMock) ListByEntity(ctx context.Context, entityID uuid.UUID, page domain.Page) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditRepoMock.ListByEntityFunc: method is nil but auditRepo.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntityID uuid.UUID
		Page     domain.Page
	}{
		Ctx:      ctx,
		EntityID: entityID,
		Page:     page,
	}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entityID, page)
}

func (mock *auditRepoMock) ListByEntityCalls() []struct {
	Ctx      context.Context
	EntityID uuid.UUID
	Page     domain.Page
} {
	var calls []struct {
		Ctx      context.Context
		EntityID uuid.UUID
		Page     domain.Page
	}
	mock.lockListByEntity.RLock()
	calls = mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}

func (mock *auditRepoMock) List(ctx context.Context, page domain.Page) ([]domain.AuditRecord, error) {
	if mock.ListFunc == nil {
		panic("auditRepoMock.ListFunc: method is nil but auditRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *auditRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Page domain.Page
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
