package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListFunc        func(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Notification, error)
	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		List []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			UnreadOnly bool
			Limit      int
		}
		MarkRead []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockMarkAllRead sync.RWMutex
}

func (mock *notificationServiceMock) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if mock.ListFunc == nil {
		panic("notificationServiceMock.ListFunc: method is nil but notificationService.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		UnreadOnly bool
		Limit      int
	}{
		Ctx:        ctx,
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, unreadOnly, limit)
}

func (mock *notificationServiceMock) ListCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		UnreadOnly bool
		Limit      int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationServiceMock.MarkReadFunc: method is nil but notificationService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		ID:     id,
		UserID: userID,
	}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id, userID)
}

func (mock *notificationServiceMock) MarkReadCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}
	mock.lockMarkRead.RLock()
	calls = mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationServiceMock.MarkAllReadFunc: method is nil but notificationService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx, userID)
}

func (mock *notificationServiceMock) MarkAllReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockMarkAllRead.RLock()
	calls = mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}
