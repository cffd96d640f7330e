package notification

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListForUserFunc func(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Notification, error)
	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListForUser []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			UnreadOnly bool
			Limit      int
		}
		MarkRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockListForUser sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockMarkAllRead sync.RWMutex
}

func (mock *notificationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if mock.GetByIDFunc == nil {
		panic("notificationRepoMock.GetByIDFunc: method is nil but notificationRepo.GetByID was just called")
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

func (mock *notificationRepoMock) GetByIDCalls() []struct {
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

func (mock *notificationRepoMock) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if mock.ListForUserFunc == nil {
		panic("notificationRepoMock.ListForUserFunc: method is nil but notificationRepo.ListForUser was just called")
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
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID, unreadOnly, limit)
}

func (mock *notificationRepoMock) ListForUserCalls() []struct {
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
	mock.lockListForUser.RLock()
	calls = mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
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
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, userID, id)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockMarkRead.RLock()
	calls = mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
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

func (mock *notificationRepoMock) MarkAllReadCalls() []struct {
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
