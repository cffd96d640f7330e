package subscription

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ channelConfigReader = &channelConfigReaderMock{}

type channelConfigReaderMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *channelConfigReaderMock) Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error) {
	if mock.GetFunc == nil {
		panic("channelConfigReaderMock.GetFunc: method is nil but channelConfigReader.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *channelConfigReaderMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
