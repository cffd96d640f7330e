package subscription

import (
	"context"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"sync"
)

var _ channelConfigRepo = &channelConfigRepoMock{}

type channelConfigRepoMock struct {
	UpsertFunc         func(ctx context.Context, cfg domain.ChannelConfig) (*domain.ChannelConfig, error)
	CreateIfAbsentFunc func(ctx context.Context, cfg domain.ChannelConfig) (bool, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			Cfg domain.ChannelConfig
		}
		CreateIfAbsent []struct {
			Ctx context.Context
			Cfg domain.ChannelConfig
		}
	}
	lockUpsert         sync.RWMutex
	lockCreateIfAbsent sync.RWMutex
}

func (mock *channelConfigRepoMock) Upsert(ctx context.Context, cfg domain.ChannelConfig) (*domain.ChannelConfig, error) {
	if mock.UpsertFunc == nil {
		panic("channelConfigRepoMock.UpsertFunc: method is nil but channelConfigRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cfg domain.ChannelConfig
	}{
		Ctx: ctx,
		Cfg: cfg,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, cfg)
}

func (mock *channelConfigRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	Cfg domain.ChannelConfig
} {
	var calls []struct {
		Ctx context.Context
		Cfg domain.ChannelConfig
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *channelConfigRepoMock) CreateIfAbsent(ctx context.Context, cfg domain.ChannelConfig) (bool, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("channelConfigRepoMock.CreateIfAbsentFunc: method is nil but channelConfigRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cfg domain.ChannelConfig
	}{
		Ctx: ctx,
		Cfg: cfg,
	}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, cfg)
}

func (mock *channelConfigRepoMock) CreateIfAbsentCalls() []struct {
	Ctx context.Context
	Cfg domain.ChannelConfig
} {
	var calls []struct {
		Ctx context.Context
		Cfg domain.ChannelConfig
	}
	mock.lockCreateIfAbsent.RLock()
	calls = mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}
