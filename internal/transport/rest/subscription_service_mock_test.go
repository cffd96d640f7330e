package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/service/subscription"
	"sync"
)

var _ subscriptionService = &subscriptionServiceMock{}

type subscriptionServiceMock struct {
	SubscribeFunc           func(ctx context.Context, userID uuid.UUID, input subscription.SubscribeInput) (*domain.Subscription, error)
	UnsubscribeFunc         func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	SetActiveFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID, active bool) (*domain.Subscription, error)
	ListForUserFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
	GetChannelConfigFunc    func(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)
	UpdateChannelConfigFunc func(ctx context.Context, userID uuid.UUID, input subscription.UpdateChannelConfigInput) (*domain.ChannelConfig, error)
	ProvisionUserFunc       func(ctx context.Context, input subscription.ProvisionUserInput) (*domain.User, error)

	calls struct {
		Subscribe []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  subscription.SubscribeInput
		}
		Unsubscribe []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		SetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Active bool
		}
		ListForUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetChannelConfig []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateChannelConfig []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  subscription.UpdateChannelConfigInput
		}
		ProvisionUser []struct {
			Ctx   context.Context
			Input subscription.ProvisionUserInput
		}
	}
	lockSubscribe           sync.RWMutex
	lockUnsubscribe         sync.RWMutex
	lockSetActive           sync.RWMutex
	lockListForUser         sync.RWMutex
	lockGetChannelConfig    sync.RWMutex
	lockUpdateChannelConfig sync.RWMutex
	lockProvisionUser       sync.RWMutex
}

func (mock *subscriptionServiceMock) Subscribe(ctx context.Context, userID uuid.UUID, input subscription.SubscribeInput) (*domain.Subscription, error) {
	if mock.SubscribeFunc == nil {
		panic("subscriptionServiceMock.SubscribeFunc: method is nil but subscriptionService.Subscribe was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  subscription.SubscribeInput
	}{
		Ctx:    ctx,
		UserID: userID,
		Input:  input,
	}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, userID, input)
}

func (mock *subscriptionServiceMock) SubscribeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  subscription.SubscribeInput
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  subscription.SubscribeInput
	}
	mock.lockSubscribe.RLock()
	calls = mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *subscriptionServiceMock) Unsubscribe(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.UnsubscribeFunc == nil {
		panic("subscriptionServiceMock.UnsubscribeFunc: method is nil but subscriptionService.Unsubscribe was just called")
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
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, userID, id)
}

func (mock *subscriptionServiceMock) UnsubscribeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockUnsubscribe.RLock()
	calls = mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *subscriptionServiceMock) SetActive(ctx context.Context, userID uuid.UUID, id uuid.UUID, active bool) (*domain.Subscription, error) {
	if mock.SetActiveFunc == nil {
		panic("subscriptionServiceMock.SetActiveFunc: method is nil but subscriptionService.SetActive was just called")
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

func (mock *subscriptionServiceMock) SetActiveCalls() []struct {
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

func (mock *subscriptionServiceMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	if mock.ListForUserFunc == nil {
		panic("subscriptionServiceMock.ListForUserFunc: method is nil but subscriptionService.ListForUser was just called")
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

func (mock *subscriptionServiceMock) ListForUserCalls() []struct {
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

func (mock *subscriptionServiceMock) GetChannelConfig(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error) {
	if mock.GetChannelConfigFunc == nil {
		panic("subscriptionServiceMock.GetChannelConfigFunc: method is nil but subscriptionService.GetChannelConfig was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetChannelConfig.Lock()
	mock.calls.GetChannelConfig = append(mock.calls.GetChannelConfig, callInfo)
	mock.lockGetChannelConfig.Unlock()
	return mock.GetChannelConfigFunc(ctx, userID)
}

func (mock *subscriptionServiceMock) GetChannelConfigCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetChannelConfig.RLock()
	calls = mock.calls.GetChannelConfig
	mock.lockGetChannelConfig.RUnlock()
	return calls
}

func (mock *subscriptionServiceMock) UpdateChannelConfig(ctx context.Context, userID uuid.UUID, input subscription.UpdateChannelConfigInput) (*domain.ChannelConfig, error) {
	if mock.UpdateChannelConfigFunc == nil {
		panic("subscriptionServiceMock.UpdateChannelConfigFunc: method is nil but subscriptionService.UpdateChannelConfig was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  subscription.UpdateChannelConfigInput
	}{
		Ctx:    ctx,
		UserID: userID,
		Input:  input,
	}
	mock.lockUpdateChannelConfig.Lock()
	mock.calls.UpdateChannelConfig = append(mock.calls.UpdateChannelConfig, callInfo)
	mock.lockUpdateChannelConfig.Unlock()
	return mock.UpdateChannelConfigFunc(ctx, userID, input)
}

func (mock *subscriptionServiceMock) UpdateChannelConfigCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  subscription.UpdateChannelConfigInput
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  subscription.UpdateChannelConfigInput
	}
	mock.lockUpdateChannelConfig.RLock()
	calls = mock.calls.UpdateChannelConfig
	mock.lockUpdateChannelConfig.RUnlock()
	return calls
}

func (mock *subscriptionServiceMock) ProvisionUser(ctx context.Context, input subscription.ProvisionUserInput) (*domain.User, error) {
	if mock.ProvisionUserFunc == nil {
		panic("subscriptionServiceMock.ProvisionUserFunc: method is nil but subscriptionService.ProvisionUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subscription.ProvisionUserInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockProvisionUser.Lock()
	mock.calls.ProvisionUser = append(mock.calls.ProvisionUser, callInfo)
	mock.lockProvisionUser.Unlock()
	return mock.ProvisionUserFunc(ctx, input)
}

func (mock *subscriptionServiceMock) ProvisionUserCalls() []struct {
	Ctx   context.Context
	Input subscription.ProvisionUserInput
} {
	var calls []struct {
		Ctx   context.Context
		Input subscription.ProvisionUserInput
	}
	mock.lockProvisionUser.RLock()
	calls = mock.calls.ProvisionUser
	mock.lockProvisionUser.RUnlock()
	return calls
}
