package dispatch

import (
	"context"
	"sync"
)

var _ webhookPoster = &webhookPosterMock{}

type webhookPosterMock struct {
	PostWebhookFunc func(ctx context.Context, url string, text string) error

	calls struct {
		PostWebhook []struct {
			Ctx  context.Context
			URL  string
			Text string
		}
	}
	lockPostWebhook sync.RWMutex
}

func (mock *webhookPosterMock) PostWebhook(ctx context.Context, url string, text string) error {
	if mock.PostWebhookFunc == nil {
		panic("webhookPosterMock.PostWebhookFunc: method is nil but webhookPoster.PostWebhook was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		URL  string
		Text string
	}{
		Ctx:  ctx,
		URL:  url,
		Text: text,
	}
	mock.lockPostWebhook.Lock()
	mock.calls.PostWebhook = append(mock.calls.PostWebhook, callInfo)
	mock.lockPostWebhook.Unlock()
	return mock.PostWebhookFunc(ctx, url, text)
}

func (mock *webhookPosterMock) PostWebhookCalls() []struct {
	Ctx  context.Context
	URL  string
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		URL  string
		Text string
	}
	mock.lockPostWebhook.RLock()
	calls = mock.calls.PostWebhook
	mock.lockPostWebhook.RUnlock()
	return calls
}
