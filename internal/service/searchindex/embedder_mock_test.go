package searchindex

import (
	"context"
	"sync"
)

var _ Embedder = &EmbedderMock{}

type EmbedderMock struct {
	NameFunc  func() string
	EmbedFunc func(ctx context.Context, text string) ([]float32, error)

	calls struct {
		Name []struct {
		}
		Embed []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockName  sync.RWMutex
	lockEmbed sync.RWMutex
}

func (mock *EmbedderMock) Name() string {
	if mock.NameFunc == nil {
		panic("EmbedderMock.NameFunc: method is nil but Embedder.Name was just called")
	}
	callInfo := struct {
	}{}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, callInfo)
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *EmbedderMock) NameCalls() []struct {
} {
	var calls []struct {
	}
	mock.lockName.RLock()
	calls = mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *EmbedderMock) Embed(ctx context.Context, text string) ([]float32, error) {
	if mock.EmbedFunc == nil {
		panic("EmbedderMock.EmbedFunc: method is nil but Embedder.Embed was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, text)
}

func (mock *EmbedderMock) EmbedCalls() []struct {
	Ctx  context.Context
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Text string
	}
	mock.lockEmbed.RLock()
	calls = mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}
