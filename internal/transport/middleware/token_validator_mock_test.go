package middleware

import (
	"github.com/heartmarshall/customtrack-backend/internal/auth"
	"sync"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateActorTokenFunc func(token string) (auth.Identity, error)

	calls struct {
		ValidateActorToken []struct {
			Token string
		}
	}
	lockValidateActorToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateActorToken(token string) (auth.Identity, error) {
	if mock.ValidateActorTokenFunc == nil {
		panic("tokenValidatorMock.ValidateActorTokenFunc: method is nil but tokenValidator.ValidateActorToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateActorToken.Lock()
	mock.calls.ValidateActorToken = append(mock.calls.ValidateActorToken, callInfo)
	mock.lockValidateActorToken.Unlock()
	return mock.ValidateActorTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateActorTokenCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidateActorToken.RLock()
	calls = mock.calls.ValidateActorToken
	mock.lockValidateActorToken.RUnlock()
	return calls
}
