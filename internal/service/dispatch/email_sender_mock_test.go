package dispatch

import (
	"context"
	"sync"
)

var _ emailSender = &emailSenderMock{}

type emailSenderMock struct {
	SendEmailFunc func(ctx context.Context, to string, subject string, body string) error

	calls struct {
		SendEmail []struct {
			Ctx     context.Context
			To      string
			Subject string
			Body    string
		}
	}
	lockSendEmail sync.RWMutex
}

func (mock *emailSenderMock) SendEmail(ctx context.Context, to string, subject string, body string) error {
	if mock.SendEmailFunc == nil {
		panic("emailSenderMock.SendEmailFunc: method is nil but emailSender.SendEmail was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		To      string
		Subject string
		Body    string
	}{
		Ctx:     ctx,
		To:      to,
		Subject: subject,
		Body:    body,
	}
	mock.lockSendEmail.Lock()
	mock.calls.SendEmail = append(mock.calls.SendEmail, callInfo)
	mock.lockSendEmail.Unlock()
	return mock.SendEmailFunc(ctx, to, subject, body)
}

func (mock *emailSenderMock) SendEmailCalls() []struct {
	Ctx     context.Context
	To      string
	Subject string
	Body    string
} {
	var calls []struct {
		Ctx     context.Context
		To      string
		Subject string
		Body    string
	}
	mock.lockSendEmail.RLock()
	calls = mock.calls.SendEmail
	mock.lockSendEmail.RUnlock()
	return calls
}
