package middleware

import (
	"context"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
	"sync"
)

var _ sessionResolver = &sessionResolverMock{}

type sessionResolverMock struct {
	ParseSessionFunc func(ctx context.Context, token string) (ctxutil.Session, error)

	calls struct {
		ParseSession []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockParseSession sync.RWMutex
}

func (mock *sessionResolverMock) ParseSession(ctx context.Context, token string) (ctxutil.Session, error) {
	if mock.ParseSessionFunc == nil {
		panic("sessionResolverMock.ParseSessionFunc: method is nil but sessionResolver.ParseSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockParseSession.Lock()
	mock.calls.ParseSession = append(mock.calls.ParseSession, callInfo)
	mock.lockParseSession.Unlock()
	return mock.ParseSessionFunc(ctx, token)
}

func (mock *sessionResolverMock) ParseSessionCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockParseSession.RLock()
	calls := mock.calls.ParseSession
	mock.lockParseSession.RUnlock()
	return calls
}
