package auth

import (
	"sync"
	"time"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(username string, role string) (string, error)
	ValidateAccessTokenFunc func(token string) (string, string, error)
	AccessTTLFunc           func() time.Duration

	calls struct {
		GenerateAccessToken []struct {
			Username string
			Role     string
		}
		ValidateAccessToken []struct {
			Token string
		}
		AccessTTL []struct{}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
	lockAccessTTL           sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(username string, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		Username string
		Role     string
	}{
		Username: username,
		Role:     role,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(username, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	Username string
	Role     string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (string, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) AccessTTL() time.Duration {
	if mock.AccessTTLFunc == nil {
		panic("jwtManagerMock.AccessTTLFunc: method is nil but jwtManager.AccessTTL was just called")
	}
	callInfo := struct{}{}
	mock.lockAccessTTL.Lock()
	mock.calls.AccessTTL = append(mock.calls.AccessTTL, callInfo)
	mock.lockAccessTTL.Unlock()
	return mock.AccessTTLFunc()
}

func (mock *jwtManagerMock) AccessTTLCalls() []struct{} {
	mock.lockAccessTTL.RLock()
	calls := mock.calls.AccessTTL
	mock.lockAccessTTL.RUnlock()
	return calls
}
