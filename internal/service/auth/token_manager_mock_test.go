package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	SignFunc   func(sessionID, userID uuid.UUID) (string, error)
	VerifyFunc func(token string) (uuid.UUID, uuid.UUID, error)

	calls struct {
		Sign []struct {
			SessionID uuid.UUID
			UserID    uuid.UUID
		}
		Verify []struct {
			Token string
		}
	}
	lockSign   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *tokenManagerMock) Sign(sessionID, userID uuid.UUID) (string, error) {
	if mock.SignFunc == nil {
		panic("tokenManagerMock.SignFunc: method is nil but tokenManager.Sign was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		UserID    uuid.UUID
	}{SessionID: sessionID, UserID: userID}
	mock.lockSign.Lock()
	mock.calls.Sign = append(mock.calls.Sign, callInfo)
	mock.lockSign.Unlock()
	return mock.SignFunc(sessionID, userID)
}

func (mock *tokenManagerMock) SignCalls() []struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockSign.RLock()
	calls := mock.calls.Sign
	mock.lockSign.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Verify(token string) (uuid.UUID, uuid.UUID, error) {
	if mock.VerifyFunc == nil {
		panic("tokenManagerMock.VerifyFunc: method is nil but tokenManager.Verify was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenManagerMock) VerifyCalls() []struct {
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
