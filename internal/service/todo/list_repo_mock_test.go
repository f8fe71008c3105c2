package todo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc      func(ctx context.Context, ownerID uuid.UUID, title string) (*domain.List, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*domain.List, error)
	OwnerIDFunc     func(ctx context.Context, listID uuid.UUID) (uuid.UUID, error)
	DeleteFunc      func(ctx context.Context, listID, ownerID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Title   string
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		OwnerID []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		Delete []struct {
			Ctx     context.Context
			ListID  uuid.UUID
			OwnerID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockListByOwner sync.RWMutex
	lockOwnerID     sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, ownerID uuid.UUID, title string) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Title   string
	}{Ctx: ctx, OwnerID: ownerID, Title: title}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, title)
}

func (mock *listRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Title   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.List, error) {
	if mock.ListByOwnerFunc == nil {
		panic("listRepoMock.ListByOwnerFunc: method is nil but listRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *listRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *listRepoMock) OwnerID(ctx context.Context, listID uuid.UUID) (uuid.UUID, error) {
	if mock.OwnerIDFunc == nil {
		panic("listRepoMock.OwnerIDFunc: method is nil but listRepo.OwnerID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockOwnerID.Lock()
	mock.calls.OwnerID = append(mock.calls.OwnerID, callInfo)
	mock.lockOwnerID.Unlock()
	return mock.OwnerIDFunc(ctx, listID)
}

func (mock *listRepoMock) OwnerIDCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockOwnerID.RLock()
	calls := mock.calls.OwnerID
	mock.lockOwnerID.RUnlock()
	return calls
}

func (mock *listRepoMock) Delete(ctx context.Context, listID, ownerID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("listRepoMock.DeleteFunc: method is nil but listRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ListID  uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, ListID: listID, OwnerID: ownerID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, listID, ownerID)
}

func (mock *listRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	ListID  uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
