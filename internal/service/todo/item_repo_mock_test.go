package todo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/apetrini/todolist-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc       func(ctx context.Context, listID uuid.UUID, text string) (*domain.Item, error)
	ListByListFunc   func(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	ToggleFunc       func(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	DeleteFunc       func(ctx context.Context, itemID uuid.UUID) error
	ListIDFunc       func(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	DeleteByListFunc func(ctx context.Context, listID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			ListID uuid.UUID
			Text   string
		}
		ListByList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		Toggle []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ListID []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		DeleteByList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockListByList   sync.RWMutex
	lockToggle       sync.RWMutex
	lockDelete       sync.RWMutex
	lockListID       sync.RWMutex
	lockDeleteByList sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, listID uuid.UUID, text string) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		Text   string
	}{Ctx: ctx, ListID: listID, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, listID, text)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	Text   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	if mock.ListByListFunc == nil {
		panic("itemRepoMock.ListByListFunc: method is nil but itemRepo.ListByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockListByList.Lock()
	mock.calls.ListByList = append(mock.calls.ListByList, callInfo)
	mock.lockListByList.Unlock()
	return mock.ListByListFunc(ctx, listID)
}

func (mock *itemRepoMock) ListByListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListByList.RLock()
	calls := mock.calls.ListByList
	mock.lockListByList.RUnlock()
	return calls
}

func (mock *itemRepoMock) Toggle(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	if mock.ToggleFunc == nil {
		panic("itemRepoMock.ToggleFunc: method is nil but itemRepo.Toggle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx, itemID)
}

func (mock *itemRepoMock) ToggleCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, itemID)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	if mock.ListIDFunc == nil {
		panic("itemRepoMock.ListIDFunc: method is nil but itemRepo.ListID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockListID.Lock()
	mock.calls.ListID = append(mock.calls.ListID, callInfo)
	mock.lockListID.Unlock()
	return mock.ListIDFunc(ctx, itemID)
}

func (mock *itemRepoMock) ListIDCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockListID.RLock()
	calls := mock.calls.ListID
	mock.lockListID.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	if mock.DeleteByListFunc == nil {
		panic("itemRepoMock.DeleteByListFunc: method is nil but itemRepo.DeleteByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockDeleteByList.Lock()
	mock.calls.DeleteByList = append(mock.calls.DeleteByList, callInfo)
	mock.lockDeleteByList.Unlock()
	return mock.DeleteByListFunc(ctx, listID)
}

func (mock *itemRepoMock) DeleteByListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockDeleteByList.RLock()
	calls := mock.calls.DeleteByList
	mock.lockDeleteByList.RUnlock()
	return calls
}
