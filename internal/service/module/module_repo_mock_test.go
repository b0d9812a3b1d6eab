package module

import (
	"context"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"sync"
)

var _ moduleRepo = &moduleRepoMock{}

type moduleRepoMock struct {
	CreateFunc        func(ctx context.Context, m *domain.Module) (*domain.Module, error)
	ExistsByTitleFunc func(ctx context.Context, title string) (bool, error)
	ListBySkillIDFunc func(ctx context.Context, skillID string) ([]*domain.Module, error)
	DeleteFunc        func(ctx context.Context, id string) (*domain.Module, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Module
		}
		ExistsByTitle []struct {
			Ctx   context.Context
			Title string
		}
		ListBySkillID []struct {
			Ctx     context.Context
			SkillID string
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate        sync.RWMutex
	lockExistsByTitle sync.RWMutex
	lockListBySkillID sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *moduleRepoMock) Create(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	if mock.CreateFunc == nil {
		panic("moduleRepoMock.CreateFunc: method is nil but moduleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Module
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *moduleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Module
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *moduleRepoMock) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	if mock.ExistsByTitleFunc == nil {
		panic("moduleRepoMock.ExistsByTitleFunc: method is nil but moduleRepo.ExistsByTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
	}{Ctx: ctx, Title: title}
	mock.lockExistsByTitle.Lock()
	mock.calls.ExistsByTitle = append(mock.calls.ExistsByTitle, callInfo)
	mock.lockExistsByTitle.Unlock()
	return mock.ExistsByTitleFunc(ctx, title)
}

func (mock *moduleRepoMock) ExistsByTitleCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockExistsByTitle.RLock()
	calls := mock.calls.ExistsByTitle
	mock.lockExistsByTitle.RUnlock()
	return calls
}

func (mock *moduleRepoMock) ListBySkillID(ctx context.Context, skillID string) ([]*domain.Module, error) {
	if mock.ListBySkillIDFunc == nil {
		panic("moduleRepoMock.ListBySkillIDFunc: method is nil but moduleRepo.ListBySkillID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		SkillID string
	}{Ctx: ctx, SkillID: skillID}
	mock.lockListBySkillID.Lock()
	mock.calls.ListBySkillID = append(mock.calls.ListBySkillID, callInfo)
	mock.lockListBySkillID.Unlock()
	return mock.ListBySkillIDFunc(ctx, skillID)
}

func (mock *moduleRepoMock) ListBySkillIDCalls() []struct {
	Ctx     context.Context
	SkillID string
} {
	mock.lockListBySkillID.RLock()
	calls := mock.calls.ListBySkillID
	mock.lockListBySkillID.RUnlock()
	return calls
}

func (mock *moduleRepoMock) Delete(ctx context.Context, id string) (*domain.Module, error) {
	if mock.DeleteFunc == nil {
		panic("moduleRepoMock.DeleteFunc: method is nil but moduleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *moduleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
