package module

import (
	"context"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"sync"
)

var _ skillRepo = &skillRepoMock{}

type skillRepoMock struct {
	LockFunc func(ctx context.Context, id string) (*domain.Skill, error)

	calls struct {
		Lock []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockLock sync.RWMutex
}

func (mock *skillRepoMock) Lock(ctx context.Context, id string) (*domain.Skill, error) {
	if mock.LockFunc == nil {
		panic("skillRepoMock.LockFunc: method is nil but skillRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, id)
}

func (mock *skillRepoMock) LockCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}
