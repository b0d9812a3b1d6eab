package skill

import (
	"context"
	"sync"
)

var _ moduleCounter = &moduleCounterMock{}

type moduleCounterMock struct {
	CountBySkillIDFunc func(ctx context.Context, skillID string) (int, error)

	calls struct {
		CountBySkillID []struct {
			Ctx     context.Context
			SkillID string
		}
	}
	lockCountBySkillID sync.RWMutex
}

func (mock *moduleCounterMock) CountBySkillID(ctx context.Context, skillID string) (int, error) {
	if mock.CountBySkillIDFunc == nil {
		panic("moduleCounterMock.CountBySkillIDFunc: method is nil but moduleCounter.CountBySkillID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		SkillID string
	}{Ctx: ctx, SkillID: skillID}
	mock.lockCountBySkillID.Lock()
	mock.calls.CountBySkillID = append(mock.calls.CountBySkillID, callInfo)
	mock.lockCountBySkillID.Unlock()
	return mock.CountBySkillIDFunc(ctx, skillID)
}

func (mock *moduleCounterMock) CountBySkillIDCalls() []struct {
	Ctx     context.Context
	SkillID string
} {
	mock.lockCountBySkillID.RLock()
	calls := mock.calls.CountBySkillID
	mock.lockCountBySkillID.RUnlock()
	return calls
}
