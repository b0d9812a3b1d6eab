package resolver

import (
	"context"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"github.com/heartmarshall/skilltracker-backend/internal/service/module"
	"sync"
)

var _ moduleService = &moduleServiceMock{}

type moduleServiceMock struct {
	ListBySkillFunc  func(ctx context.Context, skillID string) ([]*domain.Module, error)
	AddModuleFunc    func(ctx context.Context, input module.AddModuleInput) (*domain.Module, error)
	DeleteModuleFunc func(ctx context.Context, id string) (*domain.Module, error)

	calls struct {
		ListBySkill []struct {
			Ctx     context.Context
			SkillID string
		}
		AddModule []struct {
			Ctx   context.Context
			Input module.AddModuleInput
		}
		DeleteModule []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListBySkill  sync.RWMutex
	lockAddModule    sync.RWMutex
	lockDeleteModule sync.RWMutex
}

func (mock *moduleServiceMock) ListBySkill(ctx context.Context, skillID string) ([]*domain.Module, error) {
	if mock.ListBySkillFunc == nil {
		panic("moduleServiceMock.ListBySkillFunc: method is nil but moduleService.ListBySkill was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		SkillID string
	}{Ctx: ctx, SkillID: skillID}
	mock.lockListBySkill.Lock()
	mock.calls.ListBySkill = append(mock.calls.ListBySkill, callInfo)
	mock.lockListBySkill.Unlock()
	return mock.ListBySkillFunc(ctx, skillID)
}

func (mock *moduleServiceMock) ListBySkillCalls() []struct {
	Ctx     context.Context
	SkillID string
} {
	mock.lockListBySkill.RLock()
	calls := mock.calls.ListBySkill
	mock.lockListBySkill.RUnlock()
	return calls
}

func (mock *moduleServiceMock) AddModule(ctx context.Context, input module.AddModuleInput) (*domain.Module, error) {
	if mock.AddModuleFunc == nil {
		panic("moduleServiceMock.AddModuleFunc: method is nil but moduleService.AddModule was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input module.AddModuleInput
	}{Ctx: ctx, Input: input}
	mock.lockAddModule.Lock()
	mock.calls.AddModule = append(mock.calls.AddModule, callInfo)
	mock.lockAddModule.Unlock()
	return mock.AddModuleFunc(ctx, input)
}

func (mock *moduleServiceMock) AddModuleCalls() []struct {
	Ctx   context.Context
	Input module.AddModuleInput
} {
	mock.lockAddModule.RLock()
	calls := mock.calls.AddModule
	mock.lockAddModule.RUnlock()
	return calls
}

func (mock *moduleServiceMock) DeleteModule(ctx context.Context, id string) (*domain.Module, error) {
	if mock.DeleteModuleFunc == nil {
		panic("moduleServiceMock.DeleteModuleFunc: method is nil but moduleService.DeleteModule was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteModule.Lock()
	mock.calls.DeleteModule = append(mock.calls.DeleteModule, callInfo)
	mock.lockDeleteModule.Unlock()
	return mock.DeleteModuleFunc(ctx, id)
}

func (mock *moduleServiceMock) DeleteModuleCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteModule.RLock()
	calls := mock.calls.DeleteModule
	mock.lockDeleteModule.RUnlock()
	return calls
}
