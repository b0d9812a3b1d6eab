package resolver

import (
	"context"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"github.com/heartmarshall/skilltracker-backend/internal/service/skill"
	"sync"
)

var _ skillService = &skillServiceMock{}

type skillServiceMock struct {
	ListSkillsFunc  func(ctx context.Context, input skill.ListSkillsInput) ([]*domain.Skill, error)
	GetSkillFunc    func(ctx context.Context, id string) (*domain.Skill, error)
	AddSkillFunc    func(ctx context.Context, input skill.AddSkillInput) (*domain.Skill, error)
	UpdateSkillFunc func(ctx context.Context, input skill.UpdateSkillInput) (*domain.Skill, error)
	DeleteSkillFunc func(ctx context.Context, id string) (*domain.Skill, error)

	calls struct {
		ListSkills []struct {
			Ctx   context.Context
			Input skill.ListSkillsInput
		}
		GetSkill []struct {
			Ctx context.Context
			ID  string
		}
		AddSkill []struct {
			Ctx   context.Context
			Input skill.AddSkillInput
		}
		UpdateSkill []struct {
			Ctx   context.Context
			Input skill.UpdateSkillInput
		}
		DeleteSkill []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListSkills  sync.RWMutex
	lockGetSkill    sync.RWMutex
	lockAddSkill    sync.RWMutex
	lockUpdateSkill sync.RWMutex
	lockDeleteSkill sync.RWMutex
}

func (mock *skillServiceMock) ListSkills(ctx context.Context, input skill.ListSkillsInput) ([]*domain.Skill, error) {
	if mock.ListSkillsFunc == nil {
		panic("skillServiceMock.ListSkillsFunc: method is nil but skillService.ListSkills was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input skill.ListSkillsInput
	}{Ctx: ctx, Input: input}
	mock.lockListSkills.Lock()
	mock.calls.ListSkills = append(mock.calls.ListSkills, callInfo)
	mock.lockListSkills.Unlock()
	return mock.ListSkillsFunc(ctx, input)
}

func (mock *skillServiceMock) ListSkillsCalls() []struct {
	Ctx   context.Context
	Input skill.ListSkillsInput
} {
	mock.lockListSkills.RLock()
	calls := mock.calls.ListSkills
	mock.lockListSkills.RUnlock()
	return calls
}

func (mock *skillServiceMock) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	if mock.GetSkillFunc == nil {
		panic("skillServiceMock.GetSkillFunc: method is nil but skillService.GetSkill was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetSkill.Lock()
	mock.calls.GetSkill = append(mock.calls.GetSkill, callInfo)
	mock.lockGetSkill.Unlock()
	return mock.GetSkillFunc(ctx, id)
}

func (mock *skillServiceMock) GetSkillCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetSkill.RLock()
	calls := mock.calls.GetSkill
	mock.lockGetSkill.RUnlock()
	return calls
}

func (mock *skillServiceMock) AddSkill(ctx context.Context, input skill.AddSkillInput) (*domain.Skill, error) {
	if mock.AddSkillFunc == nil {
		panic("skillServiceMock.AddSkillFunc: method is nil but skillService.AddSkill was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input skill.AddSkillInput
	}{Ctx: ctx, Input: input}
	mock.lockAddSkill.Lock()
	mock.calls.AddSkill = append(mock.calls.AddSkill, callInfo)
	mock.lockAddSkill.Unlock()
	return mock.AddSkillFunc(ctx, input)
}

func (mock *skillServiceMock) AddSkillCalls() []struct {
	Ctx   context.Context
	Input skill.AddSkillInput
} {
	mock.lockAddSkill.RLock()
	calls := mock.calls.AddSkill
	mock.lockAddSkill.RUnlock()
	return calls
}

func (mock *skillServiceMock) UpdateSkill(ctx context.Context, input skill.UpdateSkillInput) (*domain.Skill, error) {
	if mock.UpdateSkillFunc == nil {
		panic("skillServiceMock.UpdateSkillFunc: method is nil but skillService.UpdateSkill was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input skill.UpdateSkillInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSkill.Lock()
	mock.calls.UpdateSkill = append(mock.calls.UpdateSkill, callInfo)
	mock.lockUpdateSkill.Unlock()
	return mock.UpdateSkillFunc(ctx, input)
}

func (mock *skillServiceMock) UpdateSkillCalls() []struct {
	Ctx   context.Context
	Input skill.UpdateSkillInput
} {
	mock.lockUpdateSkill.RLock()
	calls := mock.calls.UpdateSkill
	mock.lockUpdateSkill.RUnlock()
	return calls
}

func (mock *skillServiceMock) DeleteSkill(ctx context.Context, id string) (*domain.Skill, error) {
	if mock.DeleteSkillFunc == nil {
		panic("skillServiceMock.DeleteSkillFunc: method is nil but skillService.DeleteSkill was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteSkill.Lock()
	mock.calls.DeleteSkill = append(mock.calls.DeleteSkill, callInfo)
	mock.lockDeleteSkill.Unlock()
	return mock.DeleteSkillFunc(ctx, id)
}

func (mock *skillServiceMock) DeleteSkillCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteSkill.RLock()
	calls := mock.calls.DeleteSkill
	mock.lockDeleteSkill.RUnlock()
	return calls
}
