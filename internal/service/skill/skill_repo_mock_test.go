package skill

import (
	"context"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"sync"
)

var _ skillRepo = &skillRepoMock{}

type skillRepoMock struct {
	CreateFunc        func(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Skill, error)
	ExistsByTitleFunc func(ctx context.Context, title string) (bool, error)
	ListFunc          func(ctx context.Context, filter domain.SkillFilter) ([]*domain.Skill, error)
	UpdateFunc        func(ctx context.Context, id string, params domain.SkillUpdateParams) (*domain.Skill, error)
	DeleteFunc        func(ctx context.Context, id string) (*domain.Skill, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Skill
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		ExistsByTitle []struct {
			Ctx   context.Context
			Title string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SkillFilter
		}
		Update []struct {
			Ctx    context.Context
			ID     string
			Params domain.SkillUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockExistsByTitle sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *skillRepoMock) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	if mock.CreateFunc == nil {
		panic("skillRepoMock.CreateFunc: method is nil but skillRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Skill
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *skillRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Skill
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *skillRepoMock) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	if mock.GetByIDFunc == nil {
		panic("skillRepoMock.GetByIDFunc: method is nil but skillRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *skillRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *skillRepoMock) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	if mock.ExistsByTitleFunc == nil {
		panic("skillRepoMock.ExistsByTitleFunc: method is nil but skillRepo.ExistsByTitle was just called")
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

func (mock *skillRepoMock) ExistsByTitleCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockExistsByTitle.RLock()
	calls := mock.calls.ExistsByTitle
	mock.lockExistsByTitle.RUnlock()
	return calls
}

func (mock *skillRepoMock) List(ctx context.Context, filter domain.SkillFilter) ([]*domain.Skill, error) {
	if mock.ListFunc == nil {
		panic("skillRepoMock.ListFunc: method is nil but skillRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SkillFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *skillRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SkillFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *skillRepoMock) Update(ctx context.Context, id string, params domain.SkillUpdateParams) (*domain.Skill, error) {
	if mock.UpdateFunc == nil {
		panic("skillRepoMock.UpdateFunc: method is nil but skillRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Params domain.SkillUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *skillRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     string
	Params domain.SkillUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *skillRepoMock) Delete(ctx context.Context, id string) (*domain.Skill, error) {
	if mock.DeleteFunc == nil {
		panic("skillRepoMock.DeleteFunc: method is nil but skillRepo.Delete was just called")
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

func (mock *skillRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
