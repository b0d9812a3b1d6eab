package module

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

type moduleRepo interface {
	Create(ctx context.Context, m *domain.Module) (*domain.Module, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	ListBySkillID(ctx context.Context, skillID string) ([]*domain.Module, error)
	Delete(ctx context.Context, id string) (*domain.Module, error)
}

// skillRepo.Lock must write the skill document so that AddModule and a
// concurrent DeleteSkill conflict inside transactions.
type skillRepo interface {
	Lock(ctx context.Context, id string) (*domain.Skill, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides module management operations.
type Service struct {
	modules moduleRepo
	skills  skillRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Module service.
func NewService(
	log *slog.Logger,
	modules moduleRepo,
	skills skillRepo,
	tx txManager,
) *Service {
	return &Service{
		modules: modules,
		skills:  skills,
		tx:      tx,
		log:     log.With("service", "module"),
	}
}
