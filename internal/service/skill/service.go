package skill

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

type skillRepo interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	List(ctx context.Context, filter domain.SkillFilter) ([]*domain.Skill, error)
	Update(ctx context.Context, id string, params domain.SkillUpdateParams) (*domain.Skill, error)
	Delete(ctx context.Context, id string) (*domain.Skill, error)
}

type moduleCounter interface {
	CountBySkillID(ctx context.Context, skillID string) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pagination defaults and bounds for ListSkills.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Service provides skill management operations.
type Service struct {
	skills  skillRepo
	modules moduleCounter
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Skill service.
func NewService(
	log *slog.Logger,
	skills skillRepo,
	modules moduleCounter,
	tx txManager,
) *Service {
	return &Service{
		skills:  skills,
		modules: modules,
		tx:      tx,
		log:     log.With("service", "skill"),
	}
}

// nonEmpty returns nil for nil or "". Other values, whitespace included,
// pass through unchanged.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
