// Package resolver implements the GraphQL root and type resolvers.
package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"github.com/heartmarshall/skilltracker-backend/internal/service/module"
	"github.com/heartmarshall/skilltracker-backend/internal/service/skill"
)

// skillService defines what resolver needs from Skill service.
type skillService interface {
	ListSkills(ctx context.Context, input skill.ListSkillsInput) ([]*domain.Skill, error)
	GetSkill(ctx context.Context, id string) (*domain.Skill, error)
	AddSkill(ctx context.Context, input skill.AddSkillInput) (*domain.Skill, error)
	UpdateSkill(ctx context.Context, input skill.UpdateSkillInput) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id string) (*domain.Skill, error)
}

// moduleService defines what resolver needs from Module service.
type moduleService interface {
	ListBySkill(ctx context.Context, skillID string) ([]*domain.Module, error)
	AddModule(ctx context.Context, input module.AddModuleInput) (*domain.Module, error)
	DeleteModule(ctx context.Context, id string) (*domain.Module, error)
}

// Resolver is the root resolver for both Query and Mutation fields.
type Resolver struct {
	skill   skillService
	module  moduleService
	present func(ctx context.Context, err error) error
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
// present converts service errors into client-facing GraphQL errors.
func NewResolver(
	log *slog.Logger,
	skill skillService,
	module moduleService,
	present func(ctx context.Context, err error) error,
) *Resolver {
	return &Resolver{
		skill:   skill,
		module:  module,
		present: present,
		log:     log.With("component", "graphql"),
	}
}

func (r *Resolver) fail(ctx context.Context, err error) error {
	if r.present == nil {
		return err
	}
	return r.present(ctx, err)
}
