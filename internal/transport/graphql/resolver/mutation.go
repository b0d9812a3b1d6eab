package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/skilltracker-backend/internal/service/module"
	"github.com/heartmarshall/skilltracker-backend/internal/service/skill"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/graphql/dataloader"
)

func (r *Resolver) AddSkill(ctx context.Context, args struct{ Input SkillInput }) (*SkillResolver, error) {
	s, err := r.skill.AddSkill(ctx, skill.AddSkillInput{
		Title:  args.Input.Title,
		Status: args.Input.Status,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	dataloader.Invalidate(ctx, s.ID)
	return &SkillResolver{root: r, skill: *s}, nil
}

// UpdateSkill applies a partial update; empty-string fields are ignored.
func (r *Resolver) UpdateSkill(ctx context.Context, args struct {
	ID     graphql.ID
	Fields SkillUpdateInput
}) (*SkillResolver, error) {
	s, err := r.skill.UpdateSkill(ctx, skill.UpdateSkillInput{
		ID:     string(args.ID),
		Title:  args.Fields.Title,
		Status: args.Fields.Status,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	dataloader.Invalidate(ctx, s.ID)
	return &SkillResolver{root: r, skill: *s}, nil
}

func (r *Resolver) DeleteSkill(ctx context.Context, args struct{ ID graphql.ID }) (*SkillResolver, error) {
	s, err := r.skill.DeleteSkill(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	dataloader.Invalidate(ctx, s.ID)
	return &SkillResolver{root: r, skill: *s}, nil
}

func (r *Resolver) AddModule(ctx context.Context, args struct{ Input ModuleInput }) (*ModuleResolver, error) {
	m, err := r.module.AddModule(ctx, module.AddModuleInput{
		Title:       args.Input.Title,
		Description: args.Input.Description,
		SkillID:     string(args.Input.SkillID),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	dataloader.Invalidate(ctx, m.SkillID)
	return &ModuleResolver{root: r, module: *m}, nil
}

func (r *Resolver) DeleteModule(ctx context.Context, args struct{ ID graphql.ID }) (*ModuleResolver, error) {
	m, err := r.module.DeleteModule(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	dataloader.Invalidate(ctx, m.SkillID)
	return &ModuleResolver{root: r, module: *m}, nil
}
