package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/skilltracker-backend/internal/service/skill"
)

// GetAllSkills returns one page of skills. Omitted options use the defaults:
// sort by title ascending, page 1, limit 10.
func (r *Resolver) GetAllSkills(ctx context.Context, args struct{ Options *SkillQueryInput }) ([]*SkillResolver, error) {
	var input skill.ListSkillsInput
	if o := args.Options; o != nil {
		if o.Filter != nil {
			input.Title = o.Filter.Title
			input.Status = o.Filter.Status
		}
		input.SortBy = o.SortBy
		input.SortOrder = intPtr(o.SortOrder)
		input.Page = intPtr(o.Page)
		input.Limit = intPtr(o.Limit)
	}

	skills, err := r.skill.ListSkills(ctx, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.skillResolvers(skills), nil
}

func (r *Resolver) GetSkill(ctx context.Context, args struct{ ID graphql.ID }) (*SkillResolver, error) {
	s, err := r.skill.GetSkill(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &SkillResolver{root: r, skill: *s}, nil
}

func (r *Resolver) GetModulesBySkill(ctx context.Context, args struct{ SkillID graphql.ID }) ([]*ModuleResolver, error) {
	modules, err := r.module.ListBySkill(ctx, string(args.SkillID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.moduleResolvers(modules), nil
}
