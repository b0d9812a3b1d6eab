package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/graphql/dataloader"
)

// ---------------------------------------------------------------------------
// Input objects
// ---------------------------------------------------------------------------

// SkillFilterInput mirrors the SkillFilter input type.
type SkillFilterInput struct {
	Title  *string
	Status *string
}

// SkillQueryInput mirrors the SkillQueryInput input type.
type SkillQueryInput struct {
	Filter    *SkillFilterInput
	SortBy    *string
	SortOrder *int32
	Page      *int32
	Limit     *int32
}

// SkillInput mirrors the SkillInput input type.
type SkillInput struct {
	Title  string
	Status *string
}

// SkillUpdateInput mirrors the SkillUpdateInput input type.
type SkillUpdateInput struct {
	Title  *string
	Status *string
}

// ModuleInput mirrors the ModuleInput input type.
type ModuleInput struct {
	Title       string
	Description *string
	SkillID     graphql.ID
}

// ---------------------------------------------------------------------------
// Skill
// ---------------------------------------------------------------------------

// SkillResolver resolves the Skill type.
type SkillResolver struct {
	root  *Resolver
	skill domain.Skill
}

func (s *SkillResolver) ID() graphql.ID { return graphql.ID(s.skill.ID) }

func (s *SkillResolver) Title() string { return s.skill.Title }

func (s *SkillResolver) Status() string { return s.skill.Status.String() }

// Modules is batched per request through the ModulesBySkillID loader.
func (s *SkillResolver) Modules(ctx context.Context) ([]*ModuleResolver, error) {
	modules, err := dataloader.FromContext(ctx).ModulesBySkillID.Load(ctx, s.skill.ID)()
	if err != nil {
		return nil, s.root.fail(ctx, err)
	}

	out := make([]*ModuleResolver, len(modules))
	for i := range modules {
		out[i] = &ModuleResolver{root: s.root, module: modules[i]}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Module
// ---------------------------------------------------------------------------

// ModuleResolver resolves the Module type.
type ModuleResolver struct {
	root   *Resolver
	module domain.Module
}

func (m *ModuleResolver) ID() graphql.ID { return graphql.ID(m.module.ID) }

func (m *ModuleResolver) Title() string { return m.module.Title }

func (m *ModuleResolver) Description() string { return m.module.Description }

// Skill resolves to null when the referenced skill no longer exists.
func (m *ModuleResolver) Skill(ctx context.Context) (*SkillResolver, error) {
	skill, err := dataloader.FromContext(ctx).SkillByID.Load(ctx, m.module.SkillID)()
	if err != nil {
		return nil, m.root.fail(ctx, err)
	}
	if skill == nil {
		return nil, nil
	}
	return &SkillResolver{root: m.root, skill: *skill}, nil
}

// ---------------------------------------------------------------------------
// Conversion helpers
// ---------------------------------------------------------------------------

func (r *Resolver) skillResolvers(skills []*domain.Skill) []*SkillResolver {
	out := make([]*SkillResolver, 0, len(skills))
	for _, s := range skills {
		if s != nil {
			out = append(out, &SkillResolver{root: r, skill: *s})
		}
	}
	return out
}

func (r *Resolver) moduleResolvers(modules []*domain.Module) []*ModuleResolver {
	out := make([]*ModuleResolver, 0, len(modules))
	for _, m := range modules {
		if m != nil {
			out = append(out, &ModuleResolver{root: r, module: *m})
		}
	}
	return out
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
