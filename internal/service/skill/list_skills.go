package skill

import (
	"context"
	"fmt"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// ListSkills returns one page of skills matching the filter.
// There is no total count; callers request the next page until it is empty.
func (s *Service) ListSkills(ctx context.Context, input ListSkillsInput) ([]*domain.Skill, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	skills, err := s.skills.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return skills, nil
}
