package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// GetSkill returns a skill by id.
func (s *Service) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}

	return skill, nil
}
