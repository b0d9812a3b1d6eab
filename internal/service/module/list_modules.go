package module

import (
	"context"
	"fmt"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// ListBySkill returns every module of a skill. An unknown skill yields an
// empty list rather than an error.
func (s *Service) ListBySkill(ctx context.Context, skillID string) ([]*domain.Module, error) {
	modules, err := s.modules.ListBySkillID(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}

	return modules, nil
}
