package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// UpdateSkill applies the provided fields to a skill and returns the result.
// Empty-string values are skipped, so a field can never be cleared.
func (s *Service) UpdateSkill(ctx context.Context, input UpdateSkillInput) (*domain.Skill, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	skill, err := s.skills.Update(ctx, input.ID, params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrSkillNotFound
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, domain.ErrDuplicateSkill
		}
		return nil, fmt.Errorf("update skill: %w", err)
	}

	if !params.IsEmpty() {
		s.log.InfoContext(ctx, "skill updated",
			slog.String("skill_id", skill.ID),
			slog.String("title", skill.Title),
			slog.String("status", skill.Status.String()),
		)
	}

	return skill, nil
}
