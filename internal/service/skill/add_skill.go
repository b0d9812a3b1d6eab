package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// AddSkill creates a skill. The title is stored as given and must not
// already be in use (exact, case-sensitive match).
func (s *Service) AddSkill(ctx context.Context, input AddSkillInput) (*domain.Skill, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := input.Title
	status := domain.SkillStatusPlanned
	if input.Status != nil && *input.Status != "" {
		status = domain.SkillStatus(*input.Status)
	}

	exists, err := s.skills.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("check skill title: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateSkill
	}

	// The unique index catches a concurrent insert that passed the check.
	skill, err := s.skills.Create(ctx, &domain.Skill{Title: title, Status: status})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateSkill
		}
		return nil, fmt.Errorf("create skill: %w", err)
	}

	s.log.InfoContext(ctx, "skill created",
		slog.String("skill_id", skill.ID),
		slog.String("title", skill.Title),
		slog.String("status", skill.Status.String()),
	)

	return skill, nil
}
