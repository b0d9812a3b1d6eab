package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// DeleteSkill removes a skill that no module references and returns the
// removed record.
func (s *Service) DeleteSkill(ctx context.Context, id string) (*domain.Skill, error) {
	var deleted *domain.Skill
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.skills.GetByID(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSkillNotFound
			}
			return fmt.Errorf("get skill: %w", err)
		}

		count, err := s.modules.CountBySkillID(txCtx, id)
		if err != nil {
			return fmt.Errorf("count modules: %w", err)
		}
		if count > 0 {
			return domain.ErrSkillHasModules
		}

		deleted, err = s.skills.Delete(txCtx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSkillNotFound
			}
			return fmt.Errorf("delete skill: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "skill deleted",
		slog.String("skill_id", deleted.ID),
		slog.String("title", deleted.Title),
	)

	return deleted, nil
}
