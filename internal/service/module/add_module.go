package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// AddModule creates a module under an existing skill. Module titles are
// unique across all skills and compared exactly as given.
func (s *Service) AddModule(ctx context.Context, input AddModuleInput) (*domain.Module, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var module *domain.Module
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.skills.Lock(txCtx, input.SkillID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSkillNotFound
			}
			return fmt.Errorf("get skill: %w", err)
		}

		exists, err := s.modules.ExistsByTitle(txCtx, input.Title)
		if err != nil {
			return fmt.Errorf("check module title: %w", err)
		}
		if exists {
			return domain.ErrDuplicateModule
		}

		module, err = s.modules.Create(txCtx, &domain.Module{
			Title:       input.Title,
			Description: input.description(),
			SkillID:     input.SkillID,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				return domain.ErrDuplicateModule
			case errors.Is(err, domain.ErrNotFound):
				return domain.ErrSkillNotFound
			}
			return fmt.Errorf("create module: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "module created",
		slog.String("module_id", module.ID),
		slog.String("skill_id", module.SkillID),
		slog.String("title", module.Title),
	)

	return module, nil
}
