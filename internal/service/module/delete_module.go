package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// DeleteModule removes a module and returns the removed record.
// The owning skill is not affected.
func (s *Service) DeleteModule(ctx context.Context, id string) (*domain.Module, error) {
	module, err := s.modules.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, fmt.Errorf("delete module: %w", err)
	}

	s.log.InfoContext(ctx, "module deleted",
		slog.String("module_id", module.ID),
		slog.String("skill_id", module.SkillID),
	)

	return module, nil
}
