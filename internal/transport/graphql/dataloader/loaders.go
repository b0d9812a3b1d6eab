package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Skill by ID
// ---------------------------------------------------------------------------

// A key with no matching skill (deleted or malformed) resolves to nil
// without error.
func newSkillBatchFn(repo skillRepo) dataloader.BatchFunc[string, *domain.Skill] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Skill] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Skill](len(keys), err)
		}

		byID := make(map[string]*domain.Skill, len(rows))
		for i := range rows {
			s := rows[i] // copy to avoid aliasing
			byID[s.ID] = &s
		}

		results := make([]*dataloader.Result[*domain.Skill], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Skill]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Modules by SkillID
// ---------------------------------------------------------------------------

func newModulesBatchFn(repo moduleRepo) dataloader.BatchFunc[string, []domain.Module] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]domain.Module] {
		modules, err := repo.ListBySkillIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Module](len(keys), err)
		}

		grouped := make(map[string][]domain.Module, len(keys))
		for _, m := range modules {
			grouped[m.SkillID] = append(grouped[m.SkillID], m)
		}

		return mapResults(keys, grouped, emptySlice[domain.Module])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []string, grouped map[string]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
