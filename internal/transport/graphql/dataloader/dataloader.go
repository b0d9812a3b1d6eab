// Package dataloader provides per-request DataLoaders for batching GraphQL
// relationship resolvers into single $in queries. DataLoaders call
// repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type skillRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Skill, error)
}

type moduleRepo interface {
	ListBySkillIDs(ctx context.Context, skillIDs []string) ([]domain.Module, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Skill  skillRepo
	Module moduleRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains all DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	SkillByID        *dataloader.Loader[string, *domain.Skill]
	ModulesBySkillID *dataloader.Loader[string, []domain.Module]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		SkillByID:        newLoader(newSkillBatchFn(repos.Skill)),
		ModulesBySkillID: newLoader(newModulesBatchFn(repos.Module)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// Invalidate drops the cached skill and module list for skillID from the
// request's loaders. Mutations call it so that later fields in the same
// document see their writes. A context without loaders is left alone.
func Invalidate(ctx context.Context, skillID string) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		return
	}
	l.SkillByID.Clear(ctx, skillID)
	l.ModulesBySkillID.Clear(ctx, skillID)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
