// Package graphql provides the GraphQL transport layer for the skill tracker
// backend: the SDL schema, error presentation and schema construction. The
// resolvers live in the resolver subpackage.
package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"runtime/debug"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/skilltracker-backend/internal/config"
	"github.com/heartmarshall/skilltracker-backend/pkg/ctxutil"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the schema and binds it to root, which must implement
// every Query and Mutation field.
func NewSchema(root any, cfg config.GraphQLConfig, log *slog.Logger) (*gql.Schema, error) {
	opts := []gql.SchemaOpt{
		gql.Logger(panicLogger{log: log}),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, gql.MaxDepth(cfg.MaxDepth))
	}
	if !cfg.IntrospectionEnabled {
		opts = append(opts, gql.DisableIntrospection())
	}

	schema, err := gql.ParseSchema(schemaSDL, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

// panicLogger reports resolver panics recovered by the GraphQL runtime.
type panicLogger struct {
	log *slog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.ErrorContext(ctx, "panic in graphql resolver",
		slog.Any("panic", value),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		slog.String("stack", string(debug.Stack())),
	)
}
