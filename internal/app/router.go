package app

import (
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/heartmarshall/skilltracker-backend/internal/config"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/rest"
)

const graphqlPath = "/graphql"

// RouterDeps groups everything NewRouter mounts.
type RouterDeps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Schema  *gql.Schema
	Loaders *dataloader.Repos
	Health  *rest.HealthHandler
	Metrics *middleware.Metrics
}

// NewRouter builds the HTTP handler tree:
//
//	POST /graphql         GraphQL endpoint
//	GET  /                playground (GRAPHQL_PLAYGROUND_ENABLED)
//	GET  /live /ready /health
//	GET  /metrics         Prometheus (METRICS_ENABLED)
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	instrument := func(name string) middleware.Middleware {
		if d.Metrics == nil {
			return nil
		}
		return d.Metrics.Instrument(name)
	}

	base := middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.Config.CORS),
		middleware.Logger(d.Logger),
	)

	graphqlHandler := middleware.Chain(
		base,
		instrument("graphql"),
		d.Loaders.Attach,
	)(&relay.Handler{Schema: d.Schema})
	mux.Handle(graphqlPath, graphqlHandler)

	if d.Config.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /{$}", base(playground.Handler("Skill Tracker", graphqlPath)))
	}

	probes := middleware.Chain(middleware.Recovery(d.Logger), instrument("health"))
	mux.Handle("GET /live", probes(http.HandlerFunc(d.Health.Live)))
	mux.Handle("GET /ready", probes(http.HandlerFunc(d.Health.Ready)))
	mux.Handle("GET /health", probes(http.HandlerFunc(d.Health.Health)))

	if d.Metrics != nil && d.Config.Metrics.Enabled {
		mux.Handle("GET "+d.Config.Metrics.Path, d.Metrics.Handler())
	}

	return mux
}
