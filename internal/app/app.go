package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb"
	modulerepo "github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb/module"
	skillrepo "github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb/skill"
	"github.com/heartmarshall/skilltracker-backend/internal/config"
	"github.com/heartmarshall/skilltracker-backend/internal/service/module"
	"github.com/heartmarshall/skilltracker-backend/internal/service/skill"
	gqltransport "github.com/heartmarshall/skilltracker-backend/internal/transport/graphql"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/skilltracker-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// MongoDB, wires repositories, services and the GraphQL schema, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.Name),
		slog.Bool("transactions", cfg.Database.Transactions),
	)

	client, err := mongodb.NewClient(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongodb disconnect", slog.String("error", err.Error()))
		}
	}()

	db := client.Database(cfg.Database.Name)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	handler, err := newHandler(cfg, logger, client, db)
	if err != nil {
		return err
	}

	return serve(ctx, cfg.Server, logger, handler)
}

// newHandler wires the dependency graph on top of an open database.
func newHandler(cfg *config.Config, logger *slog.Logger, client *mongo.Client, db *mongo.Database) (http.Handler, error) {
	skills := skillrepo.New(db)
	modules := modulerepo.New(db)
	tx := mongodb.NewTxManager(client, cfg.Database.Transactions)

	skillService := skill.NewService(logger, skills, modules, tx)
	moduleService := module.NewService(logger, modules, skills, tx)

	root := resolver.NewResolver(logger, skillService, moduleService, gqltransport.NewErrorPresenter(logger))
	schema, err := gqltransport.NewSchema(root, cfg.GraphQL, logger)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics()
	}

	return NewRouter(RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Schema:  schema,
		Loaders: &dataloader.Repos{Skill: skills, Module: modules},
		Health: rest.NewHealthHandler(logger, BuildVersion(), map[string]rest.Pinger{
			"mongodb": mongodb.NewPinger(client),
		}),
		Metrics: metrics,
	}), nil
}

func serve(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
