// Command cleanup finds modules whose skill no longer exists and, with
// --delete, removes them. With transactions enabled addModule locks the
// skill document, so orphans come from deleteSkill and addModule racing
// with transactions disabled or from writes made outside the API. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Flags:
//
//	--delete  remove the orphans instead of only reporting them
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb/module"
	"github.com/heartmarshall/skilltracker-backend/internal/app"
	"github.com/heartmarshall/skilltracker-backend/internal/config"
)

func main() {
	deleteFlag := flag.Bool("delete", false, "remove orphaned modules")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	modules := module.New(client.Database(cfg.Database.Name))

	orphans, err := modules.ListOrphans(ctx)
	if err != nil {
		logger.Error("list orphans failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deleted := 0
	for _, m := range orphans {
		logger.Info("orphan module",
			slog.String("module_id", m.ID),
			slog.String("title", m.Title),
			slog.String("skill_id", m.SkillID),
		)
		if !*deleteFlag {
			continue
		}
		if _, err := modules.Delete(ctx, m.ID); err != nil {
			logger.Error("delete orphan failed",
				slog.String("module_id", m.ID),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		deleted++
	}

	logger.Info("cleanup completed",
		slog.Int("orphans", len(orphans)),
		slog.Int("deleted", deleted),
	)
}
