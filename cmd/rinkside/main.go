package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fortuna/rinkside/internal/cache"
	"github.com/fortuna/rinkside/internal/config"
	"github.com/fortuna/rinkside/internal/ingest/htmlstats"
	"github.com/fortuna/rinkside/internal/ingest/statsapi"
	"github.com/fortuna/rinkside/internal/logging"
	"github.com/fortuna/rinkside/internal/pipeline"
	"github.com/fortuna/rinkside/internal/store"
)

var version = "1.0.0"

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := newRootCmd(cfg, logger)
	if err := root.Execute(); err != nil {
		if errors.Is(err, store.ErrRolledBack) {
			// The insert was rolled back after drop+create committed: the
			// destination table exists and is empty. The run ends normally;
			// recovery is a re-run.
			logger.Error("load failed, destination table left empty", zap.Error(err))
			return
		}
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "rinkside",
		Short:         "rinkside - full-refresh loader for league statistics datasets",
		Long:          "rinkside extracts one statistics dataset per invocation (games, teams or players)\nfrom its source and replaces the destination table's contents.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var render bool

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "Load game results from the statistics site",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRun(cmd.Context(), cfg, logger, render, false, func(ctx context.Context, r *pipeline.Runner) error {
				return r.RunGames(ctx)
			})
		},
	}
	gamesCmd.Flags().BoolVar(&render, "render", false, "fetch through headless Chrome")

	var abbrev bool
	teamsCmd := &cobra.Command{
		Use:   "teams",
		Short: "Load the team listing from the statistics site",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRun(cmd.Context(), cfg, logger, render, false, func(ctx context.Context, r *pipeline.Runner) error {
				return r.RunTeams(ctx, abbrev)
			})
		},
	}
	teamsCmd.Flags().BoolVar(&render, "render", false, "fetch through headless Chrome")
	teamsCmd.Flags().BoolVar(&abbrev, "abbrev", false, "include 3-letter abbreviations")

	apiTeamsCmd := &cobra.Command{
		Use:   "teams-api",
		Short: "Load franchise info from the stats API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRun(cmd.Context(), cfg, logger, false, false, func(ctx context.Context, r *pipeline.Runner) error {
				return r.RunAPITeams(ctx)
			})
		},
	}

	playersCmd := &cobra.Command{
		Use:   "players",
		Short: "Load player bios from the stats API (requires teams-api loaded first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRun(cmd.Context(), cfg, logger, false, true, func(ctx context.Context, r *pipeline.Runner) error {
				return r.RunPlayers(ctx)
			})
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rinkside v%s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	root.AddCommand(gamesCmd, teamsCmd, apiTeamsCmd, playersCmd, versionCmd)
	return root
}

// withRun opens the run's resources, builds the pipeline runner and invokes
// one dataset. Credentials and the database session come first; either
// failing is fatal before any source traffic.
func withRun(ctx context.Context, cfg *config.Config, logger *zap.Logger, render, useCache bool, fn func(context.Context, *pipeline.Runner) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	creds, err := config.ReadCredentials(cfg.CredentialsPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DSN(creds))
	if err != nil {
		return err
	}
	defer db.Close()

	var fetcher htmlstats.Fetcher
	if render {
		rendered := htmlstats.NewRenderedFetcher()
		defer rendered.Close()
		fetcher = rendered
	} else {
		fetcher = htmlstats.NewHTTPFetcher(cfg.HTTPTimeout)
	}

	api := statsapi.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	if useCache && cfg.RedisURL != "" {
		pc, err := cache.New(cfg.RedisURL)
		if err != nil {
			logger.Warn("profile cache unavailable, fetching everything", zap.Error(err))
		} else {
			defer pc.Close()
			api = api.WithProfileCache(pc)
		}
	}

	runner := &pipeline.Runner{
		DB:           db,
		HTML:         fetcher,
		API:          api,
		ExcludedCity: cfg.ExcludedCity,
		Log:          logger,
	}
	return fn(ctx, runner)
}
