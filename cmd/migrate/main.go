package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"lucky-draw/internal/handler/middleware"
	"lucky-draw/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateEnv struct {
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migrations and atlas.sum")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	var logCfg config.LogConfig
	if err := envconfig.Process("", &logCfg); err != nil {
		slog.Error("failed to load log config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(logCfg).GetSlogLogger()

	if err := run(logger, *dir, *dryRun, *timeout); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir string, dryRun bool, timeout time.Duration) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	var env migrateEnv
	if err := envconfig.Process("", &env); err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), env.AtlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("migration applied", "version", f.Version, "name", f.Name)
	}
	logger.Info("database is up to date",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", dryRun)
	return nil
}
