package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"lucky-draw/cmd/bootstrap"
	"lucky-draw/cmd/bootstrap/components"
	"lucky-draw/internal/pkg/config"
	"lucky-draw/internal/usecase/commands"

	"go.uber.org/fx"
)

type importParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Imports    commands.OrderImportCommands
	Logger     *slog.Logger
}

func main() {
	file := flag.String("file", "", "CSV file whose first column holds order numbers (default stdin)")
	header := flag.Bool("header", false, "skip the first row")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	orderNumbers, err := readInput(*file, *header)
	if err != nil {
		slog.Error("failed to read order numbers", "error", err)
		os.Exit(1)
	}

	var exitCode int
	app := fx.New(
		bootstrap.ConfigModule(cfg),
		bootstrap.LoggerModule,
		bootstrap.FxLogger,
		bootstrap.StoreModule(cfg.Store.Driver),
		components.UseCaseModule,
		fx.Invoke(func(p importParams) {
			p.Lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						if err := runImport(p, orderNumbers); err != nil {
							p.Logger.Error("import failed", "error", err)
							exitCode = 1
						}
						_ = p.Shutdowner.Shutdown(fx.ExitCode(exitCode))
					}()
					return nil
				},
			})
		}),
	)

	app.Run()
	os.Exit(exitCode)
}

func runImport(p importParams, orderNumbers []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	result, err := p.Imports.ImportOrders(ctx, orderNumbers)
	if result != nil {
		for _, r := range result.Rejected {
			p.Logger.Warn("order number rejected", "line", r.Line, "value", r.Value, "reason", r.Reason)
		}
		p.Logger.Info("import finished",
			"read", len(orderNumbers),
			"created", result.Created,
			"skipped", result.Skipped,
			"rejected", len(result.Rejected))
	}
	return err
}

func readInput(path string, skipHeader bool) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return readOrderNumbers(r, skipHeader)
}
