package bootstrap

import (
	"lucky-draw/cmd/bootstrap/components"
	"lucky-draw/internal/pkg/config"

	"go.uber.org/fx"
)

// StoreModule picks the backing store for the unit of work and read store.
func StoreModule(driver string) fx.Option {
	switch driver {
	case config.DriverPostgres:
		return fx.Options(DBModule, components.PostgresModule)
	default:
		return fx.Options(FirestoreModule, components.FirestoreModule)
	}
}

// Module is the full HTTP application.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		FxLogger,
		MetricsModule,
		StoreModule(cfg.Store.Driver),
		components.UseCaseModule,
		components.HandlerModule,
	)
}
