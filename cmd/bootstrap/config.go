package bootstrap

import (
	"lucky-draw/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already validated config. Loading happens before
// fx starts so a missing credential stops the process immediately.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg, cfg.Firestore),
	)
}
