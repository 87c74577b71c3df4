package components

import (
	"lucky-draw/internal/handler"
	"lucky-draw/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRedemptionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
