package bootstrap

import (
	"context"
	"time"

	"lucky-draw/internal/infra/docstore"
	"lucky-draw/internal/pkg/config"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
)

var FirestoreModule = fx.Module("firestore",
	fx.Provide(
		NewFirestoreClient,
	),
)

func NewFirestoreClient(lc fx.Lifecycle, cfg config.FirestoreConfig) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cleanup, err := docstore.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
