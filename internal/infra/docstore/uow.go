package docstore

import (
	"context"
	"log/slog"

	"lucky-draw/internal/infra"
	"lucky-draw/internal/pkg/config"
	"lucky-draw/internal/usecase/shared"

	"cloud.google.com/go/firestore"
)

const maxTransactionAttempts = 5

type FirestoreUoW struct {
	client      *firestore.Client
	orders      *firestore.CollectionRef
	drawResults *firestore.CollectionRef
}

func NewFirestoreUoW(client *firestore.Client, cfg config.FirestoreConfig) shared.UnitOfWork {
	return &FirestoreUoW{
		client:      client,
		orders:      client.Collection(cfg.OrdersCollection),
		drawResults: client.Collection(cfg.DrawResultsCollection),
	}
}

// Within runs fn in a Firestore transaction. Contention aborts are retried by
// the SDK; errors from fn are returned untouched and everything else comes
// back as a repository error.
func (u *FirestoreUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var fnErr error
	attempt := 0

	err := u.client.RunTransaction(ctx, func(ctx context.Context, t *firestore.Transaction) error {
		attempt++
		if attempt > 1 {
			slog.Warn("retrying firestore transaction", "attempt", attempt)
		}
		tx := &fsTx{
			orders:      NewOrderRepository(t, u.orders),
			drawResults: NewDrawResultRepository(t, u.drawResults),
		}
		fnErr = fn(ctx, tx)
		return fnErr
	}, firestore.MaxAttempts(maxTransactionAttempts))

	if err == nil || (fnErr != nil && err == fnErr) {
		return err
	}
	return infra.WrapRepoErr("firestore transaction failed", err)
}

type fsTx struct {
	orders      *OrderRepository
	drawResults *DrawResultRepository
}

func (t *fsTx) Orders() shared.OrderRepository {
	return t.orders
}

func (t *fsTx) DrawResults() shared.DrawResultRepository {
	return t.drawResults
}
