package shared

import (
	"context"

	"lucky-draw/internal/domain/redemption"
)

type UnitOfWork interface {
	// Within runs fn in a single store transaction. Either every write made
	// through tx is committed or none is.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Orders() OrderRepository
	DrawResults() DrawResultRepository
}

type OrderRepository interface {
	// FindForUpdate loads the order and holds it against concurrent writers
	// until the transaction ends.
	FindForUpdate(ctx context.Context, orderNumber redemption.OrderNumber) (*redemption.OrderRecord, error)
	SavePlayed(ctx context.Context, order *redemption.OrderRecord) error
	// CreateIfAbsent reports whether the order was created.
	CreateIfAbsent(ctx context.Context, order *redemption.OrderRecord) (bool, error)
}

type DrawResultRepository interface {
	Create(ctx context.Context, record *redemption.DrawResultRecord) error
}
