package readstore

import (
	"context"

	"lucky-draw/internal/infra"
	sqlc "lucky-draw/internal/infra/sqlc/generated"
	"lucky-draw/internal/pkg/pgconv"
	"lucky-draw/internal/usecase/queries"
)

type OrderReadQueries interface {
	GetOrderRecord(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.OrderRecords, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByOrderNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderRecord(ctx, r.db, orderNumber)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	return &queries.OrderView{
		OrderNumber: row.OrderNumber,
		HasPlayed:   row.HasPlayed,
		DrawResult:  pgconv.StringPtrFromPgtype(row.DrawResult),
	}, nil
}
