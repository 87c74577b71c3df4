package repository

import (
	"context"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/infra"
	sqlc "lucky-draw/internal/infra/sqlc/generated"
	"lucky-draw/internal/pkg/pgconv"
)

type OrderWriteQueries interface {
	GetOrderRecordForUpdate(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.OrderRecords, error)
	MarkOrderRecordPlayed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderRecordPlayedParams) (int64, error)
	InsertOrderRecord(ctx context.Context, db sqlc.DBTX, orderNumber string) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, orderNumber redemption.OrderNumber) (*redemption.OrderRecord, error) {
	row, err := r.queries.GetOrderRecordForUpdate(ctx, r.db, orderNumber.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return toOrderRecord(row)
}

func (r *OrderRepository) SavePlayed(ctx context.Context, order *redemption.OrderRecord) error {
	params := sqlc.MarkOrderRecordPlayedParams{
		OrderNumber: order.OrderNumber().String(),
	}
	if result := order.DrawResult(); result != nil {
		params.DrawResult = pgconv.StringToPgtype(result.String())
	}

	affected, err := r.queries.MarkOrderRecordPlayed(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order played", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order was played concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) CreateIfAbsent(ctx context.Context, order *redemption.OrderRecord) (bool, error) {
	affected, err := r.queries.InsertOrderRecord(ctx, r.db, order.OrderNumber().String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert order", err)
	}
	return affected > 0, nil
}

func toOrderRecord(row sqlc.OrderRecords) (*redemption.OrderRecord, error) {
	orderNumber, err := redemption.NewOrderNumber(row.OrderNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order number is invalid", err, infra.KindDBFailure)
	}

	var drawResult *redemption.DrawResult
	if s := pgconv.StringPtrFromPgtype(row.DrawResult); s != nil {
		d, err := redemption.NewDrawResult(*s)
		if err != nil {
			return nil, infra.WrapRepoErr("stored draw result is invalid", err, infra.KindDBFailure)
		}
		drawResult = &d
	}

	return redemption.ReconstructOrderRecord(orderNumber, row.HasPlayed, drawResult), nil
}
