package repository

import (
	"context"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/infra"
	sqlc "lucky-draw/internal/infra/sqlc/generated"
)

type DrawResultWriteQueries interface {
	CreateDrawResult(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDrawResultParams) (sqlc.DrawResults, error)
}

type DrawResultRepository struct {
	queries DrawResultWriteQueries
	db      sqlc.DBTX
}

func NewDrawResultRepository(queries DrawResultWriteQueries, db sqlc.DBTX) *DrawResultRepository {
	return &DrawResultRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the primary key of draw_results to reject a second record
// for the same order; that surfaces as KindDuplicateKey.
func (r *DrawResultRepository) Create(ctx context.Context, record *redemption.DrawResultRecord) error {
	params := sqlc.CreateDrawResultParams{
		OrderNumber: record.OrderNumber().String(),
		DrawResult:  record.DrawResult().String(),
	}

	if _, err := r.queries.CreateDrawResult(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create draw result", err)
	}
	return nil
}
