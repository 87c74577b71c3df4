package queries

import (
	"context"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/infra"
	"lucky-draw/internal/pkg/errs"
)

type OrderView struct {
	OrderNumber string  `json:"orderNumber"`
	HasPlayed   bool    `json:"hasPlayed"`
	DrawResult  *string `json:"drawResult,omitempty"`
}

type OrderReadStore interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type OrderQueries interface {
	// CheckOrderNumber succeeds only for an existing, unplayed order. It never writes.
	CheckOrderNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) CheckOrderNumber(ctx context.Context, raw string) (*OrderView, error) {
	orderNumber, err := redemption.NewOrderNumber(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	view, err := q.repo.FindByOrderNumber(ctx, orderNumber.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}

	if view.HasPlayed {
		return nil, errs.Mark(redemption.ErrAlreadyRedeemed, errs.ErrOrderAlreadyUsed)
	}
	return view, nil
}
