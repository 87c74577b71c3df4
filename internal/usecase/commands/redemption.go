package commands

import (
	"context"
	"log/slog"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/infra"
	"lucky-draw/internal/pkg/errs"
	"lucky-draw/internal/usecase/shared"
)

type RecordDrawResultRequest struct {
	OrderNumber string
	DrawResult  string
}

type RecordDrawResultResult struct {
	OrderNumber string
	DrawResult  string
}

type RedemptionCommands interface {
	RecordDrawResult(ctx context.Context, req RecordDrawResultRequest) (*RecordDrawResultResult, error)
}

type redemptionUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRedemptionCommands(uow shared.UnitOfWork) RedemptionCommands {
	return &redemptionUseCaseImpl{uow: uow}
}

// RecordDrawResult consumes the order's single draw attempt. The eligibility
// check and both writes happen in one transaction, so concurrent calls for the
// same order yield exactly one success.
func (uc *redemptionUseCaseImpl) RecordDrawResult(ctx context.Context, req RecordDrawResultRequest) (*RecordDrawResultResult, error) {
	orderNumber, err := redemption.NewOrderNumber(req.OrderNumber)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	drawResult, err := redemption.NewDrawResult(req.DrawResult)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		order, derr := tx.Orders().FindForUpdate(ctx, orderNumber)
		if derr != nil {
			return classifyRepoErr(derr)
		}

		record, derr := order.Redeem(drawResult)
		if derr != nil {
			return errs.Mark(derr, errs.ErrOrderAlreadyUsed)
		}

		if derr = tx.Orders().SavePlayed(ctx, order); derr != nil {
			return classifyRepoErr(derr)
		}
		if derr = tx.DrawResults().Create(ctx, record); derr != nil {
			return classifyRepoErr(derr)
		}
		return nil
	})
	if err != nil {
		// Commit-time failures arrive here unclassified.
		if !errs.Is(err, errs.ErrOrderNotFound) && !errs.Is(err, errs.ErrOrderAlreadyUsed) {
			err = classifyRepoErr(err)
		}
		return nil, err
	}

	slog.Info("draw result recorded", "order_number", orderNumber.String())
	return &RecordDrawResultResult{
		OrderNumber: orderNumber.String(),
		DrawResult:  drawResult.String(),
	}, nil
}

// classifyRepoErr maps repository error kinds onto the redemption taxonomy.
// A duplicate draw result or a lost conditional update both mean another
// caller already consumed the order.
func classifyRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrOrderNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrOrderAlreadyUsed)
	default:
		return markStoreFailure(err)
	}
}

func markStoreFailure(err error) error {
	if errs.Is(err, errs.ErrStoreFailure) {
		return err
	}
	return errs.Mark(err, errs.ErrStoreFailure)
}
