package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

const importConcurrency = 8

type RejectedOrderNumber struct {
	Line   int
	Value  string
	Reason string
}

type ImportOrdersResult struct {
	Created  int
	Skipped  int
	Rejected []RejectedOrderNumber
}

type OrderImportCommands interface {
	ImportOrders(ctx context.Context, orderNumbers []string) (*ImportOrdersResult, error)
}

type orderImportUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewOrderImportCommands(uow shared.UnitOfWork) OrderImportCommands {
	return &orderImportUseCaseImpl{uow: uow}
}

// ImportOrders seeds unplayed orders keyed by their order number. Orders that
// already exist are left untouched, so re-running an import is safe. Each
// order is written in its own transaction, up to importConcurrency at a time.
// On a store failure the counts reflect the writes that finished.
func (uc *orderImportUseCaseImpl) ImportOrders(ctx context.Context, orderNumbers []string) (*ImportOrdersResult, error) {
	result := &ImportOrdersResult{}
	seen := make(map[string]struct{}, len(orderNumbers))
	pending := make([]redemption.OrderNumber, 0, len(orderNumbers))

	for i, raw := range orderNumbers {
		orderNumber, err := redemption.NewOrderNumber(raw)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedOrderNumber{Line: i + 1, Value: raw, Reason: err.Error()})
			continue
		}
		if _, dup := seen[orderNumber.String()]; dup {
			result.Skipped++
			continue
		}
		seen[orderNumber.String()] = struct{}{}
		pending = append(pending, orderNumber)
	}

	var created, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importConcurrency)
	for _, orderNumber := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var ok bool
			err := uc.uow.Within(gctx, func(ctx context.Context, tx shared.Tx) error {
				var derr error
				ok, derr = tx.Orders().CreateIfAbsent(ctx, redemption.NewOrderRecord(orderNumber))
				return derr
			})
			if err != nil {
				return err
			}
			if ok {
				created.Add(1)
			} else {
				skipped.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()

	result.Created = int(created.Load())
	result.Skipped += int(skipped.Load())
	if err != nil {
		return result, markStoreFailure(err)
	}

	slog.Info("orders imported",
		"created", result.Created,
		"skipped", result.Skipped,
		"rejected", len(result.Rejected))
	return result, nil
}
