package app

import (
	"context"
	"time"

	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/x/subscription"
	"github.com/tendermint/tendermint/libs/log"
)

// Payer moves value from the contract balance to the recipient of a
// transfer.
type Payer interface {
	Pay(ctx context.Context, t subscription.Transfer) error
}

// PayerFunc adapts a function to the Payer interface.
type PayerFunc func(context.Context, subscription.Transfer) error

// Pay implements Payer.
func (fn PayerFunc) Pay(ctx context.Context, t subscription.Transfer) error {
	return fn(ctx, t)
}

// PayoutWorker periodically drains the payout queue of an App into a Payer.
//
// A transfer is removed from the queue before it is paid. A failed payment
// is logged and never retried, and it never affects the ledger.
type PayoutWorker struct {
	app      *App
	payer    Payer
	interval time.Duration
	logger   log.Logger
}

// NewPayoutWorker returns a worker that checks the queue every interval.
func NewPayoutWorker(app *App, payer Payer, interval time.Duration) *PayoutWorker {
	return &PayoutWorker{
		app:      app,
		payer:    payer,
		interval: interval,
		logger:   app.Logger().With("module", "payout"),
	}
}

// Run drains the queue until the context is cancelled.
func (w *PayoutWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Drain(ctx); err != nil {
			w.logger.Error("cannot drain payout queue", "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Drain pays all transfers that are due and returns how many were
// processed, successfully or not. Transfers of nothing are dropped without
// calling the payer.
func (w *PayoutWorker) Drain(ctx context.Context) (int, error) {
	var (
		processed int
		total     coin.Amount
	)
	defer func() {
		if processed > 0 {
			w.logger.Info("payouts drained", "processed", processed, "paid", total)
		}
	}()
	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		t, err := w.app.NextPayout(ctx)
		switch {
		case err == nil:
		case errors.ErrEmpty.Is(err):
			return processed, nil
		default:
			return processed, errors.Wrap(err, "next payout")
		}
		processed++

		if t.Amount.IsZero() {
			payoutsTotal.WithLabelValues("skipped").Inc()
			w.logger.Debug("payout skipped, nothing to pay", "recipient", t.Recipient)
			continue
		}
		if err := w.pay(ctx, *t); err != nil {
			payoutsTotal.WithLabelValues(resultLabel(err)).Inc()
			w.logger.Error("payout failed",
				"recipient", t.Recipient, "amount", t.Amount, "err", err)
			continue
		}
		payoutsTotal.WithLabelValues("ok").Inc()
		w.logger.Info("payout executed", "recipient", t.Recipient, "amount", t.Amount)
		if sum, err := total.Add(t.Amount); err == nil {
			total = sum
		} else {
			w.logger.Error("cannot sum paid amount", "err", err)
		}
	}
}

func (w *PayoutWorker) pay(ctx context.Context, t subscription.Transfer) (err error) {
	defer errors.Recover(&err)
	return w.payer.Pay(ctx, t)
}
