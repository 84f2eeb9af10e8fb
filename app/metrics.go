package app

import (
	"context"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vesting",
		Name:      "operations_total",
		Help:      "Number of executed operations by result.",
	}, []string{"op", "result"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vesting",
		Name:      "operation_duration_seconds",
		Help:      "Duration of executed operations, including the commit.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	payoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vesting",
		Name:      "payouts_total",
		Help:      "Number of processed payout instructions by result.",
	}, []string{"result"})

	pendingPayouts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "vesting",
		Name:      "payouts_pending",
		Help:      "Number of committed transfers waiting for the payout worker.",
	})

	storeVersion = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "vesting",
		Name:      "store_version",
		Help:      "Latest committed store version.",
	})
)

// observe counts the result of the operation the context is labeled with.
func observe(ctx context.Context, err error) {
	operationsTotal.WithLabelValues(vesting.GetOperation(ctx), resultLabel(err)).Inc()
}

// resultLabel returns a low cardinality label describing the error.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.ErrPanic.Is(err):
		return "panic"
	case errors.ErrEmpty.Is(err):
		return "empty"
	case errors.ErrInput.Is(err), errors.ErrInvalidAccount.Is(err):
		return "invalid"
	case errors.ErrNotFound.Is(err):
		return "not_found"
	case errors.ErrPrecondition.Is(err),
		errors.ErrAlreadyInitialized.Is(err),
		errors.ErrNotInitialized.Is(err),
		errors.ErrState.Is(err):
		return "rejected"
	default:
		return "error"
	}
}
