package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/vestingtest"
	"github.com/iov-one/vesting/x/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
)

func TestPayoutWorkerDrain(t *testing.T) {
	clock := vestingtest.NewClock(1)
	a := newTestApp(t, dbm.NewMemDB(), clock)
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, "owner"))

	for _, name := range []vesting.AccountID{"alice", "bob", "carol"} {
		signed := vesting.WithSigner(ctx, name)
		_, err := a.Subscribe(signed, "", coin.NewAmount(1200))
		require.NoError(t, err)
		_, err = a.Withdraw(signed, 0)
		require.NoError(t, err)
	}

	pending, err := a.PendingPayouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, pending)

	var logs bytes.Buffer
	a.WithLogger(log.NewTMLogger(log.NewSyncWriter(&logs)))

	var paid []subscription.Transfer
	payer := PayerFunc(func(ctx context.Context, tr subscription.Transfer) error {
		if tr.Recipient == "bob" {
			return errors.Wrap(errors.ErrInternal, "bank is down")
		}
		paid = append(paid, tr)
		return nil
	})
	w := NewPayoutWorker(a, payer, time.Second)

	n, err := w.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, paid, 2)
	assert.Equal(t, vesting.AccountID("alice"), paid[0].Recipient)
	assert.Equal(t, vesting.AccountID("carol"), paid[1].Recipient)
	assert.Equal(t, "1200", paid[0].Amount.String())
	assert.Contains(t, logs.String(), "paid=2400")

	pending, err = a.PendingPayouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)

	// Failed payouts are not retried.
	n, err = w.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// The ledger is not affected by a failed payout.
	subs, err := a.GetSubs(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestPayoutWorkerSkipsZeroAmount(t *testing.T) {
	a := newTestApp(t, dbm.NewMemDB(), vestingtest.NewClock(1))
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, "owner"))
	alice := vesting.WithSigner(ctx, "alice")

	// Less than one unit per period vests nothing.
	_, err := a.Subscribe(alice, "", coin.NewAmount(11))
	require.NoError(t, err)
	tr, err := a.Withdraw(alice, 0)
	require.NoError(t, err)
	require.True(t, tr.Amount.IsZero())

	var calls int
	w := NewPayoutWorker(a, PayerFunc(func(context.Context, subscription.Transfer) error {
		calls++
		return nil
	}), time.Second)
	n, err := w.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, calls)

	pending, err := a.PendingPayouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestPayoutWorkerRecoversPayerPanic(t *testing.T) {
	clock := vestingtest.NewClock(1)
	a := newTestApp(t, dbm.NewMemDB(), clock)
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, "owner"))
	alice := vesting.WithSigner(ctx, "alice")
	_, err := a.Subscribe(alice, "", coin.NewAmount(12))
	require.NoError(t, err)
	_, err = a.Withdraw(alice, 0)
	require.NoError(t, err)

	w := NewPayoutWorker(a, PayerFunc(func(context.Context, subscription.Transfer) error {
		panic("payer")
	}), time.Second)
	n, err := w.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPayoutWorkerRunStops(t *testing.T) {
	a := newTestApp(t, dbm.NewMemDB(), vestingtest.NewClock(1))
	w := NewPayoutWorker(a, PayerFunc(func(context.Context, subscription.Transfer) error {
		return nil
	}), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
