package app

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store/iavl"
	"github.com/iov-one/vesting/vestingtest"
	"github.com/iov-one/vesting/x/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
)

func newTestApp(t testing.TB, db dbm.DB, clock vesting.Clock) *App {
	t.Helper()
	cs, err := iavl.NewCommitStoreFromDB(db, 100)
	require.NoError(t, err)
	a, err := New(cs, clock)
	require.NoError(t, err)
	return a
}

func TestAppLifecycle(t *testing.T) {
	clock := vestingtest.NewClock(vesting.Timestamp(time.Hour))
	a := newTestApp(t, dbm.NewMemDB(), clock)
	ctx := context.Background()
	alice := vesting.WithSigner(ctx, "alice")

	_, err := a.Subscribe(alice, "", coin.NewAmount(1))
	assert.True(t, errors.ErrNotInitialized.Is(err), "got %+v", err)

	require.NoError(t, a.Initialize(ctx, "owner"))
	owner, err := a.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, vesting.AccountID("owner"), owner)

	before, err := a.Info()
	require.NoError(t, err)

	index, err := a.Subscribe(alice, "monthly", coin.NewAmount(1200))
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	after, err := a.Info()
	require.NoError(t, err)
	assert.Equal(t, before.Version+1, after.Version)
	assert.NotEqual(t, before.Hash, after.Hash)

	clock.Advance(3 * time.Second)
	d, err := a.Ping(alice, index)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), d.Paid)

	tr, err := a.Withdraw(alice, index)
	require.NoError(t, err)
	assert.Equal(t, "900", tr.Amount.String())

	pending, err := a.PendingPayouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	accounts, err := a.Accounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []vesting.AccountID{"alice"}, accounts)

	subs, err := a.GetSubs(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, uint8(3), subs[0].Paid)

	subs, err = a.GetSubs(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestAppRequiresSigner(t *testing.T) {
	a := newTestApp(t, dbm.NewMemDB(), vestingtest.NewClock(1))
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, "owner"))

	_, err := a.Subscribe(ctx, "", coin.NewAmount(1))
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)
	_, err = a.Ping(ctx, 0)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)
	_, err = a.Withdraw(ctx, 0)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)
}

func TestAppStateSurvivesRestart(t *testing.T) {
	db := dbm.NewMemDB()
	clock := vestingtest.NewClock(1)
	ctx := context.Background()

	a := newTestApp(t, db, clock)
	require.NoError(t, a.Initialize(ctx, "owner"))
	_, err := a.Subscribe(vesting.WithSigner(ctx, "alice"), "kept", coin.NewAmount(12))
	require.NoError(t, err)
	info, err := a.Info()
	require.NoError(t, err)

	restarted := newTestApp(t, db, clock)
	rinfo, err := restarted.Info()
	require.NoError(t, err)
	assert.Equal(t, info, rinfo)

	subs, err := restarted.GetSubs(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "kept", subs[0].Memo)

	err = restarted.Initialize(ctx, "other")
	assert.True(t, errors.ErrAlreadyInitialized.Is(err), "got %+v", err)
}

func TestAppFailedWithdrawKeepsPing(t *testing.T) {
	clock := vestingtest.NewClock(1)
	a := newTestApp(t, dbm.NewMemDB(), clock)
	ctx := context.Background()
	alice := vesting.WithSigner(ctx, "alice")
	require.NoError(t, a.Initialize(ctx, "owner"))

	_, err := a.Subscribe(alice, "", coin.NewAmount(1200))
	require.NoError(t, err)

	clock.Advance(20 * time.Second)
	_, err = a.Withdraw(alice, 0)
	assert.True(t, errors.ErrPrecondition.Is(err), "got %+v", err)

	subs, err := a.GetSubs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, subscription.FullPeriod, subs[0].Paid)
}

type panickingSink struct{}

func (panickingSink) Transfer(vesting.KVStore, subscription.Transfer) error {
	panic("boom")
}

func TestAppRecoversPanic(t *testing.T) {
	cs, err := iavl.NewCommitStoreFromDB(dbm.NewMemDB(), 100)
	require.NoError(t, err)
	clock := vestingtest.NewClock(1)
	a, err := NewWithSink(cs, clock, panickingSink{})
	require.NoError(t, err)

	ctx := context.Background()
	alice := vesting.WithSigner(ctx, "alice")
	require.NoError(t, a.Initialize(ctx, "owner"))
	_, err = a.Subscribe(alice, "", coin.NewAmount(1200))
	require.NoError(t, err)

	clock.Advance(5 * time.Second)
	_, err = a.Withdraw(alice, 0)
	require.True(t, errors.ErrPanic.Is(err), "got %+v", err)

	// All changes of the panicking call are dropped.
	subs, err := a.GetSubs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), subs[0].Paid)

	// The app is still usable.
	d, err := a.Ping(alice, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), d.Paid)
}

func TestResultLabel(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"nil":       {err: nil, want: "ok"},
		"input":     {err: errors.Wrap(errors.ErrInput, "memo"), want: "invalid"},
		"not found": {err: errors.ErrNotFound, want: "not_found"},
		"fulfilled": {err: errors.Wrap(errors.ErrPrecondition, "fulfilled"), want: "rejected"},
		"panic":     {err: errors.ErrPanic, want: "panic"},
		"empty":     {err: errors.ErrEmpty, want: "empty"},
		"database":  {err: errors.ErrDatabase, want: "error"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, resultLabel(tc.err))
		})
	}
}
