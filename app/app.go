package app

import (
	"context"
	"sync"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/x/subscription"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// App executes subscription operations one at a time. Every mutating
// operation is committed to the store before the next one starts.
type App struct {
	mu     sync.Mutex
	store  *CommitStore
	svc    *subscription.Service
	logger log.Logger
}

// New returns an App that keeps its state in given store. Withdrawals are
// recorded in the payout queue, use PayoutWorker to execute them.
func New(store vesting.CommitKVStore, clock vesting.Clock) (*App, error) {
	return NewWithSink(store, clock, subscription.OutboxSink{})
}

// NewWithSink returns an App that instructs given sink to execute
// withdrawals.
func NewWithSink(store vesting.CommitKVStore, clock vesting.Clock, sink subscription.TransferSink) (*App, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	a := &App{
		store:  cs,
		svc:    subscription.NewService(subscription.NewLedger(), clock, sink),
		logger: log.NewNopLogger(),
	}
	if info, err := cs.CommitInfo(); err == nil {
		storeVersion.Set(float64(info.Version))
	}
	a.updatePending()
	return a, nil
}

// WithLogger sets the logger on the App and returns it, to make it easy to
// chain in initialization.
func (a *App) WithLogger(logger log.Logger) *App {
	a.logger = logger
	return a
}

// Logger returns the application base logger.
func (a *App) Logger() log.Logger {
	return a.logger
}

// Initialize sets the contract owner. It does not require a signer.
func (a *App) Initialize(ctx context.Context, owner vesting.AccountID) error {
	return a.exec(ctx, "initialize", func(ctx context.Context, db vesting.CacheableKVStore) error {
		return a.svc.Initialize(ctx, db, owner)
	})
}

// Subscribe creates a deposit of the attached amount for the signer of the
// context.
func (a *App) Subscribe(ctx context.Context, memo string, attached coin.Amount) (int, error) {
	var index int
	err := a.exec(ctx, "subscribe", func(ctx context.Context, db vesting.CacheableKVStore) error {
		caller, err := signer(ctx)
		if err != nil {
			return err
		}
		index, err = a.svc.Subscribe(ctx, db, caller, memo, attached)
		return err
	})
	return index, err
}

// Ping recomputes the paid counter of the signer's deposit.
func (a *App) Ping(ctx context.Context, index int) (*subscription.Deposit, error) {
	var d *subscription.Deposit
	err := a.exec(ctx, "ping", func(ctx context.Context, db vesting.CacheableKVStore) error {
		caller, err := signer(ctx)
		if err != nil {
			return err
		}
		d, err = a.svc.Ping(ctx, db, caller, index)
		return err
	})
	return d, err
}

// Withdraw pays the signer the withdrawable amount of the deposit.
func (a *App) Withdraw(ctx context.Context, index int) (*subscription.Transfer, error) {
	var t *subscription.Transfer
	err := a.exec(ctx, "withdraw", func(ctx context.Context, db vesting.CacheableKVStore) error {
		caller, err := signer(ctx)
		if err != nil {
			return err
		}
		t, err = a.svc.Withdraw(ctx, db, caller, index)
		return err
	})
	return t, err
}

// GetSubs returns all deposits of given account.
func (a *App) GetSubs(ctx context.Context, account vesting.AccountID) ([]subscription.Deposit, error) {
	var deposits []subscription.Deposit
	err := a.query(ctx, "get_subs", func(ctx context.Context, db vesting.ReadOnlyKVStore) error {
		var err error
		deposits, err = a.svc.GetSubs(ctx, db, account)
		return err
	})
	return deposits, err
}

// Owner returns the account the contract was initialized with.
func (a *App) Owner(ctx context.Context) (vesting.AccountID, error) {
	var owner vesting.AccountID
	err := a.query(ctx, "owner", func(ctx context.Context, db vesting.ReadOnlyKVStore) error {
		var err error
		owner, err = a.svc.Owner(ctx, db)
		return err
	})
	return owner, err
}

// Accounts returns all accounts that own at least one deposit.
func (a *App) Accounts(ctx context.Context) ([]vesting.AccountID, error) {
	var accounts []vesting.AccountID
	err := a.query(ctx, "accounts", func(ctx context.Context, db vesting.ReadOnlyKVStore) error {
		var err error
		accounts, err = a.svc.Accounts(ctx, db)
		return err
	})
	return accounts, err
}

// PendingPayouts returns the number of committed transfers that were not
// yet handed to the payout worker.
func (a *App) PendingPayouts(ctx context.Context) (int, error) {
	var n int
	err := a.query(ctx, "pending_payouts", func(ctx context.Context, db vesting.ReadOnlyKVStore) error {
		var err error
		n, err = subscription.PendingPayouts(db)
		return err
	})
	return n, err
}

// Info returns the latest committed version.
func (a *App) Info() (vesting.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.CommitInfo()
}

// NextPayout removes the oldest transfer from the payout queue and commits
// the removal. ErrEmpty is returned when there is none.
func (a *App) NextPayout(ctx context.Context) (*subscription.Transfer, error) {
	var t *subscription.Transfer
	err := a.exec(ctx, "payout", func(ctx context.Context, db vesting.CacheableKVStore) error {
		cache := db.CacheWrap()
		var err error
		t, err = subscription.NextPayout(cache)
		if err != nil {
			cache.Discard()
			return err
		}
		return cache.Write()
	})
	return t, err
}

// exec runs a mutating operation under the lock and commits its result.
//
// Operations write into the store only complete units, so whatever they
// wrote is kept even if they return an error. A panic drops all changes of
// the call.
func (a *App) exec(ctx context.Context, op string, fn func(context.Context, vesting.CacheableKVStore) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	timer := prometheus.NewTimer(operationDuration.WithLabelValues(op))
	defer timer.ObserveDuration()

	ctx = a.context(ctx, op)
	cache := a.store.DeliverStore().CacheWrap()
	err := run(ctx, cache, fn)
	switch {
	case errors.ErrPanic.Is(err):
		cache.Discard()
		vesting.GetLogger(ctx).Error("operation panicked", "err", err)
		observe(ctx, err)
		return err
	case errors.ErrEmpty.Is(err):
		// Nothing was done, there is no point in a new version.
		cache.Discard()
		observe(ctx, err)
		return err
	}

	if werr := cache.Write(); werr != nil {
		a.store.Rollback()
		err = errors.Wrap(errors.ErrDatabase, werr.Error())
	} else if info, cerr := a.store.Commit(); cerr != nil {
		a.store.Rollback()
		err = errors.Wrap(cerr, "commit")
	} else {
		storeVersion.Set(float64(info.Version))
		a.updatePending()
	}

	a.logResult(ctx, err)
	observe(ctx, err)
	return err
}

// query runs a read only operation under the lock.
func (a *App) query(ctx context.Context, op string, fn func(context.Context, vesting.ReadOnlyKVStore) error) (err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	timer := prometheus.NewTimer(operationDuration.WithLabelValues(op))
	defer timer.ObserveDuration()

	ctx = a.context(ctx, op)
	defer func() { observe(ctx, err) }()
	defer errors.Recover(&err)

	return fn(ctx, a.store.DeliverStore())
}

func (a *App) context(ctx context.Context, op string) context.Context {
	ctx = vesting.WithOperation(ctx, op)
	ctx = vesting.WithLogger(ctx, a.logger)
	ctx = vesting.WithLogInfo(ctx, "op", op)
	if s, ok := vesting.GetSigner(ctx); ok {
		ctx = vesting.WithLogInfo(ctx, "caller", s)
	}
	return ctx
}

// updatePending refreshes the payout queue gauge from the committed state.
func (a *App) updatePending() {
	n, err := subscription.PendingPayouts(a.store.DeliverStore())
	if err != nil {
		a.logger.Error("cannot count pending payouts", "err", err)
		return
	}
	pendingPayouts.Set(float64(n))
}

func (a *App) logResult(ctx context.Context, err error) {
	logger := vesting.GetLogger(ctx)
	switch {
	case err == nil:
		logger.Debug("operation executed")
	default:
		logger.Info("operation failed", "err", err)
	}
}

func run(ctx context.Context, db vesting.CacheableKVStore, fn func(context.Context, vesting.CacheableKVStore) error) (err error) {
	defer errors.Recover(&err)
	return fn(ctx, db)
}

// signer returns the account on whose behalf the call is executed.
func signer(ctx context.Context) (vesting.AccountID, error) {
	s, ok := vesting.GetSigner(ctx)
	if !ok {
		return "", errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return s, nil
}
