package subscription

import (
	"context"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
)

// Service implements the subscription operations.
//
// Each operation works on a cache wrap of the given store and writes it only
// when the whole unit succeeded. A failed operation leaves the store as it
// was, with the single exception of Withdraw, that keeps the result of its
// initial ping. The service does no locking, callers must serialize access
// to the store.
type Service struct {
	ledger Ledger
	clock  vesting.Clock
	sink   TransferSink
}

// NewService returns a service that keeps deposits in given ledger, reads
// time from given clock and instructs given sink to pay withdrawals.
func NewService(ledger Ledger, clock vesting.Clock, sink TransferSink) *Service {
	return &Service{
		ledger: ledger,
		clock:  clock,
		sink:   sink,
	}
}

// Initialize sets the contract owner. It can be called only once.
func (s *Service) Initialize(ctx context.Context, db vesting.CacheableKVStore, owner vesting.AccountID) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return atomically(db, func(db vesting.KVStore) error {
		switch ok, err := stateBucket.Has(db, stateKey); {
		case err != nil:
			return errors.Wrap(err, "cannot check state")
		case ok:
			return errors.Wrap(errors.ErrAlreadyInitialized, "state exists")
		}
		if err := stateBucket.Save(db, stateKey, &State{Owner: owner}); err != nil {
			return errors.Wrap(err, "cannot store state")
		}
		vesting.GetLogger(ctx).Info("subscription initialized", "owner", owner)
		return nil
	})
}

// Owner returns the account the contract was initialized with.
func (s *Service) Owner(ctx context.Context, db vesting.ReadOnlyKVStore) (vesting.AccountID, error) {
	state, err := loadState(db)
	if err != nil {
		return "", err
	}
	return state.Owner, nil
}

// Subscribe creates a new deposit of the attached amount for the caller and
// returns its index.
func (s *Service) Subscribe(ctx context.Context, db vesting.CacheableKVStore, caller vesting.AccountID, memo string, attached coin.Amount) (int, error) {
	if err := caller.Validate(); err != nil {
		return 0, errors.Wrap(err, "caller")
	}
	d := Deposit{
		Memo:    memo,
		Amount:  attached,
		Paid:    0,
		Created: s.clock.Now(),
	}
	if err := d.Validate(); err != nil {
		return 0, errors.Wrap(err, "deposit")
	}

	var index int
	err := atomically(db, func(db vesting.KVStore) error {
		if _, err := loadState(db); err != nil {
			return err
		}
		i, err := s.ledger.Append(db, caller, d)
		if err != nil {
			return err
		}
		index = i
		vesting.GetLogger(ctx).Debug("deposit created",
			"account", caller, "index", i, "amount", attached)
		return nil
	})
	return index, err
}

// Ping recomputes the paid counter of the caller's deposit with given index
// and returns the updated deposit.
func (s *Service) Ping(ctx context.Context, db vesting.CacheableKVStore, caller vesting.AccountID, index int) (*Deposit, error) {
	var d *Deposit
	err := atomically(db, func(db vesting.KVStore) error {
		if _, err := loadState(db); err != nil {
			return err
		}
		var err error
		d, err = s.ping(ctx, db, caller, index)
		return err
	})
	return d, err
}

func (s *Service) ping(ctx context.Context, db vesting.KVStore, caller vesting.AccountID, index int) (*Deposit, error) {
	deposits, err := s.ledger.Get(db, caller)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(deposits) {
		return nil, errors.Wrapf(errors.ErrNotFound, "deposit %d of %q", index, caller)
	}

	d := deposits[index]
	periods, err := ElapsedPeriods(d.Created, s.clock.Now(), Period)
	if err != nil {
		return nil, err
	}
	if paid := NarrowPaid(periods, FullPeriod); paid != d.Paid {
		vesting.GetLogger(ctx).Debug("deposit vested",
			"account", caller, "index", index, "from", d.Paid, "to", paid)
		d.Paid = paid
	}
	deposits[index] = d
	if err := s.ledger.Replace(db, caller, deposits); err != nil {
		return nil, err
	}
	return &d, nil
}

// Withdraw brings the caller's deposit up to date and instructs the sink to
// pay the caller the withdrawable amount. A fulfilled deposit cannot be
// withdrawn from.
//
// The ping is written before the fulfilment is checked, so a rejected
// withdrawal still advances the paid counter.
func (s *Service) Withdraw(ctx context.Context, db vesting.CacheableKVStore, caller vesting.AccountID, index int) (*Transfer, error) {
	if _, err := s.Ping(ctx, db, caller, index); err != nil {
		return nil, err
	}

	var t *Transfer
	err := atomically(db, func(db vesting.KVStore) error {
		deposits, err := s.ledger.Get(db, caller)
		if err != nil {
			return err
		}
		if index >= len(deposits) {
			return errors.Wrapf(errors.ErrNotFound, "deposit %d of %q", index, caller)
		}
		d := deposits[index]
		if d.Fulfilled() {
			return errors.Wrap(errors.ErrPrecondition, "fulfilled")
		}
		t = &Transfer{
			Recipient: caller,
			Amount:    WithdrawableAmount(d.Amount, d.Paid, FullPeriod),
			Issued:    s.clock.Now(),
		}
		if err := s.sink.Transfer(db, *t); err != nil {
			return errors.Wrap(err, "transfer")
		}
		vesting.GetLogger(ctx).Info("withdrawal issued",
			"account", caller, "index", index, "paid", d.Paid, "amount", t.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetSubs returns all deposits of given account. An account without
// deposits returns an empty list.
func (s *Service) GetSubs(ctx context.Context, db vesting.ReadOnlyKVStore, account vesting.AccountID) ([]Deposit, error) {
	if _, err := loadState(db); err != nil {
		return nil, err
	}
	return s.ledger.Get(db, account)
}

// Accounts returns all accounts that own at least one deposit.
func (s *Service) Accounts(ctx context.Context, db vesting.ReadOnlyKVStore) ([]vesting.AccountID, error) {
	if _, err := loadState(db); err != nil {
		return nil, err
	}
	return s.ledger.Accounts(db)
}

// atomically runs fn on a cache wrap of db. The cache is written only if fn
// succeeds.
func atomically(db vesting.CacheableKVStore, fn func(vesting.KVStore) error) error {
	cache := db.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
