package subscription

import (
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/orm"
)

// Ledger maps an account to its ordered sequence of deposits.
type Ledger interface {
	// Get returns all deposits of given account. An account without
	// deposits returns an empty sequence.
	Get(db vesting.ReadOnlyKVStore, account vesting.AccountID) ([]Deposit, error)
	// Append adds a deposit to the end of the account sequence and
	// returns its index.
	Append(db vesting.KVStore, account vesting.AccountID, d Deposit) (int, error)
	// Replace overwrites the whole sequence of given account. An empty
	// sequence removes the account.
	Replace(db vesting.KVStore, account vesting.AccountID, deposits []Deposit) error
	// Accounts returns all accounts that own at least one deposit, in
	// ascending order.
	Accounts(db vesting.ReadOnlyKVStore) ([]vesting.AccountID, error)
}

// NewLedger returns a Ledger that keeps every account sequence under its
// own key of the "deposits" bucket.
func NewLedger() *KVLedger {
	return &KVLedger{bucket: orm.NewBucket("deposits")}
}

// KVLedger is the key value store backed Ledger implementation.
type KVLedger struct {
	bucket orm.Bucket
}

var _ Ledger = (*KVLedger)(nil)

func (l *KVLedger) Get(db vesting.ReadOnlyKVStore, account vesting.AccountID) ([]Deposit, error) {
	var list depositList
	switch err := l.bucket.Load(db, []byte(account), &list); {
	case err == nil:
		return list, nil
	case errors.ErrNotFound.Is(err):
		return []Deposit{}, nil
	default:
		return nil, errors.Wrapf(err, "cannot load %s", l.bucket.Name())
	}
}

func (l *KVLedger) Append(db vesting.KVStore, account vesting.AccountID, d Deposit) (int, error) {
	deposits, err := l.Get(db, account)
	if err != nil {
		return 0, err
	}
	deposits = append(deposits, d)
	if err := l.Replace(db, account, deposits); err != nil {
		return 0, err
	}
	return len(deposits) - 1, nil
}

func (l *KVLedger) Replace(db vesting.KVStore, account vesting.AccountID, deposits []Deposit) error {
	if len(deposits) == 0 {
		if err := l.bucket.Delete(db, []byte(account)); err != nil {
			return errors.Wrapf(err, "cannot delete %s", l.bucket.Name())
		}
		return nil
	}
	list := depositList(deposits)
	if err := l.bucket.Save(db, []byte(account), &list); err != nil {
		return errors.Wrapf(err, "cannot store %s", l.bucket.Name())
	}
	return nil
}

func (l *KVLedger) Accounts(db vesting.ReadOnlyKVStore) ([]vesting.AccountID, error) {
	keys, err := l.bucket.Keys(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot list accounts")
	}
	accounts := make([]vesting.AccountID, len(keys))
	for i, k := range keys {
		accounts[i] = vesting.AccountID(k)
	}
	return accounts, nil
}

var stateBucket = orm.NewBucket("state")

var stateKey = []byte("owner")

func loadState(db vesting.ReadOnlyKVStore) (*State, error) {
	var s State
	switch err := stateBucket.Load(db, stateKey, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrNotInitialized, "no state")
	default:
		return nil, errors.Wrap(err, "cannot load state")
	}
}
