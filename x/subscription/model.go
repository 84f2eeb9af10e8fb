package subscription

import (
	"time"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
)

const (
	// Period is the length of a single vesting period.
	Period = time.Second

	// FullPeriod is the number of periods after which a deposit is
	// fulfilled.
	FullPeriod uint8 = 12

	// MaxMemoLength is the exclusive upper bound of the memo length, in
	// bytes.
	MaxMemoLength = 64
)

// Deposit is a single vesting commitment.
type Deposit struct {
	Memo    string            `json:"memo"`
	Amount  coin.Amount       `json:"amount"`
	Paid    uint8             `json:"paid"`
	Created vesting.Timestamp `json:"created"`
}

// Validate checks the invariants of a deposit at creation time.
func (d Deposit) Validate() error {
	if len(d.Memo) >= MaxMemoLength {
		return errors.Field("Memo", errors.ErrInput, "must be shorter than %d bytes, got %d", MaxMemoLength, len(d.Memo))
	}
	return nil
}

// Fulfilled returns true if all vesting periods of this deposit were
// recognized.
func (d Deposit) Fulfilled() bool {
	return d.Paid >= FullPeriod
}

func (d Deposit) toRecord() *DepositRecord {
	return &DepositRecord{
		Memo:    d.Memo,
		Amount:  d.Amount.Bytes(),
		Paid:    uint32(d.Paid),
		Created: uint64(d.Created),
	}
}

func depositFromRecord(r *DepositRecord) (Deposit, error) {
	if r == nil {
		return Deposit{}, errors.Wrap(errors.ErrEncoding, "nil deposit record")
	}
	amount, err := coin.AmountFromBytes(r.Amount)
	if err != nil {
		return Deposit{}, errors.Wrap(err, "amount")
	}
	if r.Paid > 255 {
		return Deposit{}, errors.Wrapf(errors.ErrEncoding, "paid out of range: %d", r.Paid)
	}
	return Deposit{
		Memo:    r.Memo,
		Amount:  amount,
		Paid:    uint8(r.Paid),
		Created: vesting.Timestamp(r.Created),
	}, nil
}

// depositList is the persisted value of a single account ledger entry.
type depositList []Deposit

var _ vesting.Persistent = (*depositList)(nil)

func (l *depositList) Marshal() ([]byte, error) {
	msg := DepositList{Deposits: make([]*DepositRecord, len(*l))}
	for i, d := range *l {
		msg.Deposits[i] = d.toRecord()
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrEncoding, err.Error())
	}
	return raw, nil
}

func (l *depositList) Unmarshal(raw []byte) error {
	var msg DepositList
	if err := msg.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrEncoding, err.Error())
	}
	out := make(depositList, len(msg.Deposits))
	for i, r := range msg.Deposits {
		d, err := depositFromRecord(r)
		if err != nil {
			return errors.Wrapf(err, "deposit %d", i)
		}
		out[i] = d
	}
	*l = out
	return nil
}

// State is the contract state written once by Initialize.
type State struct {
	Owner vesting.AccountID `json:"owner"`
}

var _ vesting.Persistent = (*State)(nil)

// Validate ensures the owner is a valid account.
func (s *State) Validate() error {
	return errors.Wrap(s.Owner.Validate(), "owner")
}

func (s *State) Marshal() ([]byte, error) {
	msg := StateRecord{Owner: string(s.Owner)}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrEncoding, err.Error())
	}
	return raw, nil
}

func (s *State) Unmarshal(raw []byte) error {
	var msg StateRecord
	if err := msg.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrEncoding, err.Error())
	}
	s.Owner = vesting.AccountID(msg.Owner)
	return nil
}
