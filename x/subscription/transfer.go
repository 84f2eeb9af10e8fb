package subscription

import (
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/queue"
)

// Transfer is an instruction to pay the recipient given amount from the
// contract balance.
type Transfer struct {
	Recipient vesting.AccountID `json:"recipient"`
	Amount    coin.Amount       `json:"amount"`
	Issued    vesting.Timestamp `json:"issued"`
}

var _ vesting.Persistent = (*Transfer)(nil)

// Validate ensures the transfer can be executed.
func (t *Transfer) Validate() error {
	return errors.AppendField(nil, "Recipient", t.Recipient.Validate())
}

func (t *Transfer) Marshal() ([]byte, error) {
	msg := TransferRecord{
		Recipient: string(t.Recipient),
		Amount:    t.Amount.Bytes(),
		Issued:    uint64(t.Issued),
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrEncoding, err.Error())
	}
	return raw, nil
}

func (t *Transfer) Unmarshal(raw []byte) error {
	var msg TransferRecord
	if err := msg.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrEncoding, err.Error())
	}
	amount, err := coin.AmountFromBytes(msg.Amount)
	if err != nil {
		return errors.Wrap(err, "amount")
	}
	*t = Transfer{
		Recipient: vesting.AccountID(msg.Recipient),
		Amount:    amount,
		Issued:    vesting.Timestamp(msg.Issued),
	}
	return nil
}

// TransferSink accepts one way transfer instructions. The outcome of a
// transfer is never reported back.
//
// The instruction is recorded using given store, so that it is discarded
// together with all other changes if the operation fails.
type TransferSink interface {
	Transfer(db vesting.KVStore, t Transfer) error
}

// PayoutQueue holds transfer instructions recorded by OutboxSink.
var PayoutQueue = queue.New("payouts")

// OutboxSink is a TransferSink that records every instruction in the
// payout queue. Queued transfers are executed by a separate worker, after
// the operation that issued them was committed.
type OutboxSink struct{}

var _ TransferSink = OutboxSink{}

func (OutboxSink) Transfer(db vesting.KVStore, t Transfer) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "invalid transfer")
	}
	if err := PayoutQueue.Put(db, t.Issued, &t); err != nil {
		return errors.Wrap(err, "cannot queue transfer")
	}
	return nil
}

// NextPayout removes the oldest queued transfer. Transfers are due as soon
// as they are queued, the issue time only defines the order. ErrEmpty is
// returned if the queue is empty.
func NextPayout(db vesting.KVStore) (*Transfer, error) {
	var t Transfer
	if err := PayoutQueue.Pop(db, ^vesting.Timestamp(0), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// PendingPayouts returns the number of queued transfers.
func PendingPayouts(db vesting.ReadOnlyKVStore) (int, error) {
	n, err := PayoutQueue.Len(db)
	if err != nil {
		return 0, errors.Wrap(err, "payout queue")
	}
	return n, nil
}
