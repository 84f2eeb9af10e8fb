package vestingtest

import (
	"sync"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/x/subscription"
)

// Sink is a subscription.TransferSink that records all instructions in
// memory.
//
// Recorded transfers are not stored in the database and therefore are kept
// even if the operation that issued them failed later. Set Err to make every
// call fail.
type Sink struct {
	mu        sync.Mutex
	transfers []subscription.Transfer

	Err error
}

var _ subscription.TransferSink = (*Sink)(nil)

func (s *Sink) Transfer(db vesting.KVStore, t subscription.Transfer) error {
	if s.Err != nil {
		return errors.Wrap(s.Err, "sink")
	}
	s.mu.Lock()
	s.transfers = append(s.transfers, t)
	s.mu.Unlock()
	return nil
}

// Transfers returns all recorded instructions, in order.
func (s *Sink) Transfers() []subscription.Transfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]subscription.Transfer, len(s.transfers))
	copy(out, s.transfers)
	return out
}

// Reset drops all recorded instructions.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.transfers = nil
	s.mu.Unlock()
}
