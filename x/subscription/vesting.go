package subscription

import (
	"time"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
)

// ElapsedPeriods returns the number of whole periods that passed between
// created and now. The result is not capped.
//
// A clock that went backward is an error. The caller must not mutate any
// state in that case.
func ElapsedPeriods(created, now vesting.Timestamp, period time.Duration) (uint64, error) {
	if period <= 0 {
		return 0, errors.Wrapf(errors.ErrInput, "non positive period %s", period)
	}
	if now < created {
		return 0, errors.Wrapf(errors.ErrState, "clock regression: now %d before created %d", now, created)
	}
	return uint64(now-created) / uint64(period), nil
}

// NarrowPaid converts an elapsed period count into the paid counter. Values
// above limit are saturated to limit so that the counter never wraps around
// and never decreases.
func NarrowPaid(periods uint64, limit uint8) uint8 {
	if periods > uint64(limit) {
		return limit
	}
	return uint8(periods)
}

// WithdrawableAmount returns the value attributed to the periods that are
// not yet recognized as paid:
//
//	(amount / fullPeriod) * (fullPeriod - paid)
//
// The remainder of the division is dropped. Paid greater than fullPeriod
// results in zero.
func WithdrawableAmount(amount coin.Amount, paid, fullPeriod uint8) coin.Amount {
	if fullPeriod == 0 || paid >= fullPeriod {
		return coin.Amount{}
	}
	portion := amount.QuoUint64(uint64(fullPeriod))
	remaining := uint64(fullPeriod - paid)
	// portion * remaining never exceeds amount.
	value, err := portion.MulUint64(remaining)
	if err != nil {
		panic(err)
	}
	return value
}
