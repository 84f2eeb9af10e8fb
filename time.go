package vesting

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/iov-one/vesting/errors"
)

// Timestamp represents a point in time as the number of nanoseconds elapsed
// since the UNIX epoch.
//
// Unlike time.Time it does not carry a location and it cannot represent a
// moment before the epoch. This is the resolution of the clock supplied by
// the execution environment.
type Timestamp uint64

// Time returns a time.Time structure that represents the same moment in time.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// IsZero returns true if this time represents a zero value.
func (t Timestamp) IsZero() bool {
	return t == 0
}

// Add modifies this timestamp by given duration. Negative durations that
// would move the time before the epoch return the zero timestamp.
func (t Timestamp) Add(d time.Duration) Timestamp {
	if d < 0 && Timestamp(-d) > t {
		return 0
	}
	return Timestamp(int64(t) + int64(d))
}

// AsTimestamp converts given Time structure into its nanosecond
// representation. Moments before the epoch are converted to zero.
func AsTimestamp(t time.Time) Timestamp {
	ns := t.UnixNano()
	if ns < 0 {
		return 0
	}
	return Timestamp(ns)
}

// MarshalJSON encodes the timestamp as a decimal string. JSON numbers are
// not safe for 64 bit integers in many clients.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(t), 10))
}

// UnmarshalJSON supports both a decimal string and a number.
func (t *Timestamp) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errors.Wrap(errors.ErrInput, "invalid timestamp")
		}
		*t = Timestamp(n)
		return nil
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return errors.Wrap(errors.ErrInput, "invalid timestamp format")
	}
	*t = Timestamp(n)
	return nil
}

// String returns the usual string representation of this time as the time.Time
// structure would.
func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

// Clock supplies the current time. Consecutive calls are expected to return
// non-decreasing values.
type Clock interface {
	Now() Timestamp
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() Timestamp

// Now implements Clock.
func (fn ClockFunc) Now() Timestamp {
	return fn()
}

// SystemClock is a Clock that returns the wall time of the host.
var SystemClock Clock = ClockFunc(func() Timestamp {
	return AsTimestamp(time.Now())
})
