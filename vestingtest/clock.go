package vestingtest

import (
	"sync"
	"time"

	"github.com/iov-one/vesting"
)

// Clock is a vesting.Clock that returns a time controlled by the test.
type Clock struct {
	mu  sync.Mutex
	now vesting.Timestamp
}

var _ vesting.Clock = (*Clock)(nil)

// NewClock returns a clock set to given time.
func NewClock(now vesting.Timestamp) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() vesting.Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set changes the current time. Moving the clock backward is allowed so that
// clock regression can be tested.
func (c *Clock) Set(now vesting.Timestamp) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Advance moves the clock by given duration.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
