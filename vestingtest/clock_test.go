package vestingtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	c := NewClock(100)
	assert.EqualValues(t, 100, c.Now())

	c.Advance(time.Second)
	assert.EqualValues(t, 100+time.Second, c.Now())

	c.Set(5)
	assert.EqualValues(t, 5, c.Now())

	c.Advance(-time.Second)
	assert.EqualValues(t, 0, c.Now())
}
