package vesting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampConversion(t *testing.T) {
	now := time.Date(2020, 5, 1, 12, 0, 0, 42, time.UTC)
	ts := AsTimestamp(now)
	assert.True(t, now.Equal(ts.Time()))
	assert.Equal(t, Timestamp(0), AsTimestamp(time.Unix(-10, 0)))
	assert.True(t, Timestamp(0).IsZero())
}

func TestTimestampAdd(t *testing.T) {
	cases := map[string]struct {
		ts   Timestamp
		d    time.Duration
		want Timestamp
	}{
		"forward":        {ts: 10, d: time.Second, want: 1000000010},
		"backward":       {ts: 1000000010, d: -time.Second, want: 10},
		"before epoch":   {ts: 5, d: -time.Second, want: 0},
		"zero duration":  {ts: 7, d: 0, want: 7},
		"exactly epoch":  {ts: Timestamp(time.Second), d: -time.Second, want: 0},
		"one nanosecond": {ts: 0, d: 1, want: 1},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ts.Add(tc.d))
		})
	}
}

func TestTimestampJSON(t *testing.T) {
	raw, err := json.Marshal(Timestamp(1000000000))
	require.NoError(t, err)
	assert.Equal(t, `"1000000000"`, string(raw))

	var fromString Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"18446744073709551615"`), &fromString))
	assert.Equal(t, Timestamp(18446744073709551615), fromString)

	var fromNumber Timestamp
	require.NoError(t, json.Unmarshal([]byte(`12`), &fromNumber))
	assert.Equal(t, Timestamp(12), fromNumber)

	var invalid Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &invalid))
	assert.Error(t, json.Unmarshal([]byte(`-1`), &invalid))
}

func TestClockFunc(t *testing.T) {
	var c Clock = ClockFunc(func() Timestamp { return 99 })
	assert.Equal(t, Timestamp(99), c.Now())
	assert.False(t, SystemClock.Now().IsZero())
}
