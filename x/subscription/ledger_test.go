package subscription

import (
	"context"
	"strings"
	"testing"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAppendReplace(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()

	got, err := l.Get(db, "alice")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	first := Deposit{Memo: "a", Amount: coin.NewAmount(10), Created: 1}
	second := Deposit{Memo: "b", Amount: coin.NewAmount(20), Created: 2}

	i, err := l.Append(db, "alice", first)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = l.Append(db, "alice", second)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	other := Deposit{Memo: "c", Amount: coin.NewAmount(30), Created: 3}
	_, err = l.Append(db, "alice.near", other)
	require.NoError(t, err)

	got, err = l.Get(db, "alice")
	require.NoError(t, err)
	assert.Equal(t, []Deposit{first, second}, got)

	got[1].Paid = 4
	require.NoError(t, l.Replace(db, "alice", got))

	got, err = l.Get(db, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), got[0].Paid)
	assert.Equal(t, uint8(4), got[1].Paid)

	got, err = l.Get(db, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, []Deposit{other}, got)

	accounts, err := l.Accounts(db)
	require.NoError(t, err)
	assert.Equal(t, []vesting.AccountID{"alice", "alice.near"}, accounts)
}

func TestLedgerReplaceWithNothingRemovesAccount(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()

	_, err := l.Append(db, "alice", Deposit{Amount: coin.NewAmount(1)})
	require.NoError(t, err)
	_, err = l.Append(db, "bob", Deposit{Amount: coin.NewAmount(2)})
	require.NoError(t, err)

	require.NoError(t, l.Replace(db, "alice", nil))

	got, err := l.Get(db, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)

	accounts, err := l.Accounts(db)
	require.NoError(t, err)
	assert.Equal(t, []vesting.AccountID{"bob"}, accounts)

	// Removing an account that does not exist is not an error.
	require.NoError(t, l.Replace(db, "carol", []Deposit{}))
}

func TestLedgerKeepsStoredLongMemo(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()

	// Memo length is checked when a deposit is created only. A stored
	// deposit must remain usable whatever its memo is.
	long := strings.Repeat("m", MaxMemoLength+10)
	list := DepositList{Deposits: []*DepositRecord{{
		Memo:   long,
		Amount: coin.NewAmount(1200).Bytes(),
	}}}
	raw, err := list.Marshal()
	require.NoError(t, err)
	require.NoError(t, db.Set(l.bucket.DBKey([]byte("alice")), raw))

	got, err := l.Get(db, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, long, got[0].Memo)

	now := vesting.Timestamp(5 * Period)
	svc := NewService(l, vesting.ClockFunc(func() vesting.Timestamp { return now }), OutboxSink{})
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx, db, "owner"))

	d, err := svc.Ping(ctx, db, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), d.Paid)
	assert.Equal(t, long, d.Memo)

	got, err = l.Get(db, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, long, got[0].Memo)
	assert.Equal(t, uint8(5), got[0].Paid)
}
