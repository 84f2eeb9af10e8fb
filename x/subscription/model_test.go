package subscription

import (
	"strings"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositValidate(t *testing.T) {
	cases := map[string]struct {
		deposit   Deposit
		wantErr   *errors.Error
		wantField string
	}{
		"valid": {
			deposit: Deposit{Memo: "hello", Amount: coin.NewAmount(1), Created: 1},
		},
		"longest memo": {
			deposit: Deposit{Memo: strings.Repeat("x", 63), Created: 1},
		},
		"zero creation time": {
			deposit: Deposit{Memo: "genesis", Created: 0},
		},
		"memo too long": {
			deposit:   Deposit{Memo: strings.Repeat("x", 64)},
			wantErr:   errors.ErrInput,
			wantField: "Memo",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.deposit.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			assert.Contains(t, err.Error(), `field "`+tc.wantField+`"`)
		})
	}
}

func TestDepositListEncoding(t *testing.T) {
	list := depositList{
		{Memo: "first", Amount: coin.NewAmount(1200), Paid: 3, Created: 1},
		{Memo: "", Amount: coin.MaxAmount(), Paid: 255, Created: ^vesting.Timestamp(0)},
	}
	raw, err := list.Marshal()
	require.NoError(t, err)

	var got depositList
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, list, got)
}

func TestDepositListRejectsMalformedRecords(t *testing.T) {
	cases := map[string]*DepositRecord{
		"short amount":  {Amount: []byte{1, 2, 3}, Created: 1},
		"paid too high": {Amount: coin.NewAmount(1).Bytes(), Paid: 256, Created: 1},
	}
	for testName, rec := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := proto.Marshal(&DepositList{Deposits: []*DepositRecord{rec}})
			require.NoError(t, err)

			var list depositList
			err = list.Unmarshal(raw)
			assert.True(t, errors.ErrEncoding.Is(err), "got %+v", err)
		})
	}
}

func TestStateEncoding(t *testing.T) {
	s := State{Owner: "owner.testnet"}
	raw, err := s.Marshal()
	require.NoError(t, err)

	var got State
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, s, got)

	assert.NoError(t, s.Validate())
	assert.True(t, errors.ErrInvalidAccount.Is((&State{Owner: "A"}).Validate()))
}
