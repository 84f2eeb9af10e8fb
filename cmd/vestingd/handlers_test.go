package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/app"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store/iavl"
	"github.com/iov-one/vesting/vestingtest"
	"github.com/iov-one/vesting/x/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
)

func newTestServer(t testing.TB) (http.Handler, *vestingtest.Clock) {
	t.Helper()
	cs, err := iavl.NewCommitStoreFromDB(dbm.NewMemDB(), 100)
	require.NoError(t, err)
	clock := vestingtest.NewClock(vesting.Timestamp(time.Hour))
	a, err := app.New(cs, clock)
	require.NoError(t, err)
	return newRouter(a, log.NewNopLogger()), clock
}

func do(t testing.TB, h http.Handler, method, path, signer, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if signer != "" {
		r.Header.Set(signerHeader, signer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t testing.TB, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(dst); err != nil {
		t.Fatalf("cannot decode JSON response: %s: %s", err, w.Body)
	}
}

func TestHTTPFlow(t *testing.T) {
	h, clock := newTestServer(t)

	w := do(t, h, "POST", "/subscribe", "alice", `{"memo": "", "amount": "100"}`)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	var failed struct {
		Errors []string `json:"errors"`
		Code   uint32   `json:"code"`
	}
	decode(t, w, &failed)
	assert.Equal(t, errors.ErrNotInitialized.Code(), failed.Code)

	w = do(t, h, "POST", "/init", "", `{"owner": "owner.testnet"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, "POST", "/init", "", `{"owner": "owner.testnet"}`)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = do(t, h, "POST", "/subscribe", "alice", `{"memo": "first", "amount": "1200"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Index int `json:"index"`
	}
	decode(t, w, &created)
	assert.Equal(t, 0, created.Index)

	clock.Advance(2 * time.Second)
	w = do(t, h, "POST", "/deposits/0/ping", "alice", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var d subscription.Deposit
	decode(t, w, &d)
	assert.Equal(t, uint8(2), d.Paid)
	assert.Equal(t, "1200", d.Amount.String())

	w = do(t, h, "POST", "/deposits/0/withdraw", "alice", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tr subscription.Transfer
	decode(t, w, &tr)
	assert.Equal(t, "1000", tr.Amount.String())
	assert.Equal(t, vesting.AccountID("alice"), tr.Recipient)

	w = do(t, h, "GET", "/accounts/alice/subs", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var subs []subscription.Deposit
	decode(t, w, &subs)
	require.Len(t, subs, 1)
	assert.Equal(t, "first", subs[0].Memo)

	w = do(t, h, "GET", "/accounts/nobody/subs", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "[]", w.Body.String())

	w = do(t, h, "GET", "/accounts", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var accounts []vesting.AccountID
	decode(t, w, &accounts)
	assert.Equal(t, []vesting.AccountID{"alice"}, accounts)

	clock.Advance(time.Minute)
	w = do(t, h, "POST", "/deposits/0/withdraw", "alice", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	decode(t, w, &failed)
	assert.Equal(t, errors.ErrPrecondition.Code(), failed.Code)

	w = do(t, h, "GET", "/info", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var info struct {
		Version        int64  `json:"version"`
		Owner          string `json:"owner"`
		PendingPayouts int    `json:"pending_payouts"`
	}
	decode(t, w, &info)
	assert.Equal(t, "owner.testnet", info.Owner)
	assert.True(t, info.Version > 0)
	assert.Equal(t, 1, info.PendingPayouts)
}

func TestHTTPErrors(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, "POST", "/init", "", `{"owner": "owner"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cases := map[string]struct {
		method   string
		path     string
		signer   string
		body     string
		wantCode int
		wantErr  *errors.Error
	}{
		"missing signer": {
			method:   "POST",
			path:     "/subscribe",
			body:     `{"memo": "", "amount": "1"}`,
			wantCode: http.StatusUnauthorized,
			wantErr:  errors.ErrUnauthorized,
		},
		"malformed signer": {
			method:   "POST",
			path:     "/subscribe",
			signer:   "Alice!",
			body:     `{"memo": "", "amount": "1"}`,
			wantCode: http.StatusBadRequest,
		},
		"memo too long": {
			method:   "POST",
			path:     "/subscribe",
			signer:   "alice",
			body:     `{"memo": "` + strings.Repeat("x", 64) + `", "amount": "1"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  errors.ErrInput,
		},
		"unknown field": {
			method:   "POST",
			path:     "/subscribe",
			signer:   "alice",
			body:     `{"memo": "", "amount": "1", "extra": true}`,
			wantCode: http.StatusBadRequest,
		},
		"negative amount": {
			method:   "POST",
			path:     "/subscribe",
			signer:   "alice",
			body:     `{"memo": "", "amount": "-1"}`,
			wantCode: http.StatusBadRequest,
		},
		"unknown deposit": {
			method:   "POST",
			path:     "/deposits/7/ping",
			signer:   "alice",
			wantCode: http.StatusNotFound,
			wantErr:  errors.ErrNotFound,
		},
		"index not a number": {
			method:   "POST",
			path:     "/deposits/first/withdraw",
			signer:   "alice",
			wantCode: http.StatusBadRequest,
		},
		"unknown path": {
			method:   "GET",
			path:     "/nope",
			wantCode: http.StatusNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			w := do(t, h, tc.method, tc.path, tc.signer, tc.body)
			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())

			var resp struct {
				Errors []string `json:"errors"`
				Code   uint32   `json:"code"`
			}
			decode(t, w, &resp)
			assert.NotEmpty(t, resp.Errors)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Code(), resp.Code)
			} else {
				assert.Equal(t, uint32(0), resp.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestServer(t)
	do(t, h, "GET", "/info", "", "")

	w := do(t, h, "GET", "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vesting_http_requests_total")
	assert.Contains(t, w.Body.String(), "vesting_payouts_pending")
}
