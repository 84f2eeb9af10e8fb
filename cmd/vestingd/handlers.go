package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/app"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
)

// signerHeader carries the account on whose behalf a request is executed.
// It must be set by a trusted proxy that authenticated the client.
const signerHeader = "X-Signer"

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vesting_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vesting_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})
)

func newRouter(a *app.App, logger log.Logger) http.Handler {
	h := &handler{app: a, logger: logger}

	r := mux.NewRouter()
	r.Use(instrument)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/info", h.Info).Methods("GET")
	r.HandleFunc("/init", h.Initialize).Methods("POST")
	r.HandleFunc("/subscribe", h.Subscribe).Methods("POST")
	r.HandleFunc("/deposits/{index}/ping", h.Ping).Methods("POST")
	r.HandleFunc("/deposits/{index}/withdraw", h.Withdraw).Methods("POST")
	r.HandleFunc("/accounts", h.Accounts).Methods("GET")
	r.HandleFunc("/accounts/{account}/subs", h.GetSubs).Methods("GET")
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSONErr(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	return r
}

type handler struct {
	app    *app.App
	logger log.Logger
}

func (h *handler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.app.Info()
	if err != nil {
		h.fail(w, err)
		return
	}
	owner, err := h.app.Owner(r.Context())
	if err != nil && !errors.ErrNotInitialized.Is(err) {
		h.fail(w, err)
		return
	}
	pending, err := h.app.PendingPayouts(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusOK, struct {
		BuildVersion   string            `json:"build_version"`
		Version        int64             `json:"version"`
		Hash           string            `json:"hash"`
		Owner          vesting.AccountID `json:"owner,omitempty"`
		PendingPayouts int               `json:"pending_payouts"`
	}{
		BuildVersion:   vesting.Version(),
		Version:        info.Version,
		Hash:           hex.EncodeToString(info.Hash),
		Owner:          owner,
		PendingPayouts: pending,
	})
}

func (h *handler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Owner vesting.AccountID `json:"owner"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.app.Initialize(r.Context(), req.Owner); err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusCreated, req)
}

func (h *handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, ok := withSigner(w, r)
	if !ok {
		return
	}
	var req struct {
		Memo   string      `json:"memo"`
		Amount coin.Amount `json:"amount"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	index, err := h.app.Subscribe(ctx, req.Memo, req.Amount)
	if err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusCreated, struct {
		Index int `json:"index"`
	}{Index: index})
}

func (h *handler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, ok := withSigner(w, r)
	if !ok {
		return
	}
	index, ok := depositIndex(w, r)
	if !ok {
		return
	}
	d, err := h.app.Ping(ctx, index)
	if err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusOK, d)
}

func (h *handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx, ok := withSigner(w, r)
	if !ok {
		return
	}
	index, ok := depositIndex(w, r)
	if !ok {
		return
	}
	t, err := h.app.Withdraw(ctx, index)
	if err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusOK, t)
}

func (h *handler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.app.Accounts(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusOK, accounts)
}

func (h *handler) GetSubs(w http.ResponseWriter, r *http.Request) {
	account := vesting.AccountID(mux.Vars(r)["account"])
	deposits, err := h.app.GetSubs(r.Context(), account)
	if err != nil {
		h.fail(w, err)
		return
	}
	JSONResp(w, http.StatusOK, deposits)
}

// withSigner returns the request context extended with the signer declared
// in the request header. A request without the header is passed through,
// the operation rejects it.
func withSigner(w http.ResponseWriter, r *http.Request) (context.Context, bool) {
	ctx := r.Context()
	raw := r.Header.Get(signerHeader)
	if raw == "" {
		return ctx, true
	}
	signer, err := vesting.ParseAccountID(raw)
	if err != nil {
		JSONErr(w, http.StatusBadRequest, "invalid "+signerHeader+" header")
		return ctx, false
	}
	return vesting.WithSigner(ctx, signer), true
}

func depositIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		JSONErr(w, http.StatusBadRequest, "deposit index must be a number")
		return 0, false
	}
	return index, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	const maxBody = 1 << 16
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		JSONErr(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	code := httpStatus(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", "err", err)
		JSONCodeErr(w, code, errors.Code(err), http.StatusText(code))
		return
	}
	JSONCodeErr(w, code, errors.Code(err), errors.Redact(err).Error())
}

// httpStatus maps an error returned by the application to the HTTP status
// code.
func httpStatus(err error) int {
	switch {
	case errors.ErrInput.Is(err), errors.ErrInvalidAccount.Is(err), errors.ErrEncoding.Is(err), errors.ErrOverflow.Is(err):
		return http.StatusBadRequest
	case errors.ErrUnauthorized.Is(err):
		return http.StatusUnauthorized
	case errors.ErrNotFound.Is(err):
		return http.StatusNotFound
	case errors.ErrAlreadyInitialized.Is(err), errors.ErrNotInitialized.Is(err), errors.ErrState.Is(err):
		return http.StatusConflict
	case errors.ErrPrecondition.Is(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// instrument records the number and the latency of requests by route.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := "unknown"
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(rec.code)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

// JSONResp write content as JSON encoded response.
func JSONResp(w http.ResponseWriter, code int, content interface{}) {
	b, err := json.MarshalIndent(content, "", "\t")
	if err != nil {
		code = http.StatusInternalServerError
		b = []byte(`{"errors":["Internal Server Error"]}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// JSONErr write single error as JSON encoded response.
func JSONErr(w http.ResponseWriter, code int, errText string) {
	JSONErrs(w, code, []string{errText})
}

// JSONErrs write multiple errors as JSON encoded response.
func JSONErrs(w http.ResponseWriter, code int, errs []string) {
	JSONResp(w, code, errorResponse{Errors: errs})
}

// JSONCodeErr write single application error as JSON encoded response,
// together with the registered code of that error.
func JSONCodeErr(w http.ResponseWriter, code int, errCode uint32, errText string) {
	JSONResp(w, code, errorResponse{Errors: []string{errText}, Code: errCode})
}

type errorResponse struct {
	Errors []string `json:"errors"`
	Code   uint32   `json:"code,omitempty"`
}
