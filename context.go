package vesting

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

type contextKey int // local to the vesting module

const (
	contextKeyLogger contextKey = iota
	contextKeySigner
	contextKeyOperation
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()
)

// WithLogger sets the logger for this context
func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx context.Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx context.Context, keyvals ...interface{}) context.Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// WithSigner sets the account on whose behalf the current call is executed.
// It is set by the execution environment and never by the caller itself.
func WithSigner(ctx context.Context, signer AccountID) context.Context {
	return context.WithValue(ctx, contextKeySigner, signer)
}

// GetSigner returns the account set by WithSigner.
func GetSigner(ctx context.Context) (AccountID, bool) {
	val, ok := ctx.Value(contextKeySigner).(AccountID)
	return val, ok
}

// WithOperation labels the context with the name of the executed operation.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKeyOperation, name)
}

// GetOperation returns the operation name set by WithOperation, or an empty
// string.
func GetOperation(ctx context.Context) string {
	val, _ := ctx.Value(contextKeyOperation).(string)
	return val
}
