package vault

import (
	"context"
	"regexp"
	"time"

	"github.com/go-kit/kit/log"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Context is just an alias for the standard implementation. We use functions
// to extend it to our domain.
//
// There should exist two functions for every value of type T that we want to
// support in Context:
//
//   WithT(Context, T) Context
//   GetT(Context) (val T, ok bool)
type Context = context.Context

type contextKey int // local to this package

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyBlockTime
	contextKeyLogger
)

var (
	// DefaultLogger is used for all context that have not set anything
	// themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the block height for the Context.
// Must be done in app, before running a Tx.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height.
// ok is false if no height was set on this Context.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// Must be done once, during app initialization.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("trying to overwrite chain-id")
	}
	if !IsValidChainID(chainID) {
		panic("invalid chain-id: " + chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id.
// Panics if chain id was not already set, as this is a configuration error
// that should halt the application.
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("chain id not set")
	}
	return val
}

// WithBlockTime sets the block time for the Context. The time most likely
// comes from the header of the currently processed block.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t)
}

// BlockTime returns the block time as declared on the context. An error is
// returned if the time was not present, which is a programmer error.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// WithLogger sets the logger for the Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger is only for local testing, so can be overwritten.
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger attached to given context, or the DefaultLogger
// if none was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := log.With(GetLogger(ctx), keyvals...)
	return WithLogger(ctx, logger)
}
