package app

import (
	"reflect"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []vault.Decorator
}

/*
ChainDecorators takes a chain of decorators, and upon adding a final
Handler (often a Router), returns a Handler that will execute this
whole stack.

  app.ChainDecorators(
    app.NewLogging(),
    app.NewRecovery(),
    app.NewSavepoint().OnDeliver(),
  ).WithHandler(
    app.NewRouter(),
  )
*/
func ChainDecorators(chain ...vault.Decorator) Decorators {
	chain = cutoffNil(chain)
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...vault.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := append(d.chain, chain...)
	return Decorators{newChain}
}

// cutoffNil will in-place remove all nil values from given slice.
func cutoffNil(ds []vault.Decorator) []vault.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h vault.Handler) vault.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one decorator of the chain together with the rest of
// the stack below it.
type step struct {
	d    vault.Decorator
	next vault.Handler
}

var _ vault.Handler = step{}

func (s step) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
