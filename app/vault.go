package app

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/cash"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/custody"
)

// authKey is where the facade stores caller conditions on the context.
const authKey = "auth"

// Vault is the assembled custody engine. It dispatches authenticated
// messages through the decorator stack into the extension handlers and
// answers read-only queries. The hosting process owns transports,
// signature verification and persistence of the backing store.
type Vault struct {
	db      vault.CacheableKVStore
	check   vault.KVCacheWrap
	handler vault.Handler
	auth    x.CtxAuth
	queries vault.QueryRouter
}

// NewVault initializes the engine state from the genesis options and
// wires the message handlers. Invalid genesis content aborts the
// construction and leaves the store untouched.
func NewVault(db vault.CacheableKVStore, genesis vault.Options) (*Vault, error) {
	cache := db.CacheWrap()
	err := ChainInitializers(
		cash.Initializer{},
		custody.Initializer{},
	).FromGenesis(genesis, cache)
	if err != nil {
		cache.Discard()
		return nil, errors.Wrap(err, "init from genesis")
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write genesis state")
	}

	auth := x.CtxAuth{Key: authKey}
	ledger := cash.NewController()

	r := NewRouter()
	cash.RegisterRoutes(r, auth, ledger)
	custody.RegisterRoutes(r, auth, ledger)

	handler := ChainDecorators(
		NewLogging(),
		NewRecovery(),
		NewSavepoint().OnDeliver(),
	).WithHandler(r)

	qr := vault.NewQueryRouter()
	cash.RegisterQuery(qr)
	custody.RegisterQuery(qr)

	return &Vault{
		db:      db,
		check:   db.CacheWrap(),
		handler: handler,
		auth:    auth,
		queries: qr,
	}, nil
}

// Authenticate returns a context carrying the verified caller
// identities. Identity verification is the job of the hosting process.
func (v *Vault) Authenticate(ctx vault.Context, callers ...vault.Condition) vault.Context {
	return v.auth.SetConditions(ctx, callers...)
}

// Check validates the transaction against a scratch copy of the state.
// Nothing a Check writes is ever visible to Deliver.
func (v *Vault) Check(ctx vault.Context, tx vault.Tx) (*vault.CheckResult, error) {
	return v.handler.Check(ctx, v.check, tx)
}

// Deliver executes the transaction against the backing store. The
// savepoint decorator guarantees that a failed transaction leaves no
// partial writes behind.
func (v *Vault) Deliver(ctx vault.Context, tx vault.Tx) (*vault.DeliverResult, error) {
	return v.handler.Deliver(ctx, v.db, tx)
}

// Query answers a read-only request against the delivered state.
func (v *Vault) Query(path, mod string, data []byte) ([]vault.Model, error) {
	return v.queries.Handler(path).Query(v.db, mod, data)
}
