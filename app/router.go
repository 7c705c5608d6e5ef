package app

import (
	"fmt"
	"regexp"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Router allows us to register many handlers with different paths and
// then direct each message to the registered handler.
type Router struct {
	handlers map[string]vault.Handler
}

var _ vault.Registry = (*Router)(nil)
var _ vault.Handler = (*Router)(nil)

// pathPattern is a regular expression that every registered path must
// match.
var pathPattern = regexp.MustCompile(`^[a-z0-9]+(/[a-z0-9_]+)*$`)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]vault.Handler),
	}
}

// Handle adds a new handler for the path of the given message. Requiring
// a message instead of a path string ensures that a handler can only be
// registered for a routable message. This function panics if a handler
// for given message type is already registered or if the message path is
// invalid.
func (r *Router) Handle(m vault.Msg, h vault.Handler) {
	path := m.Path()
	if !pathPattern.MatchString(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering handler for the path %q", path))
	}
	r.handlers[path] = h
}

// Handler returns the registered handler for this message. It always
// returns a non-nil handler. For unknown paths the returned handler
// fails every request with a not found error.
func (r *Router) Handler(m vault.Msg) vault.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg).Deliver(ctx, db, tx)
}

// notFoundHandler always returns ErrNotFound for the path it was
// created with.
type notFoundHandler string

var _ vault.Handler = notFoundHandler("")

func (path notFoundHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
