package vault

import (
	"strings"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

const (
	// KeyQueryMod means to query for exact match (key)
	KeyQueryMod = ""
	// PrefixQueryMod means to query for anything with this prefix
	PrefixQueryMod = "prefix"
)

// Model groups a set of key value pairs returned by queries.
type Model struct {
	Key   []byte
	Value []byte
}

// Copy returns an independent copy of this model.
func (m Model) Copy() Model {
	key := make([]byte, len(m.Key))
	copy(key, m.Key)
	value := make([]byte, len(m.Value))
	copy(value, m.Value)
	return Model{Key: key, Value: value}
}

// QueryHandler is anything that can process read-only requests against the
// state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter allows us to register many query handlers to different paths
// and then direct each query to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// RegisterAll registers a number of QueryRegisters at once
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// QueryRegister is a function that adds some routes to this router
type QueryRegister func(QueryRouter)

// Register adds a new Handler for the given path. Panics on duplicate
// registration or invalid path.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") {
		panic("query path must start with /: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is found,
// returns a noSuchPath Handler. Always returns a non-nil Handler.
func (r QueryRouter) Handler(path string) QueryHandler {
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

type noSuchPathHandler struct {
	path string
}

var _ QueryHandler = noSuchPathHandler{}

// Query always returns ErrNotFound
func (h noSuchPathHandler) Query(ReadOnlyKVStore, string, []byte) ([]Model, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no query handler: %s", h.path)
}
