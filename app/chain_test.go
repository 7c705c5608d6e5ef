package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
)

func TestChain(t *testing.T) {
	c1 := &vaulttest.Decorator{}
	c2 := &vaulttest.Decorator{}
	c3 := &vaulttest.Decorator{}
	h := &vaulttest.Handler{}

	stack := ChainDecorators(
		c1,
		NewLogging(),
		NewRecovery(),
		c2,
		nil, // nil decorators are dropped from the chain
		c3,
	).WithHandler(h)

	ctx := context.Background()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAbortsOnError(t *testing.T) {
	c1 := &vaulttest.Decorator{}
	c2 := &vaulttest.Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	}
	c3 := &vaulttest.Decorator{}
	h := &vaulttest.Handler{}

	stack := ChainDecorators(c1, c2, c3).WithHandler(h)

	ctx := context.Background()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = stack.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// The failing decorator stops the stack before it reaches lower
	// levels.
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 0, c3.CallCount())
	assert.Equal(t, 0, h.CallCount())
}
