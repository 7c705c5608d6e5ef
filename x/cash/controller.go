package cash

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
)

// CoinMover is the interface other extensions depend on to query and
// move funds.
type CoinMover interface {
	// Balance returns the coins held by the given account. Missing
	// account is reported as ErrEmpty.
	Balance(vault.KVStore, vault.Address) (coin.Coins, error)
	// MoveCoins transfers the given amount between two accounts.
	MoveCoins(vault.KVStore, vault.Address, vault.Address, coin.Coin) error
}

// Controller is the full ledger functionality, used by the message
// handlers and the genesis initializer.
type Controller interface {
	CoinMover

	// IssueCoins creates new funds on the destination account.
	IssueCoins(vault.KVStore, vault.Address, coin.Coin) error
	// Deposit moves funds from source to destination on behalf of the
	// given submitter, consuming an allowance if the submitter is not
	// the source owner.
	Deposit(db vault.KVStore, submitter, source, destination vault.Address, amount coin.Coin) error
	// SetAllowance replaces the allowance granted by source to grantee.
	// A zero amount revokes it.
	SetAllowance(db vault.KVStore, source, grantee vault.Address, amount coin.Coin) error
	// Allowance returns what grantee is still allowed to pull from
	// source. No allowance is an empty set, not an error.
	Allowance(db vault.KVStore, source, grantee vault.Address) (coin.Coins, error)
}

// BaseController implements Controller on top of the wallet and
// allowance buckets.
type BaseController struct {
	wallets    orm.ModelBucket
	allowances orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController() BaseController {
	return BaseController{
		wallets:    NewWalletBucket(),
		allowances: NewAllowanceBucket(),
	}
}

// Balance returns the coins held under the given account.
func (c BaseController) Balance(db vault.KVStore, src vault.Address) (coin.Coins, error) {
	var wallet Wallet
	switch err := c.wallets.One(db, src, &wallet); {
	case err == nil:
		return wallet.GetCoins(), nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrEmpty, "account %s", src)
	default:
		return nil, errors.Wrap(err, "load wallet")
	}
}

// MoveCoins transfers the given amount from src to dest. It fails if
// src does not exist or does not hold sufficient funds.
func (c BaseController) MoveCoins(db vault.KVStore, src, dest vault.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", amount)
	}

	var sender Wallet
	switch err := c.wallets.One(db, src, &sender); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrEmpty, "account %s", src)
	case err != nil:
		return errors.Wrap(err, "load sender")
	}
	if !coin.Coins(sender.GetCoins()).Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%v in %s", amount, src)
	}

	remaining, err := coin.Coins(sender.GetCoins()).Subtract(amount)
	if err != nil {
		return err
	}
	sender.Set(remaining)
	if err := c.wallets.Put(db, src, &sender); err != nil {
		return errors.Wrap(err, "store sender")
	}
	return c.credit(db, dest, amount)
}

// IssueCoins attempts to add the given amount of coins to the
// destination address. The amount may be negative, but the resulting
// balance may not.
func (c BaseController) IssueCoins(db vault.KVStore, dest vault.Address, amount coin.Coin) error {
	return c.credit(db, dest, amount)
}

// Deposit moves funds from source to destination. A submitter other
// than the source owner must hold a sufficient allowance, which is
// consumed by the operation.
func (c BaseController) Deposit(db vault.KVStore, submitter, source, destination vault.Address, amount coin.Coin) error {
	if !submitter.Equals(source) {
		if err := c.consumeAllowance(db, source, submitter, amount); err != nil {
			return err
		}
	}
	return c.MoveCoins(db, source, destination, amount)
}

// SetAllowance replaces the allowance granted by source to grantee.
func (c BaseController) SetAllowance(db vault.KVStore, source, grantee vault.Address, amount coin.Coin) error {
	key, err := allowanceKey(source, grantee)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		if err := c.allowances.Delete(db, key); err != nil && !errors.ErrNotFound.Is(err) {
			return errors.Wrap(err, "delete allowance")
		}
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive allowance: %v", amount)
	}
	allowance := Allowance{Remaining: coin.Coins{amount.Clone()}}
	return c.allowances.Put(db, key, &allowance)
}

// Allowance returns what grantee is still allowed to pull from source.
func (c BaseController) Allowance(db vault.KVStore, source, grantee vault.Address) (coin.Coins, error) {
	key, err := allowanceKey(source, grantee)
	if err != nil {
		return nil, err
	}
	var allowance Allowance
	switch err := c.allowances.One(db, key, &allowance); {
	case err == nil:
		return allowance.GetRemaining(), nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "load allowance")
	}
}

func (c BaseController) consumeAllowance(db vault.KVStore, source, grantee vault.Address, amount coin.Coin) error {
	key, err := allowanceKey(source, grantee)
	if err != nil {
		return err
	}
	var allowance Allowance
	switch err := c.allowances.One(db, key, &allowance); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrInsufficientAllowance, "no allowance from %s", source)
	case err != nil:
		return errors.Wrap(err, "load allowance")
	}
	remaining := coin.Coins(allowance.GetRemaining())
	if !remaining.Contains(amount) {
		return errors.Wrapf(ErrInsufficientAllowance, "%v from %s", amount, source)
	}
	remaining, err = remaining.Subtract(amount)
	if err != nil {
		return err
	}
	if remaining.IsEmpty() {
		if err := c.allowances.Delete(db, key); err != nil {
			return errors.Wrap(err, "delete allowance")
		}
		return nil
	}
	allowance.Remaining = remaining
	return c.allowances.Put(db, key, &allowance)
}

func (c BaseController) credit(db vault.KVStore, dest vault.Address, amount coin.Coin) error {
	var recipient Wallet
	switch err := c.wallets.One(db, dest, &recipient); {
	case err == nil || errors.ErrNotFound.Is(err):
		// A missing wallet starts empty.
	default:
		return errors.Wrap(err, "load recipient")
	}
	balance, err := coin.Coins(recipient.GetCoins()).Add(amount)
	if err != nil {
		return err
	}
	if !balance.IsNonNegative() {
		return errors.Wrapf(ErrInsufficientFunds, "%v in %s", amount, dest)
	}
	recipient.Set(balance)
	return c.wallets.Put(db, dest, &recipient)
}
