package cash

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

var (
	_ vault.Msg = (*DepositMsg)(nil)
	_ vault.Msg = (*SetAllowanceMsg)(nil)
)

const (
	depositCost      int64 = 100
	setAllowanceCost int64 = 50

	maxMemoSize int = 128
)

// Path returns the routing path for this message
func (DepositMsg) Path() string {
	return "cash/deposit"
}

// Validate makes sure that this is sensible
func (m *DepositMsg) Validate() error {
	var err error
	if m.Amount == nil || !m.Amount.IsPositive() {
		err = errors.Wrapf(errors.ErrAmount, "non-positive deposit: %v", m.Amount)
	} else {
		err = errors.Append(err, errors.Wrap(m.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(m.Source.Validate(), "source"))
	err = errors.Append(err, errors.Wrap(m.Destination.Validate(), "destination"))
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return err
}

// Path returns the routing path for this message
func (SetAllowanceMsg) Path() string {
	return "cash/set_allowance"
}

// Validate makes sure that this is sensible. A zero amount is allowed,
// it revokes the allowance.
func (m *SetAllowanceMsg) Validate() error {
	var err error
	if m.Amount == nil {
		err = errors.Wrap(errors.ErrAmount, "missing amount")
	} else if !m.Amount.IsNonNegative() {
		err = errors.Wrapf(errors.ErrAmount, "negative allowance: %v", m.Amount)
	} else if !m.Amount.IsZero() {
		err = errors.Append(err, errors.Wrap(m.Amount.Validate(), "amount"))
	}
	return errors.Append(err, errors.Wrap(m.Grantee.Validate(), "grantee"))
}
