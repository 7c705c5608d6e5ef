package cash

import (
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Reserved codes 1100~1109
var (
	ErrInsufficientFunds     = errors.Register(1100, "insufficient funds")
	ErrInsufficientAllowance = errors.Register(1101, "insufficient allowance")
)
