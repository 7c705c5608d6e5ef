package custody

import (
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// Reserved codes 1200~1219
var (
	// ErrPendingExists is returned when initiating a request while the
	// pipeline slot is already occupied by an unexecuted request.
	ErrPendingExists = errors.Register(1200, "request already pending")

	// ErrNoPending is returned when referencing a request that does not
	// exist or when the pipeline slot is empty.
	ErrNoPending = errors.Register(1201, "no pending request")

	// ErrAlreadyExecuted is returned when mutating a request that was
	// already finalized.
	ErrAlreadyExecuted = errors.Register(1202, "request already executed")

	// ErrAlreadyApproved is returned when an approver signs off on the
	// same request twice.
	ErrAlreadyApproved = errors.Register(1203, "already approved")

	// ErrNotApproved is returned when revoking an approval that was
	// never recorded.
	ErrNotApproved = errors.Register(1204, "not approved")

	// ErrTimelock is returned when executing a request before its
	// timelock elapsed.
	ErrTimelock = errors.Register(1205, "timelock not elapsed")

	// ErrQuorum is returned when the approval count is below the quorum
	// threshold and the caller has no override privilege.
	ErrQuorum = errors.Register(1206, "quorum not met")

	// ErrInsufficientSigners is returned when the valid signer count is
	// below the quorum threshold, so no request could ever execute.
	ErrInsufficientSigners = errors.Register(1207, "insufficient signers")

	// ErrMissingExecutor is returned when a request requires an executor
	// to be appointed and none is.
	ErrMissingExecutor = errors.Register(1208, "no executor appointed")

	// ErrRoleConflict is returned when granting a role to an address
	// that already holds one.
	ErrRoleConflict = errors.Register(1209, "role conflict")

	// ErrSuccessionState is returned when the succession protocol is in
	// the wrong phase for the requested operation.
	ErrSuccessionState = errors.Register(1210, "invalid succession state")
)
