package custody

import (
	"math"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

var (
	_ vault.Msg = (*InitiateActionMsg)(nil)
	_ vault.Msg = (*ApproveActionMsg)(nil)
	_ vault.Msg = (*RevokeApprovalMsg)(nil)
	_ vault.Msg = (*ExecuteActionMsg)(nil)
	_ vault.Msg = (*DeleteActionMsg)(nil)
	_ vault.Msg = (*InitiateTransferMsg)(nil)
	_ vault.Msg = (*ApproveTransferMsg)(nil)
	_ vault.Msg = (*RevokeTransferApprovalMsg)(nil)
	_ vault.Msg = (*ExecuteTransferMsg)(nil)
	_ vault.Msg = (*DeleteTransferMsg)(nil)
	_ vault.Msg = (*GrantRoleMsg)(nil)
	_ vault.Msg = (*RevokeRoleMsg)(nil)
	_ vault.Msg = (*InitiateSuccessionMsg)(nil)
	_ vault.Msg = (*ApproveSuccessionMsg)(nil)
)

const (
	initiateCost int64 = 100
	approveCost  int64 = 50
	executeCost  int64 = 200
	deleteCost   int64 = 50
	roleCost     int64 = 100

	maxPayloadSize int = 1024
)

// Path returns the routing path for this message.
func (InitiateActionMsg) Path() string {
	return "custody/initiate_action"
}

// Validate makes sure the requested action is sensible. Roster and
// configuration preconditions are checked by the handler.
func (m *InitiateActionMsg) Validate() error {
	switch m.Kind {
	case ActionAddSigner, ActionRemoveSigner:
		return errors.Wrap(m.Target.Validate(), "target")
	case ActionIncreaseTimelock, ActionDecreaseTimelock,
		ActionIncreaseThreshold, ActionDecreaseThreshold:
		if m.Value <= 0 {
			return errors.Wrapf(errors.ErrInput, "non-positive value %d", m.Value)
		}
		// Timelocks and thresholds are 32 bit wide in the
		// configuration. Larger values would silently wrap when the
		// action is applied.
		if m.Value > math.MaxInt32 {
			return errors.Wrapf(errors.ErrInput, "value %d out of range", m.Value)
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "invalid action kind %s", m.Kind)
	}
}

// Path returns the routing path for this message.
func (ApproveActionMsg) Path() string {
	return "custody/approve_action"
}

func (m *ApproveActionMsg) Validate() error {
	if m.ActionId == 0 {
		return errors.Wrap(errors.ErrInput, "missing action id")
	}
	return nil
}

// Path returns the routing path for this message.
func (RevokeApprovalMsg) Path() string {
	return "custody/revoke_approval"
}

func (m *RevokeApprovalMsg) Validate() error {
	if m.ActionId == 0 {
		return errors.Wrap(errors.ErrInput, "missing action id")
	}
	return nil
}

// Path returns the routing path for this message.
func (ExecuteActionMsg) Path() string {
	return "custody/execute_action"
}

func (m *ExecuteActionMsg) Validate() error {
	if m.ActionId == 0 {
		return errors.Wrap(errors.ErrInput, "missing action id")
	}
	return nil
}

// Path returns the routing path for this message.
func (DeleteActionMsg) Path() string {
	return "custody/delete_action"
}

func (m *DeleteActionMsg) Validate() error {
	return nil
}

// Path returns the routing path for this message.
func (InitiateTransferMsg) Path() string {
	return "custody/initiate_transfer"
}

func (m *InitiateTransferMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(m.Recipient.Validate(), "recipient"))
	if m.Amount == nil || !m.Amount.IsPositive() {
		err = errors.Append(err, errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", m.Amount))
	} else {
		err = errors.Append(err, errors.Wrap(m.Amount.Validate(), "amount"))
	}
	if len(m.Payload) > maxPayloadSize {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "payload too long"))
	}
	return err
}

// Path returns the routing path for this message.
func (ApproveTransferMsg) Path() string {
	return "custody/approve_transfer"
}

func (m *ApproveTransferMsg) Validate() error {
	if m.TransferId == 0 {
		return errors.Wrap(errors.ErrInput, "missing transfer id")
	}
	return nil
}

// Path returns the routing path for this message.
func (RevokeTransferApprovalMsg) Path() string {
	return "custody/revoke_transfer_approval"
}

func (m *RevokeTransferApprovalMsg) Validate() error {
	if m.TransferId == 0 {
		return errors.Wrap(errors.ErrInput, "missing transfer id")
	}
	return nil
}

// Path returns the routing path for this message.
func (ExecuteTransferMsg) Path() string {
	return "custody/execute_transfer"
}

func (m *ExecuteTransferMsg) Validate() error {
	if m.TransferId == 0 {
		return errors.Wrap(errors.ErrInput, "missing transfer id")
	}
	return nil
}

// Path returns the routing path for this message.
func (DeleteTransferMsg) Path() string {
	return "custody/delete_transfer"
}

func (m *DeleteTransferMsg) Validate() error {
	return nil
}

// Path returns the routing path for this message.
func (GrantRoleMsg) Path() string {
	return "custody/grant_role"
}

// Validate rejects any role that cannot be granted directly. The owner
// role can only change hands through succession.
func (m *GrantRoleMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(m.Target.Validate(), "target"))
	switch m.Role {
	case RoleExecutor, RoleSigner:
	default:
		err = errors.Append(err, errors.Wrapf(errors.ErrInput, "role %s cannot be granted", m.Role))
	}
	return err
}

// Path returns the routing path for this message.
func (RevokeRoleMsg) Path() string {
	return "custody/revoke_role"
}

// Validate rejects any role that cannot be revoked directly.
func (m *RevokeRoleMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(m.Target.Validate(), "target"))
	switch m.Role {
	case RoleExecutor, RoleSigner:
	default:
		err = errors.Append(err, errors.Wrapf(errors.ErrInput, "role %s cannot be revoked", m.Role))
	}
	return err
}

// Path returns the routing path for this message.
func (InitiateSuccessionMsg) Path() string {
	return "custody/initiate_succession"
}

func (m *InitiateSuccessionMsg) Validate() error {
	return nil
}

// Path returns the routing path for this message.
func (ApproveSuccessionMsg) Path() string {
	return "custody/approve_succession"
}

func (m *ApproveSuccessionMsg) Validate() error {
	return nil
}
