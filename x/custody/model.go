package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/orm"
)

// rosterKey is the fixed key the roster singleton lives under in its
// bucket.
var rosterKey = []byte("current")

// successionKey is the fixed key the succession singleton lives under
// in its bucket.
var successionKey = []byte("current")

// TreasuryAddress returns the address the vault holds its assets
// under. No private key can claim this address.
func TreasuryAddress() vault.Address {
	return vault.NewCondition("custody", "treasury", []byte("vault")).Address()
}

var _ orm.Model = (*Roster)(nil)

// Validate enforces that the roster always names a valid owner and
// that every other member address is well formed.
func (r *Roster) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(r.Owner.Validate(), "owner"))
	if len(r.Executor) != 0 {
		err = errors.Append(err, errors.Wrap(r.Executor.Validate(), "executor"))
	}
	for i, s := range r.Signers {
		err = errors.Append(err, errors.Wrapf(s.Validate(), "signer #%d", i))
	}
	return err
}

// NewRosterBucket returns a bucket for keeping the roster singleton.
func NewRosterBucket() orm.ModelBucket {
	return orm.NewModelBucket("roster", &Roster{})
}

var _ orm.Model = (*UserProfile)(nil)

func (p *UserProfile) Validate() error {
	var err error
	switch p.Role {
	case RoleOwner, RoleExecutor, RoleSigner:
		// All good.
	default:
		err = errors.Wrapf(errors.ErrState, "invalid role %s", p.Role)
	}
	return errors.Append(err, errors.Wrap(p.JoinedAt.Validate(), "joined at"))
}

// NewProfileBucket returns a bucket for keeping role holder profiles,
// keyed by the member address.
func NewProfileBucket() orm.ModelBucket {
	return orm.NewModelBucket("profile", &UserProfile{})
}

var _ orm.Model = (*PendingAction)(nil)

func (a *PendingAction) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(a.Initiator.Validate(), "initiator"))
	switch a.Kind {
	case ActionAddSigner, ActionRemoveSigner:
		err = errors.Append(err, errors.Wrap(a.Target.Validate(), "target"))
	case ActionIncreaseTimelock, ActionDecreaseTimelock,
		ActionIncreaseThreshold, ActionDecreaseThreshold:
		if a.Value <= 0 {
			err = errors.Append(err, errors.Wrapf(errors.ErrInput, "non-positive value %d", a.Value))
		}
	default:
		err = errors.Append(err, errors.Wrapf(errors.ErrState, "invalid action kind %s", a.Kind))
	}
	err = errors.Append(err, errors.Wrap(a.CreatedAt.Validate(), "created at"))
	for i, approval := range a.Approvals {
		err = errors.Append(err, errors.Wrapf(approval.Validate(), "approval #%d", i))
	}
	return err
}

// NewActionBucket returns a bucket for keeping governance actions,
// keyed by the 8 byte big endian sequence id.
func NewActionBucket() orm.ModelBucket {
	return orm.NewModelBucket("action", &PendingAction{})
}

func newActionSeq() orm.Sequence {
	return orm.NewSequence("action", "id")
}

var _ orm.Model = (*PendingTransfer)(nil)

func (t *PendingTransfer) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(t.Initiator.Validate(), "initiator"))
	err = errors.Append(err, errors.Wrap(t.Recipient.Validate(), "recipient"))
	if t.Amount == nil || !t.Amount.IsPositive() {
		err = errors.Append(err, errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", t.Amount))
	} else {
		err = errors.Append(err, errors.Wrap(t.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(t.CreatedAt.Validate(), "created at"))
	for i, approval := range t.Approvals {
		err = errors.Append(err, errors.Wrapf(approval.Validate(), "approval #%d", i))
	}
	return err
}

// NewTransferBucket returns a bucket for keeping asset transfers, keyed
// by the 8 byte big endian sequence id.
func NewTransferBucket() orm.ModelBucket {
	return orm.NewModelBucket("transfer", &PendingTransfer{})
}

func newTransferSeq() orm.Sequence {
	return orm.NewSequence("transfer", "id")
}

var _ orm.Model = (*Succession)(nil)

func (s *Succession) Validate() error {
	if s.Active && s.InitiatedAt.IsZero() {
		return errors.Wrap(errors.ErrState, "active succession without a start time")
	}
	return s.InitiatedAt.Validate()
}

// NewSuccessionBucket returns a bucket for keeping the succession
// singleton.
func NewSuccessionBucket() orm.ModelBucket {
	return orm.NewModelBucket("handover", &Succession{})
}
