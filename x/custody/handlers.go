package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/x/cash"
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The ledger moves funds out of the treasury when a transfer
// is executed.
func RegisterRoutes(r vault.Registry, auth x.Authenticator, ledger cash.CoinMover) {
	actions := newActionBase(auth)
	r.Handle(&InitiateActionMsg{}, InitiateActionHandler{actions})
	r.Handle(&ApproveActionMsg{}, ApproveActionHandler{actions})
	r.Handle(&RevokeApprovalMsg{}, RevokeApprovalHandler{actions})
	r.Handle(&ExecuteActionMsg{}, ExecuteActionHandler{actions})
	r.Handle(&DeleteActionMsg{}, DeleteActionHandler{actions})

	transfers := newTransferBase(auth, ledger)
	r.Handle(&InitiateTransferMsg{}, InitiateTransferHandler{transfers})
	r.Handle(&ApproveTransferMsg{}, ApproveTransferHandler{transfers})
	r.Handle(&RevokeTransferApprovalMsg{}, RevokeTransferApprovalHandler{transfers})
	r.Handle(&ExecuteTransferMsg{}, ExecuteTransferHandler{transfers})
	r.Handle(&DeleteTransferMsg{}, DeleteTransferHandler{transfers})

	roles := newRoleBase(auth)
	r.Handle(&GrantRoleMsg{}, GrantRoleHandler{roles})
	r.Handle(&RevokeRoleMsg{}, RevokeRoleHandler{roles})

	succession := newSuccessionBase(auth)
	r.Handle(&InitiateSuccessionMsg{}, InitiateSuccessionHandler{succession})
	r.Handle(&ApproveSuccessionMsg{}, ApproveSuccessionHandler{succession})
}

// RegisterQuery will register the custody buckets with the query
// router.
func RegisterQuery(qr vault.QueryRouter) {
	NewRosterBucket().Register("roster", qr)
	NewProfileBucket().Register("profiles", qr)
	NewActionBucket().Register("actions", qr)
	NewTransferBucket().Register("transfers", qr)
	NewSuccessionBucket().Register("succession", qr)
}
