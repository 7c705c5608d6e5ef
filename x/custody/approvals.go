package custody

import (
	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
)

// hasApproved returns true if the given address is present in the
// approval set.
func hasApproved(approvals []vault.Address, a vault.Address) bool {
	for _, approval := range approvals {
		if approval.Equals(a) {
			return true
		}
	}
	return false
}

// addApproval extends the approval set with the given address. It
// returns false if the address already approved.
func addApproval(approvals []vault.Address, a vault.Address) ([]vault.Address, bool) {
	if hasApproved(approvals, a) {
		return approvals, false
	}
	return append(approvals, a), true
}

// removeApproval drops the given address from the approval set. It
// returns false if the address never approved.
func removeApproval(approvals []vault.Address, a vault.Address) ([]vault.Address, bool) {
	for i, approval := range approvals {
		if approval.Equals(a) {
			return append(approvals[:i], approvals[i+1:]...), true
		}
	}
	return approvals, false
}
