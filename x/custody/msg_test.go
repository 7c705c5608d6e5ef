package custody

import (
	"math"
	"testing"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest/assert"
)

func TestInitiateActionMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     InitiateActionMsg
		wantErr *errors.Error
	}{
		"valid add signer": {
			msg: InitiateActionMsg{Kind: ActionAddSigner, Target: vaulttest.NewAddress()},
		},
		"valid threshold change": {
			msg: InitiateActionMsg{Kind: ActionIncreaseThreshold, Value: 3},
		},
		"add signer requires a target": {
			msg:     InitiateActionMsg{Kind: ActionAddSigner},
			wantErr: errors.ErrInput,
		},
		"threshold change requires a value": {
			msg:     InitiateActionMsg{Kind: ActionDecreaseThreshold},
			wantErr: errors.ErrInput,
		},
		"negative value": {
			msg:     InitiateActionMsg{Kind: ActionIncreaseTimelock, Value: -1},
			wantErr: errors.ErrInput,
		},
		"timelock value above 32 bits": {
			msg:     InitiateActionMsg{Kind: ActionIncreaseTimelock, Value: math.MaxInt32 + 1},
			wantErr: errors.ErrInput,
		},
		"threshold value above 32 bits": {
			msg:     InitiateActionMsg{Kind: ActionIncreaseThreshold, Value: math.MaxInt32 + 1},
			wantErr: errors.ErrInput,
		},
		"timelock value at 32 bit limit": {
			msg: InitiateActionMsg{Kind: ActionIncreaseTimelock, Value: math.MaxInt32},
		},
		"unknown kind": {
			msg:     InitiateActionMsg{},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.msg.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.msg.Validate())
			}
		})
	}
}

func TestInitiateTransferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     InitiateTransferMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: InitiateTransferMsg{
				Recipient: vaulttest.NewAddress(),
				Amount:    coin.NewCoinp(10, "IOV"),
				Payload:   []byte("invoice 42"),
			},
		},
		"missing amount": {
			msg:     InitiateTransferMsg{Recipient: vaulttest.NewAddress()},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg: InitiateTransferMsg{
				Recipient: vaulttest.NewAddress(),
				Amount:    coin.NewCoinp(-10, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
		"missing recipient": {
			msg:     InitiateTransferMsg{Amount: coin.NewCoinp(10, "IOV")},
			wantErr: errors.ErrInput,
		},
		"payload too long": {
			msg: InitiateTransferMsg{
				Recipient: vaulttest.NewAddress(),
				Amount:    coin.NewCoinp(10, "IOV"),
				Payload:   make([]byte, maxPayloadSize+1),
			},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.msg.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.msg.Validate())
			}
		})
	}
}

func TestRoleMsgValidate(t *testing.T) {
	target := vaulttest.NewAddress()

	assert.Nil(t, (&GrantRoleMsg{Target: target, Role: RoleExecutor}).Validate())
	assert.Nil(t, (&RevokeRoleMsg{Target: target, Role: RoleSigner}).Validate())

	// The owner role changes hands only through succession.
	assert.IsErr(t, errors.ErrInput, (&GrantRoleMsg{Target: target, Role: RoleOwner}).Validate())
	assert.IsErr(t, errors.ErrInput, (&RevokeRoleMsg{Target: target, Role: RoleOwner}).Validate())
	assert.IsErr(t, errors.ErrInput, (&GrantRoleMsg{Target: target}).Validate())
	assert.IsErr(t, errors.ErrInput, (&GrantRoleMsg{Role: RoleSigner}).Validate())
}

func TestPipelineIDMsgValidate(t *testing.T) {
	assert.Nil(t, (&ApproveActionMsg{ActionId: 1}).Validate())
	assert.IsErr(t, errors.ErrInput, (&ApproveActionMsg{}).Validate())
	assert.IsErr(t, errors.ErrInput, (&RevokeApprovalMsg{}).Validate())
	assert.IsErr(t, errors.ErrInput, (&ExecuteActionMsg{}).Validate())
	assert.IsErr(t, errors.ErrInput, (&ApproveTransferMsg{}).Validate())
	assert.IsErr(t, errors.ErrInput, (&RevokeTransferApprovalMsg{}).Validate())
	assert.IsErr(t, errors.ErrInput, (&ExecuteTransferMsg{}).Validate())
}
