package cash

import (
	"testing"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/coin"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/vaulttest"
)

func TestValidateDepositMsg(t *testing.T) {
	cases := map[string]struct {
		msg     *DepositMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &DepositMsg{
				Source:      vaulttest.NewAddress(),
				Destination: vaulttest.NewAddress(),
				Amount:      coin.NewCoinp(5, "IOV"),
				Memo:        "weekly funding",
			},
		},
		"missing amount": {
			msg: &DepositMsg{
				Source:      vaulttest.NewAddress(),
				Destination: vaulttest.NewAddress(),
			},
			wantErr: errors.ErrAmount,
		},
		"non-positive amount": {
			msg: &DepositMsg{
				Source:      vaulttest.NewAddress(),
				Destination: vaulttest.NewAddress(),
				Amount:      coin.NewCoinp(0, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
		"bad source": {
			msg: &DepositMsg{
				Source:      vault.Address{0x1},
				Destination: vaulttest.NewAddress(),
				Amount:      coin.NewCoinp(5, "IOV"),
			},
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			msg: &DepositMsg{
				Source:      vaulttest.NewAddress(),
				Destination: vaulttest.NewAddress(),
				Amount:      coin.NewCoinp(5, "IOV"),
				Memo:        string(make([]byte, maxMemoSize+1)),
			},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestValidateSetAllowanceMsg(t *testing.T) {
	cases := map[string]struct {
		msg     *SetAllowanceMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &SetAllowanceMsg{
				Grantee: vaulttest.NewAddress(),
				Amount:  coin.NewCoinp(5, "IOV"),
			},
		},
		"zero revokes": {
			msg: &SetAllowanceMsg{
				Grantee: vaulttest.NewAddress(),
				Amount:  coin.NewCoinp(0, ""),
			},
		},
		"negative": {
			msg: &SetAllowanceMsg{
				Grantee: vaulttest.NewAddress(),
				Amount:  coin.NewCoinp(-5, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
		"missing amount": {
			msg: &SetAllowanceMsg{
				Grantee: vaulttest.NewAddress(),
			},
			wantErr: errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
