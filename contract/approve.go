package main

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Approval Listener
////////////////////////////////////////////////////////////////////////////////

// ListOnApprove is invoked by a catalog contract after the item owner
// approved this marketplace to transfer the item. The caller is the
// catalog, the transaction signer is the item owner; a direct call with
// caller == signer is a spoof attempt and is rejected. Nothing is
// persisted until every check has passed.
//
//go:wasmexport list_on_approve
func ListOnApprove(payload *string) *string {
	return listOnApproveImpl(payload, sdkInterface)
}

func listOnApproveImpl(payload *string, f SDKInterface) *string {
	env := f.GetEnv()
	catalogId := env.Caller
	signer := env.Sender.Address
	if catalogId == signer {
		f.Abort(errApproveNotCrossContract)
	}

	input := FromJSON[ListOnApproveArgs](f, *payload, "approval args")
	if input.OwnerId != signer {
		f.Abort(errOwnerMismatch)
	}

	var saleArgs SaleArgs
	if err := json.Unmarshal([]byte(input.Msg), &saleArgs); err != nil || saleArgs.SaleConditions.Int == nil {
		f.Abort(errMalformedListingArgs)
	}

	required := new(uint256.Int).Mul(uint256.NewInt(activeSaleCount(f, signer)+1), rentPerSale)
	balance := rentBalanceOf(f, signer)
	if balance.Cmp(required) < 0 {
		f.Abort(fmt.Sprintf("%s: have %s, need %s", errInsufficientStorageRent, balance.Dec(), required.Dec()))
	}

	key := saleKey(catalogId, input.ItemId)
	insertSale(f, key, &Sale{
		Seller:        input.OwnerId,
		ApprovalToken: input.ApprovalToken,
		CatalogId:     catalogId,
		ItemId:        input.ItemId,
		Price:         saleArgs.SaleConditions,
	})
	EmitSaleListedEvent(f, key, input.OwnerId, saleArgs.SaleConditions)
	return nil
}
