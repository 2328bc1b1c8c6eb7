package main

import (
	"fmt"

	"evie_market/sdk"

	"github.com/holiman/uint256"
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////
// Purchase Orchestrator
////////////////////////////////////////////////////////////////////////////////
//
// A sale moves Listed -> TransferPending -> Settled | Refunded. The
// pending phase spans two invocations: Offer removes the sale and
// schedules the ownership transfer on the catalog contract; Resolve runs
// later as a self-callback and either disburses the payout breakdown or
// refunds the buyer. The sale record is never restored.

const (
	transferPayoutMethod = "nft_transfer_payout"
	resolveMethod        = "resolve"
)

// CancelSale removes a listing. Seller-only, 1-unit guard.
//
//go:wasmexport cancel_sale
func CancelSale(payload *string) *string {
	return cancelSaleImpl(payload, sdkInterface)
}

func cancelSaleImpl(payload *string, f SDKInterface) *string {
	assertSecurityDeposit(f)
	input := FromJSON[SaleRefArgs](f, *payload, "sale ref")

	key := saleKey(input.CatalogId, input.ItemId)
	sale := getSale(f, key)
	if sale == nil {
		f.Abort(errSaleNotFound)
	}
	if f.GetEnv().Caller != sale.Seller {
		f.Abort(errOnlySellerCanCancel)
	}

	removeSale(f, input.CatalogId, input.ItemId)
	EmitSaleCancelledEvent(f, key, sale.Seller)
	return nil
}

// UpdatePrice changes the ask of a listing in place. Seller-only,
// 1-unit guard, no lifecycle transition.
//
//go:wasmexport update_price
func UpdatePrice(payload *string) *string {
	return updatePriceImpl(payload, sdkInterface)
}

func updatePriceImpl(payload *string, f SDKInterface) *string {
	assertSecurityDeposit(f)
	input := FromJSON[UpdatePriceArgs](f, *payload, "price args")
	if input.Price.Int == nil {
		f.Abort("price is mandatory")
	}

	key := saleKey(input.CatalogId, input.ItemId)
	sale := getSale(f, key)
	if sale == nil {
		f.Abort(errSaleNotFound)
	}
	if f.GetEnv().Caller != sale.Seller {
		f.Abort(errOnlySellerCanUpdate)
	}

	sale.Price = input.Price
	insertSale(f, key, sale)
	EmitPriceUpdatedEvent(f, key, input.Price)
	return nil
}

// Offer attempts a purchase. The attached deposit is the payment; any
// amount above the ask is forwarded as part of the settlement, not
// returned separately.
//
//go:wasmexport offer
func Offer(payload *string) *string {
	return offerImpl(payload, sdkInterface)
}

func offerImpl(payload *string, f SDKInterface) *string {
	deposit := f.AttachedDeposit()
	if deposit.IsZero() {
		f.Abort(errDepositZero)
	}
	input := FromJSON[SaleRefArgs](f, *payload, "sale ref")

	key := saleKey(input.CatalogId, input.ItemId)
	sale := getSale(f, key)
	if sale == nil {
		f.Abort(errSaleNotFound)
	}
	buyer := f.GetEnv().Caller
	if buyer == sale.Seller {
		f.Abort(errSelfPurchase)
	}
	if deposit.Cmp(sale.Price.Int) < 0 {
		f.Abort(fmt.Sprintf("%s: %s", errPriceNotMet, sale.Price.Dec()))
	}

	processPurchase(f, input.CatalogId, input.ItemId, deposit, buyer)
	return nil
}

// processPurchase removes the sale before the transfer call is even
// scheduled, so no second offer can race it. A failed transfer is
// compensated by the refund in Resolve, never by re-inserting the sale.
func processPurchase(f SDKInterface, catalogId sdk.Address, itemId string, deposit *uint256.Int, buyer sdk.Address) {
	sale := removeSale(f, catalogId, itemId)

	payload := ToJSON(f, transferPayoutArgs{
		ReceiverId:   buyer,
		TokenId:      itemId,
		ApprovalId:   sale.ApprovalToken,
		Memo:         settlementMemo,
		Balance:      NewAmount(deposit),
		MaxLenPayout: maxPayoutAccounts,
	}, "transfer payout args")
	callback := ToJSON(f, ResolveArgs{
		Buyer: buyer,
		Price: NewAmount(deposit),
	}, "resolve args")

	f.ContractCall(catalogId.String(), transferPayoutMethod, payload, &sdk.ContractCallOptions{
		Callback: &sdk.Callback{Method: resolveMethod, Payload: callback},
	})
}

// Resolve finishes a purchase in a separate invocation once the outcome
// of the transfer call is known. Only the contract itself may call it.
// Returns the settlement amount.
//
//go:wasmexport resolve
func Resolve(payload *string) *string {
	return resolveImpl(payload, sdkInterface)
}

func resolveImpl(payload *string, f SDKInterface) *string {
	env := f.GetEnv()
	if env.Caller != sdk.Address(env.ContractId) {
		f.Abort(errResolveNotSelf)
	}
	input := FromJSON[ResolveArgs](f, *payload, "resolve args")
	if input.Price.Int == nil {
		f.Abort("resolve price is mandatory")
	}

	settled := input.Price.Dec()
	payout := validPayout(f, input.Price.Int)
	if payout == nil {
		f.Transfer(input.Buyer, input.Price.Int)
		EmitSaleRefundedEvent(f, input.Buyer, input.Price)
		return &settled
	}

	// Disbursement is fire-and-forget per payee, mirroring the catalog
	// system's own guarantees.
	for _, entry := range payout {
		f.Transfer(entry.account, entry.amount)
	}
	EmitSaleSettledEvent(f, input.Buyer, input.Price)
	return &settled
}

type payoutEntry struct {
	account sdk.Address
	amount  *uint256.Int
}

// validPayout inspects the transfer call's outcome. It returns the
// payees in document order when the result is a well-formed breakdown
// whose amounts leave a remainder of 0 or 1 of the settlement price
// (the 1 absorbs integer-division rounding in upstream royalty splits).
// nil means refund.
func validPayout(f SDKInterface, price *uint256.Int) []payoutEntry {
	res := f.CallResult()
	if !res.Success || res.Result == nil {
		f.Log(logTransferFailed)
		return nil
	}

	breakdown := gjson.Parse(*res.Result).Get("payout")
	if !breakdown.IsObject() {
		f.Log(logMalformedPayout)
		return nil
	}

	entries := make([]payoutEntry, 0, maxPayoutAccounts)
	malformed := false
	breakdown.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			malformed = true
			return false
		}
		amount, err := uint256.FromDecimal(value.Str)
		if err != nil {
			malformed = true
			return false
		}
		entries = append(entries, payoutEntry{account: sdk.Address(key.Str), amount: amount})
		return true
	})
	if malformed {
		f.Log(logMalformedPayout)
		return nil
	}
	if len(entries) == 0 || len(entries) > maxPayoutAccounts {
		f.Log(fmt.Sprintf("%s: %d", logPayoutTooLarge, len(entries)))
		return nil
	}

	remainder := price.Clone()
	for _, entry := range entries {
		var underflow bool
		remainder, underflow = remainder.SubOverflow(remainder, entry.amount)
		if underflow {
			f.Log(logPayoutRemainder)
			return nil
		}
	}
	if !remainder.IsZero() && !remainder.Eq(oneUnit) {
		f.Log(logPayoutRemainder)
		return nil
	}
	return entries
}
