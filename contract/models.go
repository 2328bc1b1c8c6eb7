package main

import (
	"encoding/json"

	"evie_market/sdk"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Types & Structs
////////////////////////////////////////////////////////////////////////////////

// Amount is a u128 money value carried as a decimal string on the wire,
// matching the catalog system's payload conventions.
type Amount struct {
	*uint256.Int
}

func NewAmount(i *uint256.Int) Amount {
	return Amount{i}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Int == nil {
		return json.Marshal("0")
	}
	return json.Marshal(a.Dec())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	i, err := uint256.FromDecimal(s)
	if err != nil {
		return err
	}
	a.Int = i
	return nil
}

// Sale is one active listing.
type Sale struct {
	// Seller may cancel, reprice, and receives the proceeds.
	Seller sdk.Address `json:"owner_id"`
	// ApprovalToken proves the catalog authorized this marketplace to
	// transfer the item on the seller's behalf.
	ApprovalToken uint64 `json:"approval_id"`
	// CatalogId is the catalog (NFT contract) that minted the item.
	CatalogId sdk.Address `json:"nft_contract_id"`
	ItemId    string      `json:"token_id"`
	// Price is the current ask in the chain's smallest unit.
	Price Amount `json:"sale_conditions"`
}

// function arguments

// ListOnApproveArgs is the callback payload a catalog contract delivers
// after the item owner approved this marketplace.
type ListOnApproveArgs struct {
	ItemId        string      `json:"token_id"`
	OwnerId       sdk.Address `json:"owner_id"`
	ApprovalToken uint64      `json:"approval_id"`
	Msg           string      `json:"msg"`
}

// SaleArgs is the JSON carried in the approval msg: the ask price.
type SaleArgs struct {
	SaleConditions Amount `json:"sale_conditions"`
}

// SaleRefArgs addresses an existing sale.
type SaleRefArgs struct {
	CatalogId sdk.Address `json:"nft_contract_id"`
	ItemId    string      `json:"token_id"`
}

type UpdatePriceArgs struct {
	CatalogId sdk.Address `json:"nft_contract_id"`
	ItemId    string      `json:"token_id"`
	Price     Amount      `json:"price"`
}

type DepositRentArgs struct {
	AccountId sdk.Address `json:"account_id,omitempty"`
}

type AccountArgs struct {
	AccountId sdk.Address `json:"account_id"`
}

type InitArgs struct {
	OwnerId sdk.Address `json:"owner_id"`
}

// ResolveArgs correlate the settlement callback with the purchase that
// scheduled it: the buyer to refund on failure, the settlement amount.
type ResolveArgs struct {
	Buyer sdk.Address `json:"buyer_id"`
	Price Amount      `json:"price"`
}

// transferPayoutArgs is the payload of the ownership-transfer call made
// against the catalog contract.
type transferPayoutArgs struct {
	ReceiverId   sdk.Address `json:"receiver_id"`
	TokenId      string      `json:"token_id"`
	ApprovalId   uint64      `json:"approval_id"`
	Memo         string      `json:"memo"`
	Balance      Amount      `json:"balance"`
	MaxLenPayout uint32      `json:"max_len_payout"`
}

type ListBySellerArgs struct {
	AccountId sdk.Address `json:"account_id"`
	FromIndex *uint64     `json:"from_index,omitempty"`
	Limit     *uint64     `json:"limit,omitempty"`
}

type ListByCatalogArgs struct {
	CatalogId sdk.Address `json:"nft_contract_id"`
	FromIndex *uint64     `json:"from_index,omitempty"`
	Limit     *uint64     `json:"limit,omitempty"`
}
