package main

import (
	"fmt"

	"evie_market/sdk"

	"github.com/holiman/uint256"
)

////////////////////////////////////////////////////////////////////////////////
// Storage Rent Ledger
////////////////////////////////////////////////////////////////////////////////
//
// Every concurrently active sale must be covered by rentPerSale of
// prepaid balance. The balance is checked when a listing is created and
// settled up again on withdrawal; it is never charged continuously.

// DepositRent credits the attached amount to the target account (the
// caller when no account is given). The attachment must cover at least
// one sale's rent.
//
//go:wasmexport deposit_rent
func DepositRent(payload *string) *string {
	return depositRentImpl(payload, sdkInterface)
}

func depositRentImpl(payload *string, f SDKInterface) *string {
	deposit := f.AttachedDeposit()
	if deposit.Cmp(rentPerSale) < 0 {
		f.Abort(fmt.Sprintf("%s (%s)", errInsufficientDeposit, rentPerSale.Dec()))
	}

	target := f.GetEnv().Caller
	if payload != nil && *payload != "" {
		input := FromJSON[DepositRentArgs](f, *payload, "deposit args")
		if input.AccountId != "" {
			target = input.AccountId
		}
	}

	balance := rentBalanceOf(f, target)
	balance.Add(balance, deposit)
	f.Set(rentKey(target), balance.Dec())
	return nil
}

// WithdrawRent pays the caller back everything above what their active
// sales require. The entry is pruned entirely when nothing is retained.
//
//go:wasmexport withdraw_rent
func WithdrawRent(_ *string) *string {
	return withdrawRentImpl(sdkInterface)
}

func withdrawRentImpl(f SDKInterface) *string {
	assertSecurityDeposit(f)

	caller := f.GetEnv().Caller
	balance := rentBalanceOf(f, caller)
	used := new(uint256.Int).Mul(uint256.NewInt(activeSaleCount(f, caller)), rentPerSale)

	excess, underflow := new(uint256.Int).SubOverflow(balance, used)
	if underflow {
		f.Abort(fmt.Sprintf("rent balance %s below retained %s", balance.Dec(), used.Dec()))
	}
	if !excess.IsZero() {
		f.Transfer(caller, excess)
	}

	if used.IsZero() {
		f.Delete(rentKey(caller))
	} else {
		f.Set(rentKey(caller), used.Dec())
	}
	return nil
}

// MinimumRent returns the rent unit constant.
//
//go:wasmexport minimum_rent
func MinimumRent(_ *string) *string {
	out := rentPerSale.Dec()
	return &out
}

// RentBalance returns the prepaid rent balance of an account, 0 when
// the account was never credited.
//
//go:wasmexport rent_balance
func RentBalance(payload *string) *string {
	return rentBalanceImpl(payload, sdkInterface)
}

func rentBalanceImpl(payload *string, f SDKInterface) *string {
	input := FromJSON[AccountArgs](f, *payload, "balance args")
	out := rentBalanceOf(f, input.AccountId).Dec()
	return &out
}

func rentBalanceOf(f SDKInterface, account sdk.Address) *uint256.Int {
	ptr := f.Get(rentKey(account))
	if ptr == nil || *ptr == "" {
		return uint256.NewInt(0)
	}
	balance, err := uint256.FromDecimal(*ptr)
	if err != nil {
		f.Abort(fmt.Sprintf("corrupt rent balance for %s", account))
	}
	return balance
}
