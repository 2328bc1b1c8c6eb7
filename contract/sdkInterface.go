package main

import (
	"evie_market/sdk"

	"github.com/holiman/uint256"
)

// SDKInterface is everything an entry point needs from the host: state,
// environment, attached funds, outgoing payments and contract calls.
// Entry-point wrappers pass the real SDK; tests pass a fake.
type SDKInterface interface {
	Store
	Log(msg string)
	Abort(msg string)
	GetEnv() sdk.Env
	AttachedDeposit() *uint256.Int
	Transfer(to sdk.Address, amount *uint256.Int)
	ContractCall(contractId, method, payload string, options *sdk.ContractCallOptions)
	CallResult() sdk.CallResult
}

// singleton used by the wasm entry-point wrappers
var sdkInterface SDKInterface = &RealSDK{}

// RealSDK forwards to the host imports.
type RealSDK struct {
	WasmState
}

func (r *RealSDK) Log(msg string) {
	sdk.Log(msg)
}

func (r *RealSDK) Abort(msg string) {
	sdk.Abort(msg)
}

func (r *RealSDK) GetEnv() sdk.Env {
	return sdk.GetEnv()
}

func (r *RealSDK) AttachedDeposit() *uint256.Int {
	amount, err := uint256.FromDecimal(sdk.AttachedDeposit())
	if err != nil {
		sdk.Abort("invalid attached deposit")
	}
	return amount
}

func (r *RealSDK) Transfer(to sdk.Address, amount *uint256.Int) {
	sdk.Transfer(to, amount.Dec())
}

func (r *RealSDK) ContractCall(contractId, method, payload string, options *sdk.ContractCallOptions) {
	sdk.ContractCall(contractId, method, payload, options)
}

func (r *RealSDK) CallResult() sdk.CallResult {
	return sdk.GetCallResult()
}
