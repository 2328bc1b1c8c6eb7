package main

import (
	"encoding/json"
	"strings"
	"testing"

	"evie_market/sdk"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// abortMessage marks panics raised by FakeSDK.Abort so expectAbort can
// tell them apart from genuine test bugs.
type abortMessage string

type fakeTransfer struct {
	to     sdk.Address
	amount *uint256.Int
}

type fakeCall struct {
	contractId string
	method     string
	payload    string
	options    *sdk.ContractCallOptions
}

// FakeSDK is the in-memory stand-in for the host used by every test. It
// records outgoing transfers, contract calls and log lines, and lets a
// test script the environment and the pending call result.
type FakeSDK struct {
	*MockState
	env       sdk.Env
	deposit   *uint256.Int
	result    sdk.CallResult
	logs      []string
	transfers []fakeTransfer
	calls     []fakeCall
}

func NewFakeSDK(sender sdk.Address, txId string) *FakeSDK {
	return &FakeSDK{
		MockState: NewMockState(),
		env: sdk.Env{
			ContractId: "evie.market",
			TxId:       txId,
			Sender:     sdk.Sender{Address: sender},
			Caller:     sender,
			Payer:      sender,
		},
		deposit: uint256.NewInt(0),
	}
}

func (f *FakeSDK) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeSDK) Abort(msg string) {
	panic(abortMessage(msg))
}

func (f *FakeSDK) GetEnv() sdk.Env {
	return f.env
}

func (f *FakeSDK) AttachedDeposit() *uint256.Int {
	return f.deposit.Clone()
}

func (f *FakeSDK) Transfer(to sdk.Address, amount *uint256.Int) {
	f.transfers = append(f.transfers, fakeTransfer{to: to, amount: amount.Clone()})
}

func (f *FakeSDK) ContractCall(contractId, method, payload string, options *sdk.ContractCallOptions) {
	f.calls = append(f.calls, fakeCall{contractId: contractId, method: method, payload: payload, options: options})
}

func (f *FakeSDK) CallResult() sdk.CallResult {
	return f.result
}

// test setup helpers

func (f *FakeSDK) attach(amount string) *FakeSDK {
	f.deposit = uint256.MustFromDecimal(amount)
	return f
}

func (f *FakeSDK) as(account sdk.Address) *FakeSDK {
	f.env.Sender.Address = account
	f.env.Caller = account
	return f
}

// calledBy keeps the signer but routes the invocation through another
// contract, the shape of a cross-contract callback.
func (f *FakeSDK) calledBy(contractId sdk.Address) *FakeSDK {
	f.env.Caller = contractId
	return f
}

func (f *FakeSDK) withCallResult(success bool, result *string) *FakeSDK {
	f.result = sdk.CallResult{Success: success, Result: result}
	return f
}

// expectAbort is deferred at the top of a test that must end in Abort.
func expectAbort(t *testing.T, want string) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatalf("expected abort containing %q, but the call succeeded", want)
	}
	msg, ok := r.(abortMessage)
	if !ok {
		panic(r)
	}
	if !strings.Contains(string(msg), want) {
		t.Fatalf("expected abort containing %q, got %q", want, string(msg))
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func strPtr(s string) *string {
	return &s
}

func u64Ptr(v uint64) *uint64 {
	return &v
}

// rentUnits returns n times the per-sale rent as a decimal string.
func rentUnits(n uint64) string {
	return new(uint256.Int).Mul(uint256.NewInt(n), rentPerSale).Dec()
}

// seedSale plants a listing directly in the registry.
func seedSale(f SDKInterface, catalogId sdk.Address, itemId string, seller sdk.Address, approvalToken uint64, price string) string {
	key := saleKey(catalogId, itemId)
	insertSale(f, key, &Sale{
		Seller:        seller,
		ApprovalToken: approvalToken,
		CatalogId:     catalogId,
		ItemId:        itemId,
		Price:         NewAmount(uint256.MustFromDecimal(price)),
	})
	return key
}
