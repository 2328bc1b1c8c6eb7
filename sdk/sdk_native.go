//go:build !wasm

package sdk

// Native stubs so the module builds and tests outside the wasm runtime.
// Contract code paths that reach the host go through the contract
// package's SDKInterface, which tests replace with a fake; these stubs
// only exist to satisfy the linker.

func unavailable(fn string) string {
	return "sdk: " + fn + " is only available inside the wasm runtime"
}

func Log(s string) {
	println("LOG:", s)
}

func Abort(msg string) {
	panic(msg)
}

func Revert(msg string, symbol string) {
	panic(msg + " (" + symbol + ")")
}

func StateSetObject(key string, value string) {
	panic(unavailable("StateSetObject"))
}

func StateGetObject(key string) *string {
	panic(unavailable("StateGetObject"))
}

func StateDeleteObject(key string) {
	panic(unavailable("StateDeleteObject"))
}

func GetEnv() Env {
	panic(unavailable("GetEnv"))
}

func GetEnvKey(key string) *string {
	panic(unavailable("GetEnvKey"))
}

func AttachedDeposit() string {
	panic(unavailable("AttachedDeposit"))
}

func Transfer(to Address, amount string) {
	panic(unavailable("Transfer"))
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	panic(unavailable("ContractCall"))
}

func GetCallResult() CallResult {
	panic(unavailable("GetCallResult"))
}
