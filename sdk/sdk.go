package sdk

// Shared types for the host SDK. The host functions themselves live in
// sdk_wasm.go (real imports) and sdk_native.go (stubs), selected by build
// tag, so the contract also compiles and tests on a native target.

// Address is an account identifier on the chain.
type Address string

func (a Address) String() string {
	return string(a)
}

// Sender describes the account that signed the transaction.
type Sender struct {
	Address              Address
	RequiredAuths        []Address
	RequiredPostingAuths []Address
}

// Env holds the execution environment of the current invocation.
// Sender is the transaction's originating signer; Caller is the immediate
// caller, which differs from Sender when invoked by another contract.
type Env struct {
	ContractId  string  `json:"contract.id"`
	TxId        string  `json:"tx.id"`
	Index       int64   `json:"tx.index"`
	OpIndex     int64   `json:"tx.op_index"`
	BlockId     string  `json:"block.id"`
	BlockHeight uint64  `json:"block.height"`
	Timestamp   string  `json:"block.timestamp"`
	Sender      Sender  `json:"-"`
	Caller      Address `json:"msg.caller"`
	Payer       Address `json:"msg.payer"`
}

// Callback names a method on this contract to invoke once a scheduled
// contract call has resolved.
type Callback struct {
	Method  string `json:"method"`
	Payload string `json:"payload"`
}

// ContractCallOptions tune a cross-contract call.
type ContractCallOptions struct {
	Intents  []string  `json:"intents,omitempty"`
	Callback *Callback `json:"callback,omitempty"`
}

// CallResult carries the outcome of the triggering contract call into the
// callback invocation. Result is nil when the call failed before
// returning a value.
type CallResult struct {
	Success bool    `json:"success"`
	Result  *string `json:"result,omitempty"`
}
