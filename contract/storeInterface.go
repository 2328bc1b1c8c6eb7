package main

import "evie_market/sdk"

// Store is the contract's persistent key-value state.
type Store interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// WasmState backs Store with the host's db imports.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}
