package main

// ========================================
// Global Contract Constants & Base Helpers
// ========================================
//
// This file holds the economic and wire constants shared across the
// contract modules. The goal is to keep this file dependency-light to
// minimize WASM size and compile time.

import "github.com/holiman/uint256"

// ----------------------------------------
// Economic Constants
// ----------------------------------------
const (
	// rentPerSaleDec is the prepaid storage rent required per
	// concurrently active sale, in the chain's smallest unit.
	rentPerSaleDec = "10000000000000000000000"

	// maxPayoutAccounts caps how many payees a settlement payout may
	// list. Raising it raises the gas needed to disburse.
	maxPayoutAccounts = 10
)

// ----------------------------------------
// Wire Format
// ----------------------------------------
const (
	// delimiter joins a catalog account id and an item id into a sale
	// key. It must not appear inside a catalog account id.
	delimiter = "."

	// settlementMemo is attached to the ownership-transfer call.
	settlementMemo = "payout from Evie Market"
)

var (
	rentPerSale = uint256.MustFromDecimal(rentPerSaleDec)

	// oneUnit is the chain's minimal indivisible payment unit, required
	// as an anti-spam deposit on mutating entry points.
	oneUnit = uint256.NewInt(1)
)

// main is unused in the reactor build; the runtime invokes entry points
// through their wasm exports.
func main() {}
