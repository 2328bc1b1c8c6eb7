package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"evie_market/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Helpers: keys, hashing, json
////////////////////////////////////////////////////////////////////////////////

// saleKey builds the unique registry key for an item: the catalog
// account id and the item id joined by the delimiter.
func saleKey(catalogId sdk.Address, itemId string) string {
	return catalogId.String() + delimiter + itemId
}

func saleStateKey(key string) string {
	return fmt.Sprintf("sale:%s", key)
}

func rentKey(account sdk.Address) string {
	return fmt.Sprintf("rent:%s", account)
}

// hashAccount derives a fixed-width namespace for per-account index
// collections, so index keys cannot collide with each other or with
// record keys whatever characters an account id contains.
func hashAccount(account sdk.Address) string {
	h := sha256.Sum256([]byte(account))
	return hex.EncodeToString(h[:])
}

// assertSecurityDeposit enforces the anti-spam guard on mutating entry
// points: exactly one indivisible unit must be attached.
func assertSecurityDeposit(f SDKInterface) {
	if !f.AttachedDeposit().Eq(oneUnit) {
		f.Abort(errMissingSecurityDeposit)
	}
}

// Conversions from/to json strings

func ToJSON[T any](f SDKInterface, v T, what string) string {
	b, err := json.Marshal(v)
	if err != nil {
		f.Abort(fmt.Sprintf("failed to marshal %s: %v", what, err))
	}
	return string(b)
}

func FromJSON[T any](f SDKInterface, data string, what string) *T {
	var v T
	if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &v); err != nil {
		f.Abort(fmt.Sprintf("failed to parse %s: %v", what, err))
	}
	return &v
}
