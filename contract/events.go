package main

import "evie_market/sdk"

////////////////////////////////////////////////////////////////////////////////
// Events
////////////////////////////////////////////////////////////////////////////////
//
// Events are JSON lines on the invocation log. Off-chain indexers key on
// the type tag; attribute names are kept short to limit log volume.

type Event struct {
	Type       string            `json:"t"`
	Attributes map[string]string `json:"att"`
}

func emitEvent(f SDKInterface, eventType string, attributes map[string]string) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	f.Log(ToJSON(f, event, eventType+" event data"))
}

func EmitSaleListedEvent(f SDKInterface, key string, seller sdk.Address, price Amount) {
	emitEvent(f, "list", map[string]string{
		"key": key,
		"s":   seller.String(),
		"p":   price.Dec(),
	})
}

func EmitSaleCancelledEvent(f SDKInterface, key string, seller sdk.Address) {
	emitEvent(f, "cancel", map[string]string{
		"key": key,
		"s":   seller.String(),
	})
}

func EmitPriceUpdatedEvent(f SDKInterface, key string, price Amount) {
	emitEvent(f, "price", map[string]string{
		"key": key,
		"p":   price.Dec(),
	})
}

func EmitSaleSettledEvent(f SDKInterface, buyer sdk.Address, amount Amount) {
	emitEvent(f, "settle", map[string]string{
		"b": buyer.String(),
		"p": amount.Dec(),
	})
}

func EmitSaleRefundedEvent(f SDKInterface, buyer sdk.Address, amount Amount) {
	emitEvent(f, "refund", map[string]string{
		"b": buyer.String(),
		"p": amount.Dec(),
	})
}
