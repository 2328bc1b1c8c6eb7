package main

// maintaining index keys for querying sales in various ways

import "evie_market/sdk"

// index key prefixes
const (
	idxAllSalesKey          = "idx:sales"          // every active sale key
	idxSalesOfSellerPrefix  = "idx:sales:seller:"  // + hashAccount(seller), holds sale keys
	idxItemsOfCatalogPrefix = "idx:sales:catalog:" // + hashAccount(catalog), holds item ids
)

func sellerIndexKey(seller sdk.Address) string {
	return idxSalesOfSellerPrefix + hashAccount(seller)
}

func catalogIndexKey(catalogId sdk.Address) string {
	return idxItemsOfCatalogPrefix + hashAccount(catalogId)
}

// AddIDToIndex ensures id exists in the JSON array at indexKey (no duplicates)
func AddIDToIndex(f SDKInterface, indexKey string, id string) {
	ids := GetIDsFromIndex(f, indexKey)
	for _, e := range ids {
		if e == id {
			return
		}
	}
	ids = append(ids, id)
	f.Set(indexKey, ToJSON(f, ids, "index "+indexKey))
}

// RemoveIDFromIndex removes id from the JSON array at indexKey. A
// drained index is deleted outright so no empty entry lingers.
func RemoveIDFromIndex(f SDKInterface, indexKey string, id string) {
	ids := GetIDsFromIndex(f, indexKey)
	newIds := ids[:0]
	found := false
	for _, e := range ids {
		if e == id {
			found = true
			continue
		}
		newIds = append(newIds, e)
	}
	if !found {
		// nothing to do
		return
	}
	if len(newIds) == 0 {
		f.Delete(indexKey)
		return
	}
	f.Set(indexKey, ToJSON(f, newIds, "index "+indexKey))
}

// GetIDsFromIndex returns the ids stored at indexKey in insertion order.
func GetIDsFromIndex(f SDKInterface, indexKey string) []string {
	ptr := f.Get(indexKey)
	if ptr == nil || *ptr == "" {
		return []string{}
	}
	return *FromJSON[[]string](f, *ptr, "index "+indexKey)
}
