package main

import "evie_market/sdk"

////////////////////////////////////////////////////////////////////////////////
// Sale Registry
////////////////////////////////////////////////////////////////////////////////
//
// One primary record per active sale plus two secondary indices: sale
// keys per seller and item ids per catalog. All mutation goes through
// insertSale / removeSale so the primary map and the indices can never
// diverge within an invocation.

// insertSale upserts the primary record and both index entries. Callers
// are responsible for authorization.
func insertSale(f SDKInterface, key string, sale *Sale) {
	f.Set(saleStateKey(key), ToJSON(f, sale, "sale"))
	AddIDToIndex(f, idxAllSalesKey, key)
	AddIDToIndex(f, sellerIndexKey(sale.Seller), key)
	AddIDToIndex(f, catalogIndexKey(sale.CatalogId), sale.ItemId)
}

// removeSale removes the primary record and both index entries, and
// returns the removed record. Aborts when no sale exists for the item.
func removeSale(f SDKInterface, catalogId sdk.Address, itemId string) *Sale {
	key := saleKey(catalogId, itemId)
	sale := getSale(f, key)
	if sale == nil {
		f.Abort(errSaleNotFound)
	}
	f.Delete(saleStateKey(key))
	RemoveIDFromIndex(f, idxAllSalesKey, key)
	RemoveIDFromIndex(f, sellerIndexKey(sale.Seller), key)
	RemoveIDFromIndex(f, catalogIndexKey(sale.CatalogId), itemId)
	return sale
}

// getSale returns the sale stored under key, or nil.
func getSale(f SDKInterface, key string) *Sale {
	ptr := f.Get(saleStateKey(key))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return FromJSON[Sale](f, *ptr, "sale")
}

// activeSaleCount returns how many sales an account currently has listed.
func activeSaleCount(f SDKInterface, seller sdk.Address) uint64 {
	return uint64(len(GetIDsFromIndex(f, sellerIndexKey(seller))))
}
