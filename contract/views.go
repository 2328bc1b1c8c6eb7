package main

import "strconv"

//
// ==========================
// SALE QUERY VIEW FUNCTIONS
// ==========================
//
// Read-only, side-effect-free projections over the registry and its
// indices. Windows are stable over index insertion order; a skip past
// the end yields an empty page, never an error.
//

// GetSale returns the sale stored under a full sale key
// ("<catalog>.<item>"), or nil when none exists.
//
//go:wasmexport get_sale
func GetSale(payload *string) *string {
	return getSaleViewImpl(payload, sdkInterface)
}

func getSaleViewImpl(payload *string, f SDKInterface) *string {
	if payload == nil || *payload == "" {
		f.Abort("empty sale key")
	}
	sale := getSale(f, *payload)
	if sale == nil {
		return nil
	}
	out := ToJSON(f, sale, "sale")
	return &out
}

// CountSales returns the total number of active sales.
//
//go:wasmexport count_sales
func CountSales(_ *string) *string {
	return countSalesImpl(sdkInterface)
}

func countSalesImpl(f SDKInterface) *string {
	out := strconv.Itoa(len(GetIDsFromIndex(f, idxAllSalesKey)))
	return &out
}

// CountBySeller returns the number of active sales of one account.
//
//go:wasmexport count_by_seller
func CountBySeller(payload *string) *string {
	return countBySellerImpl(payload, sdkInterface)
}

func countBySellerImpl(payload *string, f SDKInterface) *string {
	input := FromJSON[AccountArgs](f, *payload, "account args")
	out := strconv.FormatUint(activeSaleCount(f, input.AccountId), 10)
	return &out
}

// ListBySeller returns a page of an account's sales.
//
//go:wasmexport list_by_seller
func ListBySeller(payload *string) *string {
	return listBySellerImpl(payload, sdkInterface)
}

func listBySellerImpl(payload *string, f SDKInterface) *string {
	input := FromJSON[ListBySellerArgs](f, *payload, "list args")
	keys := paginate(GetIDsFromIndex(f, sellerIndexKey(input.AccountId)), input.FromIndex, input.Limit)

	sales := make([]*Sale, 0, len(keys))
	for _, key := range keys {
		sale := getSale(f, key)
		if sale == nil {
			f.Abort(errSaleNotFound)
		}
		sales = append(sales, sale)
	}
	out := ToJSON(f, sales, "sales")
	return &out
}

// CountByCatalog returns the number of active sales of one catalog.
//
//go:wasmexport count_by_catalog
func CountByCatalog(payload *string) *string {
	return countByCatalogImpl(payload, sdkInterface)
}

func countByCatalogImpl(payload *string, f SDKInterface) *string {
	input := FromJSON[ListByCatalogArgs](f, *payload, "catalog args")
	out := strconv.Itoa(len(GetIDsFromIndex(f, catalogIndexKey(input.CatalogId))))
	return &out
}

// ListByCatalog returns a page of a catalog's sales.
//
//go:wasmexport list_by_catalog
func ListByCatalog(payload *string) *string {
	return listByCatalogImpl(payload, sdkInterface)
}

func listByCatalogImpl(payload *string, f SDKInterface) *string {
	input := FromJSON[ListByCatalogArgs](f, *payload, "list args")
	itemIds := paginate(GetIDsFromIndex(f, catalogIndexKey(input.CatalogId)), input.FromIndex, input.Limit)

	sales := make([]*Sale, 0, len(itemIds))
	for _, itemId := range itemIds {
		sale := getSale(f, saleKey(input.CatalogId, itemId))
		if sale == nil {
			f.Abort(errSaleNotFound)
		}
		sales = append(sales, sale)
	}
	out := ToJSON(f, sales, "sales")
	return &out
}

// paginate applies a (skip, take) window over index order. An omitted
// take means the rest of the list.
func paginate(ids []string, fromIndex, limit *uint64) []string {
	start := uint64(0)
	if fromIndex != nil {
		start = *fromIndex
	}
	if start >= uint64(len(ids)) {
		return []string{}
	}
	ids = ids[start:]
	if limit != nil && *limit < uint64(len(ids)) {
		ids = ids[:*limit]
	}
	return ids
}
