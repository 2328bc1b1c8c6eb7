package main

import (
	"encoding/json"
	"testing"

	"evie_market/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSales(t *testing.T, out *string) []*Sale {
	t.Helper()
	require.NotNil(t, out)
	var sales []*Sale
	require.NoError(t, json.Unmarshal([]byte(*out), &sales))
	return sales
}

func TestGetSaleEmptyKeyAborts(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	defer expectAbort(t, "empty sale key")
	getSaleViewImpl(nil, f)
}

func TestGetSaleMissingReturnsNil(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	key := "catalog.nft.token-1"

	assert.Nil(t, getSaleViewImpl(&key, f))
}

func TestGetSaleReturnsRecord(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	key := seedSale(f, "catalog.nft", "token-1", "alice", 7, "100")

	out := getSaleViewImpl(&key, f)

	require.NotNil(t, out)
	var sale Sale
	require.NoError(t, json.Unmarshal([]byte(*out), &sale))
	assert.Equal(t, sdk.Address("alice"), sale.Seller)
	assert.Equal(t, uint64(7), sale.ApprovalToken)
	assert.Equal(t, "100", sale.Price.Dec())
}

func TestCountSales(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	assert.Equal(t, "0", *countSalesImpl(f))

	seedSale(f, "catalog.nft", "token-1", "alice", 1, "100")
	seedSale(f, "catalog.nft", "token-2", "bob", 2, "100")
	seedSale(f, "other.nft", "token-1", "alice", 3, "100")

	assert.Equal(t, "3", *countSalesImpl(f))
}

func TestCountBySeller(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	seedSale(f, "catalog.nft", "token-1", "alice", 1, "100")
	seedSale(f, "catalog.nft", "token-2", "bob", 2, "100")

	payload := mustJSON(t, AccountArgs{AccountId: "alice"})
	assert.Equal(t, "1", *countBySellerImpl(&payload, f))

	payload = mustJSON(t, AccountArgs{AccountId: "carol"})
	assert.Equal(t, "0", *countBySellerImpl(&payload, f))
}

func TestListBySellerReturnsAllByDefault(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	seedSale(f, "catalog.nft", "token-1", "alice", 1, "100")
	seedSale(f, "catalog.nft", "token-2", "alice", 2, "200")
	seedSale(f, "catalog.nft", "token-3", "bob", 3, "300")

	payload := mustJSON(t, ListBySellerArgs{AccountId: "alice"})
	sales := decodeSales(t, listBySellerImpl(&payload, f))

	require.Len(t, sales, 2)
	assert.Equal(t, "token-1", sales[0].ItemId)
	assert.Equal(t, "token-2", sales[1].ItemId)
}

func TestListBySellerPagination(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	for i, itemId := range []string{"token-1", "token-2", "token-3"} {
		seedSale(f, "catalog.nft", itemId, "alice", uint64(i+1), "100")
	}

	payload := mustJSON(t, ListBySellerArgs{AccountId: "alice", FromIndex: u64Ptr(1), Limit: u64Ptr(1)})
	sales := decodeSales(t, listBySellerImpl(&payload, f))
	require.Len(t, sales, 1)
	assert.Equal(t, "token-2", sales[0].ItemId)

	// omitted limit means the rest of the list
	payload = mustJSON(t, ListBySellerArgs{AccountId: "alice", FromIndex: u64Ptr(1)})
	sales = decodeSales(t, listBySellerImpl(&payload, f))
	require.Len(t, sales, 2)
	assert.Equal(t, "token-2", sales[0].ItemId)
	assert.Equal(t, "token-3", sales[1].ItemId)
}

func TestListBySellerSkipPastEndIsEmpty(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	seedSale(f, "catalog.nft", "token-1", "alice", 1, "100")

	payload := mustJSON(t, ListBySellerArgs{AccountId: "alice", FromIndex: u64Ptr(5)})
	sales := decodeSales(t, listBySellerImpl(&payload, f))

	assert.Empty(t, sales)
}

func TestCountByCatalog(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	seedSale(f, "catalog.nft", "token-1", "alice", 1, "100")
	seedSale(f, "catalog.nft", "token-2", "bob", 2, "100")
	seedSale(f, "other.nft", "token-1", "alice", 3, "100")

	payload := mustJSON(t, ListByCatalogArgs{CatalogId: "catalog.nft"})
	assert.Equal(t, "2", *countByCatalogImpl(&payload, f))
}

func TestListByCatalog(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	seedSale(f, "catalog.nft", "token-1", "alice", 1, "100")
	seedSale(f, "catalog.nft", "token-2", "bob", 2, "200")
	seedSale(f, "other.nft", "token-9", "alice", 3, "300")

	payload := mustJSON(t, ListByCatalogArgs{CatalogId: "catalog.nft"})
	sales := decodeSales(t, listByCatalogImpl(&payload, f))

	require.Len(t, sales, 2)
	assert.Equal(t, "token-1", sales[0].ItemId)
	assert.Equal(t, sdk.Address("bob"), sales[1].Seller)
}

func TestListByCatalogPagination(t *testing.T) {
	f := NewFakeSDK("alice", "tx1")
	for i, itemId := range []string{"token-1", "token-2", "token-3"} {
		seedSale(f, "catalog.nft", itemId, "alice", uint64(i+1), "100")
	}

	payload := mustJSON(t, ListByCatalogArgs{CatalogId: "catalog.nft", FromIndex: u64Ptr(2), Limit: u64Ptr(5)})
	sales := decodeSales(t, listByCatalogImpl(&payload, f))

	require.Len(t, sales, 1)
	assert.Equal(t, "token-3", sales[0].ItemId)
}

func TestPaginateWindow(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	assert.Equal(t, ids, paginate(ids, nil, nil))
	assert.Equal(t, []string{"b", "c"}, paginate(ids, u64Ptr(1), u64Ptr(2)))
	assert.Equal(t, []string{"c", "d"}, paginate(ids, u64Ptr(2), nil))
	assert.Equal(t, []string{}, paginate(ids, u64Ptr(4), nil))
	assert.Equal(t, ids, paginate(ids, nil, u64Ptr(10)))
}
