package tpcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Tables_NewOrder_Commits(t *testing.T) {
	tables := newTestTables(t)

	out := tables.NewOrder(1, 1, 1, []NewOrderItem{
		{IID: 1, OLSupplyWID: 1, OLQuantity: 5},
		{IID: 6, OLSupplyWID: 1, OLQuantity: 3},
	}, "20260101120000")

	require.True(t, out.Committed())
	require.Equal(t, "", out.Status)
	require.EqualValues(t, 1, out.OID)
	require.Len(t, out.Items, 2)

	// Second line's item and stock both carry ORIGINAL: brand-generic.
	require.Equal(t, BrandGeneric, out.Items[1].BrandGeneric)
	require.Equal(t, GenericGeneric, out.Items[0].BrandGeneric)

	d := tables.FindDistrict(1, 1)
	require.EqualValues(t, 2, d.DNextOID, "d_next_o_id must advance past the assigned o_id")

	order := tables.FindOrder(1, 1, 1)
	require.EqualValues(t, 2, order.OOLCnt)
	require.True(t, order.OAllLocal)

	for n := int32(1); n <= 2; n++ {
		require.NotNil(t, tables.FindOrderLine(1, 1, 1, n))
	}
	require.Nil(t, tables.FindOrderLine(1, 1, 1, 3), "no order line beyond o_ol_cnt")
}

func Test_Tables_NewOrder_InvalidItemAborts(t *testing.T) {
	tables := newTestTables(t)

	before := tables.FindDistrict(1, 1).DNextOID
	stockBefore := tables.FindStock(1, 1).SQuantity

	out := tables.NewOrder(1, 1, 1, []NewOrderItem{
		{IID: 1, OLSupplyWID: 1, OLQuantity: 5},
		{IID: 999, OLSupplyWID: 1, OLQuantity: 1},
	}, "20260101120000")

	require.False(t, out.Committed())
	require.Equal(t, InvalidItemStatus, out.Status)

	require.Equal(t, before, tables.FindDistrict(1, 1).DNextOID, "no write on abort")
	require.Equal(t, stockBefore, tables.FindStock(1, 1).SQuantity, "no write on abort")
}

func Test_Tables_NewOrder_RemoteMarksNotAllLocal(t *testing.T) {
	tables := newTestTables(t)
	tables.InsertWarehouse(Warehouse{WID: 2, WName: "wh2"})
	var dist [NumDistrictsPerWarehouse + 1]string
	for d := 1; d <= NumDistrictsPerWarehouse; d++ {
		dist[d] = "distinfo"
	}
	tables.InsertStock(Stock{
		SWID:      2,
		SIID:      1,
		SQuantity: 50,
		SData:     "plain stock data no marker present here padded out long",
		SDist:     dist,
	})

	out := tables.NewOrder(1, 1, 1, []NewOrderItem{
		{IID: 1, OLSupplyWID: 2, OLQuantity: 1},
	}, "20260101120000")

	require.True(t, out.Committed())
	order := tables.FindOrder(1, 1, out.OID)
	require.False(t, order.OAllLocal)
}

func Test_Tables_NewOrder_StockReplenishRule(t *testing.T) {
	tables := newTestTables(t)

	// SQuantity starts at 50. Quantity 5: 50 >= 5+10 so it just
	// subtracts.
	out := tables.NewOrder(1, 1, 1, []NewOrderItem{
		{IID: 1, OLSupplyWID: 1, OLQuantity: 5},
	}, "20260101120000")
	require.True(t, out.Committed())
	require.EqualValues(t, 45, tables.FindStock(1, 1).SQuantity)

	// Now SQuantity is 45. Quantity 40: 45 < 40+10, so wraps:
	// 45 - 40 + 91 = 96.
	out2 := tables.NewOrder(1, 1, 1, []NewOrderItem{
		{IID: 1, OLSupplyWID: 1, OLQuantity: 40},
	}, "20260101120001")
	require.True(t, out2.Committed())
	require.EqualValues(t, 96, tables.FindStock(1, 1).SQuantity)
}
