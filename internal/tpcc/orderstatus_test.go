package tpcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Tables_OrderStatusByID_ReturnsLastOrder(t *testing.T) {
	tables := newTestTables(t)

	tables.NewOrder(1, 1, 1, []NewOrderItem{{IID: 1, OLSupplyWID: 1, OLQuantity: 2}}, "20260101120000")
	out := tables.NewOrder(1, 1, 1, []NewOrderItem{
		{IID: 1, OLSupplyWID: 1, OLQuantity: 2},
		{IID: 2, OLSupplyWID: 1, OLQuantity: 1},
	}, "20260101120100")
	require.True(t, out.Committed())

	status := tables.OrderStatusByID(1, 1, 1)
	require.EqualValues(t, out.OID, status.OID)
	require.Len(t, status.Lines, 2)
}

func Test_Tables_OrderStatusByLastName_ResolvesCustomer(t *testing.T) {
	tables := newTestTables(t)
	tables.NewOrder(1, 1, 3, []NewOrderItem{{IID: 1, OLSupplyWID: 1, OLQuantity: 1}}, "20260101120000")

	status := tables.OrderStatusByLastName(1, 1, "JONES")
	require.EqualValues(t, 3, status.CID)
}
