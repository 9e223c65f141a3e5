package tpccload

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Abulila/tpccbench/internal/clock"
	"github.com/Abulila/tpccbench/internal/tpcc"
	"github.com/Abulila/tpccbench/internal/tpccrand"
)

func Test_Loader_LoadWarehouse_PopulatesEveryTable(t *testing.T) {
	tables := tpcc.New(zap.NewNop())
	rng := tpccrand.New(1, nil)
	sysClock := clock.NewSystemClock()

	loader := New(tables, rng, sysClock, nil)
	loader.LoadItems()
	loader.LoadWarehouse(1)

	_, ok := tables.FindItem(1)
	require.True(t, ok)
	_, ok = tables.FindItem(tpcc.NumItems)
	require.True(t, ok)

	require.NotNil(t, tables.FindWarehouse(1))
	require.NotNil(t, tables.FindStock(1, 1))
	require.NotNil(t, tables.FindStock(1, tpcc.NumStockPerWarehouse))

	for d := int32(1); d <= tpcc.NumDistrictsPerWarehouse; d++ {
		district := tables.FindDistrict(1, d)
		require.EqualValues(t, tpcc.InitialOrdersPerDistrict+1, district.DNextOID)
	}

	require.NotNil(t, tables.FindCustomer(1, 1, 1))
	require.NotNil(t, tables.FindCustomer(1, 1, tpcc.NumCustomersPerDistrict))

	require.NotNil(t, tables.FindOrder(1, 1, 1))
	require.NotNil(t, tables.FindOrder(1, 1, tpcc.InitialOrdersPerDistrict))
}

func Test_Loader_LoadWarehouse_LeavesRecentOrdersUndelivered(t *testing.T) {
	tables := tpcc.New(zap.NewNop())
	rng := tpccrand.New(2, nil)
	sysClock := clock.NewSystemClock()

	loader := New(tables, rng, sysClock, nil)
	loader.LoadItems()
	loader.LoadWarehouse(1)

	firstUndelivered := int32(tpcc.InitialOrdersPerDistrict - tpcc.InitialNewOrdersPerDistrict + 1)

	delivered := tables.FindOrder(1, 1, firstUndelivered-1)
	require.NotEqual(t, tpcc.NullCarrierID, delivered.OCarrierID)

	undelivered := tables.FindOrder(1, 1, firstUndelivered)
	require.Equal(t, tpcc.NullCarrierID, undelivered.OCarrierID)
}

func Test_LastName_ProducesThreeSyllables(t *testing.T) {
	name := LastName(0)
	require.Equal(t, "BARBARBAR", name)
}
