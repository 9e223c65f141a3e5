// Command tpccverify loads a tiny fixed-size database and checks the
// invariants of spec.md §8 against a handful of scripted transactions,
// the batch equivalent of cmd/checkstash sanity-checking a running
// stash.
package main

import (
	"go.uber.org/zap"

	"github.com/Abulila/tpccbench/internal/clock"
	"github.com/Abulila/tpccbench/internal/tpcc"
	"github.com/Abulila/tpccbench/internal/tpccload"
	"github.com/Abulila/tpccbench/internal/tpccrand"
)

const verifyWarehouses = 2

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	rng := tpccrand.New(1, sugar)
	sysClock := clock.NewSystemClock()
	tables := tpcc.New(logger)

	loader := tpccload.New(tables, rng, sysClock, sugar)
	loader.LoadItems()
	for w := int32(1); w <= verifyWarehouses; w++ {
		loader.LoadWarehouse(w)
	}

	checkSumInvariant(tables, sugar, "after load")

	runScripted(tables, sysClock, sugar)

	checkSumInvariant(tables, sugar, "after scripted transactions")

	sugar.Infow("tpccverify passed")
}

// checkSumInvariant asserts w_ytd == sum of d_ytd over its districts,
// per spec.md §8, for every loaded warehouse.
func checkSumInvariant(tables *tpcc.Tables, sugar *zap.SugaredLogger, phase string) {
	for w := int32(1); w <= verifyWarehouses; w++ {
		wh := tables.FindWarehouse(w)
		var sum float32
		for d := int32(1); d <= tpcc.NumDistrictsPerWarehouse; d++ {
			sum += tables.FindDistrict(w, d).DYtd
		}
		if wh.WYtd != sum {
			sugar.Fatalw("sum invariant violated",
				"phase", phase, "w_id", w, "w_ytd", wh.WYtd, "sum_d_ytd", sum)
		}
	}
}

// runScripted exercises one instance of each transaction type,
// asserting the postconditions of spec.md §8 that don't require
// scanning the whole database.
func runScripted(tables *tpcc.Tables, sysClock *clock.SystemClock, sugar *zap.SugaredLogger) {
	now := sysClock.Now()

	district := tables.FindDistrict(1, 1)
	beforeNextOID := district.DNextOID

	out := tables.NewOrder(1, 1, 1, []tpcc.NewOrderItem{
		{IID: 1, OLSupplyWID: 1, OLQuantity: 5},
		{IID: 2, OLSupplyWID: 1, OLQuantity: 3},
	}, now)
	if !out.Committed() {
		sugar.Fatalw("scripted NewOrder unexpectedly aborted", "status", out.Status)
	}
	if district.DNextOID != beforeNextOID+1 {
		sugar.Fatalw("d_next_o_id did not increase", "before", beforeNextOID, "after", district.DNextOID)
	}

	for n := int32(1); n <= int32(len(out.Items)); n++ {
		line := tables.FindOrderLine(1, 1, out.OID, n)
		if line == nil {
			sugar.Fatalw("missing order line after NewOrder", "n", n, "o_id", out.OID)
		}
	}
	if tables.FindOrderLine(1, 1, out.OID, int32(len(out.Items))+1) != nil {
		sugar.Fatalw("unexpected extra order line after NewOrder", "o_id", out.OID)
	}

	tables.PaymentByID(1, 1, 1, 1, 1, 25.00, now)
	tables.OrderStatusByID(1, 1, 1)
	tables.StockLevel(1, 1, 15)

	delivered := tables.Delivery(1, 5, now)
	for _, info := range delivered {
		order := tables.FindOrder(1, info.DID, info.OID)
		if order.OCarrierID == tpcc.NullCarrierID {
			sugar.Fatalw("delivered order still has null carrier", "d_id", info.DID, "o_id", info.OID)
		}
		for n := int32(1); n <= order.OOLCnt; n++ {
			line := tables.FindOrderLine(1, info.DID, info.OID, n)
			if line == nil || line.OLDeliveryD == "" {
				sugar.Fatalw("delivered order line missing delivery date", "d_id", info.DID, "o_id", info.OID, "n", n)
			}
		}
	}
}
