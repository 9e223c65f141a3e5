// Package tpccdriver runs the standard TPC-C transaction mix against a
// tpcc.Tables, synthesizing transaction parameters via an RNG
// collaborator and recording counts via tpccstats.
package tpccdriver

import (
	"go.uber.org/zap"

	"github.com/Abulila/tpccbench/internal/tpcc"
	"github.com/Abulila/tpccbench/internal/tpccload"
	"github.com/Abulila/tpccbench/internal/tpccstats"
)

// mix is the cumulative-percentage transaction mix of TPC-C §5.2.3:
// 45% NewOrder, 43% Payment, 4% OrderStatus, 4% Delivery, 4% StockLevel.
var mix = []struct {
	kind tpccstats.Kind
	cum  int
}{
	{tpccstats.NewOrder, 45},
	{tpccstats.Payment, 88},
	{tpccstats.OrderStatus, 92},
	{tpccstats.Delivery, 96},
	{tpccstats.StockLevel, 100},
}

// Driver runs transactions against one warehouse count's worth of
// data, sampling transaction type and parameters per TPC-C §5.2.
type Driver struct {
	tables       *tpcc.Tables
	rng          tpcc.RNG
	clock        tpcc.Clock
	numWarehouse int32
	sugar        *zap.SugaredLogger
	counters     tpccstats.Counters
}

// New creates a Driver bound to tables, spanning numWarehouse
// warehouses (all assumed already loaded).
func New(tables *tpcc.Tables, rng tpcc.RNG, clock tpcc.Clock, numWarehouse int32, sugar *zap.SugaredLogger) *Driver {
	return &Driver{tables: tables, rng: rng, clock: clock, numWarehouse: numWarehouse, sugar: sugar}
}

// Run executes n transactions and returns the resulting counters.
func (d *Driver) Run(n int) *tpccstats.Counters {
	for i := 0; i < n; i++ {
		d.step()
	}
	return &d.counters
}

func (d *Driver) step() {
	pick := d.rng.Intn(1, 100)
	kind := tpccstats.StockLevel
	for _, m := range mix {
		if pick <= m.cum {
			kind = m.kind
			break
		}
	}
	d.execute(kind)
}

// pickWarehouse returns a random home warehouse in [1, numWarehouse].
func (d *Driver) pickWarehouse() int32 {
	return int32(d.rng.Intn(1, int(d.numWarehouse)))
}

// pickDistrict returns a random district in [1, NumDistrictsPerWarehouse].
func (d *Driver) pickDistrict() int32 {
	return int32(d.rng.Intn(1, tpcc.NumDistrictsPerWarehouse))
}

// pickCustomer returns a random customer id via NURand, per TPC-C
// §2.1.6's C_ID selection (A=1023).
func (d *Driver) pickCustomer() int32 {
	return int32(d.rng.NURand(1023, 1, tpcc.NumCustomersPerDistrict))
}

// remoteWarehouse returns a warehouse other than home with the
// probability TPC-C prescribes (1 in 100), or home itself otherwise.
// With a single warehouse it always returns home.
func (d *Driver) remoteWarehouse(home int32) int32 {
	if d.numWarehouse <= 1 || d.rng.Intn(1, 100) > 1 {
		return home
	}
	for {
		w := int32(d.rng.Intn(1, int(d.numWarehouse)))
		if w != home {
			return w
		}
	}
}

func (d *Driver) execute(kind tpccstats.Kind) {
	switch kind {
	case tpccstats.NewOrder:
		d.runNewOrder()
	case tpccstats.Payment:
		d.runPayment()
	case tpccstats.OrderStatus:
		d.runOrderStatus()
	case tpccstats.Delivery:
		d.runDelivery()
	case tpccstats.StockLevel:
		d.runStockLevel()
	}
}

func (d *Driver) runNewOrder() {
	wID := d.pickWarehouse()
	dID := d.pickDistrict()
	cID := d.pickCustomer()

	olCnt := d.rng.Intn(5, 15)
	items := make([]tpcc.NewOrderItem, olCnt)
	for i := range items {
		iID := int32(d.rng.NURand(8191, 1, tpcc.NumItems))
		// TPC-C's prescribed 1% invalid-item abort: on the last line
		// only, substitute an out-of-range item id.
		if i == olCnt-1 && d.rng.Intn(1, 100) == 1 {
			iID = tpcc.NumItems + 1
		}
		items[i] = tpcc.NewOrderItem{
			IID:         iID,
			OLSupplyWID: d.remoteWarehouse(wID),
			OLQuantity:  int32(d.rng.Intn(1, 10)),
		}
	}

	out := d.tables.NewOrder(wID, dID, cID, items, d.clock.Now())
	d.counters.Mark(tpccstats.NewOrder, !out.Committed())
}

func (d *Driver) runPayment() {
	wID := d.pickWarehouse()
	dID := d.pickDistrict()
	hAmount := float32(d.rng.Intn(100, 500000)) / 100.0

	cWID := d.remoteWarehouse(wID)
	cDID := d.pickDistrict()

	if d.rng.Intn(1, 100) <= 60 {
		last := lastNameForSearch(d.rng)
		d.tables.PaymentByLastName(wID, dID, cWID, cDID, last, hAmount, d.clock.Now())
	} else {
		cID := d.pickCustomer()
		d.tables.PaymentByID(wID, dID, cWID, cDID, cID, hAmount, d.clock.Now())
	}
	d.counters.Mark(tpccstats.Payment, false)
}

func (d *Driver) runOrderStatus() {
	wID := d.pickWarehouse()
	dID := d.pickDistrict()

	if d.rng.Intn(1, 100) <= 60 {
		last := lastNameForSearch(d.rng)
		d.tables.OrderStatusByLastName(wID, dID, last)
	} else {
		cID := d.pickCustomer()
		d.tables.OrderStatusByID(wID, dID, cID)
	}
	d.counters.Mark(tpccstats.OrderStatus, false)
}

func (d *Driver) runDelivery() {
	wID := d.pickWarehouse()
	carrierID := int32(d.rng.Intn(1, 10))
	d.tables.Delivery(wID, carrierID, d.clock.Now())
	d.counters.Mark(tpccstats.Delivery, false)
}

func (d *Driver) runStockLevel() {
	wID := d.pickWarehouse()
	dID := d.pickDistrict()
	threshold := int32(d.rng.Intn(10, 20))
	d.tables.StockLevel(wID, dID, threshold)
	d.counters.Mark(tpccstats.StockLevel, false)
}

// lastNameForSearch synthesizes a c_last the same way the loader
// assigns one to a customer, via the NURand-driven 0-999 index.
func lastNameForSearch(rng tpcc.RNG) string {
	return tpccload.LastName(int32(rng.NURand(255, 0, 999)))
}
