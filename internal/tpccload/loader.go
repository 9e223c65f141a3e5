// Package tpccload populates a tpcc.Tables with the standard TPC-C
// initial database, following the population procedure of §4.3.3.1 of
// the TPC-C specification with TPCCGenerator's call shape (see
// DESIGN.md).
package tpccload

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Abulila/tpccbench/internal/tpcc"
)

const originalDataMinLen = 26

// Loader populates a Tables instance using an RNG collaborator.
type Loader struct {
	tables *tpcc.Tables
	rng    tpcc.RNG
	clock  tpcc.Clock
	sugar  *zap.SugaredLogger
}

// New creates a Loader bound to the given tables, rng and clock
// collaborators.
func New(tables *tpcc.Tables, rng tpcc.RNG, clock tpcc.Clock, sugar *zap.SugaredLogger) *Loader {
	return &Loader{tables: tables, rng: rng, clock: clock, sugar: sugar}
}

// LoadItems populates the dense Item catalog. Must run exactly once,
// before any warehouse is loaded.
func (l *Loader) LoadItems() {
	for id := int32(1); id <= tpcc.NumItems; id++ {
		data := l.originalData()
		l.tables.InsertItem(tpcc.Item{
			IID:    id,
			IName:  l.rng.AString(14, 24),
			IPrice: float32(l.rng.Intn(100, 10000)) / 100.0,
			IData:  data,
		})
	}
	if l.sugar != nil {
		l.sugar.Infow("items loaded", "count", tpcc.NumItems)
	}
}

// LoadWarehouse populates warehouse wID and everything beneath it:
// its Stock rows, its districts, and each district's customers and
// initial orders.
func (l *Loader) LoadWarehouse(wID int32) {
	l.tables.InsertWarehouse(tpcc.Warehouse{
		WID:   wID,
		WName: l.rng.AString(6, 10),
		WTax:  float32(l.rng.Intn(0, 2000)) / 10000.0,
		WYtd:  300000.00,
	})

	l.loadStock(wID)

	for dID := int32(1); dID <= tpcc.NumDistrictsPerWarehouse; dID++ {
		l.loadDistrict(wID, dID)
	}

	if l.sugar != nil {
		l.sugar.Infow("warehouse loaded", "w_id", wID)
	}
}

func (l *Loader) loadStock(wID int32) {
	for iID := int32(1); iID <= tpcc.NumStockPerWarehouse; iID++ {
		var dist [tpcc.NumDistrictsPerWarehouse + 1]string
		for d := 1; d <= tpcc.NumDistrictsPerWarehouse; d++ {
			dist[d] = l.rng.AString(24, 24)
		}
		l.tables.InsertStock(tpcc.Stock{
			SWID:       wID,
			SIID:       iID,
			SQuantity:  int32(l.rng.Intn(10, 100)),
			SYtd:       0,
			SOrderCnt:  0,
			SRemoteCnt: 0,
			SData:      l.originalData(),
			SDist:      dist,
		})
	}
}

func (l *Loader) loadDistrict(wID, dID int32) {
	l.tables.InsertDistrict(tpcc.District{
		DWID:     wID,
		DID:      dID,
		DName:    l.rng.AString(6, 10),
		DTax:     float32(l.rng.Intn(0, 2000)) / 10000.0,
		DYtd:     30000.00,
		DNextOID: tpcc.InitialOrdersPerDistrict + 1,
	})

	for cID := int32(1); cID <= tpcc.NumCustomersPerDistrict; cID++ {
		l.loadCustomer(wID, dID, cID)
	}

	l.loadOrders(wID, dID)
}

func (l *Loader) loadCustomer(wID, dID, cID int32) {
	credit := tpcc.GoodCredit
	if l.rng.Intn(1, 100) <= 10 {
		credit = tpcc.BadCredit
	}

	// The first 1000 customers of a district get a distinct C_LAST
	// (index cID-1, 0-999); the rest share names drawn via NURand, per
	// TPC-C §4.3.3.1.
	last := cID - 1
	if cID > 1000 {
		last = int32(l.rng.NURand(255, 0, 999))
	}

	now := l.clock.Now()
	c := tpcc.Customer{
		CWID:         wID,
		CDID:         dID,
		CID:          cID,
		CFirst:       l.rng.AString(8, 16),
		CMiddle:      "OE",
		CLast:        LastName(last),
		CCredit:      credit,
		CDiscount:    float32(l.rng.Intn(0, 5000)) / 10000.0,
		CBalance:     -10.00,
		CYtdPayment:  10.00,
		CPaymentCnt:  1,
		CDeliveryCnt: 0,
		CData:        l.rng.AString(300, 500),
	}
	l.tables.InsertCustomer(c)

	l.tables.InsertHistory(tpcc.History{
		HCID:    cID,
		HCDID:   dID,
		HCWID:   wID,
		HDID:    dID,
		HWID:    wID,
		HDate:   now,
		HAmount: 10.00,
		HData:   l.rng.AString(12, 24),
	})
}

// loadOrders creates the standard InitialOrdersPerDistrict Order rows
// for one district, in ascending o_id order, leaving the
// InitialNewOrdersPerDistrict most recent of them undelivered.
func (l *Loader) loadOrders(wID, dID int32) {
	permutation := l.customerPermutation()

	firstUndelivered := int32(tpcc.InitialOrdersPerDistrict - tpcc.InitialNewOrdersPerDistrict + 1)

	for oID := int32(1); oID <= tpcc.InitialOrdersPerDistrict; oID++ {
		cID := permutation[oID-1]
		olCnt := int32(l.rng.Intn(5, 15))

		delivered := oID < firstUndelivered
		var carrierID int32 = tpcc.NullCarrierID
		if delivered {
			carrierID = int32(l.rng.Intn(1, 10))
		}

		now := l.clock.Now()
		l.tables.InsertOrder(tpcc.Order{
			OWID:       wID,
			ODID:       dID,
			OID:        oID,
			OCID:       cID,
			OCarrierID: int32(carrierID),
			OOLCnt:     olCnt,
			OAllLocal:  true,
			OEntryD:    now,
		})

		for n := int32(1); n <= olCnt; n++ {
			var deliveryD string
			amount := float32(0)
			if delivered {
				deliveryD = now
			} else {
				amount = float32(l.rng.Intn(1, 999999)) / 100.0
			}
			l.tables.InsertOrderLine(tpcc.OrderLine{
				OLWID:       wID,
				OLDID:       dID,
				OLOID:       oID,
				OLNumber:    n,
				OLIID:       int32(l.rng.Intn(1, tpcc.NumItems)),
				OLSupplyWID: wID,
				OLQuantity:  5,
				OLAmount:    amount,
				OLDeliveryD: deliveryD,
				OLDistInfo:  l.rng.AString(24, 24),
			})
		}

		if !delivered {
			l.tables.InsertNewOrder(wID, dID, oID)
		}
	}
}

// customerPermutation returns a random permutation of
// 1..NumCustomersPerDistrict, matching TPC-C's requirement that o_c_id
// be assigned via a permutation rather than reused sequentially.
func (l *Loader) customerPermutation() []int32 {
	perm := make([]int32, tpcc.NumCustomersPerDistrict)
	for i := range perm {
		perm[i] = int32(i + 1)
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := l.rng.Intn(0, i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// originalData produces an i_data/s_data value, occasionally embedding
// the "ORIGINAL" marker NewOrder's brand/generic logic looks for.
func (l *Loader) originalData() string {
	data := l.rng.AString(originalDataMinLen, 50)
	if l.rng.Original() {
		pos := l.rng.Intn(0, len(data)-len("ORIGINAL"))
		data = data[:pos] + "ORIGINAL" + data[pos+len("ORIGINAL"):]
	}
	return data
}

// LastName reproduces TPC-C's C_LAST syllable construction from a
// 0-999 index (spec.md §4.4). Exported so the workload driver can
// synthesize the same names for by-name lookups.
func LastName(n int32) string {
	syllables := [...]string{
		"BAR", "OUGHT", "ABLE", "PRI", "PRES",
		"ESE", "ANTI", "CALLY", "ATION", "EING",
	}
	return fmt.Sprintf("%s%s%s", syllables[n/100], syllables[(n/10)%10], syllables[n%10])
}
