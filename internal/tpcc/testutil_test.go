package tpcc

import (
	"log"
	"sync"

	"go.uber.org/zap"
)

var (
	once   sync.Once
	logger *zap.Logger
)

func getTestLogger() *zap.Logger {
	once.Do(func() {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	})
	return logger
}

// newTestTables builds a Tables with one fully populated warehouse
// (id 1, districts 1..NumDistrictsPerWarehouse) plus a handful of
// items and customers, enough for one Order/Payment/etc scenario
// without pulling in the loader package (which itself depends on
// tpcc, so importing it here would cycle).
func newTestTables(t interface{ Helper() }) *Tables {
	t.Helper()
	tables := New(getTestLogger())

	for id := int32(1); id <= 5; id++ {
		tables.InsertItem(Item{
			IID:    id,
			IName:  "item",
			IPrice: 9.99,
			IData:  "plain data with no marker at all here padded out long",
		})
	}
	// One item explicitly carries the ORIGINAL marker, per §4.3's
	// brand/generic rule.
	tables.InsertItem(Item{
		IID:    6,
		IName:  "special",
		IPrice: 19.99,
		IData:  "some prefix ORIGINAL some suffix padded out long enough",
	})

	tables.InsertWarehouse(Warehouse{WID: 1, WName: "wh1", WTax: 0.10, WYtd: 0})

	for d := int32(1); d <= NumDistrictsPerWarehouse; d++ {
		tables.InsertDistrict(District{
			DWID:     1,
			DID:      d,
			DName:    "district",
			DTax:     0.05,
			DYtd:     0,
			DNextOID: 1,
		})
	}

	for iID := int32(1); iID <= 6; iID++ {
		var dist [NumDistrictsPerWarehouse + 1]string
		for d := 1; d <= NumDistrictsPerWarehouse; d++ {
			dist[d] = "distinfo"
		}
		data := "plain stock data no marker present here padded out long"
		if iID == 6 {
			data = "prefix ORIGINAL suffix padded out to be long enough here"
		}
		tables.InsertStock(Stock{
			SWID:      1,
			SIID:      iID,
			SQuantity: 50,
			SData:     data,
			SDist:     dist,
		})
	}

	tables.InsertCustomer(Customer{
		CWID: 1, CDID: 1, CID: 1,
		CFirst: "John", CMiddle: "Q", CLast: "SMITH",
		CCredit: GoodCredit, CDiscount: 0.1, CBalance: -10, CYtdPayment: 10, CPaymentCnt: 1,
	})
	tables.InsertCustomer(Customer{
		CWID: 1, CDID: 1, CID: 2,
		CFirst: "Jane", CMiddle: "Q", CLast: "SMITH",
		CCredit: BadCredit, CDiscount: 0.1, CBalance: -10, CYtdPayment: 10, CPaymentCnt: 1,
		CData: "prior customer data",
	})
	tables.InsertCustomer(Customer{
		CWID: 1, CDID: 1, CID: 3,
		CFirst: "Amy", CMiddle: "Q", CLast: "JONES",
		CCredit: GoodCredit, CDiscount: 0.2, CBalance: -10, CYtdPayment: 10, CPaymentCnt: 1,
	})

	return tables
}
