// Package tpcc is the core: an in-memory, single-threaded, multi-index
// table engine implementing the five TPC-C business transactions.
package tpcc

// DateTimeSize is the fixed width, in bytes, of every timestamp string
// the core compares or stores (o_entry_d, ol_delivery_d, h_date, ...).
// The Clock collaborator must produce exactly this many bytes.
const DateTimeSize = 14

// MaxLast is the maximum length, in bytes, of a customer's last name.
const MaxLast = 16

// MaxData is the maximum length, in bytes, of Customer.CData.
const MaxData = 500

// MaxOLCnt is the maximum number of order lines on a single order.
const MaxOLCnt = 15

// StockLevelOrders is the width of the "most recent orders" window
// StockLevel scans.
const StockLevelOrders = 20

// NullCarrierID is the sentinel meaning "not yet delivered."
const NullCarrierID int32 = 0

const (
	// GoodCredit and BadCredit are the two values Customer.CCredit takes.
	GoodCredit = "GC"
	BadCredit  = "BC"
)

// Table-size design constants. spec.md leaves the exact values open;
// these are chosen so that every key encoding in keys.go stays inside
// its declared int32/int64 width for any legal input.
//
// The binding constraint is the OrderLine key: it is the Order key
// multiplied by MaxOLCnt, so:
//
//	orderKey(MaxOrderID, NumDistricts, MaxWarehouseID) * MaxOLCnt < 1<<31
//
// With NumDistricts=10, MaxWarehouseID=128, MaxOLCnt=15:
//
//	orderKey_max = (MaxOrderID*10 + 10) * 128 + 128
//	orderLineKey_max = orderKey_max * 15 + MaxOLCnt
//
// Solving orderLineKey_max < 1<<31 for MaxOrderID=100000 gives
// ~1.92e9, safely under 2^31-1 (2,147,483,647).
const (
	NumDistrictsPerWarehouse  = 10
	NumCustomersPerDistrict   = 3000
	NumItems                  = 100000
	NumStockPerWarehouse      = NumItems
	MaxWarehouseID            = 128
	MaxOrderID                = 100000
	// InitialOrdersPerDistrict is the number of Order rows the loader
	// creates per district at load time (standard TPC-C population).
	InitialOrdersPerDistrict = 3000
	// InitialNewOrdersPerDistrict is how many of those initial orders
	// are still undelivered (the most recent ones) when the load
	// finishes, matching real TPC-C population conventions.
	InitialNewOrdersPerDistrict = 900
)
