package tpcc

// NewOrderItemResult is the per-line display data NewOrder produces,
// mirroring NewOrderOutput::ItemInfo in tpcctables.cc.
type NewOrderItemResult struct {
	IID          int32
	IName        string
	SQuantity    int32
	BrandGeneric string // "B" or "G"
	IPrice       float32
	OLAmount     float32
}

const (
	BrandGeneric  = "B"
	GenericGeneric = "G"
)

// NewOrderOutput is filled in by Tables.NewOrder.
type NewOrderOutput struct {
	WID       int32
	DID       int32
	CID       int32
	OID       int32
	OEntryD   string
	CLast     string
	CCredit   string
	CDiscount float32
	WTax      float32
	DTax      float32
	Items     []NewOrderItemResult
	Total     float32
	// Status is empty on commit, or InvalidItemStatus on the
	// prescribed 1% abort.
	Status string
}

// Committed reports whether the transaction committed (Status empty).
func (o *NewOrderOutput) Committed() bool {
	return o.Status == ""
}

// PaymentOutput is filled in by Tables.PaymentByID and
// Tables.PaymentByLastName.
type PaymentOutput struct {
	Warehouse Warehouse
	District  District
	Customer  Customer
}

// OrderStatusLine is one line of an OrderStatusOutput.
type OrderStatusLine struct {
	OLIID        int32
	OLSupplyWID  int32
	OLQuantity   int32
	OLAmount     float32
	OLDeliveryD  string
}

// OrderStatusOutput is filled in by Tables.OrderStatusByID and
// Tables.OrderStatusByLastName.
type OrderStatusOutput struct {
	CID       int32
	CBalance  float32
	CFirst    string
	CMiddle   string
	CLast     string
	OID       int32
	OCarrierID int32
	OEntryD   string
	Lines     []OrderStatusLine
}

// DeliveryOrderInfo records one (district, order) pair delivery
// processed, matching DeliveryOrderInfo in tpcctables.cc.
type DeliveryOrderInfo struct {
	DID int32
	OID int32
}
