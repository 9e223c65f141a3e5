package tpcc

import (
	"go.uber.org/zap"
)

// Tables is the sole owner of every record in the engine. All other
// components hold borrowed pointers (handles) into it; see SPEC_FULL.md
// §6 on why a plain Go pointer already satisfies the node-stability
// requirement of spec.md §5.
type Tables struct {
	sugar *zap.SugaredLogger

	items []Item // dense array, 1-based via items[i_id-1]

	warehouses *orderedIndex[*Warehouse]
	stock      *orderedIndex[*Stock]
	districts  *orderedIndex[*District]
	customers  *orderedIndex[*Customer]
	custByName *customerNameIndex

	orders           *orderedIndex[*Order]
	ordersByCustomer *orderedIndex[*Order]
	orderLines       *orderedIndex[*OrderLine]
	newOrders        *orderedIndex[*NewOrder]

	history []History // append-only
}

// New creates an empty engine. logger receives structured logs for
// precondition violations (see errors.go); pass zap.NewNop() in tests
// that don't care about log output.
func New(logger *zap.Logger) *Tables {
	SetPreconditionLogger(logger.Sugar())
	return &Tables{
		sugar:            logger.Sugar(),
		warehouses:       newOrderedIndex[*Warehouse](),
		stock:            newOrderedIndex[*Stock](),
		districts:        newOrderedIndex[*District](),
		customers:        newOrderedIndex[*Customer](),
		custByName:       newCustomerNameIndex(),
		orders:           newOrderedIndex[*Order](),
		ordersByCustomer: newOrderedIndex[*Order](),
		orderLines:       newOrderedIndex[*OrderLine](),
		newOrders:        newOrderedIndex[*NewOrder](),
	}
}

// InsertItem appends item; items must be inserted in ascending IID
// order starting at 1, matching the dense-array contract of §4.2.
func (t *Tables) InsertItem(item Item) {
	if item.IID != int32(len(t.items))+1 {
		fatalf("InsertItem: expected IID %d, got %d", len(t.items)+1, item.IID)
	}
	t.items = append(t.items, item)
}

// FindItem returns the item with the given id, or false if id is out
// of range. Unlike the other Find* methods this is never a
// precondition violation on miss: NewOrder's validation pass depends
// on a clean "not found" for the 1% invalid-item case.
func (t *Tables) FindItem(id int32) (Item, bool) {
	if id < 1 || int(id) > len(t.items) {
		return Item{}, false
	}
	return t.items[id-1], true
}

func (t *Tables) InsertWarehouse(w Warehouse) *Warehouse {
	rec := w
	t.warehouses.Insert(int64(rec.WID), &rec)
	return &rec
}

func (t *Tables) FindWarehouse(id int32) *Warehouse {
	v, ok := t.warehouses.Find(int64(id))
	if !ok {
		fatalf("FindWarehouse: no warehouse %d", id)
	}
	return v
}

func (t *Tables) InsertStock(s Stock) *Stock {
	rec := s
	t.stock.Insert(int64(stockKey(rec.SWID, rec.SIID)), &rec)
	return &rec
}

func (t *Tables) FindStock(wID, iID int32) *Stock {
	v, ok := t.stock.Find(int64(stockKey(wID, iID)))
	if !ok {
		fatalf("FindStock: no stock (%d, %d)", wID, iID)
	}
	return v
}

func (t *Tables) InsertDistrict(d District) *District {
	rec := d
	t.districts.Insert(int64(districtKey(rec.DWID, rec.DID)), &rec)
	return &rec
}

func (t *Tables) FindDistrict(wID, dID int32) *District {
	v, ok := t.districts.Find(int64(districtKey(wID, dID)))
	if !ok {
		fatalf("FindDistrict: no district (%d, %d)", wID, dID)
	}
	return v
}

func (t *Tables) InsertCustomer(c Customer) *Customer {
	rec := c
	t.customers.Insert(int64(customerKey(rec.CWID, rec.CDID, rec.CID)), &rec)
	t.custByName.insert(&rec)
	return &rec
}

func (t *Tables) FindCustomer(wID, dID, cID int32) *Customer {
	v, ok := t.customers.Find(int64(customerKey(wID, dID, cID)))
	if !ok {
		fatalf("FindCustomer: no customer (%d, %d, %d)", wID, dID, cID)
	}
	return v
}

// FindCustomerByName implements §4.4's by-name lookup.
func (t *Tables) FindCustomerByName(wID, dID int32, last string) *Customer {
	return t.custByName.findByLastName(wID, dID, last)
}

func (t *Tables) InsertOrder(o Order) *Order {
	rec := o
	t.orders.Insert(int64(orderKey(rec.OWID, rec.ODID, rec.OID)), &rec)
	t.ordersByCustomer.Insert(orderByCustomerKey(rec.OWID, rec.ODID, rec.OCID, rec.OID), &rec)
	return &rec
}

func (t *Tables) FindOrder(wID, dID, oID int32) *Order {
	v, ok := t.orders.Find(int64(orderKey(wID, dID, oID)))
	if !ok {
		fatalf("FindOrder: no order (%d, %d, %d)", wID, dID, oID)
	}
	return v
}

// FindLastOrderByCustomer returns the Order with the maximal o_id for
// (w,d,c), per §4.3's OrderStatus algorithm.
func (t *Tables) FindLastOrderByCustomer(wID, dID, cID int32) *Order {
	key := orderByCustomerKey(wID, dID, cID, 1) + (int64(1) << 32)
	_, order, ok := t.ordersByCustomer.FindLastLessThan(key)
	if !ok {
		fatalf("FindLastOrderByCustomer: no order for customer (%d, %d, %d)", wID, dID, cID)
	}
	return order
}

func (t *Tables) InsertOrderLine(ol OrderLine) *OrderLine {
	rec := ol
	t.orderLines.Insert(int64(orderLineKey(rec.OLWID, rec.OLDID, rec.OLOID, rec.OLNumber)), &rec)
	return &rec
}

// FindOrderLine returns nil if no such order line exists -- used by
// StockLevel to detect the end of an order's lines without treating a
// short order as a precondition violation.
func (t *Tables) FindOrderLine(wID, dID, oID, number int32) *OrderLine {
	v, ok := t.orderLines.Find(int64(orderLineKey(wID, dID, oID, number)))
	if !ok {
		return nil
	}
	return v
}

func (t *Tables) InsertNewOrder(wID, dID, oID int32) {
	rec := &NewOrder{NOWID: wID, NODID: dID, NOOID: oID}
	t.newOrders.Insert(newOrderKey(wID, dID, oID), rec)
}

// lowerBoundNewOrder returns the NewOrder with the smallest key
// >= (wID, dID, 1), used by Delivery.
func (t *Tables) lowerBoundNewOrder(wID, dID int32) (*NewOrder, bool) {
	_, no, ok := t.newOrders.LowerBound(newOrderKey(wID, dID, 1))
	return no, ok
}

func (t *Tables) eraseNewOrder(wID, dID, oID int32) {
	t.newOrders.Erase(newOrderKey(wID, dID, oID))
}

func (t *Tables) InsertHistory(h History) {
	t.history = append(t.history, h)
}

// History returns the append-only history log, for tests verifying
// the sum invariant.
func (t *Tables) History() []History {
	return t.history
}
