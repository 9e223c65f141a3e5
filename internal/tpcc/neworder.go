package tpcc

import "strings"

// NewOrderItem is one line of a NewOrder request.
type NewOrderItem struct {
	IID          int32
	OLSupplyWID  int32
	OLQuantity   int32
}

// NewOrder implements spec.md §4.3's NewOrder transaction. On the
// prescribed invalid-item abort it returns an output whose Status is
// InvalidItemStatus (Committed() reports false), having made no
// writes; on commit Status is empty (Committed() reports true).
func (t *Tables) NewOrder(wID, dID, cID int32, items []NewOrderItem, now string) *NewOrderOutput {
	if len(items) < 1 || len(items) > MaxOLCnt {
		fatalf("NewOrder: items length %d out of [1, %d]", len(items), MaxOLCnt)
	}

	output := &NewOrderOutput{WID: wID, DID: dID, CID: cID}

	// 1. Read District first so a rolled-back transaction can still
	// display d_tax and the assigned o_id, matching tpcctables.cc's
	// comment on 2.4.3.4.
	d := t.FindDistrict(wID, dID)
	output.DTax = d.DTax
	output.OID = d.DNextOID

	// 2. Read Customer for display fields, same reasoning.
	c := t.FindCustomer(wID, dID, cID)
	output.CLast = c.CLast
	output.CCredit = c.CCredit
	output.CDiscount = c.CDiscount

	// 3. Validation pass: no writes may have happened before this
	// completes cleanly.
	itemRecords := make([]Item, len(items))
	allLocal := true
	for i, it := range items {
		item, ok := t.FindItem(it.IID)
		if !ok {
			output.Status = InvalidItemStatus
			return output
		}
		itemRecords[i] = item
		if it.OLSupplyWID != wID {
			allLocal = false
		}
	}

	// We will not abort: begin the write phase.
	output.Status = ""

	d.DNextOID++

	w := t.FindWarehouse(wID)
	output.WTax = w.WTax

	order := Order{
		OWID:       wID,
		ODID:       dID,
		OID:        output.OID,
		OCID:       cID,
		OCarrierID: NullCarrierID,
		OOLCnt:     int32(len(items)),
		OAllLocal:  allLocal,
		OEntryD:    now,
	}
	t.InsertOrder(order)
	t.InsertNewOrder(wID, dID, output.OID)

	output.Items = make([]NewOrderItemResult, len(items))
	output.Total = 0
	for i, it := range items {
		number := int32(i + 1)
		item := itemRecords[i]

		stock := t.FindStock(it.OLSupplyWID, it.IID)
		// Replenish rule (§4.3 step 9).
		if stock.SQuantity >= it.OLQuantity+10 {
			stock.SQuantity -= it.OLQuantity
		} else {
			stock.SQuantity = stock.SQuantity - it.OLQuantity + 91
		}
		stock.SYtd += it.OLQuantity
		stock.SOrderCnt++
		if it.OLSupplyWID != wID {
			stock.SRemoteCnt++
		}

		stockOriginal := containsOriginal(stock.SData)
		itemOriginal := containsOriginal(item.IData)
		brandGeneric := GenericGeneric
		if stockOriginal && itemOriginal {
			brandGeneric = BrandGeneric
		}

		olAmount := float32(it.OLQuantity) * item.IPrice

		output.Items[i] = NewOrderItemResult{
			IID:          it.IID,
			IName:        item.IName,
			SQuantity:    stock.SQuantity,
			BrandGeneric: brandGeneric,
			IPrice:       item.IPrice,
			OLAmount:     olAmount,
		}
		output.Total += olAmount

		line := OrderLine{
			OLWID:       wID,
			OLDID:       dID,
			OLOID:       output.OID,
			OLNumber:    number,
			OLIID:       it.IID,
			OLSupplyWID: it.OLSupplyWID,
			OLQuantity:  it.OLQuantity,
			OLAmount:    olAmount,
			OLDeliveryD: "",
			OLDistInfo:  stock.SDist[dID],
		}
		t.InsertOrderLine(line)
	}

	return output
}

func containsOriginal(data string) bool {
	return strings.Contains(data, "ORIGINAL")
}
