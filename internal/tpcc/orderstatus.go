package tpcc

// OrderStatusByID implements §4.3's OrderStatus transaction, resolving
// the customer by primary key.
func (t *Tables) OrderStatusByID(wID, dID, cID int32) *OrderStatusOutput {
	return t.internalOrderStatus(t.FindCustomer(wID, dID, cID))
}

// OrderStatusByLastName implements §4.3's OrderStatus transaction,
// resolving the customer by (w_id, d_id, c_last) via the by-name
// index.
func (t *Tables) OrderStatusByLastName(wID, dID int32, cLast string) *OrderStatusOutput {
	return t.internalOrderStatus(t.FindCustomerByName(wID, dID, cLast))
}

func (t *Tables) internalOrderStatus(c *Customer) *OrderStatusOutput {
	output := &OrderStatusOutput{
		CID:      c.CID,
		CBalance: c.CBalance,
		CFirst:   c.CFirst,
		CMiddle:  c.CMiddle,
		CLast:    c.CLast,
	}

	order := t.FindLastOrderByCustomer(c.CWID, c.CDID, c.CID)
	output.OID = order.OID
	output.OCarrierID = order.OCarrierID
	output.OEntryD = order.OEntryD

	output.Lines = make([]OrderStatusLine, order.OOLCnt)
	for n := int32(1); n <= order.OOLCnt; n++ {
		line := t.FindOrderLine(c.CWID, c.CDID, order.OID, n)
		if line == nil {
			fatalf("OrderStatus: missing order line %d for order (%d,%d,%d)",
				n, c.CWID, c.CDID, order.OID)
		}
		output.Lines[n-1] = OrderStatusLine{
			OLIID:       line.OLIID,
			OLSupplyWID: line.OLSupplyWID,
			OLQuantity:  line.OLQuantity,
			OLAmount:    line.OLAmount,
			OLDeliveryD: line.OLDeliveryD,
		}
	}

	return output
}
