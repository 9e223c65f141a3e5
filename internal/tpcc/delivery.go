package tpcc

// Delivery implements spec.md §4.3's Delivery transaction. For each
// district it delivers the lowest-numbered undelivered order, if any;
// an empty district is not an error, it is simply omitted from the
// result (§7).
func (t *Tables) Delivery(wID, carrierID int32, now string) []DeliveryOrderInfo {
	var result []DeliveryOrderInfo

	for dID := int32(1); dID <= NumDistrictsPerWarehouse; dID++ {
		no, ok := t.lowerBoundNewOrder(wID, dID)
		if !ok || no.NOWID != wID || no.NODID != dID {
			// No undelivered orders for this district. Permitted to
			// happen; not an error.
			continue
		}

		oID := no.NOOID
		t.eraseNewOrder(wID, dID, oID)

		order := t.FindOrder(wID, dID, oID)
		if order.OCarrierID != NullCarrierID {
			fatalf("Delivery: order (%d,%d,%d) already has a carrier", wID, dID, oID)
		}
		order.OCarrierID = carrierID

		var total float32
		for n := int32(1); n <= order.OOLCnt; n++ {
			line := t.FindOrderLine(wID, dID, oID, n)
			if line == nil {
				fatalf("Delivery: missing order line %d for order (%d,%d,%d)", n, wID, dID, oID)
			}
			if line.OLDeliveryD != "" {
				fatalf("Delivery: order line %d for order (%d,%d,%d) already delivered", n, wID, dID, oID)
			}
			line.OLDeliveryD = now
			total += line.OLAmount
		}

		c := t.FindCustomer(wID, dID, order.OCID)
		c.CBalance += total
		c.CDeliveryCnt++

		result = append(result, DeliveryOrderInfo{DID: dID, OID: oID})
	}

	return result
}
