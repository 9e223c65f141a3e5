package tpcc

// StockLevel implements spec.md §4.3's StockLevel transaction: count
// distinct items among the last StockLevelOrders orders in the
// district whose stock quantity is below threshold.
func (t *Tables) StockLevel(wID, dID, threshold int32) int {
	d := t.FindDistrict(wID, dID)
	oID := d.DNextOID

	seen := make(map[int32]bool)
	for orderID := oID - StockLevelOrders; orderID < oID; orderID++ {
		if orderID < 1 {
			continue
		}
		for number := int32(1); number <= MaxOLCnt; number++ {
			line := t.FindOrderLine(wID, dID, orderID, number)
			if line == nil {
				// End of this order's lines; break on first gap,
				// matching tpcctables.cc's scan exactly.
				break
			}
			stock := t.FindStock(wID, line.OLIID)
			if stock.SQuantity < threshold {
				seen[line.OLIID] = true
			}
		}
	}

	return len(seen)
}
