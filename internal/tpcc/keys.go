package tpcc

// The key encoders below are transliterated from tpcctables.cc's
// make*Key free functions. Each preserves the iteration order the
// transactions rely on; see spec.md §4.1 for the contract each one
// must satisfy.

func stockKey(wID, sID int32) int32 {
	mustInRange("wID", wID, 1, MaxWarehouseID)
	mustInRange("sID", sID, 1, NumStockPerWarehouse)
	id := sID + wID*NumStockPerWarehouse
	mustPositive("stockKey", id)
	return id
}

func districtKey(wID, dID int32) int32 {
	mustInRange("wID", wID, 1, MaxWarehouseID)
	mustInRange("dID", dID, 1, NumDistrictsPerWarehouse)
	id := dID + wID*NumDistrictsPerWarehouse
	mustPositive("districtKey", id)
	return id
}

func customerKey(wID, dID, cID int32) int32 {
	mustInRange("wID", wID, 1, MaxWarehouseID)
	mustInRange("dID", dID, 1, NumDistrictsPerWarehouse)
	mustInRange("cID", cID, 1, NumCustomersPerDistrict)
	id := (wID*NumDistrictsPerWarehouse+dID)*NumCustomersPerDistrict + cID
	mustPositive("customerKey", id)
	return id
}

// orderKey is deliberately non-ordering-friendly: o_id sits in the
// high-order position. spec.md §4.1 preserves this on purpose; only
// the NewOrder and OrderByCustomer keys need scan order, and this key
// is used for exact-match lookup only.
func orderKey(wID, dID, oID int32) int32 {
	mustInRange("wID", wID, 1, MaxWarehouseID)
	mustInRange("dID", dID, 1, NumDistrictsPerWarehouse)
	mustInRange("oID", oID, 1, MaxOrderID)
	id := (oID*NumDistrictsPerWarehouse+dID)*MaxWarehouseID + wID
	mustPositive("orderKey", id)
	return id
}

func orderLineKey(wID, dID, oID, number int32) int32 {
	mustInRange("number", number, 1, MaxOLCnt)
	id := orderKey(wID, dID, oID)*MaxOLCnt + number
	mustPositive("orderLineKey", id)
	return id
}

// newOrderKey packs (w_id, d_id) into the high 32 bits and o_id into
// the low 32 bits, so within a district, key order is o_id order --
// Delivery's lower_bound depends on exactly this.
func newOrderKey(wID, dID, oID int32) int64 {
	mustInRange("wID", wID, 1, MaxWarehouseID)
	mustInRange("dID", dID, 1, NumDistrictsPerWarehouse)
	mustInRange("oID", oID, 1, MaxOrderID)
	upper := wID*MaxWarehouseID + dID
	mustPositive("newOrderKey.upper", upper)
	id := int64(upper)<<32 | int64(oID)
	mustPositive64("newOrderKey", id)
	return id
}

// orderByCustomerKey packs (w_id, d_id, c_id) into the high 32 bits
// and o_id into the low 32 bits, so within (w,d,c), key order is o_id
// order -- OrderStatus's findLastLessThan depends on exactly this.
func orderByCustomerKey(wID, dID, cID, oID int32) int64 {
	mustInRange("wID", wID, 1, MaxWarehouseID)
	mustInRange("dID", dID, 1, NumDistrictsPerWarehouse)
	mustInRange("cID", cID, 1, NumCustomersPerDistrict)
	mustInRange("oID", oID, 1, MaxOrderID)
	top := (wID*NumDistrictsPerWarehouse+dID)*NumCustomersPerDistrict + cID
	mustPositive("orderByCustomerKey.top", top)
	id := int64(top)<<32 | int64(oID)
	mustPositive64("orderByCustomerKey", id)
	return id
}
