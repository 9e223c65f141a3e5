package tpcc

import "fmt"

// PaymentByID implements §4.3's Payment transaction, resolving the
// customer by primary key.
func (t *Tables) PaymentByID(wID, dID, cWID, cDID, cID int32, hAmount float32, now string) *PaymentOutput {
	c := t.FindCustomer(cWID, cDID, cID)
	return t.internalPayment(wID, dID, c, hAmount, now)
}

// PaymentByLastName implements §4.3's Payment transaction, resolving
// the customer by (c_w_id, c_d_id, c_last) via the by-name index.
func (t *Tables) PaymentByLastName(wID, dID, cWID, cDID int32, cLast string, hAmount float32, now string) *PaymentOutput {
	c := t.FindCustomerByName(cWID, cDID, cLast)
	return t.internalPayment(wID, dID, c, hAmount, now)
}

func (t *Tables) internalPayment(wID, dID int32, c *Customer, hAmount float32, now string) *PaymentOutput {
	w := t.FindWarehouse(wID)
	w.WYtd += hAmount

	d := t.FindDistrict(wID, dID)
	d.DYtd += hAmount

	c.CBalance -= hAmount
	c.CYtdPayment += hAmount
	c.CPaymentCnt++

	if c.CCredit == BadCredit {
		prefix := fmt.Sprintf("(%d, %d, %d, %d, %d, %.2f)\n",
			c.CID, c.CDID, c.CWID, dID, wID, hAmount)
		keep := MaxData - len(prefix)
		if keep < 0 {
			keep = 0
		}
		c.CData = prefix + boundString(c.CData, keep)
	}

	output := &PaymentOutput{
		Warehouse: *w,
		District:  *d,
		Customer:  *c,
	}

	t.InsertHistory(History{
		HCID:    c.CID,
		HCDID:   c.CDID,
		HCWID:   c.CWID,
		HDID:    dID,
		HWID:    wID,
		HDate:   now,
		HAmount: hAmount,
		HData:   w.WName + "    " + d.DName,
	})

	return output
}
