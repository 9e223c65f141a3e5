package tpcc

import (
	"github.com/google/btree"
)

// customerNameEntry orders customers by (w_id, d_id, c_last, c_first),
// matching CustomerByNameOrdering::operator() in tpcctables.cc exactly.
type customerNameEntry struct {
	wID, dID    int32
	last, first string
	customer    *Customer
}

func (e customerNameEntry) Less(than btree.Item) bool {
	o := than.(customerNameEntry)
	if e.wID != o.wID {
		return e.wID < o.wID
	}
	if e.dID != o.dID {
		return e.dID < o.dID
	}
	if e.last != o.last {
		return e.last < o.last
	}
	return e.first < o.first
}

// customerNameIndex is the ordered set of §4.2(a).
type customerNameIndex struct {
	tree *btree.BTree
}

func newCustomerNameIndex() *customerNameIndex {
	return &customerNameIndex{tree: btree.New(btreeDegree)}
}

func (idx *customerNameIndex) insert(c *Customer) {
	e := customerNameEntry{wID: c.CWID, dID: c.CDID, last: c.CLast, first: c.CFirst, customer: c}
	if idx.tree.Has(e) {
		fatalf("duplicate customer-by-name entry for w=%d d=%d last=%q first=%q",
			c.CWID, c.CDID, c.CLast, c.CFirst)
	}
	idx.tree.ReplaceOrInsert(e)
}

// findByLastName implements TPCCTables::findCustomerByName exactly:
// scan the [lower_bound(last, ""), lower_bound(successor(last), ""))
// range and return the element at floor((n-1)/2), 1-based addressing,
// per TPC-C §2.6.2.2.
func (idx *customerNameIndex) findByLastName(wID, dID int32, last string) *Customer {
	lo := customerNameEntry{wID: wID, dID: dID, last: last, first: ""}
	hi := customerNameEntry{wID: wID, dID: dID, last: successorLastName(last), first: ""}

	var matches []*Customer
	idx.tree.AscendRange(lo, hi, func(i btree.Item) bool {
		matches = append(matches, i.(customerNameEntry).customer)
		return true
	})

	if len(matches) == 0 {
		fatalf("findCustomerByName: no match for w=%d d=%d last=%q", wID, dID, last)
		return nil
	}

	// floor((n-1)/2), 1-based addressing == index (n-1)/2 with integer
	// division, 0-based.
	mid := (len(matches) - 1) / 2
	return matches[mid]
}

// successorLastName computes the "next" c_last used to bound the scan:
// append 'A' if there is room below MaxLast, otherwise bump the final
// byte -- the same "GROSS hack" tpcctables.cc uses to avoid a real
// string-successor operation.
func successorLastName(last string) string {
	if len(last) < MaxLast {
		return last + "A"
	}
	b := []byte(last)
	b[len(b)-1]++
	return string(b)
}
