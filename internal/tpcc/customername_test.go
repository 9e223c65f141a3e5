package tpcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_customerNameIndex_MiddleOfTwoMatches(t *testing.T) {
	idx := newCustomerNameIndex()
	jane := &Customer{CWID: 1, CDID: 1, CID: 1, CFirst: "Jane", CLast: "SMITH"}
	john := &Customer{CWID: 1, CDID: 1, CID: 2, CFirst: "John", CLast: "SMITH"}
	idx.insert(jane)
	idx.insert(john)

	got := idx.findByLastName(1, 1, "SMITH")
	require.Same(t, jane, got, "floor((2-1)/2)=0 selects the first in (last, first) order")
}

func Test_customerNameIndex_MiddleOfThreeMatches(t *testing.T) {
	idx := newCustomerNameIndex()
	a := &Customer{CWID: 1, CDID: 1, CID: 1, CFirst: "Amy", CLast: "JONES"}
	b := &Customer{CWID: 1, CDID: 1, CID: 2, CFirst: "Bob", CLast: "JONES"}
	c := &Customer{CWID: 1, CDID: 1, CID: 3, CFirst: "Cy", CLast: "JONES"}
	idx.insert(a)
	idx.insert(b)
	idx.insert(c)

	got := idx.findByLastName(1, 1, "JONES")
	require.Same(t, b, got, "floor((3-1)/2)=1 selects the middle entry")
}

func Test_customerNameIndex_DoesNotCrossDistrict(t *testing.T) {
	idx := newCustomerNameIndex()
	here := &Customer{CWID: 1, CDID: 1, CID: 1, CFirst: "Amy", CLast: "SMITH"}
	there := &Customer{CWID: 1, CDID: 2, CID: 1, CFirst: "Zoe", CLast: "SMITH"}
	idx.insert(here)
	idx.insert(there)

	got := idx.findByLastName(1, 1, "SMITH")
	require.Same(t, here, got)
}

func Test_successorLastName_AppendsOrBumps(t *testing.T) {
	require.Equal(t, "SMITHA", successorLastName("SMITH"))

	long := ""
	for i := 0; i < MaxLast; i++ {
		long += "Z"
	}
	bumped := successorLastName(long)
	require.NotEqual(t, long, bumped)
	require.Equal(t, len(long), len(bumped))
}
