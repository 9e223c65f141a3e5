package tpcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Tables_FindWarehouse_MissingIsFatal(t *testing.T) {
	require.Panics(t, func() {
		preconditionLogger = nil
		tables := &Tables{warehouses: newOrderedIndex[*Warehouse]()}
		tables.FindWarehouse(1)
	})
}

func Test_Tables_InsertItem_OutOfOrderIsFatal(t *testing.T) {
	require.Panics(t, func() {
		preconditionLogger = nil
		tables := &Tables{}
		tables.InsertItem(Item{IID: 2})
	})
}
