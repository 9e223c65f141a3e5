// Package tpccstats counts completed transactions by kind for the
// driver's final report (spec.md §6).
package tpccstats

import "go.uber.org/zap"

// Kind identifies one of the five business transactions.
type Kind int

const (
	NewOrder Kind = iota
	Payment
	OrderStatus
	Delivery
	StockLevel
	numKinds
)

func (k Kind) String() string {
	switch k {
	case NewOrder:
		return "new-order"
	case Payment:
		return "payment"
	case OrderStatus:
		return "order-status"
	case Delivery:
		return "delivery"
	case StockLevel:
		return "stock-level"
	default:
		return "unknown"
	}
}

// Counters tallies executed and aborted transactions per kind. Zero
// value is ready to use.
type Counters struct {
	executed [numKinds]int64
	aborted  [numKinds]int64
}

// Mark records one completed transaction of the given kind. aborted is
// true for NewOrder's prescribed invalid-item abort; every other kind
// always passes false.
func (c *Counters) Mark(k Kind, aborted bool) {
	c.executed[k]++
	if aborted {
		c.aborted[k]++
	}
}

// Total returns the number of transactions of every kind combined.
func (c *Counters) Total() int64 {
	var total int64
	for _, n := range c.executed {
		total += n
	}
	return total
}

// Executed returns the count for one kind.
func (c *Counters) Executed(k Kind) int64 {
	return c.executed[k]
}

// Aborted returns the abort count for one kind.
func (c *Counters) Aborted(k Kind) int64 {
	return c.aborted[k]
}

// LogSummary emits one structured log line per transaction kind.
func (c *Counters) LogSummary(sugar *zap.SugaredLogger) {
	for k := Kind(0); k < numKinds; k++ {
		sugar.Infow("transaction mix",
			"kind", k.String(),
			"executed", c.executed[k],
			"aborted", c.aborted[k],
		)
	}
}
