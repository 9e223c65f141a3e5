package config

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/Abulila/tpccbench/internal/tpcc"
)

// Config holds the batch CLI's tunables: warehouse count comes from a
// positional argument (see cmd/tpcc), everything else is a flag.
type Config struct {
	NumWarehouse    int
	NumTransactions int
	Seed            int64
	Verbose         bool
}

// NewConfig parses flags and the warehouse count positional argument.
// It calls flag.Parse itself, matching the teacher's NewConfig.
func NewConfig() (*Config, error) {
	txns := flag.Int("TXN_COUNT", 100000, "number of transactions to run")
	seed := flag.Int64("SEED", 0, "random seed (0 picks one from a fresh run id)")
	verbose := flag.Bool("VERBOSE", false, "use development-mode logging")
	flag.Parse()

	warehouses, err := parseWarehouseArg(flag.Args())
	if err != nil {
		return nil, err
	}

	return &Config{
		NumWarehouse:    warehouses,
		NumTransactions: *txns,
		Seed:            *seed,
		Verbose:         *verbose,
	}, nil
}

// parseWarehouseArg validates the single positional warehouse-count
// argument per spec.md §6: an integer in [1, MaxWarehouseID].
func parseWarehouseArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument (warehouse count), got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("warehouse count: %w", err)
	}
	if n < 1 || n > tpcc.MaxWarehouseID {
		return 0, fmt.Errorf("warehouse count %d out of [1, %d]", n, tpcc.MaxWarehouseID)
	}
	return n, nil
}
