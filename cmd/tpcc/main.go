// Command tpcc runs an in-memory TPC-C-style workload against a fresh
// database sized to a given warehouse count, then prints load time and
// achieved throughput. See spec.md §6.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Abulila/tpccbench/internal/clock"
	"github.com/Abulila/tpccbench/internal/config"
	"github.com/Abulila/tpccbench/internal/tpcc"
	"github.com/Abulila/tpccbench/internal/tpccdriver"
	"github.com/Abulila/tpccbench/internal/tpccload"
	"github.com/Abulila/tpccbench/internal/tpccrand"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	rng := tpccrand.New(cfg.Seed, sugar)
	sysClock := clock.NewSystemClock()
	tables := tpcc.New(logger)

	loadStart := time.Now()
	loader := tpccload.New(tables, rng, sysClock, sugar)
	loader.LoadItems()
	for w := int32(1); w <= int32(cfg.NumWarehouse); w++ {
		loader.LoadWarehouse(w)
	}
	loadElapsed := time.Since(loadStart)

	driver := tpccdriver.New(tables, rng, sysClock, int32(cfg.NumWarehouse), sugar)

	runStart := time.Now()
	counters := driver.Run(cfg.NumTransactions)
	runElapsed := time.Since(runStart)

	counters.LogSummary(sugar)

	fmt.Printf("load time: %s\n", loadElapsed)
	total := counters.Total()
	tps := float64(total) / runElapsed.Seconds()
	fmt.Printf("%d transactions in %s = %.2f txns/s\n", total, runElapsed, tps)
}
