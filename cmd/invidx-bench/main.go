// Command invidx-bench drives write and read workloads against a
// disk-backed inverted index and reports latency/throughput.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/intellect4all/invidx/internal/bench"
	"github.com/intellect4all/invidx/invertedindex"
	"github.com/intellect4all/invidx/row"
)

func main() {
	numTokens := flag.Int("tokens", 2000, "Number of distinct tokens")
	numInserts := flag.Int("inserts", 500000, "Number of postings to insert")
	dist := flag.String("distribution", "zipfian", "Token distribution: uniform, zipfian, sequential, latest")
	seed := flag.Int64("seed", 1, "Random seed")
	dataDir := flag.String("dir", "", "Directory for the index files (default: a temp dir, removed on exit)")
	flag.Parse()

	fmt.Println("Inverted Index Benchmark")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Tokens: %d  Inserts: %d  Distribution: %s\n\n", *numTokens, *numInserts, *dist)

	dir := *dataDir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "invidx-bench-*")
		if err != nil {
			fmt.Printf("failed to create temp dir: %v\n", err)
			os.Exit(1)
		}
		defer os.RemoveAll(dir)
	}

	idx, err := invertedindex.Open[row.PairRow](dir + "/bench-index")
	if err != nil {
		fmt.Printf("failed to open index: %v\n", err)
		os.Exit(1)
	}
	defer idx.Close()

	gen := bench.NewTokenGenerator(*numTokens, bench.TokenDistribution(*dist), *seed)
	hist := bench.NewLatencyHistogram()

	start := time.Now()
	for i := 0; i < *numInserts; i++ {
		token := gen.Next()
		opStart := time.Now()
		idx.Insert(token, row.PairRow{Doc: uint32(i), Val: uint32(i)})
		hist.Record(time.Since(opStart))
	}
	elapsed := time.Since(start)

	if err := idx.Commit(); err != nil {
		fmt.Printf("commit failed: %v\n", err)
		os.Exit(1)
	}

	stats := hist.Stats()
	fmt.Println("--- Insert results ---")
	fmt.Printf("Throughput: %.0f ops/sec\n", float64(*numInserts)/elapsed.Seconds())
	fmt.Printf("Min:  %8s\n", stats.Min)
	fmt.Printf("Mean: %8s\n", stats.Mean)
	fmt.Printf("P50:  %8s\n", stats.P50)
	fmt.Printf("P95:  %8s\n", stats.P95)
	fmt.Printf("P99:  %8s\n", stats.P99)
	fmt.Printf("P999: %8s\n", stats.P999)
	fmt.Printf("Max:  %8s\n", stats.Max)
	fmt.Printf("\nMemory used by page caches: %d bytes\n", idx.CurrentMemoryUsed())

	printSampleCounts(idx, *numTokens)
}

func printSampleCounts(idx *invertedindex.InvertedIndex[row.PairRow], numTokens int) {
	fmt.Println("\n--- Sample token counts ---")
	step := numTokens / 10
	if step == 0 {
		step = 1
	}
	for token := 0; token < numTokens; token += step {
		fmt.Printf("token %6d: count=%d\n", token, idx.Count(uint64(token)))
	}
}
