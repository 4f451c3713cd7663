package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"arctic-room/internal/room"
)

func main() {
	n := flag.Int("n", 16, "room size")
	flips := flag.Int("flips", -1, "free moves per replica (negative: room volume)")
	seeds := flag.Int("replicas", 8, "replicas per pattern")
	firstSeed := flag.Int64("seed", 1, "seed of the first replica")
	patternList := flag.String("patterns", "", "comma-separated patterns (default: all)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	patterns := room.Patterns()
	if *patternList != "" {
		patterns = patterns[:0]
		for _, name := range strings.Split(*patternList, ",") {
			p, err := room.ParsePattern(strings.TrimSpace(name))
			if err != nil {
				log.Fatalf("patterns: %v", err)
			}
			patterns = append(patterns, p)
		}
	}

	base := room.DefaultConfig()
	base.N = *n
	base.Flips = *flips
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	replicas := buildReplicas(patterns, *seeds, *firstSeed)
	fmt.Printf("Sweeping %d replicas (%d workers, N=%d, %d moves each for random_half)\n",
		len(replicas), *workers, base.N, room.BudgetFor(base.N, room.PatternRandomHalf, base.Flips).Total)

	start := time.Now()
	results := sweep(ctx, base, replicas, *workers)
	elapsed := time.Since(start)

	for _, r := range results {
		if r.err != nil {
			fmt.Printf("%s seed=%d failed: %v\n", r.pattern, r.seed, r.err)
		}
	}
	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, s := range summarize(results) {
		fmt.Println(s)
	}
	if ctx.Err() != nil {
		os.Exit(1)
	}
}
