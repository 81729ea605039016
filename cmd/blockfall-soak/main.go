package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 0, "Seed for pieces and input; 0 picks one at random.")
	maxGames := flag.Int("sessions", 0, "Stop after this many finished games; 0 runs for the whole duration.")
	cols := flag.Int("cols", 10, "Grid columns.")
	rows := flag.Int("rows", 20, "Grid rows.")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Columns = *cols
	cfg.Rows = *rows
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Printf("Starting soak with seed %d...\n", *seed)

	soak := NewSoak(cfg, *seed)
	report := &Report{
		Duration: *duration,
		Seed:     *seed,
		Columns:  cfg.Columns,
		Rows:     cfg.Rows,
		MaxGames: *maxGames,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			soak.Step()
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

			if *maxGames > 0 && len(soak.Games()) >= *maxGames {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Collect(soak)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.ViolationCount > 0 {
		log.Fatalf("Soak found %d invariant violations.", report.ViolationCount)
	}
	log.Println("Soak complete.")
}
