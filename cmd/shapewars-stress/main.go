// Command shapewars-stress drives the engine on the headless surface as fast as it
// will go, feeding it random input, and prints a timing and memory report.
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

	"github.com/plus3/shapewars/config"
	"github.com/plus3/shapewars/game"
	"github.com/plus3/shapewars/surface/headless"
)

var movementKeys = []game.Key{game.KeyUp, game.KeyDown, game.KeyLeft, game.KeyRight}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "assets/config.txt", "Path to the game configuration file.")
	spawnInterval := flag.Int("spawn-interval", 1, "Override the enemy spawn interval in frames; 0 keeps the configured value.")
	seed := flag.Uint64("seed", 1, "Random seed for the engine and the input script.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting shapewars stress test...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *spawnInterval > 0 {
		cfg.Enemy.SpawnInterval = *spawnInterval
	}

	surface := headless.New(cfg.Window.Width, cfg.Window.Height)
	engine := game.New(cfg, surface, game.NewRandom(*seed))
	script := rand.New(rand.NewPCG(*seed, *seed^0x5eed))

	report := &Report{
		Duration:       *duration,
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		SpawnInterval:  cfg.Enemy.SpawnInterval,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for engine.State() != game.Stopped {
		select {
		case <-ctx.Done():
			break Loop
		default:
			surface.Push(randomInput(script)...)

			updateStart := time.Now()
			engine.Tick()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = engine.Frame()
	report.LiveEntities = engine.Entities().Len()
	report.Systems = engine.Stats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// randomInput presses or releases a random movement key on about a third of frames
// and toggles pause roughly once every 500 frames.
func randomInput(r *rand.Rand) []game.Event {
	var events []game.Event
	if r.IntN(3) == 0 {
		key := movementKeys[r.IntN(len(movementKeys))]
		if r.IntN(2) == 0 {
			events = append(events, game.Pressed(key))
		} else {
			events = append(events, game.Released(key))
		}
	}
	if r.IntN(500) == 0 {
		events = append(events, game.Pressed(game.KeyPause))
	}
	return events
}
