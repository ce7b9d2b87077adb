package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cachesim/cachesim/sim"
	"github.com/cachesim/cachesim/sim/pattern"
	"github.com/cachesim/cachesim/sim/trace"
)

var (
	// CLI flags for cache geometry
	cacheSizeBytes int    // Total cache capacity in bytes
	blockSizeBytes int    // Cache block (line) size in bytes
	ways           int    // Associativity (ways per set)
	policy         string // Replacement policy name
	seed           int64  // Master seed for randomized behavior
	logLevel       string // Log verbosity level

	// CLI flags for address generation
	patternName  string // Access pattern name
	startAddr    uint64 // First address for sequential/stride/looping patterns
	stride       uint64 // Address increment for the stride pattern
	loopLength   int    // Number of addresses in the looping window
	loopStep     uint64 // Address increment inside the looping window
	repeats      int    // Full passes of the looping window (0 = infinite)
	addressSpace uint64 // Upper bound for random address generation
	accesses     int    // Number of accesses to simulate
	tracePath    string // Trace file to replay instead of a synthetic pattern

	// CLI flags for output
	snapshotSets int    // Number of sets to render after the run
	scenarioPath string // YAML scenario preset file
	scenarioName string // Preset name within the scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Set-associative CPU cache simulator",
}

// runCmd executes one simulation using parameters from CLI flags or a
// scenario preset.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cache simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			CacheSizeBytes: cacheSizeBytes,
			BlockSizeBytes: blockSizeBytes,
			Associativity:  ways,
			Policy:         policy,
			Seed:           seed,
		}

		params := PatternParams{
			Pattern:      patternName,
			Start:        startAddr,
			Stride:       stride,
			LoopLength:   loopLength,
			LoopStep:     loopStep,
			Repeats:      repeats,
			AddressSpace: addressSpace,
			Accesses:     accesses,
		}

		// A scenario preset overrides both geometry and pattern parameters.
		if scenarioPath != "" {
			scenario, err := LoadScenario(scenarioPath, scenarioName)
			if err != nil {
				logrus.Fatalf("unable to read scenario config; %v", err)
			}
			cfg, params = scenario.Apply(cfg, params)
		}

		engine, err := sim.NewEngine(cfg)
		if err != nil {
			logrus.Fatalf("Invalid cache configuration: %v", err)
		}

		if tracePath != "" {
			f, err := os.Open(tracePath)
			if err != nil {
				logrus.Fatalf("Failed to open trace file: %v", err)
			}
			err = engine.LoadTrace(f)
			_ = f.Close()
			if err != nil {
				logrus.Fatalf("Failed to load trace: %v", err)
			}
		} else {
			source, err := BuildSource(params, cfg)
			if err != nil {
				logrus.Fatalf("Invalid access pattern: %v", err)
			}
			engine.SetSource(source)
		}

		logrus.Infof("Starting simulation: pattern=%s accesses=%d seed=%d", params.Pattern, params.Accesses, seed)

		executed := engine.Run(params.Accesses)
		if executed < params.Accesses {
			logrus.Warnf("address source exhausted after %d of %d accesses", executed, params.Accesses)
		}

		stats := engine.Stats()
		stats.Print()
		PrintSnapshot(os.Stdout, engine.Snapshot(snapshotSets))

		logrus.Info("Simulation complete.")
	},
}

// PatternParams collects the address generation knobs so scenario presets
// can override them as a group.
type PatternParams struct {
	Pattern      string
	Start        uint64
	Stride       uint64
	LoopLength   int
	LoopStep     uint64
	Repeats      int
	AddressSpace uint64
	Accesses     int
}

// BuildSource constructs the address source for the named pattern.
// The stride-2 and stride-4 presets from the original tool map to strides of
// 2x and 4x the block size.
func BuildSource(p PatternParams, cfg sim.Config) (sim.AddressSource, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	switch p.Pattern {
	case "sequential":
		return pattern.NewSequential(p.Start, uint64(cfg.BlockSizeBytes)), nil
	case "stride":
		if p.Stride == 0 {
			return nil, fmt.Errorf("stride pattern requires a non-zero --stride")
		}
		return pattern.NewStride(p.Start, p.Stride), nil
	case "stride-2":
		return pattern.NewStride(p.Start, 2*uint64(cfg.BlockSizeBytes)), nil
	case "stride-4":
		return pattern.NewStride(p.Start, 4*uint64(cfg.BlockSizeBytes)), nil
	case "random":
		return pattern.NewRandom(p.AddressSpace, rng.SeedForSubsystem(sim.SubsystemPattern)), nil
	case "looping":
		if p.LoopLength <= 0 {
			return nil, fmt.Errorf("looping pattern requires a positive --loop-length")
		}
		return pattern.NewLooping(p.Start, p.LoopLength, p.LoopStep, p.Repeats), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q; valid: sequential, stride, stride-2, stride-4, random, looping", p.Pattern)
	}
}

// parseCmd validates a trace file without running a simulation.
var parseCmd = &cobra.Command{
	Use:   "parse [trace file]",
	Short: "Validate a trace file and report its address count",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addrs, err := trace.ParseFile(args[0])
		if err != nil {
			logrus.Fatalf("Trace rejected: %v", err)
		}
		fmt.Printf("%s: %d addresses\n", args[0], len(addrs))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&cacheSizeBytes, "cache-size", 1024, "Total cache size in bytes (power of two, 1KiB-16KiB)")
	runCmd.Flags().IntVar(&blockSizeBytes, "block-size", 64, "Block size in bytes (power of two)")
	runCmd.Flags().IntVar(&ways, "ways", 4, "Associativity (1-8)")
	runCmd.Flags().StringVar(&policy, "policy", "lru", "Replacement policy (lru, fifo, random)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random address generation and random replacement")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Address generation
	runCmd.Flags().StringVar(&patternName, "pattern", "random", "Access pattern (sequential, stride, stride-2, stride-4, random, looping)")
	runCmd.Flags().Uint64Var(&startAddr, "start", 0, "First address for sequential/stride/looping patterns")
	runCmd.Flags().Uint64Var(&stride, "stride", 0, "Address increment for the stride pattern")
	runCmd.Flags().IntVar(&loopLength, "loop-length", 16, "Number of addresses in the looping window")
	runCmd.Flags().Uint64Var(&loopStep, "loop-step", 4, "Address increment inside the looping window")
	runCmd.Flags().IntVar(&repeats, "repeats", 0, "Full passes of the looping window (0 = infinite)")
	runCmd.Flags().Uint64Var(&addressSpace, "address-space", pattern.DefaultAddressSpace, "Upper bound for random addresses")
	runCmd.Flags().IntVar(&accesses, "accesses", 1000, "Number of accesses to simulate")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Trace file to replay (one hex address per line)")

	// Output
	runCmd.Flags().IntVar(&snapshotSets, "snapshot-sets", 8, "Number of sets to display after the run")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario preset file")
	runCmd.Flags().StringVar(&scenarioName, "scenario-name", "", "Preset name within the scenario file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(parseCmd)
}
