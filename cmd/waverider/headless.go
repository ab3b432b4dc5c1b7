package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wave-rider/internal/games/waverider"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
	"github.com/vovakirdan/wave-rider/internal/storage"
)

var (
	flagSimMode    string
	flagSimSeconds float64
	flagSimRuns    int
	flagSimVerbose bool
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot games without a screen",
	Long: `Drive the simulation headlessly with the built-in autopilot and
report how each run went. Runs are deterministic: the same --seed,
--fps and config reproduce the same results.

Examples:
  waverider sim
  waverider sim --runs 10 --seconds 300 --seed 7
  waverider sim --mode timed --difficulty hard --verbose
  waverider sim --save   # record results in the scores database`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", "endless", "Mode: endless or timed")
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 120, "Simulated seconds per run (cap)")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 3, "Number of runs")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every signal")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save finished runs to the scores database")
}

// runStats summarises one headless run.
type runStats struct {
	run     int
	seed    int64
	score   int
	lives   int
	reason  string
	clock   float64
	signals map[sim.Signal]int
}

func runSim(_ *cobra.Command, _ []string) {
	mode, err := waverider.ParseMode(flagSimMode)
	if err != nil {
		fail("%v", err)
	}
	if flagSimRuns <= 0 {
		fail("--runs must be > 0")
	}
	if flagSimSeconds <= 0 || math.IsInf(flagSimSeconds, 0) {
		fail("--seconds must be a positive number")
	}
	if flagFPS <= 0 {
		fail("--fps must be > 0")
	}

	logger := newLogger("waverider-sim")
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	waverider.SetConfigPath(flagConfig)
	waverider.SetDifficultyPreset(flagDifficulty)

	var store *storage.Store
	if flagSimSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	seedBase := flagSeed
	if seedBase == 0 {
		seedBase = 1
	}

	all := make([]runStats, 0, flagSimRuns)
	for i := range flagSimRuns {
		stats, err := simulate(i+1, seedBase+int64(i), mode, logger)
		if err != nil {
			fail("run %d: %v", i+1, err)
		}
		all = append(all, stats)

		logger.Info("run finished",
			"run", stats.run,
			"seed", stats.seed,
			"score", stats.score,
			"lives", stats.lives,
			"end", stats.reason,
			"clock", fmt.Sprintf("%.1fs", stats.clock),
		)

		if store != nil && stats.reason != "" && stats.score > 0 {
			if _, err := store.SaveRun(storage.Run{
				GameID:   waverider.ModeID(mode),
				Score:    stats.score,
				Reason:   stats.reason,
				Duration: stats.clock,
			}); err != nil {
				logger.Warn("could not save run", "run", stats.run, "error", err)
			}
		}
	}

	printReport(mode, all)
}

// simulate plays one run with the autopilot at a fixed step.
func simulate(run int, seed int64, mode sim.Mode, logger *log.Logger) (runStats, error) {
	cfg := waverider.LoadConfig()
	stats := runStats{run: run, seed: seed, signals: make(map[sim.Signal]int)}

	var session *sim.Session
	sink := sim.SinkFunc(func(s sim.Signal) {
		stats.signals[s]++
		if s != sim.SignalSplash {
			logger.Debug("signal",
				"run", run,
				"name", s,
				"clock", fmt.Sprintf("%.2f", session.Clock()),
				"score", session.Score(),
				"lives", session.Lives(),
			)
		}
	})

	session, err := sim.NewSession(sim.Options{Mode: mode, Config: cfg, Seed: seed, Sink: sink})
	if err != nil {
		return stats, err
	}

	pilot := waverider.NewAutopilot()
	dt := 1.0 / float64(flagFPS)
	frame := session.Frame()
	for session.Phase() == sim.PhasePlaying && session.Clock() < flagSimSeconds {
		frame, err = session.Step(sim.TickInput{
			Elapsed:   dt,
			Input:     pilot.Controls(frame),
			ViewportW: cfg.Viewport.Width,
			ViewportH: cfg.Viewport.Height,
		})
		if err != nil {
			return stats, err
		}
	}

	stats.score = session.Score()
	stats.lives = session.Lives()
	stats.clock = session.Clock()
	if session.Phase() == sim.PhaseEnded {
		stats.reason = session.Reason().String()
	}
	return stats, nil
}

func printReport(mode sim.Mode, all []runStats) {
	fmt.Println()
	fmt.Printf("=== Headless Report: %s ===\n", mode)
	fmt.Printf("runs=%d seconds=%.0f fps=%d\n\n", len(all), flagSimSeconds, flagFPS)

	fmt.Printf("  %-3s  %-6s  %-6s  %-5s  %-7s  %-5s  %-9s  %s\n",
		"Run", "Seed", "Score", "Lives", "Shells", "Hits", "End", "Clock")
	var total int
	best := math.MinInt
	for _, s := range all {
		end := s.reason
		if end == "" {
			end = "cap"
		}
		fmt.Printf("  %-3d  %-6d  %-6d  %-5d  %-7d  %-5d  %-9s  %.1fs\n",
			s.run, s.seed, s.score, s.lives,
			s.signals[sim.SignalCollect], s.signals[sim.SignalHit], end, s.clock)
		total += s.score
		best = max(best, s.score)
	}

	fmt.Println()
	fmt.Printf("Best: %d   Average: %.1f\n", best, float64(total)/float64(len(all)))
}
