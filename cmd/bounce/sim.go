package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/kinematics"
	"github.com/vovakirdan/bounce-arcade/internal/loop"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

var (
	flagSimTicks    int
	flagSimWidth    float64
	flagSimHeight   float64
	flagSimEvery    int
	flagSimRecord   bool
	flagSimRealtime bool
	flagSimConfig   string
	flagSimPreset   string
	flagSimCatchUp  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the shape simulator without a terminal UI",
	Long: `Run the bouncing-shapes simulator headless and log its statistics.

By default ticks run as fast as possible. With --realtime they are paced
at --fps, and Ctrl+C stops the run early. With --record the run summary
is stored and can be listed with 'bounce runs'.

Examples:
  bounce sim --ticks 3600
  bounce sim --preset moon --ticks 1200 --record
  bounce sim --realtime --log-level debug --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 40, "Arena width")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 23, "Arena height")
	simCmd.Flags().IntVar(&flagSimEvery, "report-every", 60, "Log statistics every N ticks (0 = only at the end)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Store the run summary in the database")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom bounce config YAML")
	simCmd.Flags().StringVar(&flagSimPreset, "preset", "", "Physics preset: "+presetList())
	simCmd.Flags().IntVar(&flagSimCatchUp, "catch-up", loop.DefaultMaxCatchUp, "Most ticks run per frame in --realtime mode before backlog is dropped")
}

// simOptions describes one headless run.
type simOptions struct {
	Config      config.BounceConfig
	Width       float64
	Height      float64
	Seed        int64
	Ticks       int
	ReportEvery int
	Realtime    bool
	FPS         int
	MaxCatchUp  int
}

// simulate runs the simulator and returns a summary of the final state.
// A cancelled realtime run is summarised up to the last completed tick.
func simulate(ctx context.Context, opts simOptions, logger *log.Logger) (storage.RunRecord, error) {
	params, err := opts.Config.Params()
	if err != nil {
		return storage.RunRecord{}, err
	}
	sim, err := kinematics.New(params, kinematics.NewArena(opts.Width, opts.Height), opts.Seed)
	if err != nil {
		return storage.RunRecord{}, err
	}

	logger.Info("simulation started",
		"bodies", params.Count, "shape", params.Shape,
		"gravity", params.Gravity, "restitution", params.Restitution,
		"arena", fmt.Sprintf("%gx%g", opts.Width, opts.Height), "seed", opts.Seed)

	report := func(st kinematics.Stats) {
		logger.Info("tick", "tick", st.Tick, "resting", st.Resting,
			"kinetic", fmt.Sprintf("%.3f", st.Kinetic), "fastest", fmt.Sprintf("%.3f", st.Fastest))
	}

	step := func() error {
		if sim.Stats().Tick >= opts.Ticks {
			return loop.ErrStop
		}
		sim.Tick()
		if opts.ReportEvery > 0 && sim.Stats().Tick%opts.ReportEvery == 0 {
			report(sim.Stats())
		}
		return nil
	}

	start := time.Now()
	if opts.Realtime {
		clock := loop.NewClock(opts.FPS, loop.WithMaxCatchUp(opts.MaxCatchUp), loop.WithLogger(logger))
		err = clock.Run(ctx, step)
		if err != nil && errors.Is(err, ctx.Err()) {
			logger.Warn("simulation interrupted", "tick", sim.Stats().Tick)
			err = nil
		}
		logger.Debug("clock", "ticks", clock.Ticks(), "dropped", clock.Dropped())
	} else {
		for err == nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				logger.Warn("simulation interrupted", "tick", sim.Stats().Tick)
				break
			}
			err = step()
		}
		if errors.Is(err, loop.ErrStop) {
			err = nil
		}
	}
	if err != nil {
		return storage.RunRecord{}, err
	}

	st := sim.Stats()
	report(st)

	encoded, err := yaml.Marshal(opts.Config)
	if err != nil {
		return storage.RunRecord{}, fmt.Errorf("sim: encode params: %w", err)
	}

	return storage.RunRecord{
		Toy:      "bounce",
		Seed:     opts.Seed,
		Ticks:    st.Tick,
		Bodies:   st.Bodies,
		Resting:  st.Resting,
		Kinetic:  st.Kinetic,
		Params:   string(encoded),
		Duration: time.Since(start),
	}, nil
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newLogger("sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadBounce(flagSimConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyBouncePreset(&cfg, config.BouncePreset(flagSimPreset)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, err := simulate(ctx, simOptions{
		Config:      cfg,
		Width:       flagSimWidth,
		Height:      flagSimHeight,
		Seed:        seed,
		Ticks:       flagSimTicks,
		ReportEvery: flagSimEvery,
		Realtime:    flagSimRealtime,
		FPS:         flagFPS,
		MaxCatchUp:  flagSimCatchUp,
	}, logger)
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"ticks", rec.Ticks, "bodies", rec.Bodies, "resting", rec.Resting,
		"kinetic", fmt.Sprintf("%.3f", rec.Kinetic), "elapsed", rec.Duration.Round(time.Millisecond))

	if !flagSimRecord {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(rec)
	if err != nil {
		logger.Error("could not record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id)
}
