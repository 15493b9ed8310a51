package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/floydwarshall"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/snapshot"
	"github.com/katalvlaran/stepviz/telemetry"
	"github.com/katalvlaran/stepviz/toposort"
	"github.com/katalvlaran/stepviz/trace"
)

// ErrNoAlgorithm is returned when neither an argument nor the scenario names
// an algorithm.
var ErrNoAlgorithm = errors.New("no algorithm given; see 'stepviz list'")

// barWidth is the length of the longest array bar.
const barWidth = 40

// flagKeys binds command-line flags to configuration keys.
var flagKeys = map[string]string{
	"speed":        "run.speed",
	"size":         "run.size",
	"seed":         "run.seed",
	"heap":         "run.heap",
	"heuristic":    "astar.heuristic",
	"diagonal":     "astar.diagonal",
	"weight-cost":  "astar.weight_cost",
	"rows":         "astar.rows",
	"cols":         "astar.cols",
	"nodes":        "graph.nodes",
	"start":        "graph.start",
	"check-steps":  "graph.check_steps",
	"metrics-addr": "metrics.addr",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

type signalNotifier func(chan<- os.Signal)

// RunCommand holds flags and injectable dependencies of `stepviz run`.
type RunCommand struct {
	v        *viper.Viper
	scenario string
	target   int
	noFrames bool
	color    bool
	clear    bool

	clock  control.Clock
	notify signalNotifier
}

// run is the per-invocation state shared by the dispatch helpers.
type run struct {
	cfg      *config.Config
	entry    registry.Entry
	scenario *builder.Scenario
	params   registry.Params
	rt       *control.Runtime
	out      *render.Renderer
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	showAll  bool
	steps    int
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return newRunCommandWithDeps(control.RealClock{}, func(c chan<- os.Signal) {
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	})
}

func newRunCommandWithDeps(clock control.Clock, notify signalNotifier) *cobra.Command {
	rc := &RunCommand{v: config.New(), clock: clock, notify: notify}

	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Animate one algorithm",
		Long: `Animate one algorithm on generated or scenario data.

Live algorithms print a frame after every step; trace algorithms compute the
whole run first and replay it at the same pace. Ctrl-C stops the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rc.run,
	}

	f := cmd.Flags()
	f.Duration("speed", 50*time.Millisecond, "Delay between steps")
	f.Int("size", builder.DefaultArraySize, "Generated array size")
	f.Int64("seed", 0, "Random seed (0 = time-based)")
	f.Bool("heap", false, "Use heap-backed queues for astar and dijkstra")
	f.String("heuristic", astar.Manhattan.String(), "A* heuristic: manhattan, euclidean, chebyshev, octile")
	f.Bool("diagonal", false, "Allow diagonal moves in A*")
	f.Float64("weight-cost", astar.DefaultWeightCost, "Cost multiplier for entering weighted terrain")
	f.Int("rows", builder.DefaultGridRows, "Generated grid rows")
	f.Int("cols", builder.DefaultGridCols, "Generated grid columns")
	f.Int("nodes", builder.DefaultGraphNodes, "Generated graph node count")
	f.Int("start", 0, "Dijkstra start node id")
	f.Bool("check-steps", true, "Record Floyd–Warshall checking steps")
	f.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	f.String("log-level", "warn", "Log level: debug, info, warn, error")
	f.String("log-format", "text", "Log format: text, json")
	for flag, key := range flagKeys {
		_ = rc.v.BindPFlag(key, f.Lookup(flag))
	}

	f.StringVar(&rc.scenario, "scenario", "", "YAML scenario file with the input data")
	f.IntVar(&rc.target, "target", 0, "Search target (default: a random element)")
	f.BoolVar(&rc.noFrames, "no-frames", false, "Print status lines and the summary only")
	f.BoolVar(&rc.color, "color", false, "Colour the output")
	f.BoolVar(&rc.clear, "clear", false, "Clear the screen before each frame")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadWith(rc.v, configPath)
	if err != nil {
		return err
	}

	var sc *builder.Scenario
	if rc.scenario != "" {
		loaded, loadErr := builder.LoadScenario(rc.scenario)
		if loadErr != nil {
			return loadErr
		}
		sc = &loaded
	}

	name := ""
	switch {
	case len(args) > 0:
		name = args[0]
	case sc != nil:
		name = sc.Algorithm
	}
	if name == "" {
		return ErrNoAlgorithm
	}
	entry, err := registry.LookupName(name)
	if err != nil {
		return err
	}

	logger, err := telemetry.NewLogger(cfg.Logging.Level, cfg.Logging.Format == "json", cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	metrics := telemetry.NewMetrics()
	if cfg.Metrics.Addr != "" {
		addr, errc, serveErr := metrics.Serve(ctx, cfg.Metrics.Addr)
		if serveErr != nil {
			return serveErr
		}
		logger.Info("serving metrics", slog.String("addr", addr))
		go func() {
			for e := range errc {
				logger.Error("metrics server", slog.Any("error", e))
			}
		}()
	}

	signals := control.NewSignals()
	defer rc.watchSignals(signals)()

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting run", slog.String("algorithm", entry.ID.String()), slog.Int64("seed", seed))

	out := render.New(cmd.OutOrStdout(), render.WithColor(rc.color), render.WithClear(rc.clear))
	r := &run{
		cfg:      cfg,
		entry:    entry,
		scenario: sc,
		params:   rc.params(cmd, cfg, sc, seed),
		out:      out,
		metrics:  metrics,
		logger:   logger,
		showAll:  !rc.noFrames,
	}
	r.rt = control.NewRuntime(
		control.WithSignals(signals),
		control.WithSpeed(cfg.Run.Speed),
		control.WithClock(rc.clock),
		control.WithLogger(logger),
		control.WithStatusSink(func(msg string) { _ = out.Status(msg) }),
	)

	started := time.Now()
	outcome, err := r.dispatch(ctx)
	elapsed := time.Since(started)
	if err != nil {
		metrics.ObserveRun(entry.ID.String(), telemetry.OutcomeFailed, elapsed)

		return fmt.Errorf("%s: %w", entry.ID, err)
	}

	label := telemetry.OutcomeCompleted
	if outcome.Cancelled {
		label = telemetry.OutcomeCancelled
	}
	metrics.ObserveRun(entry.ID.String(), label, elapsed)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, outcome.Summary)
	fmt.Fprintln(w, render.Summary(entry.ID.String(), label, r.steps, elapsed))

	return nil
}

func (rc *RunCommand) params(cmd *cobra.Command, cfg *config.Config, sc *builder.Scenario, seed int64) registry.Params {
	p := registry.DefaultParams()
	p.Rand = rand.New(rand.NewSource(seed))
	p.Heuristic, _ = astar.ParseHeuristic(cfg.AStar.Heuristic)
	p.Diagonal = cfg.AStar.Diagonal
	p.WeightCost = cfg.AStar.WeightCost
	p.Heap = cfg.Run.Heap
	p.StartNode = cfg.Graph.Start
	p.CheckSteps = cfg.Graph.CheckSteps

	switch {
	case cmd.Flags().Changed("target"):
		p.Target, p.HasTarget = rc.target, true
	case sc != nil && sc.Target != nil:
		p.Target, p.HasTarget = *sc.Target, true
	}
	if sc != nil && sc.Graph != nil && !cmd.Flags().Changed("start") {
		p.StartNode = sc.Start
	}

	return p
}

// watchSignals stops the run on SIGINT or SIGTERM. The returned function
// detaches the handler.
func (rc *RunCommand) watchSignals(s *control.Signals) func() {
	if rc.notify == nil {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	rc.notify(ch)
	done := make(chan struct{})
	go func() {
		select {
		case <-ch:
			s.Stop()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

func (r *run) dispatch(ctx context.Context) (registry.Outcome, error) {
	if r.entry.Kind == registry.Trace {
		return r.replay(ctx)
	}
	name := r.entry.ID.String()

	switch r.entry.Input {
	case registry.GridInput:
		g, start, target, err := r.grid()
		if err != nil {
			return registry.Outcome{}, err
		}
		publish := telemetry.Counting(r.metrics, name, func(snap *gridgraph.Grid) {
			r.frame(func() string { return r.out.Grid(snap, start, target) })
		})

		return r.entry.Grid(ctx, g, start, target, publish, r.rt, r.params)

	case registry.GraphInput:
		g, err := r.graph(builder.DAG)
		if err != nil {
			return registry.Outcome{}, err
		}
		publish := telemetry.Counting(r.metrics, name, func(f toposort.Frame) {
			r.frame(func() string { return r.out.TopoFrame(f) })
		})

		return r.entry.Graph(ctx, g, publish, r.rt, r.params)

	default:
		arr, err := r.array()
		if err != nil {
			return registry.Outcome{}, err
		}
		publish := telemetry.Counting(r.metrics, name, func(a []snapshot.Element) {
			r.frame(func() string { return r.out.Bars(a, barWidth) })
		})

		return r.entry.Array(ctx, arr, publish, r.rt, r.params)
	}
}

// frame counts a step and prints it unless frames are suppressed.
func (r *run) frame(content func() string) {
	r.steps++
	if !r.showAll {
		return
	}
	if err := r.out.Frame(content()); err != nil {
		r.logger.Warn("write frame", slog.Any("error", err))
	}
}

func (r *run) array() ([]snapshot.Element, error) {
	if r.scenario != nil && len(r.scenario.Array) > 0 {
		return r.scenario.Elements(), nil
	}

	return builder.Array(builder.WithRand(r.params.Rand), builder.WithSize(r.cfg.Run.Size))
}

func (r *run) grid() (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	if r.scenario != nil && len(r.scenario.Grid) > 0 {
		return r.scenario.GridInput()
	}
	a := r.cfg.AStar

	return builder.Grid(
		builder.WithRand(r.params.Rand),
		builder.WithGridSize(a.Rows, a.Cols),
		builder.WithWallDensity(a.WallDensity),
		builder.WithWeightDensity(a.WeightDensity),
	)
}

func (r *run) graph(generate func(int, ...builder.Option) (graph.Graph, error)) (graph.Graph, error) {
	if r.scenario != nil && r.scenario.Graph != nil {
		return r.scenario.GraphInput()
	}

	return generate(r.cfg.Graph.Nodes, builder.WithRand(r.params.Rand))
}

func (r *run) replay(ctx context.Context) (registry.Outcome, error) {
	g, err := r.graph(builder.Weighted)
	if err != nil {
		return registry.Outcome{}, err
	}
	pb, err := r.entry.Generate(g, r.params)
	if err != nil {
		return registry.Outcome{}, err
	}
	name := r.entry.ID.String()

	var (
		played    int
		completed bool
		final     string
	)
	switch res := pb.Result().(type) {
	case *dijkstra.Result:
		played, completed = trace.Play(ctx, trace.NewCursor(res.Steps), r.rt, func(_ int, s dijkstra.Step) {
			r.metrics.ObserveStep(name)
			r.frame(func() string { return r.out.DijkstraStep(s, g) })
		})
		final = r.out.DijkstraPaths(res, g)
	case *floydwarshall.Result:
		played, completed = trace.Play(ctx, trace.NewCursor(res.Steps), r.rt, func(_ int, s floydwarshall.Step) {
			r.metrics.ObserveStep(name)
			r.frame(func() string { return r.out.FloydWarshallStep(s, res, g) })
		})
		if last, ok := res.Steps.Last(); ok {
			final = r.out.FloydWarshallStep(last, res, g)
		}
	default:
		return registry.Outcome{}, fmt.Errorf("unsupported trace result %T", res)
	}

	if completed {
		if err := writeLine(r.out, final); err != nil {
			return registry.Outcome{}, err
		}
	}

	return registry.Outcome{
		Success:   completed,
		Cancelled: !completed,
		Summary:   fmt.Sprintf("replayed %d of %d steps", played, pb.Len()),
	}, nil
}

func writeLine(out *render.Renderer, s string) error {
	if s == "" {
		return nil
	}

	return out.Frame(s)
}
