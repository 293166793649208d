// Command astarmap generates a random planar map and answers shortest-path
// queries on it with A*.
//
//	astarmap --seed 7 route --from 3 --to 42
//	astarmap --seed 7 route --from-xy 120,310 --to-xy 700,90 --format json --verify
//	astarmap --seed 7 map --format yaml > map.yaml
//	astarmap --seed 7 components
//	astarmap --seed 7 backbone --method prim --root 0
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/astarmap/builder"
	"github.com/katalvlaran/astarmap/config"
	"github.com/katalvlaran/astarmap/core"
	"github.com/katalvlaran/astarmap/metrics"
)

type cli struct {
	Config   string `help:"YAML configuration file." type:"path" env:"ASTARMAP_CONFIG" placeholder:"PATH"`
	Seed     string `help:"Generator seed; empty for a wall-clock seed." placeholder:"N"`
	Nodes    int    `help:"Number of nodes (0 keeps the configured value)."`
	Edges    int    `help:"Number of edges (-1 keeps the configured value)." default:"-1"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)." placeholder:"LEVEL"`
	Dev      bool   `help:"Human-readable development logging."`
	Metrics  bool   `help:"Dump Prometheus metrics to stderr before exiting."`

	Route      routeCmd      `cmd:"" help:"Find the A* route between two nodes."`
	Map        mapCmd        `cmd:"" help:"Print the generated map."`
	Components componentsCmd `cmd:"" help:"List the connected components of the generated map."`
	Backbone   backboneCmd   `cmd:"" help:"Print the minimum spanning forest of the generated map."`
}

// env carries the resolved settings and shared services into commands.
type env struct {
	ctx    context.Context
	cfg    *config.Config
	log    *zap.Logger
	rec    *metrics.Recorder
	stdout io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "astarmap:", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, resolves configuration and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("astarmap"),
		kong.Description("Random planar maps and A* shortest paths."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := params.resolve()
	if err != nil {
		return err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	e := &env{
		ctx:    ctx,
		cfg:    cfg,
		log:    log,
		rec:    metrics.NewRecorder(reg),
		stdout: stdout,
	}

	runErr := kctx.Run(e)
	if params.Metrics {
		if err := metrics.WriteText(stderr, reg); err != nil {
			log.Warn("metrics dump failed", zap.Error(err))
		}
	}

	return runErr
}

// resolve loads the configuration file and environment, then applies flag
// overrides and validates the merged result.
func (c *cli) resolve() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Seed != "" {
		seed, err := strconv.ParseInt(c.Seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --seed %q: %v", config.ErrInvalidConfig, c.Seed, err)
		}
		cfg.Seed = &seed
	}
	if c.Nodes > 0 {
		cfg.Nodes = c.Nodes
	}
	if c.Edges >= 0 {
		cfg.Edges = c.Edges
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.Dev {
		cfg.Log.Development = true
	}
	if c.Route.MaxExpansions >= 0 {
		cfg.MaxExpansions = c.Route.MaxExpansions
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// generate builds the map described by the configuration and records the
// generation outcome.
func (e *env) generate() (*core.Graph, error) {
	var st builder.Stats
	opts := append(e.cfg.BuilderOptions(e.log), builder.WithStats(&st))

	g, err := builder.RandomMap(e.cfg.Nodes, e.cfg.Edges, opts...)
	e.rec.ObserveGeneration(st, err)
	if err != nil {
		return nil, err
	}
	e.log.Info("map generated",
		zap.Int("nodes", g.Len()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("attempts", st.Attempts),
		zap.Int("rejected", st.Rejected),
	)

	return g, nil
}
