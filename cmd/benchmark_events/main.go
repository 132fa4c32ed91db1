package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/delaneyj/pushparty/flow"
	"github.com/delaneyj/pushparty/pkg/metrics"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey = "repeats"
	metricsKey = "metrics"
)

type benchmarkConfig struct {
	name       string // friendly name, should be unique
	width      int    // parallel pipelines hanging off the same trigger
	stages     int    // map stages per pipeline
	iterations int64  // values fired into the trigger
	expected   int64  // sum of all sink values, for verification
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_events",
		Usage: "Measure throughput of event pipelines",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per configuration, the best one is reported",
				Value: 5,
			},
			&cli.BoolFlag{
				Name:  metricsKey,
				Usage: "Print the graph counters of the last run",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting event benchmark, please wait...")
	defer log.Print("Finished event benchmark")

	cfgs := []benchmarkConfig{
		{name: "single filter", width: 1, stages: 0, iterations: 1_000_000, expected: 500_000},
		{name: "deep pipeline", width: 1, stages: 50, iterations: 100_000, expected: 50_000 * 51},
		{name: "wide fan-out", width: 100, stages: 2, iterations: 10_000, expected: 100 * 5_000 * 3},
		{name: "combine barrier", width: 2, stages: 1, iterations: 500_000, expected: 250_000 * 4},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"test", "width", "stages", "nTimes", "time", "updateRate", "emissions"})

	repeats := int(cmd.Uint(repeatsKey))
	var last *flow.ReactiveSystem
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		best := time.Hour
		var stats flow.Stats
		for i := 0; i < repeats; i++ {
			rs, duration, sum := runOnce(cfg)
			if sum != cfg.expected {
				return fmt.Errorf("%s: expected sum %d, got %d", cfg.name, cfg.expected, sum)
			}
			if duration < best {
				best = duration
				stats = rs.Stats()
			}
			last = rs
		}

		updateRate := float64(cfg.iterations) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.width),
			fmt.Sprint(cfg.stages),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best),
			humanize.Comma(int64(updateRate)) + "/ms",
			humanize.Comma(int64(stats.Emissions)),
		})
	}
	table.Render()

	if cmd.Bool(metricsKey) && last != nil {
		return printMetrics(last)
	}
	return nil
}

// runOnce builds the graph for cfg, fires every iteration into it and
// returns the sum of what reached the sinks.
func runOnce(cfg benchmarkConfig) (*flow.ReactiveSystem, time.Duration, int64) {
	rs := flow.NewReactiveSystem()
	defer rs.Close()

	var sum int64
	sink := func(v int64) { sum += v }

	src := flow.NewTrigger[int64](rs)
	isOdd := func(v int64) bool { return v%2 == 1 }
	one := func(int64) int64 { return 1 }
	inc := func(v int64) int64 { return v + 1 }

	if cfg.name == "combine barrier" {
		// The right side only fills its slot on odd values, so the barrier
		// releases once every two fires.
		left := flow.Pipe(src, flow.Map(one))
		right := flow.Pipe(src, flow.Compose(flow.Filter(isOdd), flow.Map(func(int64) int64 { return 3 })))
		pairs := flow.CombineAll[int64](left, right)
		flow.Pipe(pairs, flow.Map(func(vs []int64) int64 { return vs[0] + vs[1] })).Connect(sink)
	} else {
		for w := 0; w < cfg.width; w++ {
			e := flow.Pipe(src, flow.Filter(isOdd))
			stage := flow.Pipe(e, flow.Map(one))
			for s := 0; s < cfg.stages; s++ {
				stage = flow.Pipe(stage, flow.Map(inc))
			}
			stage.Connect(sink)
		}
	}

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		src.Fire(i)
	}
	return rs, time.Since(start), sum
}

func printMetrics(rs *flow.ReactiveSystem) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCollector(rs, "benchmark", nil)); err != nil {
		return fmt.Errorf("registering collector: %w", err)
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				v = g.GetValue()
			}
			fmt.Printf("%s %s\n", mf.GetName(), humanize.Comma(int64(v)))
		}
	}
	return nil
}
