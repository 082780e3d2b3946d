package main

import (
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-flatqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-flatqueue/pkg/logger"
	"github.com/huynhanx03/go-flatqueue/pkg/settings"
	"github.com/huynhanx03/go-flatqueue/pkg/workload"
)

type simulateOptions struct {
	root          *rootOptions
	names         []string
	workers       int
	operations    int
	growthFactor  float64
	reclaimFactor float64
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{root: root}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the configured workloads and print one report row per workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&opts.names, "workload", "w", nil, "run only the named workloads")
	f.IntVar(&opts.workers, "workers", 0, "override simulation.workers")
	f.IntVar(&opts.operations, "operations", 0, "override the operation count of every workload")
	f.Float64Var(&opts.growthFactor, "growth", 0, "override flat_queue.growth_factor")
	f.Float64Var(&opts.reclaimFactor, "reclaim", 0, "override flat_queue.reclaim_factor")
	return cmd
}

func (o *simulateOptions) run(cmd *cobra.Command) error {
	cfg, err := o.root.load()
	if err != nil {
		return err
	}
	if err := o.apply(&cfg); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("simulation started",
		zap.Int("workloads", len(cfg.Simulation.Workloads)),
		zap.Int("workers", cfg.Simulation.Workers),
		zap.Float64("growth_factor", cfg.FlatQueue.GrowthFactor),
		zap.Float64("reclaim_factor", cfg.FlatQueue.ReclaimFactor),
	)

	start := time.Now()
	reports, err := workload.RunAll(cmd.Context(), cfg.Simulation.Workloads, cfg.Simulation.Workers,
		queue.WithConfig(cfg.FlatQueue),
		queue.WithLogger(log),
	)
	if err != nil {
		log.Error("simulation failed", zap.Error(err))
		return err
	}

	log.Info("simulation finished", zap.Duration("elapsed", time.Since(start)))
	renderReports(cmd.OutOrStdout(), reports)
	return nil
}

// apply merges command-line overrides into cfg and re-validates it.
func (o *simulateOptions) apply(cfg *settings.Config) error {
	if len(o.names) > 0 {
		selected := cfg.Simulation.Workloads[:0:0]
		for _, w := range cfg.Simulation.Workloads {
			if slices.Contains(o.names, w.Name) {
				selected = append(selected, w)
			}
		}
		if len(selected) == 0 {
			return errors.Errorf("no workload matches %v", o.names)
		}
		cfg.Simulation.Workloads = selected
	}
	if o.workers != 0 {
		cfg.Simulation.Workers = o.workers
	}
	if o.operations != 0 {
		for i := range cfg.Simulation.Workloads {
			cfg.Simulation.Workloads[i].Operations = o.operations
		}
	}
	if o.growthFactor != 0 {
		cfg.FlatQueue.GrowthFactor = o.growthFactor
	}
	if o.reclaimFactor != 0 {
		cfg.FlatQueue.ReclaimFactor = o.reclaimFactor
	}
	return cfg.Validate()
}

func renderReports(w io.Writer, reports []workload.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Workload", "Pattern", "Ops", "Final", "Peak Cap", "Max Dead", "Reallocs", "Grows", "Reclaims", "FIFO", "Elapsed"})
	for _, r := range reports {
		table.Append([]string{
			r.Name,
			string(r.Pattern),
			strconv.Itoa(r.Operations),
			strconv.Itoa(r.FinalSize),
			strconv.Itoa(r.PeakCap),
			strconv.Itoa(r.MaxDead),
			strconv.FormatUint(r.Stats.Reallocations, 10),
			strconv.FormatUint(r.Stats.Grows, 10),
			strconv.FormatUint(r.Stats.Reclaims, 10),
			fifoLabel(r.ChecksumOK),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}
	table.Render()
}

func fifoLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "MISMATCH"
}
