package main

import (
	"context"
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/bench"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/spf13/cobra"
)

var (
	benchEngines []string
	benchKinds   []string
	benchWorkers int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "在语料上测量各引擎的吞吐",
	RunE: func(cmd *cobra.Command, args []string) error {
		engines := benchEngines
		if len(engines) == 0 {
			engines = cfg.Bench.Engines
		}
		calcs, err := selectEngines(engines, shanten.Names())
		if err != nil {
			return err
		}
		kinds, err := selectKinds(benchKinds)
		if err != nil {
			return err
		}
		workers := cfg.Bench.Workers
		if benchWorkers > 0 {
			workers = benchWorkers
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		monitor, err := bench.NewMonitor(200 * time.Millisecond)
		if err != nil {
			return err
		}
		runner := bench.NewRunner(workers)
		report := bench.NewReport(workers)
		log.Info("基准运行 %s 开始，%d 个引擎，%d 份语料", report.ID, len(calcs), len(kinds))

		monitor.Start(ctx)
		for _, kind := range kinds {
			hands, err := loadCorpus(cfg.Bench.CorpusDir, kind, cfg.Bench.ExpectedLines)
			if err != nil {
				monitor.Stop()
				return err
			}
			for _, calc := range calcs {
				res, err := runner.Bench(ctx, calc, kind, hands)
				if err != nil {
					monitor.Stop()
					return err
				}
				log.Debug("%s/%s: %v", res.Engine, res.Kind, res.Elapsed)
				report.Add(res)
			}
		}
		report.Usage = monitor.Stop()

		_, err = report.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	benchCmd.Flags().StringSliceVar(&benchEngines, "engines", nil, "engines to run (default: bench.engines, then all)")
	benchCmd.Flags().StringSliceVar(&benchKinds, "kinds", nil, "corpus kinds (default: all)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "worker goroutines (default: bench.workers)")
}
