package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/bench"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/spf13/cobra"
)

var errDisagreement = errors.New("engines disagree")

var (
	verifyEngines []string
	verifyKinds   []string
	verifyLimit   int
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "在语料上交叉校验各引擎",
	RunE: func(cmd *cobra.Command, args []string) error {
		calcs, err := selectEngines(verifyEngines, shanten.CrossCheckNames())
		if err != nil {
			return err
		}
		kinds, err := selectKinds(verifyKinds)
		if err != nil {
			return err
		}

		runner := bench.NewRunner(cfg.Bench.Workers)
		out := cmd.OutOrStdout()
		failed := false
		for _, kind := range kinds {
			hands, err := loadCorpus(cfg.Bench.CorpusDir, kind, cfg.Bench.ExpectedLines)
			if err != nil {
				return err
			}
			v, err := runner.Verify(context.Background(), calcs, hands, verifyLimit)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d hands, %d disagreements\n", kind, v.Hands, v.Disagreed)
			for _, m := range v.Mismatches {
				fmt.Fprintf(out, "  %s\n", m)
			}
			if !v.OK() {
				failed = true
				log.Warn("%s 上 %v 结果不一致 %d 手", kind, v.Engines, v.Disagreed)
			}
		}
		if failed {
			return errDisagreement
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringSliceVar(&verifyEngines, "engines", nil, "engines to compare (default: all except reference ones)")
	verifyCmd.Flags().StringSliceVar(&verifyKinds, "kinds", nil, "corpus kinds (default: all)")
	verifyCmd.Flags().IntVar(&verifyLimit, "limit", 10, "mismatches printed per corpus")
}
