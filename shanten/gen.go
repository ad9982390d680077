package main

import (
	"fmt"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/corpus"
	"github.com/spf13/cobra"
)

var (
	genSeed  int64
	genCases int
	genOut   string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "生成四种基准语料",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, n, dir := cfg.Gen.Seed, cfg.Gen.NumCases, cfg.Gen.OutDir
		if cmd.Flags().Changed("seed") {
			seed = genSeed
		}
		if genCases > 0 {
			n = genCases
		}
		if genOut != "" {
			dir = genOut
		}
		paths, err := corpus.WriteAll(dir, seed, n)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (default: gen.seed)")
	genCmd.Flags().IntVar(&genCases, "cases", 0, "hands per corpus (default: gen.numCases)")
	genCmd.Flags().StringVar(&genOut, "out", "", "output directory (default: gen.outDir)")
}
