package main

import (
	"fmt"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
	"github.com/spf13/cobra"
)

var calcEngine string

var calcCmd = &cobra.Command{
	Use:   "calc <hand>...",
	Short: "计算手牌的向听数",
	Example: `  shanten calc 123m456p789s1122z
  shanten calc --engine all 1111z`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := []string{calcEngine}
		if calcEngine == "all" {
			names = shanten.Names()
		}
		calcs := make([]shanten.Calculator, 0, len(names))
		for _, name := range names {
			c, err := shanten.New(name)
			if err != nil {
				return err
			}
			calcs = append(calcs, c)
		}

		out := cmd.OutOrStdout()
		for _, code := range args {
			h, err := tile.ParseCode(code)
			if err != nil {
				return err
			}
			if err := h.Validate(); err != nil {
				return fmt.Errorf("%s: %w", code, err)
			}
			for _, c := range calcs {
				fmt.Fprintf(out, "%s\t%s\t%d\n", h, c.Name(), c.CalculateShanten(h))
			}
		}
		return nil
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcEngine, "engine", shanten.NameDecompFixed, `engine name or "all"`)
}
