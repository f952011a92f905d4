package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/roshambo/internal/game"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the defeat table for each variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		variantFlag, _ := cmd.Flags().GetString("variant")

		variants := game.Variants
		if variantFlag != "" {
			v, err := game.ParseVariant(variantFlag)
			if err != nil {
				return err
			}
			variants = []game.Variant{v}
		}

		out := cmd.OutOrStdout()
		for i, v := range variants {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, v.Label())
			for _, m := range game.VariantMatchups(v) {
				fmt.Fprintf(out, "  %s beats %s\n", m.Winner, m.Loser)
			}
		}
		return nil
	},
}

func init() {
	rulesCmd.Flags().String("variant", "", "Limit to one variant: classic, extended, fire-water")
}
