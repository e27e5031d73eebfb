package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wbrown/deltae"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <palette.json> <colour>",
	Short: "Find the nearest palette colour to a target",
	Long: "Look up the palette entry nearest to the target colour under the\n" +
		"selected method. The palette is a JSON object mapping colour names\n" +
		"to \"#RRGGBB\" values.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		palette, err := deltae.LoadPalette(args[0])
		if err != nil {
			return err
		}
		target, err := parseColor(args[1])
		if err != nil {
			return err
		}

		entry, dist, err := palette.Nearest(
			deltae.Default(), target, viper.GetString("method"), methodOptions(cmd)...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %.7f\n", entry.Name, entry.Hex, dist)
		return nil
	},
}

func init() {
	nearestCmd.Flags().Bool("textiles", false,
		"use textile coefficients (CIE 1994, CIE 2000, DIN99)")
	nearestCmd.Flags().Float64("lightness", 2, "lightness weight l for CMC")
	nearestCmd.Flags().Float64("chroma", 1, "chroma weight c for CMC")

	rootCmd.AddCommand(nearestCmd)
}
