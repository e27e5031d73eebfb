package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wbrown/deltae"
)

var compareCmd = &cobra.Command{
	Use:   "compare <colour1> <colour2>",
	Short: "Compute the colour difference between two colours",
	Long: "Compare two colours under the selected method. Colours are given\n" +
		"either as hex sRGB values (\"#ff8800\") or as comma-separated\n" +
		"coordinates in the method's input colourspace (\"50.2,-1.3,40.8\").",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseColor(args[0])
		if err != nil {
			return err
		}
		b, err := parseColor(args[1])
		if err != nil {
			return err
		}

		de, err := deltae.DeltaE(a, b, viper.GetString("method"), methodOptions(cmd)...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.7f\n", de)
		return nil
	},
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available colour-difference methods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range deltae.Default().Registry().Methods() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	compareCmd.Flags().Bool("textiles", false,
		"use textile coefficients (CIE 1994, CIE 2000, DIN99)")
	compareCmd.Flags().Float64("lightness", 2,
		"lightness weight l for CMC")
	compareCmd.Flags().Float64("chroma", 1,
		"chroma weight c for CMC")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(methodsCmd)
}
