// Command deltae computes perceptual colour differences from the
// command line: single pairs, nearest-palette lookups, and per-pixel
// image comparison rendered as a heatmap.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wbrown/deltae"
)

var rootCmd = &cobra.Command{
	Use:   "deltae",
	Short: "Perceptual colour-difference calculator",
	Long: "deltae computes colour differences between colours, palettes, and\n" +
		"images under the CIE, CMC, DIN99, ITP, hybrid, and CAM-UCS formulas.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		scale, err := deltae.ParseDomainRangeScale(viper.GetString("scale"))
		if err != nil {
			return err
		}
		deltae.Default().SetDomainRangeScale(scale)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("method", "m", deltae.DefaultMethod,
		"colour-difference method (see 'deltae methods')")
	rootCmd.PersistentFlags().String("scale", "reference",
		"domain-range scale for numeric inputs: reference, 1, or 100")

	viper.SetEnvPrefix("DELTAE")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("method", rootCmd.PersistentFlags().Lookup("method"))
	_ = viper.BindPFlag("scale", rootCmd.PersistentFlags().Lookup("scale"))

	viper.SetConfigName("deltae")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	// A config file is optional; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// parseColor accepts either a hex colour ("#RRGGBB") or a
// comma-separated numeric triplet ("L,a,b" in the method's input
// colourspace) and returns the coordinate.
func parseColor(s string) (deltae.Triplet, error) {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return deltae.Triplet{}, fmt.Errorf("invalid colour %q: want 3 components", s)
		}
		var t deltae.Triplet
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return deltae.Triplet{}, fmt.Errorf("invalid colour %q: %v", s, err)
			}
			t[i] = v
		}
		return t, nil
	}
	return deltae.HexToLab(s)
}

// methodOptions translates the formula flags into engine options; the
// engine drops whichever ones the selected method does not accept.
func methodOptions(cmd *cobra.Command) []deltae.Option {
	var opts []deltae.Option
	if textiles, _ := cmd.Flags().GetBool("textiles"); textiles {
		opts = append(opts, deltae.Textiles(true))
	}
	if cmd.Flags().Changed("lightness") {
		l, _ := cmd.Flags().GetFloat64("lightness")
		opts = append(opts, deltae.LightnessWeight(l))
	}
	if cmd.Flags().Changed("chroma") {
		c, _ := cmd.Flags().GetFloat64("chroma")
		opts = append(opts, deltae.ChromaWeight(c))
	}
	return opts
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
