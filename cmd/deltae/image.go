package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"

	"github.com/wbrown/deltae/imagediff"
)

var imageCmd = &cobra.Command{
	Use:   "image <image1> <image2>",
	Short: "Compare two images as a per-pixel colour-difference map",
	Long: "Compute the per-pixel colour difference between two images under the\n" +
		"selected method, print summary statistics, and optionally write a\n" +
		"heatmap rendering of the map.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imgA, err := loadImage(args[0])
		if err != nil {
			return err
		}
		imgB, err := loadImage(args[1])
		if err != nil {
			return err
		}

		interp, err := parseInterpolation(cmd)
		if err != nil {
			return err
		}
		differ := imagediff.New(
			imagediff.WithMethod(viper.GetString("method"), methodOptions(cmd)...),
			imagediff.WithInterpolation(interp))

		res, err := differ.Diff(imgA, imgB)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "min  %.7f\nmean %.7f\nmax  %.7f\n",
			res.Min, res.Mean, res.Max)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return nil
		}

		maxDelta, _ := cmd.Flags().GetFloat64("max-delta")
		heatmap := imagediff.Heatmap(res, maxDelta)
		if fontPath, _ := cmd.Flags().GetString("font"); fontPath != "" {
			heatmap, err = imagediff.DrawLegend(heatmap, res, fontPath)
			if err != nil {
				return err
			}
		}
		return writePNG(out, heatmap)
	},
}

// loadImage reads an image from disk through OpenCV, which handles the
// common raster formats, and converts it to a Go image.
func loadImage(path string) (image.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("error reading image %q", path)
	}
	defer mat.Close()

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("error converting image %q: %w", path, err)
	}
	return img, nil
}

func parseInterpolation(cmd *cobra.Command) (imagediff.Interpolation, error) {
	name, _ := cmd.Flags().GetString("interp")
	switch name {
	case "area", "":
		return imagediff.InterpolationArea, nil
	case "linear":
		return imagediff.InterpolationLinear, nil
	case "nearest":
		return imagediff.InterpolationNearest, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q: want area, linear, or nearest", name)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %q: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding %q: %w", path, err)
	}
	return nil
}

func init() {
	imageCmd.Flags().String("out", "", "write a heatmap PNG to this path")
	imageCmd.Flags().Float64("max-delta", 0,
		"heatmap normalization ceiling (0 normalizes to the map maximum)")
	imageCmd.Flags().String("font", "", "TTF font for the heatmap legend")
	imageCmd.Flags().String("interp", "area",
		"resize interpolation when image sizes differ: area, linear, nearest")
	imageCmd.Flags().Bool("textiles", false,
		"use textile coefficients (CIE 1994, CIE 2000, DIN99)")
	imageCmd.Flags().Float64("lightness", 2, "lightness weight l for CMC")
	imageCmd.Flags().Float64("chroma", 1, "chroma weight c for CMC")

	rootCmd.AddCommand(imageCmd)
}
