package imagediff

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

// rampStops are the anchor colours of the heatmap ramp, from zero
// difference (black) up through blue, yellow, and red.
var rampStops = []color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 0, 255},
}

// rampColor maps a normalized value in [0, 1] onto the heatmap ramp
// with linear interpolation between anchor colours. Out-of-range and
// NaN values clamp to the ramp ends rather than index out of bounds.
func rampColor(v float64) color.RGBA {
	if math.IsNaN(v) || v <= 0 {
		return rampStops[0]
	}
	if v >= 1 {
		return rampStops[len(rampStops)-1]
	}
	segments := float64(len(rampStops) - 1)
	pos := v * segments
	i := int(pos)
	t := pos - float64(i)
	a, b := rampStops[i], rampStops[i+1]
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 255,
	}
}

// Heatmap renders a difference map as an image, mapping each value
// onto a black-blue-yellow-red ramp. Values are normalized against
// maxDelta; pass a non-positive maxDelta to normalize against the
// map's own maximum.
func Heatmap(res *Result, maxDelta float64) *image.RGBA {
	if maxDelta <= 0 {
		maxDelta = res.Max
	}
	if maxDelta <= 0 {
		maxDelta = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, res.Width, res.Height))
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			img.SetRGBA(x, y, rampColor(res.At(x, y)/maxDelta))
		}
	}
	return img
}

// legendHeight is the height in pixels of the strip DrawLegend appends
// below a heatmap.
const legendHeight = 24

// DrawLegend appends a legend strip below a heatmap showing the ramp
// with min, mean, and max annotations rendered in the given TrueType
// font. The function takes the heatmap, the result it was rendered
// from, and a path to a TTF file, and returns a new image or an error
// if the font cannot be loaded.
func DrawLegend(heatmap *image.RGBA, res *Result, fontPath string) (*image.RGBA, error) {
	f, err := loadFont(fontPath)
	if err != nil {
		return nil, err
	}

	bounds := heatmap.Bounds()
	w := bounds.Dx()
	out := image.NewRGBA(image.Rect(0, 0, w, bounds.Dy()+legendHeight))
	draw.Draw(out, bounds, heatmap, bounds.Min, draw.Src)

	// Ramp strip under the map, labels on top of it.
	stripTop := bounds.Dy()
	for x := 0; x < w; x++ {
		// A single-column heatmap has no gradient to spread.
		pos := 0.0
		if w > 1 {
			pos = float64(x) / float64(w-1)
		}
		c := rampColor(pos)
		for y := stripTop; y < stripTop+legendHeight; y++ {
			out.SetRGBA(x, y, c)
		}
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(12)
	ctx.SetClip(out.Bounds())
	ctx.SetDst(out)
	ctx.SetSrc(image.White)

	baseline := stripTop + legendHeight - 7
	label := fmt.Sprintf("min %.2f  mean %.2f  max %.2f", res.Min, res.Mean, res.Max)
	if _, err := ctx.DrawString(label, freetype.Pt(4, baseline)); err != nil {
		return nil, fmt.Errorf("error drawing legend: %w", err)
	}
	return out, nil
}

// loadFont loads a TrueType font from file
func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	font, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, err
	}

	return font, nil
}
