package imagediff

import (
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/deltae"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDiffIdenticalImages(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{120, 80, 200, 255})

	res, err := New().Diff(img, img)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Width)
	assert.Equal(t, 4, res.Height)
	assert.Equal(t, 0.0, res.Min)
	assert.Equal(t, 0.0, res.Max)
	assert.Equal(t, 0.0, res.Mean)
	for _, v := range res.Values {
		assert.Equal(t, 0.0, v)
	}
}

func TestDiffDistinctColors(t *testing.T) {
	a := solidImage(3, 3, color.RGBA{255, 0, 0, 255})
	b := solidImage(3, 3, color.RGBA{0, 0, 255, 255})

	res, err := New(WithMethod("CIE 2000")).Diff(a, b)
	require.NoError(t, err)

	assert.Greater(t, res.Min, 0.0)
	// A uniform pair gives a uniform map.
	assert.InDelta(t, res.Min, res.Max, 1e-12)
	assert.InDelta(t, res.Mean, res.Max, 1e-12)
}

func TestDiffMethodOrdering(t *testing.T) {
	a := solidImage(2, 2, color.RGBA{250, 250, 250, 255})
	b := solidImage(2, 2, color.RGBA{250, 250, 252, 255})

	near, err := New(WithMethod("CIE 1976")).Diff(a, b)
	require.NoError(t, err)

	far, err := New(WithMethod("CIE 1976")).Diff(a,
		solidImage(2, 2, color.RGBA{10, 10, 10, 255}))
	require.NoError(t, err)

	assert.Less(t, near.Mean, far.Mean)
}

func TestDiffResizesSecondImage(t *testing.T) {
	a := solidImage(8, 8, color.RGBA{40, 160, 90, 255})
	b := solidImage(16, 16, color.RGBA{40, 160, 90, 255})

	res, err := New(WithInterpolation(InterpolationNearest)).Diff(a, b)
	require.NoError(t, err)

	assert.Equal(t, 8, res.Width)
	assert.Equal(t, 8, res.Height)
	assert.Equal(t, 0.0, res.Max)
}

func TestDiffUnknownMethod(t *testing.T) {
	img := solidImage(2, 2, color.RGBA{1, 2, 3, 255})

	_, err := New(WithMethod("CIE 3000")).Diff(img, img)
	require.Error(t, err)

	var unknown *deltae.UnknownMethodError
	assert.True(t, errors.As(err, &unknown))
}

func TestDiffTextilesOption(t *testing.T) {
	a := solidImage(2, 2, color.RGBA{200, 40, 40, 255})
	b := solidImage(2, 2, color.RGBA{180, 60, 60, 255})

	plain, err := New(WithMethod("CIE 1994")).Diff(a, b)
	require.NoError(t, err)

	textiles, err := New(WithMethod("CIE 1994", deltae.Textiles(true))).Diff(a, b)
	require.NoError(t, err)

	assert.NotEqual(t, plain.Mean, textiles.Mean)
}

func TestResizeDimensions(t *testing.T) {
	img := solidImage(10, 6, color.RGBA{50, 50, 50, 255})

	for _, interp := range []Interpolation{
		InterpolationArea, InterpolationLinear, InterpolationNearest,
	} {
		resized := Resize(img, 5, 3, interp)
		assert.Equal(t, 5, resized.Bounds().Dx())
		assert.Equal(t, 3, resized.Bounds().Dy())
	}
}

func TestHeatmapRampEndpoints(t *testing.T) {
	res := &Result{
		Width:  2,
		Height: 1,
		Values: []float64{0, 10},
		Max:    10,
	}

	img := Heatmap(res, 0)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 0))
}

func TestHeatmapFixedScale(t *testing.T) {
	res := &Result{
		Width:  1,
		Height: 1,
		Values: []float64{5},
		Max:    5,
	}

	// Halfway up a ramp clamped at 10 lands between blue and yellow,
	// not at the red endpoint.
	img := Heatmap(res, 10)
	c := img.RGBAAt(0, 0)
	assert.NotEqual(t, color.RGBA{255, 0, 0, 255}, c)
	assert.NotEqual(t, color.RGBA{0, 0, 0, 255}, c)
}

func TestRampColorClampsBadValues(t *testing.T) {
	assert.Equal(t, rampStops[0], rampColor(math.NaN()))
	assert.Equal(t, rampStops[0], rampColor(math.Inf(-1)))
	assert.Equal(t, rampStops[len(rampStops)-1], rampColor(math.Inf(1)))
}

func TestDrawLegendSingleColumn(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "go-regular.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o644))

	res := &Result{
		Width:  1,
		Height: 2,
		Values: []float64{0, 1},
		Max:    1,
	}
	heatmap := Heatmap(res, 0)

	out, err := DrawLegend(heatmap, res, fontPath)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Bounds().Dx())
	assert.Equal(t, 2+legendHeight, out.Bounds().Dy())
	// The degenerate strip sits at the low end of the ramp.
	assert.Equal(t, rampStops[0], out.RGBAAt(0, 2))
}

func TestDrawLegendMissingFont(t *testing.T) {
	res := &Result{Width: 1, Height: 1, Values: []float64{0}, Max: 1}
	_, err := DrawLegend(Heatmap(res, 0), res, filepath.Join(t.TempDir(), "nope.ttf"))
	assert.Error(t, err)
}

func TestRampColorMonotoneRed(t *testing.T) {
	// Past the yellow stop the red channel stays saturated while green
	// drains away.
	low := rampColor(0.7)
	high := rampColor(0.95)
	assert.GreaterOrEqual(t, int(low.G), int(high.G))
	assert.Equal(t, uint8(255), high.R)
}
