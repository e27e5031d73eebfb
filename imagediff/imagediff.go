// Package imagediff compares two images as a per-pixel perceptual
// colour-difference map. Pixels are converted to CIE L*a*b* and
// evaluated under any method registered with the deltae engine; the
// result carries the full map plus summary statistics and can be
// rendered as a heatmap.
package imagediff

import (
	"fmt"
	"image"
	"image/color"

	"github.com/wbrown/deltae"
)

// Differ computes per-pixel colour-difference maps. The zero value is
// not usable; construct with New. A Differ is not safe for concurrent
// use because of its pair cache; use one Differ per goroutine.
type Differ struct {
	engine *deltae.Engine
	method string
	opts   []deltae.Option
	interp Interpolation

	// Images repeat colours heavily, so memoize per pixel pair. The
	// cache is keyed on the packed 8-bit channels of both pixels.
	cache map[uint64]float64
}

// DifferOption is a functional option for configuring a Differ.
type DifferOption func(*Differ)

// WithEngine sets the engine used to evaluate the metric. Defaults to
// the package-level deltae engine.
func WithEngine(e *deltae.Engine) DifferOption {
	return func(d *Differ) { d.engine = e }
}

// WithMethod sets the colour-difference method. Defaults to the
// engine's default method.
func WithMethod(method string, opts ...deltae.Option) DifferOption {
	return func(d *Differ) {
		d.method = method
		d.opts = opts
	}
}

// WithInterpolation sets the interpolation used when the second image
// must be resized to the first image's bounds.
func WithInterpolation(interp Interpolation) DifferOption {
	return func(d *Differ) { d.interp = interp }
}

// New creates a Differ with the given options.
func New(opts ...DifferOption) *Differ {
	d := &Differ{
		engine: deltae.Default(),
		interp: InterpolationArea,
		cache:  make(map[uint64]float64),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Result is a per-pixel colour-difference map with summary statistics.
type Result struct {
	Width  int
	Height int
	Values []float64 // row-major, Width*Height

	Min  float64
	Max  float64
	Mean float64

	Method string
}

// At returns the colour difference at pixel (x, y).
func (r *Result) At(x, y int) float64 {
	return r.Values[y*r.Width+x]
}

// Diff computes the colour-difference map between two images. The
// second image is resized to the bounds of the first when they differ.
// The method name is resolved through the engine's registry, so an
// unknown method yields the registry's UnknownMethodError.
func (d *Differ) Diff(a, b image.Image) (*Result, error) {
	bounds := a.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %v", bounds)
	}
	if !b.Bounds().Eq(bounds) {
		b = Resize(b, w, h, d.interp)
	}

	res := &Result{
		Width:  w,
		Height: h,
		Values: make([]float64, w*h),
		Method: d.method,
	}

	var sum float64
	res.Min = -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			de, err := d.pixelDelta(
				a.At(bounds.Min.X+x, bounds.Min.Y+y),
				b.At(b.Bounds().Min.X+x, b.Bounds().Min.Y+y))
			if err != nil {
				return nil, err
			}
			res.Values[y*w+x] = de
			sum += de
			if res.Min < 0 || de < res.Min {
				res.Min = de
			}
			if de > res.Max {
				res.Max = de
			}
		}
	}
	res.Mean = sum / float64(w*h)
	return res, nil
}

// pixelDelta evaluates the metric for one pixel pair, consulting the
// pair cache first.
func (d *Differ) pixelDelta(ca, cb color.Color) (float64, error) {
	ra, ga, ba, _ := ca.RGBA()
	rb, gb, bb, _ := cb.RGBA()
	key := uint64(ra>>8)<<40 | uint64(ga>>8)<<32 | uint64(ba>>8)<<24 |
		uint64(rb>>8)<<16 | uint64(gb>>8)<<8 | uint64(bb>>8)
	if de, ok := d.cache[key]; ok {
		return de, nil
	}

	labA := deltae.SRGBToLab(uint8(ra>>8), uint8(ga>>8), uint8(ba>>8))
	labB := deltae.SRGBToLab(uint8(rb>>8), uint8(gb>>8), uint8(bb>>8))
	de, err := d.engine.DeltaE(labA, labB, d.method, d.opts...)
	if err != nil {
		return 0, err
	}
	d.cache[key] = de
	return de, nil
}
