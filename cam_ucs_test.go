package deltae

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuo2006KnownValue(t *testing.T) {
	// The reference pair differs only in a'b', so every K_L preset
	// yields the same distance.
	want := 1.0344098704091504e-4
	assert.InDelta(t, want, CAM02UCS(ucsA, ucsB), 1e-12)
	assert.InDelta(t, want, CAM02LCD(ucsA, ucsB), 1e-12)
	assert.InDelta(t, want, CAM02SCD(ucsA, ucsB), 1e-12)
	assert.InDelta(t, want, CAM16UCS(ucsA, ucsB), 1e-12)
	assert.InDelta(t, want, CAM16LCD(ucsA, ucsB), 1e-12)
	assert.InDelta(t, want, CAM16SCD(ucsA, ucsB), 1e-12)
}

func TestLuo2006LightnessPresets(t *testing.T) {
	// K_L divides the lightness difference, so for a pair differing in
	// J' the LCD preset (0.77) reads larger than UCS (1.0), which reads
	// larger than SCD (1.24).
	a := Triplet{40, 10, 10}
	b := Triplet{50, 10, 10}

	lcd := CAM02LCD(a, b)
	ucs := CAM02UCS(a, b)
	scd := CAM02SCD(a, b)

	assert.Greater(t, lcd, ucs)
	assert.Greater(t, ucs, scd)
}

func TestLuo2006Symmetry(t *testing.T) {
	a := Triplet{40, -3, 7}
	b := Triplet{55, 2, -6}
	assert.Equal(t, CAM16UCS(a, b), CAM16UCS(b, a))
	assert.Equal(t, 0.0, CAM16UCS(a, a))
}
