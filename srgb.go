package deltae

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jkl1337/go-chromath"
)

// sRGB to CIE L*a*b* conversion under the D65 illuminant, shared by
// the palette loader and the image-difference pipeline. The
// transformers are stateless after construction and safe for
// concurrent use.
var (
	srgbToXYZ = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
	labToXYZ = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// SRGBToLab converts 8-bit sRGB channel values to a CIE L*a*b*
// coordinate with L* in [0, 100].
func SRGBToLab(r, g, b uint8) Triplet {
	rgb := chromath.RGB{float64(r), float64(g), float64(b)}
	lab := labToXYZ.Invert(srgbToXYZ.Convert(rgb))
	return Triplet{lab[0], lab[1], lab[2]}
}

// HexToLab converts a "#RRGGBB" (or "RRGGBB") hex colour to a CIE
// L*a*b* coordinate. The function returns an error for strings that do
// not parse as a 24-bit colour.
func HexToLab(hex string) (Triplet, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return Triplet{}, fmt.Errorf("invalid hex colour %q: want RRGGBB", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Triplet{}, fmt.Errorf("invalid hex colour %q: %v", hex, err)
	}
	return SRGBToLab(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
