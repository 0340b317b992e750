package images

import (
	"fmt"

	"github.com/pkg/errors"
)

// NearWhiteThreshold is the lowest channel value that still counts as
// near-white background during compositing.
const NearWhiteThreshold = 250

// Color is an opaque RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Predefined colors.
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255, G: 0, B: 0}
	Green = Color{R: 0, G: 255, B: 0}
	Blue  = Color{R: 0, G: 0, B: 255}
)

// NewColor builds a Color from integer channels, rejecting any value outside
// [0, 255] with ErrOutOfRangeChannel. Values are never clamped.
//
// Arguments:
//   - r, g, b: The red, green and blue channel values.
//
// Returns:
//   - Color: The color.
//   - error: ErrOutOfRangeChannel naming the first offending channel.
func NewColor(r, g, b int) (Color, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, errors.Wrapf(ErrOutOfRangeChannel, "%s=%d", ch.name, ch.value)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// IsNearWhite reports whether every channel is at least NearWhiteThreshold.
func (c Color) IsNearWhite() bool {
	return c.R >= NearWhiteThreshold && c.G >= NearWhiteThreshold && c.B >= NearWhiteThreshold
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
