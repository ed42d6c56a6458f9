package arbor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an 8-bit RGBA color. A zero Color is fully transparent and draws
// nothing when used as a background.
type Color struct {
	R, G, B, A uint8
}

// ColorEmpty is the fully transparent color, the default node and scene
// background.
var ColorEmpty = Color{}

// ColorWhite is opaque white.
var ColorWhite = Color{255, 255, 255, 255}

// RGBA returns the color as a standard library color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// IsEmpty reports whether the color is fully transparent.
func (c Color) IsEmpty() bool { return c.A == 0 }

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.RGBA())
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// MouseButtonMask is a bitmask of pressed mouse buttons, carried by motion
// events.
type MouseButtonMask uint8

const (
	MaskLeft   MouseButtonMask = 1 << iota // left button held
	MaskMiddle                             // middle button held
	MaskRight                              // right button held
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values combine with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
