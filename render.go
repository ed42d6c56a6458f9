package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the render collaborator the scene graph draws through. The
// core hands it fully resolved integer rectangles and opaque texture
// handles; it never touches pixels itself. Implementations are stateful in
// the draw color, matching the way the node and driver render passes use
// it (set color, fill, draw texture).
type Surface interface {
	// SetDrawColor selects the color used by Clear and FillRectangle.
	SetDrawColor(c Color)
	// Clear fills the whole target with the draw color.
	Clear()
	// FillRectangle fills the given area with the draw color.
	FillRectangle(r Rect)
	// DrawTexture stretches the texture over the given area.
	DrawTexture(r Rect, tex *ebiten.Image)
	// FillTexture stretches the texture over the whole target.
	FillTexture(tex *ebiten.Image)
	// Present flushes the frame. A no-op for targets that flush
	// themselves.
	Present()
}

// Canvas implements Surface on an *ebiten.Image target. Solid fills
// stretch the shared WhitePixel image tinted with the draw color; texture
// draws stretch the source image over the destination rectangle. The
// target is rebound every frame by the game adapter, since ebiten hands
// out a fresh screen image per Draw call.
type Canvas struct {
	target    *ebiten.Image
	drawColor Color
}

// NewCanvas creates a canvas with no target bound.
func NewCanvas() *Canvas { return &Canvas{} }

// SetTarget binds the destination image. A nil target turns every draw
// into a no-op.
func (c *Canvas) SetTarget(img *ebiten.Image) { c.target = img }

// Target returns the currently bound destination image.
func (c *Canvas) Target() *ebiten.Image { return c.target }

// SetDrawColor selects the color used by Clear and FillRectangle.
func (c *Canvas) SetDrawColor(col Color) { c.drawColor = col }

// Clear fills the whole target with the draw color.
func (c *Canvas) Clear() {
	if c.target == nil {
		return
	}
	c.target.Fill(c.drawColor.RGBA())
}

// FillRectangle fills the given area with the draw color. Fully
// transparent draw colors and degenerate rectangles draw nothing.
func (c *Canvas) FillRectangle(r Rect) {
	if c.target == nil || c.drawColor.IsEmpty() {
		return
	}
	r = r.Normalized()
	if r.Width == 0 || r.Height == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Width), float64(r.Height))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(c.drawColor.RGBA())
	c.target.DrawImage(WhitePixel, op)
}

// DrawTexture stretches the texture over the given area.
func (c *Canvas) DrawTexture(r Rect, tex *ebiten.Image) {
	if c.target == nil || tex == nil {
		return
	}
	r = r.Normalized()
	bounds := tex.Bounds()
	if r.Width == 0 || r.Height == 0 || bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Width)/float64(bounds.Dx()), float64(r.Height)/float64(bounds.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	c.target.DrawImage(tex, op)
}

// FillTexture stretches the texture over the whole target.
func (c *Canvas) FillTexture(tex *ebiten.Image) {
	if c.target == nil {
		return
	}
	size := c.target.Bounds()
	c.DrawTexture(Rect{size.Min.X, size.Min.Y, size.Dx(), size.Dy()}, tex)
}

// Present is a no-op: ebiten flushes the screen itself at the end of every
// Draw call.
func (c *Canvas) Present() {}
