package arbor

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenKind is the script kind shared by all TweenScript instances; a node
// runs at most one property tween at a time.
const TweenKind = "tween"

// TweenScript animates up to 4 integer fields on a Node simultaneously,
// plus optionally its background color. Create one via the convenience
// constructors (TweenPosition, TweenSize, TweenBackground) and attach it
// with AttachScript; it advances with the node's update pass and sets Done
// when every tween has finished. Unlike Anim it has no delay or repeat
// machinery: it runs once, immediately.
type TweenScript struct {
	BaseScript

	// Done reports that every tween has reached its end value.
	Done bool

	tweens [4]*gween.Tween
	fields [4]*int
	count  int

	colorTween         *gween.Tween
	colorFrom, colorTo Color
}

// Kind returns TweenKind.
func (g *TweenScript) Kind() string { return TweenKind }

// Update advances all tweens by the stage clock's frame delta and writes
// the rounded values to the target fields.
func (g *TweenScript) Update(target *Node) {
	if g.Done {
		return
	}
	dt := float32(deltaTimeOf(target))
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = int(math.Round(float64(val)))
		if !finished {
			allDone = false
		}
	}
	if g.colorTween != nil {
		val, finished := g.colorTween.Update(dt)
		target.Background = blendColor(g.colorFrom, g.colorTo, float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenScript that animates node.Position to the
// given coordinates over duration seconds using the easing function.
func TweenPosition(node *Node, to Point, duration float32, fn ease.TweenFunc) *TweenScript {
	g := &TweenScript{count: 2}
	g.tweens[0] = gween.New(float32(node.Position.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Position.Y), float32(to.Y), duration, fn)
	g.fields[0] = &node.Position.X
	g.fields[1] = &node.Position.Y
	return g
}

// TweenSize creates a TweenScript that animates node.Size to the given
// dimensions over duration seconds using the easing function.
func TweenSize(node *Node, to Size, duration float32, fn ease.TweenFunc) *TweenScript {
	g := &TweenScript{count: 2}
	g.tweens[0] = gween.New(float32(node.Size.Width), float32(to.Width), duration, fn)
	g.tweens[1] = gween.New(float32(node.Size.Height), float32(to.Height), duration, fn)
	g.fields[0] = &node.Size.Width
	g.fields[1] = &node.Size.Height
	return g
}

// TweenBackground creates a TweenScript that blends node.Background to the
// target color over duration seconds using the easing function.
func TweenBackground(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenScript {
	g := &TweenScript{
		colorTween: gween.New(0, 1, duration, fn),
		colorFrom:  node.Background,
		colorTo:    to,
	}
	return g
}

// blendColor mixes two colors channel-wise at normalized position t.
func blendColor(from, to Color, t float64) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*clamp01(t)))
	}
	return Color{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
