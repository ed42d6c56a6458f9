package arbor

import (
	"math"

	"github.com/tanema/gween/ease"
)

// AnimKind is the default script kind for Anim instances built without an
// explicit kind tag.
const AnimKind = "anim"

// Anim is a Script that advances a normalized time value across a delay
// phase and a play phase, emitting phase-transition callbacks along the
// way. States: idle (not started) -> delaying (started, elapsed < delay)
// -> playing (delay <= elapsed <= delay+duration) -> finished
// (elapsed > delay+duration), then back to idle when ResetOnFinish is set,
// or straight back into delaying when Repeated is set.
//
// The per-tick work runs through the script Update hook, so an Anim only
// advances while attached to a node that is receiving update raises.
// Elapsed time accumulates the stage clock's frame delta.
type Anim struct {
	BaseScript

	// ResetOnFinish rewinds elapsed time to zero once the play phase
	// completes. Default true.
	ResetOnFinish bool
	// Repeated restarts the animation automatically after it finishes,
	// without an external Play call.
	Repeated bool
	// Easing optionally shapes the normalized time handed to the animate
	// hook and event. Nil means linear.
	Easing ease.TweenFunc

	// Phase hooks, fired before the matching event list.
	HandleDelay   func(*Anim, *Node)
	HandleStart   func(*Anim, *Node)
	HandleAnimate func(*Anim, *Node, float64)
	HandleStop    func(*Anim, *Node)

	// Phase event lists, fired after the matching hook.
	DelayEvent   Event[*Anim, BasicArgs]
	StartEvent   Event[*Anim, BasicArgs]
	AnimateEvent Event[*Anim, BasicArgs]
	StopEvent    Event[*Anim, BasicArgs]

	kind     string
	delay    float64
	duration float64
	elapsed  float64
	started  bool
	played   bool
}

// NewAnim creates an idle animation with the given script kind (empty means
// AnimKind), no delay, and the minimum duration.
func NewAnim(kind string) *Anim {
	if kind == "" {
		kind = AnimKind
	}
	return &Anim{ResetOnFinish: true, kind: kind, duration: 0.01}
}

// Kind returns the script kind tag the animation was built with.
func (a *Anim) Kind() string { return a.kind }

// SetDuration sets the play-phase length in seconds, clamped to a minimum
// of 0.01.
func (a *Anim) SetDuration(d float64) {
	if d < 0.01 {
		d = 0.01
	}
	a.duration = d
}

// Duration returns the play-phase length in seconds.
func (a *Anim) Duration() float64 { return a.duration }

// SetDelay sets the wait between Play and the play phase, clamped to be
// non-negative.
func (a *Anim) SetDelay(d float64) {
	if d < 0 {
		d = 0
	}
	a.delay = d
}

// Delay returns the wait between Play and the play phase in seconds.
func (a *Anim) Delay() float64 { return a.delay }

// PlayTime returns the accumulated elapsed time in seconds.
func (a *Anim) PlayTime() float64 { return a.elapsed }

// Play starts or resumes the animation. Elapsed time is not reset, so a
// paused animation picks up where it stopped.
func (a *Anim) Play() { a.started = true }

// Pause freezes the animation; elapsed time is kept.
func (a *Anim) Pause() { a.started = false }

// Reset rewinds the animation to the beginning without pausing it.
func (a *Anim) Reset() { a.elapsed = 0; a.played = false }

// Stop rewinds and pauses the animation.
func (a *Anim) Stop() { a.Reset(); a.Pause() }

// IsStarted reports whether the animation is running (delaying or playing).
func (a *Anim) IsStarted() bool { return a.started }

// IsDelay reports whether the animation is started but still inside its
// delay phase.
func (a *Anim) IsDelay() bool { return a.started && a.elapsed < a.delay }

// IsPlaying reports whether the animation is started and past its delay.
func (a *Anim) IsPlaying() bool { return a.started && a.elapsed >= a.delay }

// Update advances the state machine by the stage clock's frame delta. It
// runs as the script update hook of the owning node's update pass.
func (a *Anim) Update(target *Node) {
	if !a.started {
		return
	}
	a.elapsed += deltaTimeOf(target)
	if a.elapsed < a.delay {
		if a.HandleDelay != nil {
			a.HandleDelay(a, target)
		}
		a.DelayEvent.Emit(a, nil)
		return
	}
	if !a.played {
		a.played = true
		if a.HandleStart != nil {
			a.HandleStart(a, target)
		}
		a.StartEvent.Emit(a, nil)
	}
	end := a.delay + a.duration
	at := clamp01((a.elapsed - a.delay) / a.duration)
	if a.Easing != nil {
		at = float64(a.Easing(float32(at), 0, 1, 1))
	}
	if a.HandleAnimate != nil {
		a.HandleAnimate(a, target, at)
	}
	a.AnimateEvent.Emit(a, nil)
	if a.elapsed > end {
		a.started = false
		if a.HandleStop != nil {
			a.HandleStop(a, target)
		}
		a.StopEvent.Emit(a, nil)
		if a.ResetOnFinish || a.Repeated {
			a.Reset()
		}
		if a.Repeated {
			a.Play()
		}
	}
}

// deltaTimeOf resolves the frame delta for the node's stage clock. A node
// without a stage or clock does not advance.
func deltaTimeOf(n *Node) float64 {
	if n == nil || n.stage == nil || n.stage.clock == nil {
		return 0
	}
	return n.stage.clock.DeltaTime()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpRound interpolates between two integer coordinates at normalized
// time t, rounding to the nearest pixel.
func lerpRound(from, to int, t float64) int {
	return int(math.Round(float64(from) + (float64(to)-float64(from))*t))
}

// --- Movement animations ---

// NewStartEndMoveAnim builds an animation that moves its target node from
// start to end over the play phase, shaped by fn (nil for linear).
func NewStartEndMoveAnim(start, end Point, fn ease.TweenFunc) *Anim {
	a := NewAnim("anim.move_start_end")
	a.Easing = fn
	a.HandleAnimate = func(_ *Anim, target *Node, at float64) {
		target.Position.X = lerpRound(start.X, end.X, at)
		target.Position.Y = lerpRound(start.Y, end.Y, at)
	}
	return a
}

// NewMoveToAnim builds an animation that moves its target node from
// wherever it is when the play phase starts to end.
func NewMoveToAnim(end Point, fn ease.TweenFunc) *Anim {
	a := NewAnim("anim.move_to")
	a.Easing = fn
	var start Point
	a.HandleStart = func(_ *Anim, target *Node) { start = target.Position }
	a.HandleAnimate = func(_ *Anim, target *Node, at float64) {
		target.Position.X = lerpRound(start.X, end.X, at)
		target.Position.Y = lerpRound(start.Y, end.Y, at)
	}
	return a
}

// NewMoveFromAnim builds an animation that moves its target node from start
// back to wherever it was when the play phase started.
func NewMoveFromAnim(start Point, fn ease.TweenFunc) *Anim {
	a := NewAnim("anim.move_from")
	a.Easing = fn
	var end Point
	a.HandleStart = func(_ *Anim, target *Node) { end = target.Position }
	a.HandleAnimate = func(_ *Anim, target *Node, at float64) {
		target.Position.X = lerpRound(start.X, end.X, at)
		target.Position.Y = lerpRound(start.Y, end.Y, at)
	}
	return a
}

// NewDirectionalMoveAnim builds an animation that displaces its target node
// by direction, relative to its position when the play phase starts.
func NewDirectionalMoveAnim(direction Point, fn ease.TweenFunc) *Anim {
	a := NewAnim("anim.move_directional")
	a.Easing = fn
	var start Point
	a.HandleStart = func(_ *Anim, target *Node) { start = target.Position }
	a.HandleAnimate = func(_ *Anim, target *Node, at float64) {
		target.Position.X = start.X + lerpRound(0, direction.X, at)
		target.Position.Y = start.Y + lerpRound(0, direction.Y, at)
	}
	return a
}
