package arbor

import "github.com/hajimehoshi/ebiten/v2"

// Event is an ordered list of callbacks sharing a sender type S and an
// argument payload type A. Emit invokes every registered callback
// synchronously, in registration order, with one shared mutable *A: a
// mutation made by an earlier callback is visible to every later one in the
// same emission. Callbacks must not retain the argument past the call.
type Event[S any, A any] struct {
	actions []func(S, *A)
}

// Register appends fn to the callback list. A nil fn is ignored.
func (e *Event[S, A]) Register(fn func(S, *A)) {
	if fn == nil {
		return
	}
	e.actions = append(e.actions, fn)
}

// Clear removes every registered callback.
func (e *Event[S, A]) Clear() { e.actions = nil }

// Count returns the number of registered callbacks.
func (e *Event[S, A]) Count() int { return len(e.actions) }

// Emit invokes every registered callback with the shared args instance.
// When args is nil a fresh zero-value payload is allocated for the duration
// of the emission.
func (e *Event[S, A]) Emit(sender S, args *A) {
	if args == nil {
		args = new(A)
	}
	for _, fn := range e.actions {
		fn(sender, args)
	}
}

// Signal is an Event without a sender, used for stage-level notifications
// (load, per-frame update, quit). Same sharing and ordering contract.
type Signal[A any] struct {
	actions []func(*A)
}

// Register appends fn to the callback list. A nil fn is ignored.
func (s *Signal[A]) Register(fn func(*A)) {
	if fn == nil {
		return
	}
	s.actions = append(s.actions, fn)
}

// Clear removes every registered callback.
func (s *Signal[A]) Clear() { s.actions = nil }

// Count returns the number of registered callbacks.
func (s *Signal[A]) Count() int { return len(s.actions) }

// Emit invokes every registered callback with the shared args instance,
// allocating a zero-value payload when args is nil.
func (s *Signal[A]) Emit(args *A) {
	if args == nil {
		args = new(A)
	}
	for _, fn := range s.actions {
		fn(args)
	}
}

// BasicArgs is the empty payload for events that carry no data.
type BasicArgs struct{}

// RenderArgs carries the resolved target rectangle for a render pass. The
// area is expressed in the coordinate space of the render surface and is
// recomputed per node during recursive propagation.
type RenderArgs struct {
	TargetArea Rect
}

// KeyArgs carries keyboard event data. Keyboard events have no position, so
// they propagate through the tree untransformed.
type KeyArgs struct {
	Key       ebiten.Key
	Modifiers KeyModifiers

	IsDownEvent bool
	IsUpEvent   bool
}

// MouseButtonArgs carries mouse button event data. LocalPosition is
// re-based into each node's coordinate space as the event descends the
// tree.
type MouseButtonArgs struct {
	LocalPosition Point
	Button        MouseButton
	Clicks        int

	IsDownEvent bool
	IsUpEvent   bool
}

// WheelArgs carries scroll deltas. Wheel events have no position.
type WheelArgs struct {
	DeltaX int
	DeltaY int

	PreciseDeltaX float64
	PreciseDeltaY float64
}

// MotionArgs carries mouse movement data. LocalPosition is re-based per
// node like button events; the deltas are relative to the previous motion
// event and pass through unchanged.
type MotionArgs struct {
	LocalPosition Point
	DeltaX        int
	DeltaY        int
	Buttons       MouseButtonMask
}
