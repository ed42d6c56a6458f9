package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputState turns ebiten's polled input into the discrete events the
// stage traversal consumes: one Raise* call per key edge, button edge,
// wheel tick, or cursor movement per frame.
type inputState struct {
	prevCursor   Point
	hasPrev      bool
	justPressed  []ebiten.Key
	justReleased []ebiten.Key
}

// buttonOrder maps ebiten mouse buttons to the event payload values, in a
// fixed dispatch order.
var buttonOrder = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
	mask   MouseButtonMask
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft, MaskLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle, MaskMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight, MaskRight},
}

// pump reads the frame's input state and raises the matching stage events.
// Called once per Update from the game adapter, before the update
// traversal, so handlers observe input effects in the same frame.
func (in *inputState) pump(st *Stage) {
	mods := readModifiers()

	in.justPressed = inpututil.AppendJustPressedKeys(in.justPressed[:0])
	for _, k := range in.justPressed {
		st.RaiseKeyDownEvent(&KeyArgs{Key: k, Modifiers: mods, IsDownEvent: true}, true)
	}
	in.justReleased = inpututil.AppendJustReleasedKeys(in.justReleased[:0])
	for _, k := range in.justReleased {
		st.RaiseKeyUpEvent(&KeyArgs{Key: k, Modifiers: mods, IsUpEvent: true}, true)
	}

	mx, my := ebiten.CursorPosition()
	cursor := Point{mx, my}

	for _, b := range buttonOrder {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			st.RaiseMouseDownEvent(&MouseButtonArgs{
				LocalPosition: cursor,
				Button:        b.button,
				Clicks:        1,
				IsDownEvent:   true,
			}, true)
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			st.RaiseMouseUpEvent(&MouseButtonArgs{
				LocalPosition: cursor,
				Button:        b.button,
				Clicks:        1,
				IsUpEvent:     true,
			}, true)
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		st.RaiseMouseScrollEvent(&WheelArgs{
			DeltaX:        int(wx),
			DeltaY:        int(wy),
			PreciseDeltaX: wx,
			PreciseDeltaY: wy,
		}, true)
	}

	if in.hasPrev && cursor != in.prevCursor {
		st.RaiseMouseMovedEvent(&MotionArgs{
			LocalPosition: cursor,
			DeltaX:        cursor.X - in.prevCursor.X,
			DeltaY:        cursor.Y - in.prevCursor.Y,
			Buttons:       pressedButtonMask(),
		}, true)
	}
	in.prevCursor = cursor
	in.hasPrev = true
}

// pressedButtonMask returns the currently held mouse buttons as a mask.
func pressedButtonMask() MouseButtonMask {
	var mask MouseButtonMask
	for _, b := range buttonOrder {
		if ebiten.IsMouseButtonPressed(b.ebiten) {
			mask |= b.mask
		}
	}
	return mask
}

// readModifiers returns the currently held modifier keys as a bitmask.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
