package arbor

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	DX     int    `json:"dx,omitempty"`
	DY     int    `json:"dy,omitempty"`
	Key    int    `json:"key,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scripted input events against a Stage across frames
// for automated testing. Call Step once per frame; each call executes one
// scripted action (or burns one wait frame) through the stage's Raise*
// entry points, followed by a full stage Step.
//
// Supported actions: "mousedown", "mouseup", "mousemove", "scroll",
// "keydown", "keyup", "frame", "wait".
type TestRunner struct {
	steps      []testStep
	cursor     int
	waitCount  int
	done       bool
	prevCursor Point
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the test runner by one frame against the stage.
func (r *TestRunner) Step(st *Stage) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		st.Step()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	step := r.steps[r.cursor]
	r.cursor++

	switch step.Action {
	case "mousedown":
		st.RaiseMouseDownEvent(&MouseButtonArgs{
			LocalPosition: Point{step.X, step.Y},
			Button:        MouseButtonLeft,
			Clicks:        1,
			IsDownEvent:   true,
		}, true)
	case "mouseup":
		st.RaiseMouseUpEvent(&MouseButtonArgs{
			LocalPosition: Point{step.X, step.Y},
			Button:        MouseButtonLeft,
			Clicks:        1,
			IsUpEvent:     true,
		}, true)
	case "mousemove":
		pos := Point{step.X, step.Y}
		st.RaiseMouseMovedEvent(&MotionArgs{
			LocalPosition: pos,
			DeltaX:        pos.X - r.prevCursor.X,
			DeltaY:        pos.Y - r.prevCursor.Y,
		}, true)
		r.prevCursor = pos
	case "scroll":
		st.RaiseMouseScrollEvent(&WheelArgs{
			DeltaX:        step.DX,
			DeltaY:        step.DY,
			PreciseDeltaX: float64(step.DX),
			PreciseDeltaY: float64(step.DY),
		}, true)
	case "keydown":
		st.RaiseKeyDownEvent(&KeyArgs{Key: ebiten.Key(step.Key), IsDownEvent: true}, true)
	case "keyup":
		st.RaiseKeyUpEvent(&KeyArgs{Key: ebiten.Key(step.Key), IsUpEvent: true}, true)
	case "frame":
		// one frame with no input
	case "wait":
		if step.Frames > 1 {
			r.waitCount = step.Frames - 1 // this frame counts as one
		}
	}

	st.Step()

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
