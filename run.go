package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Window is the windowing collaborator: it owns the OS window and reports
// the output size used as the root coordinate space for render and input
// traversal. Traversal entry points no-op while IsInitialized is false.
type Window interface {
	Size() Size
	IsInitialized() bool
}

// Clock is the timing collaborator: a single frame-delta scalar in
// seconds, consumed by animation scripts and update hooks needing
// frame-relative pacing.
type Clock interface {
	DeltaTime() float64
}

// TPSClock derives a fixed frame delta from ebiten's ticks-per-second
// setting.
type TPSClock struct{}

// DeltaTime returns one tick's duration in seconds.
func (TPSClock) DeltaTime() float64 { return 1.0 / float64(ebiten.TPS()) }

// FixedClock is a Clock with a constant delta, useful for tests and
// deterministic simulation.
type FixedClock struct {
	Delta float64
}

// DeltaTime returns the configured delta.
func (c FixedClock) DeltaTime() float64 { return c.Delta }

// gameWindow implements Window over the logical layout size ebiten hands
// the game.
type gameWindow struct {
	width, height int
}

func (w *gameWindow) Size() Size { return Size{w.width, w.height} }

func (w *gameWindow) IsInitialized() bool { return w.width > 0 && w.height > 0 }

// RunConfig holds the window parameters for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Stage to the ebiten game loop: Update pumps raw input into
// the stage's Raise* entry points and fires the frame's update traversal,
// Draw binds the screen to the canvas and fires the render traversal.
type game struct {
	stage  *Stage
	canvas *Canvas
	window *gameWindow
	input  inputState
	width  int
	height int
	loaded bool
}

func (g *game) Update() error {
	if !g.loaded {
		g.loaded = true
		g.stage.LoadEvent.Emit(nil)
	}
	g.stage.UpdateEvent.Emit(nil)
	g.input.pump(g.stage)
	g.stage.RaiseUpdateEvent(true)
	g.stage.LateUpdateEvent.Emit(nil)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		g.canvas.SetTarget(screen)
	}
	g.stage.RaiseRenderEvent(nil, true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.width = g.width
	g.window.height = g.height
	return g.width, g.height
}

// Run opens a window and drives the stage with the ebiten game loop until
// the window closes. Collaborators the stage was constructed without are
// filled in with the ebiten-backed defaults (Canvas, layout-size window,
// TPSClock); a stage built with NewStage(nil, nil, nil) is fully wired by
// Run. The quit signal fires after the loop returns.
func Run(st *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}

	canvas, _ := st.surface.(*Canvas)
	if st.surface == nil {
		canvas = NewCanvas()
		st.surface = canvas
	}
	win := &gameWindow{}
	if st.window == nil {
		st.window = win
	} else if gw, ok := st.window.(*gameWindow); ok {
		win = gw
	}
	if st.clock == nil {
		st.clock = TPSClock{}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{
		stage:  st,
		canvas: canvas,
		window: win,
		width:  cfg.Width,
		height: cfg.Height,
	}
	err := ebiten.RunGame(g)
	st.QuitEvent.Emit(nil)
	return err
}
