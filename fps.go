package arbor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a new Node that displays the current FPS and TPS.
// The widget refreshes itself roughly every half second. It renders through
// a custom internal image set as the node's background texture, using
// ebitenutil.DebugPrint.
func NewFPSWidget(st *Stage) *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	node := st.NewNode("fps_widget")
	node.Size = Size{Width: 100, Height: 32}
	node.BackgroundTexture = img

	var lastUpdate float64

	node.HandleUpdate = func(n *Node) {
		lastUpdate += deltaTimeOf(n)
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})

		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps))
	}

	return node
}
