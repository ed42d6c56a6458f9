// Package arbor is a retained-mode 2D scene-graph engine core for
// [Ebitengine].
//
// Arbor provides the entity tree, event propagation with per-level
// coordinate translation, attachable script behaviors, delay/duration
// animation scripts, layered scene containers, and the frame traversal
// driver that ties them together.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and a
// game loop for you:
//
//	st := arbor.NewStage(nil, nil, nil)
//	panel := st.NewNode("panel")
//	panel.Size = arbor.Size{Width: 200, Height: 120}
//	panel.Background = arbor.Color{R: 40, G: 40, B: 60, A: 255}
//	st.CurrentScene().Add(panel, 0)
//	arbor.Run(st, arbor.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call the stage's
// Raise* entry points (or [Stage.Step]) directly.
//
// # Scene graph
//
// Every entity is a [Node]. Nodes form trees through [Node.AddChild] and
// [Node.SetParent]; a node belongs to at most one parent at a time, and
// reparenting moves it atomically. Root nodes are placed into the current
// scene's layers with [Scene.Add]; the stage traversal walks lower layers
// first, then each root's subtree depth-first in insertion order.
//
// Positions are local: a child's [Node.Position] and [Node.Size] are
// expressed in its parent's coordinate space, offset by the child's
// [Node.Alignment] against the parent's resolved area. Mouse events are
// re-based level by level on the way down, so every handler sees the
// cursor in its own node's local coordinates.
//
// # Events and hooks
//
// Each node exposes an overridable Handle* hook plus a registered-callback
// [Event] list per event kind; the hook fires first, then the callbacks in
// registration order, all sharing one mutable args value. Hit-tested mouse
// events ([Node.MouseDownEvent] and friends) fire only when the cursor
// falls inside the node's rectangle; the Global* variants always fire.
//
// # Scripts and animation
//
// A [Script] attaches reusable per-frame behavior to a node, keyed by its
// kind string; [Node.AttachScript] keeps the first script of each kind.
// [Anim] is a script with a delay/play lifecycle, easing via [gween]'s
// ease functions, and optional repeat; [TweenScript] drives node fields
// with [gween] tweens directly.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package arbor
