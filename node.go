package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Node is a positioned, sized entity in the scene tree. Nodes receive
// per-frame update ticks and input events in a well-defined traversal
// order, compose geometry in nested local coordinate spaces, and host
// attachable Script behaviors.
//
// A single flat struct is used for all node flavors; specialization happens
// through the overridable Handle* hooks and the public event lists rather
// than through subtyping. Each event fires in two steps: the node's own
// hook first, then the registered event callbacks.
type Node struct {
	// Enabled gates whether the node (and its subtree) receives events
	// from the stage traversal. Default true.
	Enabled bool
	// HandleInput gates whether the node receives keyboard and mouse
	// events. Default true.
	HandleInput bool
	// RenderBackground selects whether the default render pass fills the
	// node's target area with Background and BackgroundTexture. Default
	// true.
	RenderBackground bool

	Name      string
	Position  Point
	Size      Size
	Alignment Align

	Background        Color
	BackgroundTexture *ebiten.Image

	// Overridable hooks, fired before the matching event list. A nil hook
	// is skipped; a non-nil HandleRender replaces the default background
	// fill.
	HandleUpdate           func(*Node)
	HandleRender           func(*Node, *RenderArgs)
	HandleKeyDown          func(*Node, *KeyArgs)
	HandleKeyUp            func(*Node, *KeyArgs)
	HandleGlobalMouseDown  func(*Node, *MouseButtonArgs)
	HandleGlobalMouseUp    func(*Node, *MouseButtonArgs)
	HandleMouseScroll      func(*Node, *WheelArgs)
	HandleGlobalMouseMoved func(*Node, *MotionArgs)
	HandleMouseDown        func(*Node, *MouseButtonArgs)
	HandleMouseUp          func(*Node, *MouseButtonArgs)
	HandleMouseMoved       func(*Node, *MotionArgs)

	// Public event lists, fired after the matching hook.
	UpdateEvent           Event[*Node, BasicArgs]
	RenderEvent           Event[*Node, RenderArgs]
	KeyDownEvent          Event[*Node, KeyArgs]
	KeyUpEvent            Event[*Node, KeyArgs]
	GlobalMouseDownEvent  Event[*Node, MouseButtonArgs]
	GlobalMouseUpEvent    Event[*Node, MouseButtonArgs]
	MouseScrollEvent      Event[*Node, WheelArgs]
	GlobalMouseMovedEvent Event[*Node, MotionArgs]
	MouseDownEvent        Event[*Node, MouseButtonArgs]
	MouseUpEvent          Event[*Node, MouseButtonArgs]
	MouseMovedEvent       Event[*Node, MotionArgs]

	parent      *Node
	children    []*Node
	scripts     map[string]Script
	scriptOrder []string
	stage       *Stage
	destroyed   bool
}

// NewNode creates a node registered with the stage. The node starts
// enabled, input-handling, background-rendering, top-left aligned, at the
// origin with zero size, and belongs to no parent and no scene.
func (st *Stage) NewNode(name string) *Node {
	n := &Node{
		Enabled:          true,
		HandleInput:      true,
		RenderBackground: true,
		Name:             name,
		stage:            st,
	}
	if st != nil {
		st.nodes[n] = struct{}{}
	}
	return n
}

// Area returns the node's local area: its Position and Size as a Rect,
// expressed in the parent's coordinate space before alignment.
func (n *Node) Area() Rect { return NewRect(n.Position, n.Size) }

// Stage returns the stage the node was created on.
func (n *Node) Stage() *Stage { return n.stage }

// IsDestroyed reports whether Destroy has run on this node.
func (n *Node) IsDestroyed() bool { return n.destroyed }

// --- Tree manipulation ---

// Parent returns the node's parent, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// SetParent moves the node under parent, detaching it from its previous
// parent first so that a node is a member of at most one child list at any
// time. Passing nil detaches the node. Reparenting that would create a
// cycle (parent is the node itself or one of its descendants) is rejected
// as a no-op.
func (n *Node) SetParent(parent *Node) {
	if parent != nil && isDescendantOrSelf(parent, n) {
		return
	}
	if globalDebug {
		debugCheckDestroyed(n, "SetParent (child)")
		if parent != nil {
			debugCheckDestroyed(parent, "SetParent (parent)")
		}
	}
	if n.parent != nil {
		n.parent.removeChildByPtr(n)
	}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
		if globalDebug {
			debugCheckTreeDepth(n)
			debugCheckChildCount(parent)
		}
	}
}

// DetachParent removes the node from its parent, if any.
func (n *Node) DetachParent() { n.SetParent(nil) }

// AddChild appends child to this node's children, reparenting it if
// needed. A nil child is ignored.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.SetParent(n)
}

// AddChildren adds every non-nil node in the list as a child.
func (n *Node) AddChildren(children ...*Node) {
	for _, child := range children {
		n.AddChild(child)
	}
}

// DetachChild detaches child from this node. No-op when child is nil or
// belongs to another parent.
func (n *Node) DetachChild(child *Node) {
	if child == nil || child.parent != n {
		return
	}
	child.SetParent(nil)
}

// DetachChildren detaches every child; the children themselves are kept
// alive with a nil parent.
func (n *Node) DetachChildren() {
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = n.children[:0]
}

// DetachChildIf detaches every child satisfying predicate and returns the
// number detached.
func (n *Node) DetachChildIf(predicate func(*Node) bool) int {
	if predicate == nil {
		return 0
	}
	count := 0
	kept := n.children[:0]
	for _, child := range n.children {
		if predicate(child) {
			child.parent = nil
			count++
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	return count
}

// ContainsChild reports whether child is a child of this node, or when
// recursive is set, a descendant at any depth.
func (n *Node) ContainsChild(child *Node, recursive bool) bool {
	if child == nil {
		return false
	}
	for _, c := range n.children {
		if c == child {
			return true
		}
		if recursive && c.ContainsChild(child, true) {
			return true
		}
	}
	return false
}

// ForEachChild runs action for every child in insertion order and returns
// the number visited.
func (n *Node) ForEachChild(action func(*Node)) int {
	if action == nil {
		return 0
	}
	for _, child := range n.children {
		action(child)
	}
	return len(n.children)
}

// ForEachChildIf runs action for every child satisfying predicate and
// returns the number visited. A nil predicate visits every child.
func (n *Node) ForEachChildIf(action func(*Node), predicate func(*Node) bool) int {
	if action == nil {
		return 0
	}
	if predicate == nil {
		return n.ForEachChild(action)
	}
	count := 0
	for _, child := range n.children {
		if predicate(child) {
			action(child)
			count++
		}
	}
	return count
}

// FindChild returns the first child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, child := range n.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// FindChildIf returns the first child satisfying predicate, or nil.
func (n *Node) FindChildIf(predicate func(*Node) bool) *Node {
	if predicate == nil {
		return nil
	}
	for _, child := range n.children {
		if predicate(child) {
			return child
		}
	}
	return nil
}

// Destroy tears the node down: every attached script is stopped and
// discarded, every child is detached (its parent becomes nil), the node is
// detached from its own parent, and it is removed from the stage's node
// registry and from every scene layer. During a stage-wide DestroyAllNodes
// the registry and scene removals are skipped; the stage clears them in
// bulk instead.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	n.stopAllScripts()
	n.DetachChildren()
	n.DetachParent()
	if n.stage != nil && !n.stage.destroyingAll {
		delete(n.stage.nodes, n)
		n.stage.ForEachScene(func(s *Scene) { s.Remove(n) })
	}
	n.BackgroundTexture = nil
}

// --- Event propagation ---

// RaiseUpdateEvent fires the update pass on this node: scripts'
// EarlyUpdate, the node's update hook, scripts' Update, the UpdateEvent
// list, then (when recursive) every child's update pass in insertion
// order, and finally scripts' LateUpdate once the whole subtree has
// finished. Callers filter on Enabled before invoking; the recursion
// itself does not.
func (n *Node) RaiseUpdateEvent(recursive bool) {
	for _, kind := range n.scriptOrder {
		if s := n.scripts[kind]; s != nil {
			s.EarlyUpdate(n)
		}
	}
	if n.HandleUpdate != nil {
		n.HandleUpdate(n)
	}
	for _, kind := range n.scriptOrder {
		if s := n.scripts[kind]; s != nil {
			s.Update(n)
		}
	}
	n.UpdateEvent.Emit(n, nil)
	if !recursive {
		return
	}
	for _, child := range n.children {
		child.RaiseUpdateEvent(true)
	}
	for _, kind := range n.scriptOrder {
		if s := n.scripts[kind]; s != nil {
			s.LateUpdate(n)
		}
	}
}

// RaiseRenderEvent fires the render pass with the given target area. When
// recursive, every enabled child is rendered into its own target area,
// resolved against args.TargetArea through the child's local area and
// alignment; disabled children are skipped entirely. A nil args renders
// into the zero rectangle.
func (n *Node) RaiseRenderEvent(args *RenderArgs, recursive bool) {
	if args == nil {
		args = &RenderArgs{}
	}
	if n.HandleRender != nil {
		n.HandleRender(n, args)
	} else {
		n.drawBackground(args)
	}
	n.RenderEvent.Emit(n, args)
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled {
			continue
		}
		childArgs := *args
		childArgs.TargetArea = args.TargetArea.LocalToGlobal(child.Area(), child.Alignment)
		child.RaiseRenderEvent(&childArgs, true)
	}
}

// drawBackground is the default render behavior: fill the target area with
// the background color, then draw the background texture over it.
func (n *Node) drawBackground(args *RenderArgs) {
	if !n.RenderBackground || n.stage == nil || n.stage.surface == nil {
		return
	}
	surface := n.stage.surface
	surface.SetDrawColor(n.Background)
	surface.FillRectangle(args.TargetArea)
	if n.BackgroundTexture != nil {
		surface.DrawTexture(args.TargetArea, n.BackgroundTexture)
	}
}

// RaiseKeyDownEvent fires the key-down hook and event, then propagates the
// same shared args to every enabled, input-handling child. Keyboard events
// carry no position, so no transform is applied.
func (n *Node) RaiseKeyDownEvent(args *KeyArgs, recursive bool) {
	if args == nil {
		args = &KeyArgs{}
	}
	if n.HandleKeyDown != nil {
		n.HandleKeyDown(n, args)
	}
	n.KeyDownEvent.Emit(n, args)
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled || !child.HandleInput {
			continue
		}
		child.RaiseKeyDownEvent(args, true)
	}
}

// RaiseKeyUpEvent mirrors RaiseKeyDownEvent for key releases.
func (n *Node) RaiseKeyUpEvent(args *KeyArgs, recursive bool) {
	if args == nil {
		args = &KeyArgs{}
	}
	if n.HandleKeyUp != nil {
		n.HandleKeyUp(n, args)
	}
	n.KeyUpEvent.Emit(n, args)
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled || !child.HandleInput {
			continue
		}
		child.RaiseKeyUpEvent(args, true)
	}
}

// RaiseMouseScrollEvent fires the scroll hook and event, then propagates
// the shared args to every enabled, input-handling child untransformed.
func (n *Node) RaiseMouseScrollEvent(args *WheelArgs, recursive bool) {
	if args == nil {
		args = &WheelArgs{}
	}
	if n.HandleMouseScroll != nil {
		n.HandleMouseScroll(n, args)
	}
	n.MouseScrollEvent.Emit(n, args)
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled || !child.HandleInput {
			continue
		}
		child.RaiseMouseScrollEvent(args, true)
	}
}

// RaiseMouseDownEvent fires the global mouse-down hook and event
// unconditionally, then the hit-tested pair only when the event's local
// position falls inside [0,0,Size]. When recursive, each enabled,
// input-handling child receives a copy of the args with LocalPosition
// re-based into the child's coordinate space via the alignment transform
// against this node's own area.
func (n *Node) RaiseMouseDownEvent(args *MouseButtonArgs, recursive bool) {
	if args == nil {
		args = &MouseButtonArgs{}
	}
	if n.HandleGlobalMouseDown != nil {
		n.HandleGlobalMouseDown(n, args)
	}
	n.GlobalMouseDownEvent.Emit(n, args)
	if NewRect(PtZero, n.Size).Contains(args.LocalPosition) {
		if n.HandleMouseDown != nil {
			n.HandleMouseDown(n, args)
		}
		n.MouseDownEvent.Emit(n, args)
	}
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled || !child.HandleInput {
			continue
		}
		childArgs := *args
		childArea := n.Area().LocalToGlobal(child.Area(), child.Alignment)
		childArgs.LocalPosition = childArgs.LocalPosition.Sub(childArea.TopLeft())
		child.RaiseMouseDownEvent(&childArgs, true)
	}
}

// RaiseMouseUpEvent mirrors RaiseMouseDownEvent for button releases.
func (n *Node) RaiseMouseUpEvent(args *MouseButtonArgs, recursive bool) {
	if args == nil {
		args = &MouseButtonArgs{}
	}
	if n.HandleGlobalMouseUp != nil {
		n.HandleGlobalMouseUp(n, args)
	}
	n.GlobalMouseUpEvent.Emit(n, args)
	if NewRect(PtZero, n.Size).Contains(args.LocalPosition) {
		if n.HandleMouseUp != nil {
			n.HandleMouseUp(n, args)
		}
		n.MouseUpEvent.Emit(n, args)
	}
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled || !child.HandleInput {
			continue
		}
		childArgs := *args
		childArea := n.Area().LocalToGlobal(child.Area(), child.Alignment)
		childArgs.LocalPosition = childArgs.LocalPosition.Sub(childArea.TopLeft())
		child.RaiseMouseUpEvent(&childArgs, true)
	}
}

// RaiseMouseMovedEvent mirrors RaiseMouseDownEvent for cursor motion: the
// global pair fires unconditionally, the hit-tested pair only inside the
// node's rectangle, and children receive position-re-based copies.
func (n *Node) RaiseMouseMovedEvent(args *MotionArgs, recursive bool) {
	if args == nil {
		args = &MotionArgs{}
	}
	if n.HandleGlobalMouseMoved != nil {
		n.HandleGlobalMouseMoved(n, args)
	}
	n.GlobalMouseMovedEvent.Emit(n, args)
	if NewRect(PtZero, n.Size).Contains(args.LocalPosition) {
		if n.HandleMouseMoved != nil {
			n.HandleMouseMoved(n, args)
		}
		n.MouseMovedEvent.Emit(n, args)
	}
	if !recursive {
		return
	}
	for _, child := range n.children {
		if !child.Enabled || !child.HandleInput {
			continue
		}
		childArgs := *args
		childArea := n.Area().LocalToGlobal(child.Area(), child.Alignment)
		childArgs.LocalPosition = childArgs.LocalPosition.Sub(childArea.TopLeft())
		child.RaiseMouseMovedEvent(&childArgs, true)
	}
}

// --- Helpers ---

// isDescendantOrSelf reports whether candidate is node or a descendant of
// node.
func isDescendantOrSelf(candidate, node *Node) bool {
	if candidate == node {
		return true
	}
	for _, child := range node.children {
		if isDescendantOrSelf(candidate, child) {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
