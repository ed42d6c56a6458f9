package arbor

import (
	"testing"
)

func newTestStage() *Stage {
	return NewStage(nil, nil, nil)
}

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("test")
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if !n.Enabled {
		t.Error("Enabled should be true")
	}
	if !n.HandleInput {
		t.Error("HandleInput should be true")
	}
	if !n.RenderBackground {
		t.Error("RenderBackground should be true")
	}
	if n.Alignment != AlignTopLeft {
		t.Errorf("Alignment = %d, want AlignTopLeft", n.Alignment)
	}
	if n.Position != PtZero || n.Size != SzZero {
		t.Errorf("geometry = %v/%v, want zero", n.Position, n.Size)
	}
	if n.Parent() != nil {
		t.Error("Parent should be nil")
	}
	if n.Stage() != st {
		t.Error("Stage should be the creating stage")
	}
	if st.CountNodes() != 1 {
		t.Errorf("CountNodes = %d, want 1", st.CountNodes())
	}
}

// --- AddChild / SetParent ---

func TestAddChildBasic(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	child := st.NewNode("child")
	parent.AddChild(child)

	if child.Parent() != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.Children()[0] != child {
		t.Error("Children()[0] should be child")
	}
}

func TestAddChildReparentAtomic(t *testing.T) {
	st := newTestStage()
	p1 := st.NewNode("p1")
	p2 := st.NewNode("p2")
	child := st.NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Errorf("p1.NumChildren = %d, want 0 after reparent", p1.NumChildren())
	}
	if p2.NumChildren() != 1 {
		t.Errorf("p2.NumChildren = %d, want 1", p2.NumChildren())
	}
	if child.Parent() != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildrenPreservesOrder(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	a := st.NewNode("a")
	b := st.NewNode("b")
	c := st.NewNode("c")
	parent.AddChildren(a, nil, b, c)

	kids := parent.Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Errorf("children order wrong: %v", names(kids))
	}
}

func TestSetParentRejectsSelf(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("n")
	n.SetParent(n)
	if n.Parent() != nil {
		t.Error("self-parenting should be a no-op")
	}
}

func TestSetParentRejectsDescendant(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	mid := st.NewNode("mid")
	leaf := st.NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	root.SetParent(leaf)
	if root.Parent() != nil {
		t.Error("parenting under a descendant should be a no-op")
	}
	if leaf.NumChildren() != 0 {
		t.Error("leaf should have gained no children")
	}
	// The previous attachment must survive the rejected move.
	if mid.Parent() != root || leaf.Parent() != mid {
		t.Error("existing tree should be untouched")
	}
}

// --- Detach ---

func TestDetachChildrenKeepsNodesAlive(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	a := st.NewNode("a")
	b := st.NewNode("b")
	parent.AddChildren(a, b)

	parent.DetachChildren()
	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if a.Parent() != nil || b.Parent() != nil {
		t.Error("detached children should have nil parent")
	}
	if a.IsDestroyed() || b.IsDestroyed() {
		t.Error("detached children must not be destroyed")
	}
}

func TestDetachChildForeignIsNoOp(t *testing.T) {
	st := newTestStage()
	p1 := st.NewNode("p1")
	p2 := st.NewNode("p2")
	child := st.NewNode("child")
	p1.AddChild(child)

	p2.DetachChild(child)
	if child.Parent() != p1 {
		t.Error("detaching from a non-parent should be a no-op")
	}
}

func TestDetachChildIf(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	a := st.NewNode("a")
	b := st.NewNode("keep")
	c := st.NewNode("c")
	parent.AddChildren(a, b, c)

	n := parent.DetachChildIf(func(n *Node) bool { return n.Name != "keep" })
	if n != 2 {
		t.Errorf("detached = %d, want 2", n)
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Error("only 'keep' should remain")
	}
	if a.Parent() != nil || c.Parent() != nil {
		t.Error("detached children should have nil parent")
	}
}

// --- Queries ---

func TestContainsChildRecursive(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	mid := st.NewNode("mid")
	leaf := st.NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if !root.ContainsChild(mid, false) {
		t.Error("direct child should be found non-recursively")
	}
	if root.ContainsChild(leaf, false) {
		t.Error("grandchild should not be found non-recursively")
	}
	if !root.ContainsChild(leaf, true) {
		t.Error("grandchild should be found recursively")
	}
}

func TestFindChild(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	a := st.NewNode("dup")
	b := st.NewNode("dup")
	parent.AddChildren(a, b)

	if parent.FindChild("dup") != a {
		t.Error("FindChild should return the first match in insertion order")
	}
	if parent.FindChild("missing") != nil {
		t.Error("FindChild should return nil for no match")
	}
	found := parent.FindChildIf(func(n *Node) bool { return n == b })
	if found != b {
		t.Error("FindChildIf should honor the predicate")
	}
}

func TestForEachChildIf(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	a := st.NewNode("a")
	b := st.NewNode("b")
	parent.AddChildren(a, b)
	b.Enabled = false

	var visited []string
	n := parent.ForEachChildIf(
		func(n *Node) { visited = append(visited, n.Name) },
		func(n *Node) bool { return n.Enabled },
	)
	if n != 1 || len(visited) != 1 || visited[0] != "a" {
		t.Errorf("visited %v (count %d), want [a]", visited, n)
	}
}

// --- Destroy ---

func TestDestroyDetachesEverything(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	n := st.NewNode("n")
	child := st.NewNode("child")
	parent.AddChild(n)
	n.AddChild(child)
	st.CurrentScene().Add(n, 0)

	rec := &recordingScript{kind: "rec"}
	n.AttachScript(rec)

	n.Destroy()

	if !n.IsDestroyed() {
		t.Error("IsDestroyed should be true")
	}
	if rec.stops != 1 {
		t.Errorf("script stops = %d, want 1", rec.stops)
	}
	if child.Parent() != nil {
		t.Error("children should be detached, not destroyed")
	}
	if child.IsDestroyed() {
		t.Error("child must survive parent destruction")
	}
	if parent.NumChildren() != 0 {
		t.Error("destroyed node should leave its parent")
	}
	if st.FindNode("n") != nil {
		t.Error("destroyed node should leave the stage registry")
	}
	if st.CurrentScene().Contains(n, false) {
		t.Error("destroyed node should leave every scene")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("n")
	rec := &recordingScript{kind: "rec"}
	n.AttachScript(rec)

	n.Destroy()
	n.Destroy()
	if rec.stops != 1 {
		t.Errorf("script stops = %d, want 1", rec.stops)
	}
}

// --- Update propagation ---

func TestUpdateOrderWithinNode(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("n")
	var order []string
	n.AttachScript(&recordingScript{kind: "rec", log: &order})
	n.HandleUpdate = func(*Node) { order = append(order, "hook") }
	n.UpdateEvent.Register(func(*Node, *BasicArgs) { order = append(order, "event") })

	n.RaiseUpdateEvent(true)

	want := []string{"early", "hook", "update", "event", "late"}
	if !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestUpdateDepthFirstOrder(t *testing.T) {
	st := newTestStage()
	r := st.NewNode("R")
	b := st.NewNode("B")
	c := st.NewNode("C")
	d := st.NewNode("D")
	r.AddChildren(b, c)
	b.AddChild(d)

	var order []string
	for _, n := range []*Node{r, b, c, d} {
		node := n
		node.HandleUpdate = func(*Node) { order = append(order, node.Name) }
	}
	r.RaiseUpdateEvent(true)

	want := []string{"R", "B", "D", "C"}
	if !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestUpdateLateRunsAfterSubtree(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	child := st.NewNode("child")
	parent.AddChild(child)

	var order []string
	parent.AttachScript(&recordingScript{kind: "rec", log: &order})
	child.HandleUpdate = func(*Node) { order = append(order, "child") }

	parent.RaiseUpdateEvent(true)

	want := []string{"early", "update", "child", "late"}
	if !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestUpdateNonRecursiveSkipsChildrenAndLate(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	child := st.NewNode("child")
	parent.AddChild(child)

	var order []string
	parent.AttachScript(&recordingScript{kind: "rec", log: &order})
	child.HandleUpdate = func(*Node) { order = append(order, "child") }

	parent.RaiseUpdateEvent(false)

	want := []string{"early", "update"}
	if !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

// --- Render propagation ---

func TestRenderSkipsDisabledChildren(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	on := st.NewNode("on")
	off := st.NewNode("off")
	off.Enabled = false
	parent.AddChildren(on, off)

	var rendered []string
	for _, n := range []*Node{on, off} {
		node := n
		node.RenderEvent.Register(func(*Node, *RenderArgs) { rendered = append(rendered, node.Name) })
	}
	parent.RaiseRenderEvent(&RenderArgs{TargetArea: Rect{0, 0, 100, 100}}, true)

	if !equalStrings(rendered, []string{"on"}) {
		t.Errorf("rendered = %v, want [on]", rendered)
	}
}

func TestRenderTargetAreaPerChild(t *testing.T) {
	st := newTestStage()
	parent := st.NewNode("parent")
	parent.Size = Size{100, 100}
	child := st.NewNode("child")
	child.Position = Point{10, 10}
	child.Size = Size{20, 20}
	child.Alignment = AlignBottomRight
	parent.AddChild(child)

	var got Rect
	child.RenderEvent.Register(func(_ *Node, args *RenderArgs) { got = args.TargetArea })
	parent.RaiseRenderEvent(&RenderArgs{TargetArea: Rect{0, 0, 100, 100}}, true)

	// Bottom-right anchor base (80,80) plus the child's (10,10) offset.
	want := Rect{90, 90, 20, 20}
	if got != want {
		t.Errorf("child TargetArea = %v, want %v", got, want)
	}
}

func TestRenderHookReplacesDefault(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("n")
	hooked := false
	n.HandleRender = func(*Node, *RenderArgs) { hooked = true }
	n.RaiseRenderEvent(nil, false)
	if !hooked {
		t.Error("HandleRender should fire")
	}
}

// --- Keyboard propagation ---

func TestKeyPropagationFiltersAndShares(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	a := st.NewNode("a")
	b := st.NewNode("b")
	deaf := st.NewNode("deaf")
	deaf.HandleInput = false
	off := st.NewNode("off")
	off.Enabled = false
	root.AddChildren(a, deaf, off, b)

	var visited []string
	a.KeyDownEvent.Register(func(_ *Node, args *KeyArgs) {
		visited = append(visited, "a")
		args.Modifiers = ModShift // later siblings share the instance
	})
	b.KeyDownEvent.Register(func(_ *Node, args *KeyArgs) {
		visited = append(visited, "b")
		if args.Modifiers != ModShift {
			t.Error("sibling should observe earlier mutation of shared args")
		}
	})
	deaf.KeyDownEvent.Register(func(*Node, *KeyArgs) { visited = append(visited, "deaf") })
	off.KeyDownEvent.Register(func(*Node, *KeyArgs) { visited = append(visited, "off") })

	root.RaiseKeyDownEvent(&KeyArgs{IsDownEvent: true}, true)

	if !equalStrings(visited, []string{"a", "b"}) {
		t.Errorf("visited = %v, want [a b]", visited)
	}
}

// --- Mouse propagation ---

func TestMouseDownRebasesPerLevel(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	root.Size = Size{100, 100}
	child := st.NewNode("child")
	child.Position = Point{10, 10}
	child.Size = Size{20, 20}
	root.AddChild(child)

	var rootPos, childPos Point
	root.MouseDownEvent.Register(func(_ *Node, args *MouseButtonArgs) { rootPos = args.LocalPosition })
	child.MouseDownEvent.Register(func(_ *Node, args *MouseButtonArgs) { childPos = args.LocalPosition })

	root.RaiseMouseDownEvent(&MouseButtonArgs{LocalPosition: Point{15, 15}, Button: MouseButtonLeft, IsDownEvent: true}, true)

	if rootPos != (Point{15, 15}) {
		t.Errorf("root saw %v, want (15,15)", rootPos)
	}
	if childPos != (Point{5, 5}) {
		t.Errorf("child saw %v, want (5,5)", childPos)
	}
}

func TestMouseDownChildCopyDoesNotLeakUpward(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	root.Size = Size{100, 100}
	child := st.NewNode("child")
	child.Position = Point{10, 10}
	child.Size = Size{20, 20}
	root.AddChild(child)

	args := &MouseButtonArgs{LocalPosition: Point{15, 15}, IsDownEvent: true}
	root.RaiseMouseDownEvent(args, true)

	if args.LocalPosition != (Point{15, 15}) {
		t.Errorf("caller args mutated to %v; children must receive copies", args.LocalPosition)
	}
}

func TestMouseHitTestGating(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("n")
	n.Size = Size{50, 50}

	var global, local int
	n.GlobalMouseDownEvent.Register(func(*Node, *MouseButtonArgs) { global++ })
	n.MouseDownEvent.Register(func(*Node, *MouseButtonArgs) { local++ })

	n.RaiseMouseDownEvent(&MouseButtonArgs{LocalPosition: Point{200, 200}, IsDownEvent: true}, false)
	if global != 1 || local != 0 {
		t.Errorf("outside hit: global=%d local=%d, want 1/0", global, local)
	}

	n.RaiseMouseDownEvent(&MouseButtonArgs{LocalPosition: Point{49, 49}, IsDownEvent: true}, false)
	if global != 2 || local != 1 {
		t.Errorf("inside hit: global=%d local=%d, want 2/1", global, local)
	}
}

func TestMouseMovedHitTestAndRebase(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	root.Size = Size{100, 100}
	child := st.NewNode("child")
	child.Position = Point{10, 10}
	child.Size = Size{20, 20}
	root.AddChild(child)

	var childPos Point
	var childHits int
	child.MouseMovedEvent.Register(func(_ *Node, args *MotionArgs) {
		childHits++
		childPos = args.LocalPosition
	})
	var globalHits int
	child.GlobalMouseMovedEvent.Register(func(*Node, *MotionArgs) { globalHits++ })

	// Inside the child.
	root.RaiseMouseMovedEvent(&MotionArgs{LocalPosition: Point{12, 14}, DeltaX: 1}, true)
	// Outside the child, still propagated globally.
	root.RaiseMouseMovedEvent(&MotionArgs{LocalPosition: Point{90, 90}}, true)

	if childHits != 1 || childPos != (Point{2, 4}) {
		t.Errorf("child hit %d times at %v, want once at (2,4)", childHits, childPos)
	}
	if globalHits != 2 {
		t.Errorf("global fired %d times, want 2", globalHits)
	}
}

func TestMouseUpMirrorsDown(t *testing.T) {
	st := newTestStage()
	n := st.NewNode("n")
	n.Size = Size{10, 10}
	var up int
	n.MouseUpEvent.Register(func(*Node, *MouseButtonArgs) { up++ })
	n.RaiseMouseUpEvent(&MouseButtonArgs{LocalPosition: Point{5, 5}, IsUpEvent: true}, false)
	if up != 1 {
		t.Errorf("up = %d, want 1", up)
	}
}

func TestScrollPropagationUntransformed(t *testing.T) {
	st := newTestStage()
	root := st.NewNode("root")
	child := st.NewNode("child")
	root.AddChild(child)

	var got *WheelArgs
	child.MouseScrollEvent.Register(func(_ *Node, args *WheelArgs) { got = args })
	sent := &WheelArgs{DeltaY: -3, PreciseDeltaY: -3.5}
	root.RaiseMouseScrollEvent(sent, true)
	if got != sent {
		t.Error("wheel args should be the shared instance, untransformed")
	}
}

// --- Helpers ---

// recordingScript counts lifecycle calls and optionally appends phase names
// to an external log.
type recordingScript struct {
	BaseScript
	kind   string
	starts int
	stops  int
	log    *[]string
}

func (r *recordingScript) Kind() string { return r.kind }

func (r *recordingScript) Start(*Node) { r.starts++ }
func (r *recordingScript) Stop(*Node)  { r.stops++ }

func (r *recordingScript) EarlyUpdate(*Node) { r.record("early") }
func (r *recordingScript) Update(*Node)      { r.record("update") }
func (r *recordingScript) LateUpdate(*Node)  { r.record("late") }

func (r *recordingScript) record(phase string) {
	if r.log != nil {
		*r.log = append(*r.log, phase)
	}
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
