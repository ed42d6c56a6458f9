package arbor

// Stage owns everything the scene graph needs at runtime: the registry of
// live nodes, the registry of scenes with the current-scene pointer, the
// mass-teardown flag, and the external collaborators (render surface,
// window, clock). It replaces process-wide state with an explicitly
// constructed, explicitly torn-down object; all of its operations are
// single-threaded and run synchronously on the caller's goroutine.
type Stage struct {
	// LoadEvent fires once from Run before the first frame.
	LoadEvent Signal[BasicArgs]
	// UpdateEvent fires every frame before the scene traversal.
	UpdateEvent Signal[BasicArgs]
	// LateUpdateEvent fires every frame after the scene traversal.
	LateUpdateEvent Signal[BasicArgs]
	// QuitEvent fires when the outer loop shuts down.
	QuitEvent Signal[BasicArgs]

	nodes   map[*Node]struct{}
	scenes  map[*Scene]struct{}
	current *Scene

	destroyingAll bool
	torndown      bool

	surface Surface
	window  Window
	clock   Clock
}

// NewStage constructs a stage wired to the given collaborators and creates
// its initial empty current scene. Any collaborator may be nil: rendering,
// traversal gating, and animation timing degrade to no-ops for the nil
// ones.
func NewStage(surface Surface, window Window, clock Clock) *Stage {
	st := &Stage{
		nodes:   make(map[*Node]struct{}),
		scenes:  make(map[*Scene]struct{}),
		surface: surface,
		window:  window,
		clock:   clock,
	}
	st.current = st.NewScene("scene")
	return st
}

// Surface returns the render surface collaborator.
func (st *Stage) Surface() Surface { return st.surface }

// Window returns the window collaborator.
func (st *Stage) Window() Window { return st.window }

// Clock returns the timing collaborator.
func (st *Stage) Clock() Clock { return st.clock }

// SetSurface swaps the render surface collaborator.
func (st *Stage) SetSurface(s Surface) { st.surface = s }

// IsInitialized reports whether the stage is live: constructed, not torn
// down, and holding a current scene.
func (st *Stage) IsInitialized() bool {
	return st != nil && !st.torndown && st.current != nil
}

// --- Scene registry ---

// NewScene creates an empty one-layer scene registered with the stage.
// Creating a scene on a nil or torn-down stage is a hard usage error and
// panics: it means the surrounding application broke the required
// initialization order.
func (st *Stage) NewScene(name string) *Scene {
	if st == nil || st.torndown {
		panic("arbor: stage must be live before creating a scene")
	}
	s := &Scene{
		Name:   name,
		layers: []layer{make(layer)},
		stage:  st,
	}
	st.scenes[s] = struct{}{}
	return s
}

// DestroyScene removes the scene from the registry. Destroying the current
// scene immediately creates a fresh empty scene and makes it current, so a
// live stage never has a nil current scene.
func (st *Stage) DestroyScene(s *Scene) {
	if s == nil || st.torndown {
		return
	}
	delete(st.scenes, s)
	if st.current == s {
		st.current = st.NewScene("scene")
	}
}

// CurrentScene returns the scene receiving traversal, or nil on a dead
// stage.
func (st *Stage) CurrentScene() *Scene {
	if !st.IsInitialized() {
		return nil
	}
	return st.current
}

// SetCurrentScene makes s the scene receiving traversal. A nil scene, a
// scene from another stage, or a dead stage leaves the current scene
// unchanged.
func (st *Stage) SetCurrentScene(s *Scene) {
	if !st.IsInitialized() || s == nil || s.stage != st {
		return
	}
	st.current = s
}

// CountScenes returns the number of registered scenes.
func (st *Stage) CountScenes() int { return len(st.scenes) }

// ForEachScene runs action for every registered scene and returns the
// number visited.
func (st *Stage) ForEachScene(action func(*Scene)) int {
	if action == nil {
		return 0
	}
	count := 0
	for s := range st.scenes {
		action(s)
		count++
	}
	return count
}

// ForEachSceneIf runs action for every registered scene satisfying
// predicate and returns the number visited.
func (st *Stage) ForEachSceneIf(action func(*Scene), predicate func(*Scene) bool) int {
	if action == nil {
		return 0
	}
	if predicate == nil {
		return st.ForEachScene(action)
	}
	count := 0
	for s := range st.scenes {
		if predicate(s) {
			action(s)
			count++
		}
	}
	return count
}

// FindScene returns the first registered scene with the given name, or
// nil.
func (st *Stage) FindScene(name string) *Scene {
	for s := range st.scenes {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FindSceneIf returns the first registered scene satisfying predicate, or
// nil.
func (st *Stage) FindSceneIf(predicate func(*Scene) bool) *Scene {
	if predicate == nil {
		return nil
	}
	for s := range st.scenes {
		if predicate(s) {
			return s
		}
	}
	return nil
}

// --- Node registry ---

// CountNodes returns the number of live nodes created on the stage.
func (st *Stage) CountNodes() int { return len(st.nodes) }

// ForEachNode runs action for every live node and returns the number
// visited. Do not destroy nodes from inside action; use DestroyAllNodes
// for bulk teardown.
func (st *Stage) ForEachNode(action func(*Node)) int {
	if action == nil {
		return 0
	}
	count := 0
	for n := range st.nodes {
		action(n)
		count++
	}
	return count
}

// ForEachNodeIf runs action for every live node satisfying predicate and
// returns the number visited.
func (st *Stage) ForEachNodeIf(action func(*Node), predicate func(*Node) bool) int {
	if action == nil {
		return 0
	}
	if predicate == nil {
		return st.ForEachNode(action)
	}
	count := 0
	for n := range st.nodes {
		if predicate(n) {
			action(n)
			count++
		}
	}
	return count
}

// FindNode returns the first live node with the given name, or nil.
func (st *Stage) FindNode(name string) *Node {
	for n := range st.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindNodeIf returns the first live node satisfying predicate, or nil.
func (st *Stage) FindNodeIf(predicate func(*Node) bool) *Node {
	if predicate == nil {
		return nil
	}
	for n := range st.nodes {
		if predicate(n) {
			return n
		}
	}
	return nil
}

// DestroyAllNodes destroys every live node. While the bulk pass runs, the
// per-node removal from the registry and from scene layers is suppressed;
// the registry and every scene are cleared once at the end instead.
func (st *Stage) DestroyAllNodes() {
	st.destroyingAll = true
	for n := range st.nodes {
		n.Destroy()
	}
	clear(st.nodes)
	st.ForEachScene(func(s *Scene) { s.Clear() })
	st.destroyingAll = false
}

// Teardown destroys every node and scene and marks the stage dead. After
// Teardown the traversal entry points no-op and NewScene panics.
func (st *Stage) Teardown() {
	if st.torndown {
		return
	}
	st.DestroyAllNodes()
	clear(st.scenes)
	st.current = nil
	st.torndown = true
}
