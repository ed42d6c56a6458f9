package arbor

// Script is a behavior unit attachable to a Node. Scripts are keyed by an
// explicit kind tag: a node holds at most one script per kind, and
// attaching a second script of an already-present kind returns the existing
// instance instead.
//
// Lifecycle: Start fires when the script is attached, Stop when it is
// detached or its owning node is destroyed. The update hooks fire on every
// recursive update raise: EarlyUpdate before the node's own update hook and
// event, Update between them, and LateUpdate after the node's entire
// subtree finished its update pass.
type Script interface {
	// Kind identifies the script slot on a node. Two scripts with the same
	// kind cannot coexist on one node.
	Kind() string

	Start(target *Node)
	Stop(target *Node)

	EarlyUpdate(target *Node)
	Update(target *Node)
	LateUpdate(target *Node)
}

// BaseScript provides no-op lifecycle and update hooks. Embed it to
// implement only the hooks a script cares about; Kind must still be
// supplied by the embedding type.
type BaseScript struct{}

func (BaseScript) Start(*Node)       {}
func (BaseScript) Stop(*Node)        {}
func (BaseScript) EarlyUpdate(*Node) {}
func (BaseScript) Update(*Node)      {}
func (BaseScript) LateUpdate(*Node)  {}

// AttachScript attaches s to the node and fires its Start hook. If a script
// of the same kind is already attached the existing instance is returned
// and s is discarded without being started. Returns nil for a nil script.
func (n *Node) AttachScript(s Script) Script {
	if s == nil {
		return nil
	}
	if existing, ok := n.scripts[s.Kind()]; ok && existing != nil {
		return existing
	}
	if n.scripts == nil {
		n.scripts = make(map[string]Script)
	}
	n.scripts[s.Kind()] = s
	n.scriptOrder = append(n.scriptOrder, s.Kind())
	s.Start(n)
	return s
}

// DetachScript fires the Stop hook of the script with the given kind and
// removes it from the node. No-op when no such script is attached.
func (n *Node) DetachScript(kind string) {
	s, ok := n.scripts[kind]
	if !ok {
		return
	}
	if s != nil {
		s.Stop(n)
	}
	delete(n.scripts, kind)
	for i, k := range n.scriptOrder {
		if k == kind {
			n.scriptOrder = append(n.scriptOrder[:i], n.scriptOrder[i+1:]...)
			break
		}
	}
}

// ScriptOf returns the attached script with the given kind, or nil.
func (n *Node) ScriptOf(kind string) Script {
	return n.scripts[kind]
}

// HasScript reports whether a script with the given kind is attached.
func (n *Node) HasScript(kind string) bool {
	s, ok := n.scripts[kind]
	return ok && s != nil
}

// ForEachScript runs action for every attached script, in attach order.
// Returns the number of scripts visited. A nil action visits nothing.
func (n *Node) ForEachScript(action func(Script)) int {
	if action == nil {
		return 0
	}
	count := 0
	for _, kind := range n.scriptOrder {
		if s := n.scripts[kind]; s != nil {
			action(s)
			count++
		}
	}
	return count
}

// FindScriptIf returns the first attached script satisfying predicate, or
// nil.
func (n *Node) FindScriptIf(predicate func(Script) bool) Script {
	if predicate == nil {
		return nil
	}
	for _, kind := range n.scriptOrder {
		if s := n.scripts[kind]; s != nil && predicate(s) {
			return s
		}
	}
	return nil
}

// stopAllScripts fires Stop on every attached script and clears the
// registry. Used during node destruction.
func (n *Node) stopAllScripts() {
	for _, kind := range n.scriptOrder {
		if s := n.scripts[kind]; s != nil {
			s.Stop(n)
		}
	}
	n.scripts = nil
	n.scriptOrder = nil
}
