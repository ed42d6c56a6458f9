package arbor

// Traversal driver: the stage-level entry points the outer loop calls once
// per frame tick or per raw input occurrence. Each entry point walks the
// current scene's root nodes, lower layers first, filtering on the flags
// the event kind cares about, and descends each root's subtree through the
// node-level Raise methods. Every traversal runs to completion before the
// driver returns; nothing is interleaved or deferred.

// traversalReady reports whether traversal may run: the stage is live and
// the window collaborator (when present) reports initialized.
func (st *Stage) traversalReady() bool {
	if !st.IsInitialized() {
		return false
	}
	if st.window != nil && !st.window.IsInitialized() {
		return false
	}
	return true
}

// windowArea returns the root coordinate space: the window size anchored
// at the origin, or RectZero without a window.
func (st *Stage) windowArea() Rect {
	if st.window == nil {
		return RectZero
	}
	return NewRect(PtZero, st.window.Size())
}

// RaiseUpdateEvent fires the update pass on every enabled root node of the
// current scene.
func (st *Stage) RaiseUpdateEvent(recursive bool) {
	if !st.traversalReady() {
		return
	}
	st.current.ForEach(func(n *Node) {
		if !n.Enabled {
			return
		}
		n.RaiseUpdateEvent(recursive)
	})
}

// RaiseRenderEvent clears the surface to the current scene's background,
// then fires the render pass on every enabled root node, resolving each
// root's target area against the window space (or against args.TargetArea
// when a non-zero one is supplied) and presenting the frame afterwards.
func (st *Stage) RaiseRenderEvent(args *RenderArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	sc := st.current
	if st.surface != nil {
		st.surface.SetDrawColor(sc.Background)
		st.surface.Clear()
		if sc.BackgroundTexture != nil {
			st.surface.FillTexture(sc.BackgroundTexture)
		}
	}
	base := st.windowArea()
	if args != nil && args.TargetArea != RectZero {
		base = args.TargetArea
	}
	sc.ForEach(func(n *Node) {
		if !n.Enabled {
			return
		}
		nodeArgs := RenderArgs{TargetArea: base.LocalToGlobal(n.Area(), n.Alignment)}
		n.RaiseRenderEvent(&nodeArgs, recursive)
	})
	if st.surface != nil {
		st.surface.Present()
	}
}

// RaiseKeyDownEvent delivers one key press to every enabled,
// input-handling root node. The args instance is shared across the whole
// dispatch.
func (st *Stage) RaiseKeyDownEvent(args *KeyArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	st.current.ForEach(func(n *Node) {
		if !n.Enabled || !n.HandleInput {
			return
		}
		n.RaiseKeyDownEvent(args, recursive)
	})
}

// RaiseKeyUpEvent delivers one key release; see RaiseKeyDownEvent.
func (st *Stage) RaiseKeyUpEvent(args *KeyArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	st.current.ForEach(func(n *Node) {
		if !n.Enabled || !n.HandleInput {
			return
		}
		n.RaiseKeyUpEvent(args, recursive)
	})
}

// RaiseMouseScrollEvent delivers one wheel tick to every enabled,
// input-handling root node, sharing the args instance.
func (st *Stage) RaiseMouseScrollEvent(args *WheelArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	st.current.ForEach(func(n *Node) {
		if !n.Enabled || !n.HandleInput {
			return
		}
		n.RaiseMouseScrollEvent(args, recursive)
	})
}

// RaiseMouseDownEvent delivers one button press. Each root receives a copy
// of the args with LocalPosition re-based from window space into the
// root's own coordinate space.
func (st *Stage) RaiseMouseDownEvent(args *MouseButtonArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	if args == nil {
		args = &MouseButtonArgs{}
	}
	win := st.windowArea()
	st.current.ForEach(func(n *Node) {
		if !n.Enabled || !n.HandleInput {
			return
		}
		rootArgs := *args
		rootArea := win.LocalToGlobal(n.Area(), n.Alignment)
		rootArgs.LocalPosition = rootArgs.LocalPosition.Sub(rootArea.TopLeft())
		n.RaiseMouseDownEvent(&rootArgs, recursive)
	})
}

// RaiseMouseUpEvent delivers one button release; see RaiseMouseDownEvent.
func (st *Stage) RaiseMouseUpEvent(args *MouseButtonArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	if args == nil {
		args = &MouseButtonArgs{}
	}
	win := st.windowArea()
	st.current.ForEach(func(n *Node) {
		if !n.Enabled || !n.HandleInput {
			return
		}
		rootArgs := *args
		rootArea := win.LocalToGlobal(n.Area(), n.Alignment)
		rootArgs.LocalPosition = rootArgs.LocalPosition.Sub(rootArea.TopLeft())
		n.RaiseMouseUpEvent(&rootArgs, recursive)
	})
}

// RaiseMouseMovedEvent delivers one motion event; see RaiseMouseDownEvent.
func (st *Stage) RaiseMouseMovedEvent(args *MotionArgs, recursive bool) {
	if !st.traversalReady() {
		return
	}
	if args == nil {
		args = &MotionArgs{}
	}
	win := st.windowArea()
	st.current.ForEach(func(n *Node) {
		if !n.Enabled || !n.HandleInput {
			return
		}
		rootArgs := *args
		rootArea := win.LocalToGlobal(n.Area(), n.Alignment)
		rootArgs.LocalPosition = rootArgs.LocalPosition.Sub(rootArea.TopLeft())
		n.RaiseMouseMovedEvent(&rootArgs, recursive)
	})
}

// Step runs one whole frame the way the outer loop does: the stage update
// signal, then per enabled root an update pass immediately followed by its
// render pass, then present and the late-update signal.
func (st *Stage) Step() {
	st.UpdateEvent.Emit(nil)
	if st.traversalReady() {
		sc := st.current
		if st.surface != nil {
			st.surface.SetDrawColor(sc.Background)
			st.surface.Clear()
			if sc.BackgroundTexture != nil {
				st.surface.FillTexture(sc.BackgroundTexture)
			}
		}
		win := st.windowArea()
		sc.ForEach(func(n *Node) {
			if !n.Enabled {
				return
			}
			n.RaiseUpdateEvent(true)
			nodeArgs := RenderArgs{TargetArea: win.LocalToGlobal(n.Area(), n.Alignment)}
			n.RaiseRenderEvent(&nodeArgs, true)
		})
		if st.surface != nil {
			st.surface.Present()
		}
	}
	st.LateUpdateEvent.Emit(nil)
}
