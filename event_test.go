package arbor

import (
	"testing"
)

// --- Ordering and shared args ---

func TestEventEmitOrder(t *testing.T) {
	var ev Event[*Node, BasicArgs]
	var order []int
	ev.Register(func(*Node, *BasicArgs) { order = append(order, 1) })
	ev.Register(func(*Node, *BasicArgs) { order = append(order, 2) })
	ev.Register(func(*Node, *BasicArgs) { order = append(order, 3) })
	ev.Emit(nil, nil)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("callback order = %v, want [1 2 3]", order)
	}
}

func TestEventSharedMutation(t *testing.T) {
	var ev Event[*Node, MouseButtonArgs]
	ev.Register(func(_ *Node, args *MouseButtonArgs) {
		args.Clicks = 2
	})
	var seen int
	ev.Register(func(_ *Node, args *MouseButtonArgs) {
		seen = args.Clicks
	})
	args := &MouseButtonArgs{Clicks: 1}
	ev.Emit(nil, args)
	if seen != 2 {
		t.Errorf("later callback saw Clicks = %d, want 2 (earlier mutation)", seen)
	}
	if args.Clicks != 2 {
		t.Errorf("caller args.Clicks = %d, want 2", args.Clicks)
	}
}

func TestEventEmitNilArgsAllocates(t *testing.T) {
	var ev Event[*Node, KeyArgs]
	called := false
	ev.Register(func(_ *Node, args *KeyArgs) {
		called = true
		if args == nil {
			t.Fatal("args should be auto-allocated")
		}
	})
	ev.Emit(nil, nil)
	if !called {
		t.Error("callback should have fired")
	}
}

func TestEventSenderPassedThrough(t *testing.T) {
	st := NewStage(nil, nil, nil)
	n := st.NewNode("sender")
	var got *Node
	n.UpdateEvent.Register(func(sender *Node, _ *BasicArgs) { got = sender })
	n.UpdateEvent.Emit(n, nil)
	if got != n {
		t.Error("sender should be the emitting node")
	}
}

// --- Registration management ---

func TestEventClearAndCount(t *testing.T) {
	var ev Event[*Node, BasicArgs]
	ev.Register(func(*Node, *BasicArgs) {})
	ev.Register(func(*Node, *BasicArgs) {})
	ev.Register(nil) // ignored
	if ev.Count() != 2 {
		t.Errorf("Count = %d, want 2", ev.Count())
	}
	ev.Clear()
	if ev.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", ev.Count())
	}
	ev.Emit(nil, nil) // must not panic
}

// --- Signal ---

func TestSignalEmit(t *testing.T) {
	var sig Signal[BasicArgs]
	var order []int
	sig.Register(func(*BasicArgs) { order = append(order, 1) })
	sig.Register(func(*BasicArgs) { order = append(order, 2) })
	sig.Register(nil)
	if sig.Count() != 2 {
		t.Errorf("Count = %d, want 2", sig.Count())
	}
	sig.Emit(nil)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	sig.Clear()
	if sig.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", sig.Count())
	}
}
