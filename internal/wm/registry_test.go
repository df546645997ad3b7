package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func allViewable(xproto.Window) bool { return true }

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Register(2)
	r.Register(1)
	if r.Len() != 2 {
		t.Fatalf("Len = %d after duplicate register, want 2", r.Len())
	}
}

func TestUnregisterAbsentWindow(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	if r.Unregister(99) {
		t.Fatalf("Unregister reported removal of an absent window")
	}
	if r.Len() != 1 {
		t.Fatalf("Len changed by absent unregister")
	}
}

func TestUnregisterKeepsCursorValid(t *testing.T) {
	r := NewRegistry()
	for w := xproto.Window(1); w <= 4; w++ {
		r.Register(w)
	}
	r.Unregister(2)
	r.Unregister(4)
	r.Unregister(1)

	// Whatever the cursor points at, the next advance must return a
	// member of the sequence.
	win, ok := r.AdvanceFocus(allViewable)
	if !ok || win != 3 {
		t.Fatalf("AdvanceFocus = (%d, %v), want (3, true)", win, ok)
	}
}

func TestAdvanceFocusCyclesThroughAll(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Register(2)
	r.Register(3)

	seen := make(map[xproto.Window]bool)
	for i := 0; i < 3; i++ {
		win, ok := r.AdvanceFocus(allViewable)
		if !ok {
			t.Fatalf("AdvanceFocus failed on iteration %d", i)
		}
		if seen[win] {
			t.Fatalf("window %d visited twice in one cycle", win)
		}
		seen[win] = true
	}
	if len(seen) != 3 {
		t.Fatalf("cycle visited %d windows, want 3", len(seen))
	}
}

func TestAdvanceFocusSkipsUnviewable(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Register(2)
	r.Register(3)

	viewable := func(w xproto.Window) bool { return w != 2 }
	for i := 0; i < 4; i++ {
		win, ok := r.AdvanceFocus(viewable)
		if !ok {
			t.Fatalf("AdvanceFocus failed on iteration %d", i)
		}
		if win == 2 {
			t.Fatalf("unviewable window returned")
		}
	}
}

func TestAdvanceFocusAllUnviewable(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Register(2)

	if win, ok := r.AdvanceFocus(func(xproto.Window) bool { return false }); ok {
		t.Fatalf("AdvanceFocus returned %d with nothing viewable", win)
	}
}

func TestAdvanceFocusEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.AdvanceFocus(allViewable); ok {
		t.Fatalf("AdvanceFocus succeeded on an empty registry")
	}
}

func TestMinimizeRestoreRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Register(2)
	r.Register(3)

	if !r.Minimize(2) {
		t.Fatalf("Minimize refused a managed window")
	}
	if r.Contains(2) {
		t.Fatalf("minimized window still in the ordered sequence")
	}
	if !r.IsMinimized(2) {
		t.Fatalf("window not in the minimized set")
	}
	if r.Minimize(2) {
		t.Fatalf("Minimize accepted an already-minimized window")
	}

	restored := r.RestoreAll()
	if len(restored) != 1 || restored[0] != 2 {
		t.Fatalf("RestoreAll = %v, want [2]", restored)
	}
	if r.MinimizedCount() != 0 {
		t.Fatalf("minimized set not emptied")
	}
	if !r.Contains(2) {
		t.Fatalf("restored window not back in the sequence")
	}
	if last, _ := r.Last(); last != 2 {
		t.Fatalf("Last = %d after restore, want 2", last)
	}
}

func TestForgetRemovesEverywhere(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Register(2)
	r.Minimize(2)

	r.Forget(1)
	r.Forget(2)
	if r.Len() != 0 || r.MinimizedCount() != 0 {
		t.Fatalf("Forget left state behind: len=%d minimized=%d", r.Len(), r.MinimizedCount())
	}
}

func TestLastEmpty(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Last(); ok {
		t.Fatalf("Last succeeded on an empty registry")
	}
}
