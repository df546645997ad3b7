package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Registry is the single source of truth for which windows are managed
// and in what stacking/focus order. It keeps an ordered sequence of
// window handles, a cursor for cyclic focus traversal, and a separate
// set of minimized windows disjoint from the sequence.
type Registry struct {
	order     []xproto.Window
	cursor    int
	minimized []xproto.Window
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len reports the number of managed (non-minimized) windows.
func (r *Registry) Len() int {
	return len(r.order)
}

// Contains reports whether win is in the ordered sequence.
func (r *Registry) Contains(win xproto.Window) bool {
	return r.indexOf(win) >= 0
}

// Register appends win and moves the cursor to it. Registering a window
// that is already present is a no-op.
func (r *Registry) Register(win xproto.Window) {
	if r.Contains(win) {
		return
	}
	r.order = append(r.order, win)
	r.cursor = len(r.order) - 1
}

// Unregister removes win from the ordered sequence, keeping the cursor
// a valid index. Removing an absent window is a no-op: destruction
// notifications may race with an earlier removal (dialog teardown).
func (r *Registry) Unregister(win xproto.Window) bool {
	idx := r.indexOf(win)
	if idx < 0 {
		return false
	}
	r.order = append(r.order[:idx], r.order[idx+1:]...)
	if idx <= r.cursor && r.cursor > 0 {
		r.cursor--
	}
	if r.cursor >= len(r.order) {
		r.cursor = 0
	}
	return true
}

// Last returns the most recently appended window.
func (r *Registry) Last() (xproto.Window, bool) {
	if len(r.order) == 0 {
		return 0, false
	}
	return r.order[len(r.order)-1], true
}

// AdvanceFocus moves the cursor forward cyclically to the next window
// for which viewable reports true and returns it. Windows that are
// mapped but not drawable are skipped. When no window is viewable the
// cursor is left at its last probed position and ok is false.
func (r *Registry) AdvanceFocus(viewable func(xproto.Window) bool) (xproto.Window, bool) {
	n := len(r.order)
	if n == 0 {
		return 0, false
	}
	for i := 0; i < n; i++ {
		r.cursor = (r.cursor + 1) % n
		if win := r.order[r.cursor]; viewable(win) {
			return win, true
		}
	}
	return 0, false
}

// Minimize moves win from the ordered sequence into the minimized set.
// Minimizing an already-minimized window is a no-op.
func (r *Registry) Minimize(win xproto.Window) bool {
	if r.IsMinimized(win) {
		return false
	}
	r.Unregister(win)
	r.minimized = append(r.minimized, win)
	return true
}

// IsMinimized reports whether win is in the minimized set.
func (r *Registry) IsMinimized(win xproto.Window) bool {
	for _, w := range r.minimized {
		if w == win {
			return true
		}
	}
	return false
}

// MinimizedCount reports the size of the minimized set.
func (r *Registry) MinimizedCount() int {
	return len(r.minimized)
}

// RestoreAll empties the minimized set, appending each window to the
// end of the ordered sequence. Restored windows do not regain their
// previous stacking position. The returned slice holds the windows
// that re-entered the sequence, in restore order.
func (r *Registry) RestoreAll() []xproto.Window {
	var restored []xproto.Window
	for _, win := range r.minimized {
		if r.Contains(win) {
			continue
		}
		r.order = append(r.order, win)
		r.cursor = len(r.order) - 1
		restored = append(restored, win)
	}
	r.minimized = nil
	return restored
}

// Forget removes win from both the ordered sequence and the minimized
// set. Used when the window is destroyed.
func (r *Registry) Forget(win xproto.Window) {
	r.Unregister(win)
	for i, w := range r.minimized {
		if w == win {
			r.minimized = append(r.minimized[:i], r.minimized[i+1:]...)
			break
		}
	}
}

func (r *Registry) indexOf(win xproto.Window) int {
	for i, w := range r.order {
		if w == win {
			return i
		}
	}
	return -1
}
