package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// DragState identifies the drag controller's current mode.
type DragState int

const (
	// DragIdle means no drag is in progress.
	DragIdle DragState = iota
	// DragMoving means a window is being moved with the pointer.
	DragMoving
	// DragResizing means a window is being resized with the pointer.
	DragResizing
)

// String returns the string representation of the state.
func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragMoving:
		return "moving"
	case DragResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Default drag parameters, in pixels.
const (
	DefaultSnapThreshold = 10
	DefaultMinWindowSize = 50
)

// dragSession captures the pointer and window origin at button press.
// For a move the origin's X/Y matter; for a resize its Width/Height.
type dragSession struct {
	window xproto.Window
	startX int
	startY int
	origin Geometry
}

// DragController is the state machine for an in-progress move or
// resize. At most one session exists at a time; a press while a session
// is active is ignored until release.
type DragController struct {
	state   DragState
	session dragSession

	screenW int
	screenH int
	snap    int
	minSize int
}

// NewDragController creates a controller for a screen of the given
// size. Zero snap or minSize selects the defaults.
func NewDragController(screenW, screenH, snap, minSize int) *DragController {
	if snap <= 0 {
		snap = DefaultSnapThreshold
	}
	if minSize <= 0 {
		minSize = DefaultMinWindowSize
	}
	return &DragController{
		screenW: screenW,
		screenH: screenH,
		snap:    snap,
		minSize: minSize,
	}
}

// State returns the controller's current mode.
func (d *DragController) State() DragState {
	return d.state
}

// Active reports whether a move or resize session is in progress.
func (d *DragController) Active() bool {
	return d.state != DragIdle
}

// Target returns the window of the active session.
func (d *DragController) Target() (xproto.Window, bool) {
	if d.state == DragIdle {
		return 0, false
	}
	return d.session.window, true
}

// StartMove begins a move session for win. Returns false if a session
// is already active.
func (d *DragController) StartMove(win xproto.Window, rootX, rootY int, origin Geometry) bool {
	if d.state != DragIdle {
		return false
	}
	d.state = DragMoving
	d.session = dragSession{window: win, startX: rootX, startY: rootY, origin: origin}
	return true
}

// StartResize begins a resize session for win. Returns false if a
// session is already active.
func (d *DragController) StartResize(win xproto.Window, rootX, rootY int, origin Geometry) bool {
	if d.state != DragIdle {
		return false
	}
	d.state = DragResizing
	d.session = dragSession{window: win, startX: rootX, startY: rootY, origin: origin}
	return true
}

// MovePosition converts the current pointer position into the dragged
// window's next origin, snapped to the screen edges. Each axis snaps
// independently: a coordinate within the threshold of edge zero snaps
// to zero, and a far edge (coordinate plus extent) within the threshold
// of the screen's far edge snaps flush against it.
func (d *DragController) MovePosition(rootX, rootY int, extent Geometry) (int, int) {
	x := d.session.origin.X + rootX - d.session.startX
	y := d.session.origin.Y + rootY - d.session.startY
	x = snapAxis(x, extent.Width, d.screenW, d.snap)
	y = snapAxis(y, extent.Height, d.screenH, d.snap)
	return x, y
}

// ResizeExtent converts the current pointer position into the dragged
// window's next width and height, each clamped to the minimum. Resizes
// do not snap.
func (d *DragController) ResizeExtent(rootX, rootY int) (int, int) {
	w := d.session.origin.Width + rootX - d.session.startX
	h := d.session.origin.Height + rootY - d.session.startY
	if w < d.minSize {
		w = d.minSize
	}
	if h < d.minSize {
		h = d.minSize
	}
	return w, h
}

// Reset discards the active session unconditionally.
func (d *DragController) Reset() {
	d.state = DragIdle
	d.session = dragSession{}
}

// DropWindow resets the controller if win is the current drag target,
// so a destroyed window is never configured again.
func (d *DragController) DropWindow(win xproto.Window) bool {
	if d.state == DragIdle || d.session.window != win {
		return false
	}
	d.Reset()
	return true
}

func snapAxis(pos, extent, screen, threshold int) int {
	if abs(pos) < threshold {
		pos = 0
	}
	if abs(pos+extent-screen) < threshold {
		pos = screen - extent
	}
	return pos
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
