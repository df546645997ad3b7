package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Server is the windowing-system surface the manager drives. All
// protocol actions funnel through it; tests substitute a fake.
//
// Action methods are fire-and-forget: a target that vanished between
// the notification and the action surfaces as an asynchronous X error,
// which the event receiver logs and drops. Query methods substitute a
// safe default on failure rather than propagating it.
type Server interface {
	// ScreenSize reports the root screen dimensions in pixels.
	ScreenSize() (width, height int)

	// Geometry queries a window's current position and size.
	Geometry(win xproto.Window) (Geometry, error)

	MoveWindow(win xproto.Window, x, y int)
	ResizeWindow(win xproto.Window, width, height int)
	MoveResizeWindow(win xproto.Window, g Geometry)
	RaiseWindow(win xproto.Window)
	MapWindow(win xproto.Window)
	UnmapWindow(win xproto.Window)
	DestroyWindow(win xproto.Window)

	FocusWindow(win xproto.Window)
	FocusRoot()
	// FocusedWindow reports which window holds input focus, or zero
	// when focus is on the root or nowhere.
	FocusedWindow() xproto.Window

	// Viewable reports whether win is mapped and drawable.
	Viewable(win xproto.Window) bool
	// OverrideRedirect reports whether win asked not to be managed.
	OverrideRedirect(win xproto.Window) bool
	// WatchEnter subscribes to pointer-enter events on win.
	WatchEnter(win xproto.Window)

	// Fullscreen reports whether the window's state property marks it
	// fullscreen; an unreadable property reads as not fullscreen.
	Fullscreen(win xproto.Window) bool
	SetFullscreen(win xproto.Window, fullscreen bool)

	// SupportsDelete reports whether win advertises the graceful-close
	// protocol (WM_DELETE_WINDOW).
	SupportsDelete(win xproto.Window) bool
	// SendDelete asks win to close itself; the window is expected to
	// destroy itself and generate a destroy notification later.
	SendDelete(win xproto.Window)

	// CreateDialog creates and maps a centered popup window.
	CreateDialog(spec DialogSpec) (xproto.Window, error)
	// DrawDialog paints the dialog contents for kind into win. For the
	// runner, input is the current text buffer.
	DrawDialog(kind ModalKind, win xproto.Window, width, height int, input string)

	SendExpose(win xproto.Window, width, height int)
	SendConfigureNotify(win xproto.Window, g Geometry)
	// ForwardConfigure passes a client's configure request through to
	// the server, preserving its value mask.
	ForwardConfigure(ev xproto.ConfigureRequestEvent)

	// Keysym translates a keycode plus modifier state into a keysym.
	Keysym(code xproto.Keycode, state uint16) xproto.Keysym
	// DeleteRequest reports whether ev is a WM_DELETE_WINDOW client
	// message.
	DeleteRequest(ev xproto.ClientMessageEvent) bool
	// ActivateRequest reports whether ev asks to activate a window.
	ActivateRequest(ev xproto.ClientMessageEvent) (xproto.Window, bool)
}
