package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/postman721/LWM/internal/wm"
)

const netWmStateFullscreenName = "_NET_WM_STATE_FULLSCREEN"

// ScreenSize reports the root screen dimensions in pixels.
func (c *Connection) ScreenSize() (int, int) {
	return int(c.screen.WidthInPixels), int(c.screen.HeightInPixels)
}

// Geometry queries the server for a window's current geometry.
func (c *Connection) Geometry(win xproto.Window) (wm.Geometry, error) {
	g, err := xwindow.New(c.xu, win).Geometry()
	if err != nil {
		return wm.Geometry{}, fmt.Errorf("querying geometry of window %d: %w", win, err)
	}
	return wm.Geometry{X: g.X(), Y: g.Y(), Width: g.Width(), Height: g.Height()}, nil
}

func (c *Connection) MoveWindow(win xproto.Window, x, y int) {
	xproto.ConfigureWindow(c.conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)})
}

func (c *Connection) ResizeWindow(win xproto.Window, width, height int) {
	xproto.ConfigureWindow(c.conn(), win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)})
}

func (c *Connection) MoveResizeWindow(win xproto.Window, g wm.Geometry) {
	xproto.ConfigureWindow(c.conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(g.X), uint32(g.Y), uint32(g.Width), uint32(g.Height)})
}

func (c *Connection) RaiseWindow(win xproto.Window) {
	xproto.ConfigureWindow(c.conn(), win,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (c *Connection) MapWindow(win xproto.Window)   { xproto.MapWindow(c.conn(), win) }
func (c *Connection) UnmapWindow(win xproto.Window) { xproto.UnmapWindow(c.conn(), win) }

func (c *Connection) DestroyWindow(win xproto.Window) {
	xproto.DestroyWindow(c.conn(), win)
}

func (c *Connection) FocusWindow(win xproto.Window) {
	xproto.SetInputFocus(c.conn(), xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

func (c *Connection) FocusRoot() {
	xproto.SetInputFocus(c.conn(), xproto.InputFocusPointerRoot, c.root, xproto.TimeCurrentTime)
}

// FocusedWindow reports the current input focus holder, or zero when
// focus sits on the root, on no window, or cannot be queried.
func (c *Connection) FocusedWindow() xproto.Window {
	reply, err := xproto.GetInputFocus(c.conn()).Reply()
	if err != nil {
		c.log.Debug("input focus query failed", "error", err)
		return 0
	}
	focus := reply.Focus
	if focus == c.root || focus == xproto.WindowNone || focus == xproto.InputFocusPointerRoot {
		return 0
	}
	return focus
}

func (c *Connection) Viewable(win xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.conn(), win).Reply()
	if err != nil {
		return false
	}
	return attrs.MapState == xproto.MapStateViewable
}

func (c *Connection) OverrideRedirect(win xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.conn(), win).Reply()
	if err != nil {
		return false
	}
	return attrs.OverrideRedirect
}

func (c *Connection) WatchEnter(win xproto.Window) {
	xproto.ChangeWindowAttributes(c.conn(), win, xproto.CwEventMask,
		[]uint32{xproto.EventMaskEnterWindow})
}

// Fullscreen reads the window's EWMH state property; an unreadable
// property reads as not fullscreen.
func (c *Connection) Fullscreen(win xproto.Window) bool {
	states, err := ewmh.WmStateGet(c.xu, win)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == netWmStateFullscreenName {
			return true
		}
	}
	return false
}

func (c *Connection) SetFullscreen(win xproto.Window, fullscreen bool) {
	states, err := ewmh.WmStateGet(c.xu, win)
	if err != nil {
		states = nil
	}
	next := states[:0:0]
	for _, s := range states {
		if s != netWmStateFullscreenName {
			next = append(next, s)
		}
	}
	if fullscreen {
		next = append(next, netWmStateFullscreenName)
	}
	if err := ewmh.WmStateSet(c.xu, win, next); err != nil {
		c.log.Warn("setting window state failed", "window", win, "error", err)
	}
}

// SupportsDelete reports whether win advertises WM_DELETE_WINDOW in its
// WM_PROTOCOLS property.
func (c *Connection) SupportsDelete(win xproto.Window) bool {
	protocols, err := icccm.WmProtocolsGet(c.xu, win)
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

// SendDelete delivers a WM_DELETE_WINDOW client message so the window
// can shut down gracefully.
func (c *Connection) SendDelete(win xproto.Window) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   c.atoms.wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms.wmDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	xproto.SendEvent(c.conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (c *Connection) SendExpose(win xproto.Window, width, height int) {
	ev := xproto.ExposeEvent{
		Window: win,
		Width:  uint16(width),
		Height: uint16(height),
	}
	xproto.SendEvent(c.conn(), false, win, xproto.EventMaskExposure, string(ev.Bytes()))
}

// SendConfigureNotify tells the client its geometry, which some
// toolkits require before drawing correctly.
func (c *Connection) SendConfigureNotify(win xproto.Window, g wm.Geometry) {
	ev := xproto.ConfigureNotifyEvent{
		Event:  win,
		Window: win,
		X:      int16(g.X),
		Y:      int16(g.Y),
		Width:  uint16(g.Width),
		Height: uint16(g.Height),
	}
	xproto.SendEvent(c.conn(), false, win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// ForwardConfigure replays a client's configure request verbatim,
// honoring only the fields its value mask names.
func (c *Connection) ForwardConfigure(ev xproto.ConfigureRequestEvent) {
	var values []uint32
	if ev.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(ev.X))
	}
	if ev.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(ev.Y))
	}
	if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(ev.Width))
	}
	if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(ev.Height))
	}
	if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(ev.Sibling))
	}
	if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(ev.StackMode))
	}
	if len(values) == 0 {
		return
	}
	xproto.ConfigureWindow(c.conn(), ev.Window, ev.ValueMask, values)
}

// Keysym translates a keycode plus modifier state into a keysym, using
// the shifted column when shift is held.
func (c *Connection) Keysym(code xproto.Keycode, state uint16) xproto.Keysym {
	var column byte
	if state&xproto.ModMaskShift != 0 {
		column = 1
	}
	return keybind.KeysymGet(c.xu, code, column)
}

// DeleteRequest reports whether ev is a WM_DELETE_WINDOW message.
func (c *Connection) DeleteRequest(ev xproto.ClientMessageEvent) bool {
	return ev.Type == c.atoms.wmProtocols &&
		ev.Format == 32 &&
		xproto.Atom(ev.Data.Data32[0]) == c.atoms.wmDeleteWindow
}

// ActivateRequest reports whether ev is a _NET_ACTIVE_WINDOW request
// and for which window.
func (c *Connection) ActivateRequest(ev xproto.ClientMessageEvent) (xproto.Window, bool) {
	if ev.Type != c.atoms.netActiveWindow || ev.Window == 0 {
		return 0, false
	}
	return ev.Window, true
}
