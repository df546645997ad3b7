package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Dispatch routes one event to its handler. Every event type the
// manager subscribes to has an explicit arm; anything else is logged
// and dropped.
func (m *Manager) Dispatch(ev xgb.Event) error {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return m.handleKeyPress(e)
	case xproto.KeyReleaseEvent:
		// Only presses drive bindings.
	case xproto.ButtonPressEvent:
		m.handleButtonPress(e)
	case xproto.ButtonReleaseEvent:
		m.drag.Reset()
	case xproto.MotionNotifyEvent:
		m.handleMotionNotify(e)
	case xproto.EnterNotifyEvent:
		m.handleEnterNotify(e)
	case xproto.MapRequestEvent:
		m.handleMapRequest(e)
	case xproto.DestroyNotifyEvent:
		m.handleDestroyNotify(e)
	case xproto.UnmapNotifyEvent:
		// Unmaps arrive for minimize and for teardown; both paths
		// already updated state, so nothing to do here.
	case xproto.ConfigureRequestEvent:
		m.srv.ForwardConfigure(e)
		m.cache.Invalidate(e.Window)
	case xproto.ConfigureNotifyEvent:
		m.cache.Invalidate(e.Window)
	case xproto.ExposeEvent:
		m.handleExpose(e)
	case xproto.ClientMessageEvent:
		m.handleClientMessage(e)
	case xproto.MappingNotifyEvent:
		// Keyboard remaps are picked up lazily on the next lookup.
	default:
		m.log.Debug("unhandled event", "event", ev)
	}
	return nil
}

func (m *Manager) handleKeyPress(e xproto.KeyPressEvent) error {
	ks := m.srv.Keysym(e.Detail, e.State)
	if m.modal.Active() {
		return m.modalKeyPress(ks)
	}
	if e.State&xproto.ModMask1 == 0 {
		return nil
	}
	switch ks {
	case keysymF:
		m.toggleFullscreen(m.srv.FocusedWindow())
	case keysymE:
		m.closeWindow(m.srv.FocusedWindow())
	case keysymQ:
		m.openModal(ModalExit)
	case keysymR:
		m.openModal(ModalRunner)
	case keysymI:
		m.openModal(ModalHelp)
	case keysymTab:
		m.advanceFocus()
	case keysymM:
		m.minimizeWindow(m.srv.FocusedWindow())
	case keysymN:
		m.restoreMinimized()
	}
	return nil
}

// handleButtonPress starts a drag session. While a modal is active the
// pointer cannot grab any window, the dialog included.
func (m *Manager) handleButtonPress(e xproto.ButtonPressEvent) {
	if m.modal.Active() {
		return
	}
	if e.State&xproto.ModMask1 == 0 || e.Child == 0 || m.drag.Active() {
		return
	}
	origin := m.cache.Get(e.Child)
	switch e.Detail {
	case xproto.ButtonIndex1:
		m.drag.StartMove(e.Child, int(e.RootX), int(e.RootY), origin)
	case xproto.ButtonIndex3:
		m.drag.StartResize(e.Child, int(e.RootX), int(e.RootY), origin)
	}
}

func (m *Manager) handleMotionNotify(e xproto.MotionNotifyEvent) {
	win, ok := m.drag.Target()
	if !ok {
		return
	}
	switch m.drag.State() {
	case DragMoving:
		extent := m.cache.Get(win)
		x, y := m.drag.MovePosition(int(e.RootX), int(e.RootY), extent)
		m.srv.MoveWindow(win, x, y)
	case DragResizing:
		w, h := m.drag.ResizeExtent(int(e.RootX), int(e.RootY))
		m.srv.ResizeWindow(win, w, h)
	}
	m.cache.Invalidate(win)
}

// handleEnterNotify implements sloppy focus. While a modal is active
// only entering the dialog itself may focus.
func (m *Manager) handleEnterNotify(e xproto.EnterNotifyEvent) {
	if !FocusFollowsMouse {
		return
	}
	if m.modal.Active() && !m.modal.Owns(e.Event) {
		return
	}
	if m.registry.Contains(e.Event) {
		m.focusWindow(e.Event)
	}
}

// handleMapRequest admits a new client window. Override-redirect
// windows are mapped but never managed.
func (m *Manager) handleMapRequest(e xproto.MapRequestEvent) {
	if m.srv.OverrideRedirect(e.Window) {
		m.srv.MapWindow(e.Window)
		return
	}
	m.srv.MapWindow(e.Window)
	m.focusWindow(e.Window)
	m.registry.Register(e.Window)
	if FocusFollowsMouse {
		m.srv.WatchEnter(e.Window)
	}
	m.srv.SendConfigureNotify(e.Window, m.cache.Get(e.Window))
}

// handleDestroyNotify drops every piece of derived state referring to
// the window, in one pass, so no later event can act on the dead
// handle.
func (m *Manager) handleDestroyNotify(e xproto.DestroyNotifyEvent) {
	win := e.Window
	managed := m.registry.Contains(win) || m.registry.IsMinimized(win)
	m.registry.Forget(win)
	m.cache.Invalidate(win)
	delete(m.savedGeometry, win)
	if m.drag.DropWindow(win) {
		m.log.Debug("drag target destroyed mid-drag", "window", win)
	}
	if m.modal.Owns(win) {
		m.modal.reset()
		managed = true
	}
	if managed {
		m.resetFocus()
	}
}

func (m *Manager) handleExpose(e xproto.ExposeEvent) {
	if !m.modal.Owns(e.Window) {
		return
	}
	m.srv.DrawDialog(m.modal.Kind(), e.Window, int(e.Width), int(e.Height), m.modal.Input())
}

func (m *Manager) handleClientMessage(e xproto.ClientMessageEvent) {
	if m.srv.DeleteRequest(e) {
		m.srv.DestroyWindow(e.Window)
		return
	}
	if win, ok := m.srv.ActivateRequest(e); ok {
		m.focusWindow(win)
	}
}
