package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// focusWindow raises, maps and focuses win. Focusing the zero window is
// a no-op.
func (m *Manager) focusWindow(win xproto.Window) {
	if win == 0 {
		return
	}
	m.srv.RaiseWindow(win)
	m.srv.MapWindow(win)
	m.srv.FocusWindow(win)
}

// resetFocus hands focus to the most recently managed window, or back
// to the root when none remain.
func (m *Manager) resetFocus() {
	if win, ok := m.registry.Last(); ok {
		m.focusWindow(win)
		return
	}
	m.srv.FocusRoot()
}

// advanceFocus cycles focus to the next viewable managed window.
func (m *Manager) advanceFocus() {
	if win, ok := m.registry.AdvanceFocus(m.srv.Viewable); ok {
		m.focusWindow(win)
	}
}

// toggleFullscreen flips win between fullscreen and its saved geometry.
// Entering fullscreen records the current geometry; leaving restores it
// when a record exists, otherwise the window keeps its current frame and
// only the state property changes.
func (m *Manager) toggleFullscreen(win xproto.Window) {
	if win == 0 {
		return
	}
	if m.srv.Fullscreen(win) {
		if saved, ok := m.savedGeometry[win]; ok {
			m.srv.MoveResizeWindow(win, saved)
			delete(m.savedGeometry, win)
		}
		m.srv.SetFullscreen(win, false)
	} else {
		g, err := m.srv.Geometry(win)
		if err != nil {
			m.log.Warn("geometry query failed before fullscreen", "window", win, "error", err)
			g = fallbackGeometry
		}
		m.savedGeometry[win] = g
		m.srv.SetFullscreen(win, true)
		sw, sh := m.srv.ScreenSize()
		m.srv.MoveResizeWindow(win, Geometry{X: 0, Y: 0, Width: sw, Height: sh})
	}
	m.cache.Invalidate(win)
}

// closeWindow asks win to close gracefully when it speaks the delete
// protocol, destroying it outright otherwise.
func (m *Manager) closeWindow(win xproto.Window) {
	if win == 0 {
		return
	}
	if m.srv.SupportsDelete(win) {
		m.srv.SendDelete(win)
		return
	}
	m.srv.DestroyWindow(win)
}

// minimizeWindow hides the focused window and reassigns focus. Dialog
// windows cannot be minimized.
func (m *Manager) minimizeWindow(win xproto.Window) {
	if win == 0 || m.modal.Owns(win) || !m.registry.Contains(win) {
		return
	}
	if !m.registry.Minimize(win) {
		return
	}
	m.srv.UnmapWindow(win)
	m.resetFocus()
}

// restoreMinimized remaps every minimized window and focuses the last
// one restored.
func (m *Manager) restoreMinimized() {
	restored := m.registry.RestoreAll()
	for _, win := range restored {
		m.srv.MapWindow(win)
	}
	if len(restored) > 0 {
		if win, ok := m.registry.Last(); ok {
			m.focusWindow(win)
		}
	}
}
