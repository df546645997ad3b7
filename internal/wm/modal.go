package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// ModalKind identifies which modal dialog, if any, currently owns
// input routing.
type ModalKind int

const (
	// ModalNone means no modal is active.
	ModalNone ModalKind = iota
	// ModalExit is the exit confirmation dialog.
	ModalExit
	// ModalRunner is the command runner prompt.
	ModalRunner
	// ModalHelp is the key binding help dialog.
	ModalHelp
)

// String returns the string representation of the kind.
func (k ModalKind) String() string {
	switch k {
	case ModalNone:
		return "none"
	case ModalExit:
		return "exit"
	case ModalRunner:
		return "runner"
	case ModalHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DialogSpec describes the popup window a modal owns.
type DialogSpec struct {
	Title  string
	Width  int
	Height int
}

func dialogSpec(kind ModalKind) DialogSpec {
	switch kind {
	case ModalExit:
		return DialogSpec{Title: "Confirm Exit", Width: 300, Height: 100}
	case ModalRunner:
		return DialogSpec{Title: "Run Program", Width: 300, Height: 50}
	case ModalHelp:
		return DialogSpec{Title: "Key Bindings", Width: 400, Height: 240}
	default:
		return DialogSpec{}
	}
}

// ModalController tracks the single active modal dialog and the
// runner's text buffer. At most one modal is active at a time; while
// active it owns exactly one dialog window.
type ModalController struct {
	kind   ModalKind
	window xproto.Window
	input  []byte
}

// NewModalController creates an inactive controller.
func NewModalController() *ModalController {
	return &ModalController{}
}

// Active reports whether a modal currently owns input.
func (m *ModalController) Active() bool {
	return m.kind != ModalNone
}

// Kind returns the active modal kind.
func (m *ModalController) Kind() ModalKind {
	return m.kind
}

// Window returns the active modal's dialog window.
func (m *ModalController) Window() xproto.Window {
	return m.window
}

// Owns reports whether win is the active modal's dialog.
func (m *ModalController) Owns(win xproto.Window) bool {
	return m.kind != ModalNone && m.window == win
}

// Input returns the runner's text buffer.
func (m *ModalController) Input() string {
	return string(m.input)
}

func (m *ModalController) activate(kind ModalKind, win xproto.Window) {
	m.kind = kind
	m.window = win
	m.input = m.input[:0]
}

func (m *ModalController) reset() {
	m.kind = ModalNone
	m.window = 0
	m.input = nil
}

func (m *ModalController) appendInput(b byte) {
	m.input = append(m.input, b)
}

// backspaceInput removes the last buffered character; no-op on an
// empty buffer.
func (m *ModalController) backspaceInput() bool {
	if len(m.input) == 0 {
		return false
	}
	m.input = m.input[:len(m.input)-1]
	return true
}

// openModal creates, registers and focuses the dialog for kind, then
// marks the modal active. Opening a modal while one is already active
// is a no-op. The modal only becomes active once the whole
// create-register-focus sequence succeeded, so a partial setup can
// never leave a half-armed modal behind.
func (m *Manager) openModal(kind ModalKind) {
	if m.modal.Active() {
		return
	}
	spec := dialogSpec(kind)
	win, err := m.srv.CreateDialog(spec)
	if err != nil {
		m.log.Error("dialog creation failed", "kind", kind.String(), "error", err)
		return
	}
	m.registry.Register(win)
	m.focusWindow(win)
	m.modal.activate(kind, win)
	m.log.Debug("modal opened", "kind", kind.String(), "window", win)
}

// closeModal tears the active dialog down and re-establishes focus.
func (m *Manager) closeModal() {
	if !m.modal.Active() {
		return
	}
	win := m.modal.Window()
	m.registry.Unregister(win)
	m.srv.UnmapWindow(win)
	m.srv.DestroyWindow(win)
	m.modal.reset()
	m.resetFocus()
}

// modalKeyPress routes a key to the active modal's handler. No other
// key handling runs while a modal is active.
func (m *Manager) modalKeyPress(ks xproto.Keysym) error {
	switch m.modal.Kind() {
	case ModalExit:
		switch ks {
		case keysymY, keysymUpperY:
			return ErrShutdown
		case keysymN, keysymUpperN, keysymEscape:
			m.closeModal()
		}
	case ModalRunner:
		m.runnerKeyPress(ks)
	case ModalHelp:
		if ks == keysymEscape {
			m.closeModal()
		}
	}
	return nil
}

func (m *Manager) runnerKeyPress(ks xproto.Keysym) {
	switch {
	case ks == keysymEscape:
		m.closeModal()
	case ks == keysymReturn:
		if command := m.modal.Input(); command != "" {
			if pid, err := m.exec(command); err != nil {
				m.log.Error("command launch failed", "command", command, "error", err)
			} else {
				m.log.Info("launched command", "command", command, "pid", pid)
			}
		}
		m.closeModal()
	case ks == keysymBackSpace:
		if m.modal.backspaceInput() {
			m.redrawModal()
		}
	case ks >= printableMin && ks <= printableMax:
		m.modal.appendInput(byte(ks))
		m.redrawModal()
	}
}

// redrawModal schedules a repaint of the active dialog by delivering a
// synthetic expose; the glyph rendering itself happens on the Expose
// path.
func (m *Manager) redrawModal() {
	if !m.modal.Active() {
		return
	}
	spec := dialogSpec(m.modal.Kind())
	m.srv.SendExpose(m.modal.Window(), spec.Width, spec.Height)
}
