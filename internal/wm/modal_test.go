package wm

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func openDialog(t *testing.T, m *Manager, srv *fakeServer, code xproto.Keycode, ks xproto.Keysym) xproto.Window {
	t.Helper()
	ev := bindKey(srv, code, ks, xproto.ModMask1)
	if err := m.Dispatch(ev); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !m.modal.Active() {
		t.Fatalf("modal did not open")
	}
	return m.modal.Window()
}

func typeKey(t *testing.T, m *Manager, srv *fakeServer, code xproto.Keycode, ks xproto.Keysym) error {
	t.Helper()
	srv.keysyms[code] = ks
	return m.Dispatch(xproto.KeyPressEvent{Detail: code, State: 0})
}

func TestExitDialogConfirmStopsManager(t *testing.T) {
	m, srv, _ := newTestManager(t)
	openDialog(t, m, srv, 24, keysymQ)

	err := typeKey(t, m, srv, 29, keysymY)
	if !errors.Is(err, ErrShutdown) {
		t.Fatalf("confirming exit returned %v, want ErrShutdown", err)
	}
}

func TestExitDialogDeclineCloses(t *testing.T) {
	m, srv, _ := newTestManager(t)
	dialog := openDialog(t, m, srv, 24, keysymQ)

	if err := typeKey(t, m, srv, 57, keysymN); err != nil {
		t.Fatalf("declining exit returned %v", err)
	}
	if m.modal.Active() {
		t.Fatalf("exit dialog still active after decline")
	}
	if len(srv.destroyed) != 1 || srv.destroyed[0] != dialog {
		t.Fatalf("dialog window not destroyed: %v", srv.destroyed)
	}
	if m.registry.Contains(dialog) {
		t.Fatalf("dialog window still registered after close")
	}
}

func TestSecondModalIgnoredWhileOneIsActive(t *testing.T) {
	m, srv, _ := newTestManager(t)
	openDialog(t, m, srv, 24, keysymQ)

	m.openModal(ModalRunner)
	if m.modal.Kind() != ModalExit {
		t.Fatalf("active modal changed to %v", m.modal.Kind())
	}
	if len(srv.dialogsMade) != 1 {
		t.Fatalf("second dialog window created: %d", len(srv.dialogsMade))
	}
}

func TestRunnerTypingAndLaunch(t *testing.T) {
	m, srv, rec := newTestManager(t)
	openDialog(t, m, srv, 27, keysymR)

	for i, ch := range "xterm" {
		if err := typeKey(t, m, srv, xproto.Keycode(100+i), xproto.Keysym(ch)); err != nil {
			t.Fatalf("typing %q: %v", ch, err)
		}
	}
	if got := m.modal.Input(); got != "xterm" {
		t.Fatalf("runner buffer = %q, want %q", got, "xterm")
	}
	if len(srv.exposes) != 5 {
		t.Fatalf("expected a redraw per keystroke, got %d exposes", len(srv.exposes))
	}

	if err := typeKey(t, m, srv, 36, keysymReturn); err != nil {
		t.Fatalf("return: %v", err)
	}
	if len(rec.commands) != 1 || rec.commands[0] != "xterm" {
		t.Fatalf("launched commands = %v, want [xterm]", rec.commands)
	}
	if m.modal.Active() {
		t.Fatalf("runner still active after launch")
	}
}

func TestRunnerBackspaceEditsBuffer(t *testing.T) {
	m, srv, _ := newTestManager(t)
	openDialog(t, m, srv, 27, keysymR)

	typeKey(t, m, srv, 100, 'a')
	typeKey(t, m, srv, 101, 'b')
	if err := typeKey(t, m, srv, 22, keysymBackSpace); err != nil {
		t.Fatalf("backspace: %v", err)
	}
	if got := m.modal.Input(); got != "a" {
		t.Fatalf("buffer after backspace = %q, want %q", got, "a")
	}
	// Backspacing an empty buffer must not schedule a redraw.
	typeKey(t, m, srv, 22, keysymBackSpace)
	exposes := len(srv.exposes)
	typeKey(t, m, srv, 22, keysymBackSpace)
	if len(srv.exposes) != exposes {
		t.Fatalf("empty-buffer backspace scheduled a redraw")
	}
}

func TestRunnerEscapeAbandonsWithoutLaunch(t *testing.T) {
	m, srv, rec := newTestManager(t)
	openDialog(t, m, srv, 27, keysymR)

	typeKey(t, m, srv, 100, 'l')
	typeKey(t, m, srv, 101, 's')
	if err := typeKey(t, m, srv, 9, keysymEscape); err != nil {
		t.Fatalf("escape: %v", err)
	}
	if len(rec.commands) != 0 {
		t.Fatalf("escape launched %v", rec.commands)
	}
	if m.modal.Active() {
		t.Fatalf("runner still active after escape")
	}
}

func TestRunnerEmptyBufferLaunchesNothing(t *testing.T) {
	m, srv, rec := newTestManager(t)
	openDialog(t, m, srv, 27, keysymR)

	if err := typeKey(t, m, srv, 36, keysymReturn); err != nil {
		t.Fatalf("return: %v", err)
	}
	if len(rec.commands) != 0 {
		t.Fatalf("empty buffer launched %v", rec.commands)
	}
	if m.modal.Active() {
		t.Fatalf("runner still active after empty launch")
	}
}

func TestHelpDialogClosesOnEscapeOnly(t *testing.T) {
	m, srv, _ := newTestManager(t)
	openDialog(t, m, srv, 31, keysymI)

	typeKey(t, m, srv, 100, 'x')
	if !m.modal.Active() {
		t.Fatalf("help dialog closed by a non-escape key")
	}
	if err := typeKey(t, m, srv, 9, keysymEscape); err != nil {
		t.Fatalf("escape: %v", err)
	}
	if m.modal.Active() {
		t.Fatalf("help dialog still active after escape")
	}
}

func TestModalBlocksPointerAndBindings(t *testing.T) {
	m, srv, _ := newTestManager(t)
	mapWindow(t, m, srv, 90, Geometry{Width: 100, Height: 100})
	openDialog(t, m, srv, 24, keysymQ)

	press := xproto.ButtonPressEvent{Detail: xproto.ButtonIndex1, State: xproto.ModMask1, Child: 90, RootX: 10, RootY: 10}
	if err := m.Dispatch(press); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if m.drag.Active() {
		t.Fatalf("drag started while a modal was active")
	}

	// A bound key with the modifier held routes to the dialog, not the
	// binding table.
	before := len(srv.dialogsMade)
	ev := bindKey(srv, 31, keysymI, xproto.ModMask1)
	if err := m.Dispatch(ev); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(srv.dialogsMade) != before {
		t.Fatalf("binding fired while a modal was active")
	}
}

func TestModalEnterNotifyOnlyFocusesDialog(t *testing.T) {
	m, srv, _ := newTestManager(t)
	mapWindow(t, m, srv, 91, Geometry{Width: 100, Height: 100})
	dialog := openDialog(t, m, srv, 24, keysymQ)

	if err := m.Dispatch(xproto.EnterNotifyEvent{Event: 91}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if srv.focused != dialog {
		t.Fatalf("focus left the dialog: %d", srv.focused)
	}
	if err := m.Dispatch(xproto.EnterNotifyEvent{Event: dialog}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if srv.focused != dialog {
		t.Fatalf("entering the dialog lost focus: %d", srv.focused)
	}
}

func TestExposeRedrawsActiveDialog(t *testing.T) {
	m, srv, _ := newTestManager(t)
	dialog := openDialog(t, m, srv, 27, keysymR)
	typeKey(t, m, srv, 100, 'v')

	ev := xproto.ExposeEvent{Window: dialog, Width: 300, Height: 50}
	if err := m.Dispatch(ev); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(srv.draws) != 1 {
		t.Fatalf("expose did not draw the dialog: %d draws", len(srv.draws))
	}
	draw := srv.draws[0]
	if draw.kind != ModalRunner || draw.win != dialog || draw.input != "v" {
		t.Fatalf("draw call = %+v", draw)
	}
}

func TestExposeOnOtherWindowIgnored(t *testing.T) {
	m, srv, _ := newTestManager(t)
	mapWindow(t, m, srv, 92, Geometry{Width: 100, Height: 100})

	if err := m.Dispatch(xproto.ExposeEvent{Window: 92, Width: 100, Height: 100}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(srv.draws) != 0 {
		t.Fatalf("client window expose triggered dialog drawing")
	}
}

func TestDialogCreationFailureLeavesNoModal(t *testing.T) {
	m, srv, _ := newTestManager(t)
	srv.dialogErr = errors.New("window id exhausted")

	m.openModal(ModalExit)
	if m.modal.Active() {
		t.Fatalf("modal active after dialog creation failed")
	}
	if m.registry.Len() != 0 {
		t.Fatalf("phantom dialog registered")
	}
}

func TestDialogDestroyedExternallyResetsModal(t *testing.T) {
	m, srv, _ := newTestManager(t)
	mapWindow(t, m, srv, 93, Geometry{Width: 100, Height: 100})
	dialog := openDialog(t, m, srv, 24, keysymQ)

	if err := m.Dispatch(xproto.DestroyNotifyEvent{Window: dialog}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if m.modal.Active() {
		t.Fatalf("modal still active after its dialog was destroyed")
	}
	if srv.focused != 93 {
		t.Fatalf("focus after dialog destruction = %d, want 93", srv.focused)
	}
}
