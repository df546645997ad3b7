// Package x11 is the X server adapter: it owns the display connection,
// root window setup, input grabs and all protocol requests the manager
// issues through the wm.Server interface.
package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/postman721/LWM/internal/config"
	"github.com/postman721/LWM/internal/wm"
)

// atoms holds the interned atoms the adapter compares against in
// incoming client messages. Properties written through xgbutil's ewmh
// and icccm helpers are interned by name inside those packages.
type atoms struct {
	wmProtocols     xproto.Atom
	wmDeleteWindow  xproto.Atom
	netActiveWindow xproto.Atom
}

// Connection wraps the X display connection together with the root
// window and the interned atoms the manager needs.
type Connection struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	screen *xproto.ScreenInfo
	atoms  atoms
	style  config.DialogStyle
	log    *slog.Logger
}

var _ wm.Server = (*Connection)(nil)

// NewConnection connects to the display, claims window management on
// the root window and installs the input grabs. It fails when another
// window manager already owns the root.
func NewConnection(cfg config.Config, logger *slog.Logger) (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}
	keybind.Initialize(xu)

	c := &Connection{
		xu:     xu,
		root:   xu.RootWin(),
		screen: xu.Screen(),
		style:  cfg.Dialogs,
		log:    logger,
	}

	if err := c.internAtoms(); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	if err := c.redirectRoot(); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	c.setupCursor()
	c.setupWmCheck()
	c.grabInputs()

	return c, nil
}

// Close shuts the display connection down.
func (c *Connection) Close() {
	c.xu.Conn().Close()
}

func (c *Connection) internAtoms() error {
	intern := func(name string, dst *xproto.Atom) error {
		atom, err := xprop.Atm(c.xu, name)
		if err != nil {
			return fmt.Errorf("interning atom %s: %w", name, err)
		}
		*dst = atom
		return nil
	}
	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &c.atoms.wmProtocols},
		{"WM_DELETE_WINDOW", &c.atoms.wmDeleteWindow},
		{"_NET_ACTIVE_WINDOW", &c.atoms.netActiveWindow},
	} {
		if err := intern(a.name, a.dst); err != nil {
			return err
		}
	}
	return nil
}

// redirectRoot subscribes to substructure redirection on the root
// window. Only one client may hold this subscription, so failure means
// another window manager is running.
func (c *Connection) redirectRoot() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskPropertyChange |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskExposure)
	if wm.FocusFollowsMouse {
		mask |= xproto.EventMaskEnterWindow
	}
	err := xproto.ChangeWindowAttributesChecked(
		c.conn(), c.root, xproto.CwEventMask, []uint32{mask},
	).Check()
	if err != nil {
		return fmt.Errorf("cannot redirect the root window (is another window manager running?): %w", err)
	}
	return nil
}

func (c *Connection) setupCursor() {
	cursor, err := xcursor.CreateCursor(c.xu, xcursor.LeftPtr)
	if err != nil {
		c.log.Warn("root cursor setup failed", "error", err)
		return
	}
	err = xproto.ChangeWindowAttributesChecked(
		c.conn(), c.root, xproto.CwCursor, []uint32{uint32(cursor)},
	).Check()
	if err != nil {
		c.log.Warn("root cursor install failed", "error", err)
	}
}

// setupWmCheck publishes the _NET_SUPPORTING_WM_CHECK handshake so
// clients and tools can identify the running window manager. Failure
// is cosmetic, management works without it.
func (c *Connection) setupWmCheck() {
	check, err := xproto.NewWindowId(c.conn())
	if err != nil {
		c.log.Warn("wm check window id allocation failed", "error", err)
		return
	}
	err = xproto.CreateWindowChecked(
		c.conn(), c.screen.RootDepth, check, c.root,
		-100, -100, 1, 1, 0,
		xproto.WindowClassInputOutput, c.screen.RootVisual,
		0, nil,
	).Check()
	if err != nil {
		c.log.Warn("wm check window creation failed", "error", err)
		return
	}
	if err := ewmh.SupportingWmCheckSet(c.xu, c.root, check); err != nil {
		c.log.Warn("wm check property on root failed", "error", err)
	}
	if err := ewmh.SupportingWmCheckSet(c.xu, check, check); err != nil {
		c.log.Warn("wm check property on check window failed", "error", err)
	}
	if err := ewmh.WmNameSet(c.xu, check, "LWM"); err != nil {
		c.log.Warn("wm name property failed", "error", err)
	}
	supported := []string{
		"_NET_SUPPORTING_WM_CHECK",
		"_NET_WM_NAME",
		"_NET_ACTIVE_WINDOW",
		"_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN",
	}
	if err := ewmh.SupportedSet(c.xu, supported); err != nil {
		c.log.Warn("supported hints property failed", "error", err)
	}
}

func (c *Connection) conn() *xgb.Conn {
	return c.xu.Conn()
}
