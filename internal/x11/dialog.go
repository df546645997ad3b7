package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/postman721/LWM/internal/wm"
)

// CreateDialog creates and maps a popup window centered on the screen.
// The window selects exposure and input events so the manager can paint
// it and route its keys.
func (c *Connection) CreateDialog(spec wm.DialogSpec) (xproto.Window, error) {
	win, err := xproto.NewWindowId(c.conn())
	if err != nil {
		return 0, fmt.Errorf("allocating dialog window id: %w", err)
	}

	sw, sh := c.ScreenSize()
	x := int16((sw - spec.Width) / 2)
	y := int16((sh - spec.Height) / 2)

	err = xproto.CreateWindowChecked(
		c.conn(), c.screen.RootDepth, win, c.root,
		x, y, uint16(spec.Width), uint16(spec.Height), 1,
		xproto.WindowClassInputOutput, c.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			c.style.Background,
			xproto.EventMaskExposure |
				xproto.EventMaskKeyPress |
				xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease,
		},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("creating dialog window: %w", err)
	}

	if err := icccm.WmNameSet(c.xu, win, spec.Title); err != nil {
		c.log.Debug("dialog title property failed", "title", spec.Title, "error", err)
	}
	xproto.MapWindow(c.conn(), win)
	return win, nil
}
