package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/postman721/LWM/internal/wm"
)

const exitPrompt = "Exit WM? (Y/N or ESC)"

var helpLines = []string{
	"Alt+F          => Toggle fullscreen",
	"Alt+E          => Close focused window",
	"Alt+Q          => Exit confirmation dialog",
	"Alt+R          => Runner prompt",
	"Alt+Tab        => Focus next window",
	"Alt+I          => Help dialog",
	"Alt+M          => Minimize window",
	"Alt+N          => Restore all minimized",
}

// DrawDialog paints the dialog contents for kind. Core fonts only; no
// font rendering library is involved.
func (c *Connection) DrawDialog(kind wm.ModalKind, win xproto.Window, width, height int, input string) {
	switch kind {
	case wm.ModalExit:
		c.fillRect(win, c.style.Background, width, height)
		c.drawText(win, c.style.Font, c.style.Background, 10, int16(height/2), exitPrompt)
	case wm.ModalRunner:
		c.fillRect(win, c.style.Background, width, height)
		c.drawText(win, c.style.RunnerFont, c.style.Background, 10, int16(height/2+10), input)
	case wm.ModalHelp:
		c.fillRect(win, c.style.HelpBackground, width, height)
		y := int16(20)
		for _, line := range helpLines {
			c.drawText(win, c.style.Font, c.style.HelpBackground, 10, y, line)
			y += 20
		}
	}
}

func (c *Connection) fillRect(win xproto.Window, pixel uint32, width, height int) {
	gc, err := xproto.NewGcontextId(c.conn())
	if err != nil {
		c.log.Warn("gc id allocation failed", "error", err)
		return
	}
	xproto.CreateGC(c.conn(), gc, xproto.Drawable(win),
		xproto.GcForeground, []uint32{pixel})
	rect := xproto.Rectangle{Width: uint16(width), Height: uint16(height)}
	xproto.PolyFillRectangle(c.conn(), xproto.Drawable(win), gc, []xproto.Rectangle{rect})
	xproto.FreeGC(c.conn(), gc)
}

// drawText renders a line with a server-side core font. ImageText8
// caps a request at 255 glyphs.
func (c *Connection) drawText(win xproto.Window, fontName string, background uint32, x, y int16, text string) {
	if text == "" {
		return
	}
	if len(text) > 255 {
		text = text[:255]
	}

	font, err := xproto.NewFontId(c.conn())
	if err != nil {
		c.log.Warn("font id allocation failed", "error", err)
		return
	}
	if err := xproto.OpenFontChecked(c.conn(), font, uint16(len(fontName)), fontName).Check(); err != nil {
		c.log.Warn("core font unavailable", "font", fontName, "error", err)
		return
	}

	gc, err := xproto.NewGcontextId(c.conn())
	if err != nil {
		c.log.Warn("gc id allocation failed", "error", err)
		xproto.CloseFont(c.conn(), font)
		return
	}
	xproto.CreateGC(c.conn(), gc, xproto.Drawable(win),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont,
		[]uint32{c.style.Foreground, background, uint32(font)})

	xproto.ImageText8(c.conn(), byte(len(text)), xproto.Drawable(win), gc, x, y, text)

	xproto.FreeGC(c.conn(), gc)
	xproto.CloseFont(c.conn(), font)
}
