package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// managementKeys are the key names grabbed with the Alt modifier on the
// root window. Dialog input is not grabbed; while a dialog has focus
// its key presses arrive through normal focus delivery.
var managementKeys = []string{"f", "e", "q", "r", "i", "m", "n", "Tab"}

// grabInputs claims the management key bindings and the Alt+button
// drag triggers on the root window, once per lock-modifier combination
// so CapsLock or NumLock cannot mask a binding.
func (c *Connection) grabInputs() {
	configureIgnoreMods(c.xu)

	for _, name := range managementKeys {
		keycodes := keybind.StrToKeycodes(c.xu, name)
		if len(keycodes) == 0 {
			c.log.Warn("no keycode for management key", "key", name)
			continue
		}
		for _, keycode := range keycodes {
			for _, ignore := range xevent.IgnoreMods {
				xproto.GrabKey(c.conn(), true, c.root,
					uint16(xproto.ModMask1)|ignore, keycode,
					xproto.GrabModeAsync, xproto.GrabModeAsync)
			}
		}
	}

	pointerMask := uint16(xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion)
	for _, button := range []byte{xproto.ButtonIndex1, xproto.ButtonIndex3} {
		for _, ignore := range xevent.IgnoreMods {
			xproto.GrabButton(c.conn(), true, c.root, pointerMask,
				xproto.GrabModeAsync, xproto.GrabModeAsync,
				xproto.WindowNone, xproto.CursorNone,
				button, uint16(xproto.ModMask1)|ignore)
		}
	}
}

// configureIgnoreMods teaches xevent which lock modifiers to treat as
// absent, so grabs cover every CapsLock/NumLock/ScrollLock combination.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)
	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := map[uint16]struct{}{0: {}}

	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}
	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		unique[mask] = struct{}{}
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}
	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
