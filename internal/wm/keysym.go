package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Keysym values the manager reacts to, from X11/keysymdef.h. Printable
// keysyms in [0x20, 0x7e] map directly to their ASCII characters.
const (
	keysymBackSpace xproto.Keysym = 0xff08
	keysymTab       xproto.Keysym = 0xff09
	keysymReturn    xproto.Keysym = 0xff0d
	keysymEscape    xproto.Keysym = 0xff1b

	keysymUpperN xproto.Keysym = 0x004e
	keysymUpperY xproto.Keysym = 0x0059

	keysymE xproto.Keysym = 0x0065
	keysymF xproto.Keysym = 0x0066
	keysymI xproto.Keysym = 0x0069
	keysymM xproto.Keysym = 0x006d
	keysymN xproto.Keysym = 0x006e
	keysymQ xproto.Keysym = 0x0071
	keysymR xproto.Keysym = 0x0072
	keysymY xproto.Keysym = 0x0079
)

const (
	printableMin xproto.Keysym = 0x20
	printableMax xproto.Keysym = 0x7e
)
