package event

// X11 keysym values as reported in the a parameter of KeyState and KeyRaw
// events. Latin-1 symbols (space through 0xff) are identical to their
// character codes; everything else follows /usr/include/X11/keysymdef.h.
const (
	KeySpace  = 0x0020
	KeyExclam = 0x0021
	KeyComma  = 0x002c
	KeyMinus  = 0x002d
	KeyPeriod = 0x002e
	KeySlash  = 0x002f
	Key0      = 0x0030
	Key1      = 0x0031
	Key2      = 0x0032
	Key3      = 0x0033
	Key4      = 0x0034
	Key5      = 0x0035
	Key6      = 0x0036
	Key7      = 0x0037
	Key8      = 0x0038
	Key9      = 0x0039

	KeyA = 0x0041
	KeyB = 0x0042
	KeyC = 0x0043
	KeyD = 0x0044
	KeyE = 0x0045
	KeyQ = 0x0051
	KeyS = 0x0053
	KeyW = 0x0057
	KeyZ = 0x005a

	Keya = 0x0061
	Keyb = 0x0062
	Keyc = 0x0063
	Keyd = 0x0064
	Keye = 0x0065
	Keyq = 0x0071
	Keys = 0x0073
	Keyw = 0x0077
	Keyz = 0x007a

	KeyBackspace = 0xff08
	KeyTab       = 0xff09
	KeyReturn    = 0xff0d
	KeyPause     = 0xff13
	KeyEscape    = 0xff1b
	KeyDelete    = 0xffff

	KeyHome  = 0xff50
	KeyLeft  = 0xff51
	KeyUp    = 0xff52
	KeyRight = 0xff53
	KeyDown  = 0xff54
	KeyEnd   = 0xff57

	KeyF1  = 0xffbe
	KeyF2  = 0xffbf
	KeyF3  = 0xffc0
	KeyF4  = 0xffc1
	KeyF5  = 0xffc2
	KeyF6  = 0xffc3
	KeyF7  = 0xffc4
	KeyF8  = 0xffc5
	KeyF9  = 0xffc6
	KeyF10 = 0xffc7
	KeyF11 = 0xffc8
	KeyF12 = 0xffc9

	KeyShiftL   = 0xffe1
	KeyShiftR   = 0xffe2
	KeyControlL = 0xffe3
	KeyControlR = 0xffe4
	KeyCapsLock = 0xffe5
	KeyAltL     = 0xffe9
	KeyAltR     = 0xffea
)

// IsChar reports whether a keysym maps directly to an ASCII/Latin-1
// character, which is the condition for emitting a KeyChar event.
func IsChar(sym int) bool {
	return sym >= KeySpace && sym <= 0x00ff
}
