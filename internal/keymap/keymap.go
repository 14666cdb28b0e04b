// Package keymap holds the constant HID-usage translation tables shared
// by the PS/2 emulation and the USB output drivers: the HID-usage to
// PS/2 scan-code-set-2 table, the closed set of usages requiring an 0xE0
// extended prefix, the modifier-key table, the keyboard-LED mask table,
// and the typematic rate/delay tables parsed (but not acted on — see
// package ps2) from the 0xF3 set-typematic host command.
package keymap

// UndefinedUsage is the sentinel USB-HID codepoint returned by USBUsage
// for a HID usage with no defined mapping; callers must filter it.
const UndefinedUsage = 3

// HIDToPS2 maps HID usage bytes 0x00..0x75 to their PS/2 scan-code-set-2
// "make" byte. Extended-prefix usages still need MaybeE0Prefix applied by
// the caller.
var HIDToPS2 = [...]byte{
	0x00, 0x00, 0xfc, 0x00, 0x1c, 0x32, 0x21, 0x23, 0x24, 0x2b, 0x34, 0x33, 0x43, 0x3b, 0x42, 0x4b,
	0x3a, 0x31, 0x44, 0x4d, 0x15, 0x2d, 0x1b, 0x2c, 0x3c, 0x2a, 0x1d, 0x22, 0x35, 0x1a, 0x16, 0x1e,
	0x26, 0x25, 0x2e, 0x36, 0x3d, 0x3e, 0x46, 0x45, 0x5a, 0x76, 0x66, 0x0d, 0x29, 0x4e, 0x55, 0x54,
	0x5b, 0x5d, 0x5d, 0x4c, 0x52, 0x0e, 0x41, 0x49, 0x4a, 0x58, 0x05, 0x06, 0x04, 0x0c, 0x03, 0x0b,
	0x83, 0x0a, 0x01, 0x09, 0x78, 0x07, 0x7c, 0x7e, 0x7e, 0x70, 0x6c, 0x7d, 0x71, 0x69, 0x7a, 0x74,
	0x6b, 0x72, 0x75, 0x77, 0x4a, 0x7c, 0x7b, 0x79, 0x5a, 0x69, 0x72, 0x7a, 0x6b, 0x73, 0x74, 0x6c,
	0x75, 0x7d, 0x70, 0x71, 0x61, 0x2f, 0x37, 0x0f, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0x40,
	0x48, 0x50, 0x57, 0x5f, 0x00, 0x00,
}

// ModToPS2 maps HID usages 0xE0..0xE7 (LCtrl, LShift, LAlt, LGui, RCtrl,
// RShift, RAlt, RGui) to their PS/2 scan-code-set-2 byte.
var ModToPS2 = [8]byte{0x14, 0x12, 0x11, 0x1f, 0x14, 0x59, 0x11, 0x27}

// LedToPS2 maps the PS/2 0xED set-LEDs bitmask (bit0=ScrollLock,
// bit1=NumLock, bit2=CapsLock) to the USB keyboard-LED-report bitmask
// (bit0=NumLock, bit1=CapsLock, bit2=ScrollLock).
var LedToPS2 = [8]byte{0, 4, 1, 5, 2, 6, 3, 7}

// TypematicRepeatMicros maps the low 5 bits of the 0xF3 set-typematic
// byte to a repeat interval in microseconds.
var TypematicRepeatMicros = [32]uint32{
	33333, 37453, 41667, 45872, 48309, 54054, 58480, 62500,
	66667, 75188, 83333, 91743, 100000, 108696, 116279, 125000,
	133333, 149254, 166667, 181818, 200000, 217391, 232558, 250000,
	270270, 303030, 333333, 370370, 400000, 434783, 476190, 500000,
}

// TypematicDelayMillis maps bits 5-6 of the 0xF3 set-typematic byte to
// the delay, in milliseconds, before the first repeat.
var TypematicDelayMillis = [4]uint16{250, 500, 750, 1000}

// needsE0Prefix reports membership in the closed set of HID usages whose
// PS/2 encoding requires a leading 0xE0 prefix byte.
func needsE0Prefix(usage byte) bool {
	switch {
	case usage == 0x46:
		return true
	case usage >= 0x49 && usage <= 0x52:
		return true
	case usage == 0x54 || usage == 0x58:
		return true
	case usage == 0x65 || usage == 0x66:
		return true
	case usage >= 0x81:
		return true
	default:
		return false
	}
}

// MaybeE0Prefix reports whether the PS/2 encoding of a non-modifier HID
// usage requires a leading 0xE0 byte.
func MaybeE0Prefix(usage byte) bool {
	return needsE0Prefix(usage)
}

// ModNeedsE0Prefix reports whether the PS/2 encoding of a modifier usage
// (0xE0..0xE7) requires a leading 0xE0 byte: true for the right-hand
// modifiers other than RShift.
func ModNeedsE0Prefix(modIndex byte) bool {
	return modIndex > 2 && modIndex != 5
}

// USBUsage translates a wire key code to the USB HID usage byte a USB
// keyboard report should carry. The wire protocol carries raw HID usage
// IDs directly (unlike the small sequential key-index scheme some older
// firmware variants used internally), so this is an identity mapping
// that filters the two codes with no corresponding physical key: 0 (no
// key) and UndefinedUsage (3, "ErrorUndefined" per the USB HID usage
// tables). ok is false for those two, and callers must silently drop the
// event rather than report it.
func USBUsage(hidUsage byte) (usage byte, ok bool) {
	if hidUsage == 0 || hidUsage == UndefinedUsage {
		return 0, false
	}
	return hidUsage, true
}
