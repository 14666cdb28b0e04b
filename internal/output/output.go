// Package output implements the HID output abstraction: polymorphic
// Keyboard and Mouse capabilities behind a common interface, with
// concrete USB, PS/2, and Dummy variants, and the factory that builds the
// active pair from a persisted outputs-selection byte.
package output

// Kind identifies a concrete Keyboard or Mouse implementation. The zero
// value, Dummy, is always legal and never offline.
type Kind int

const (
	Dummy Kind = iota
	USBKeyboard
	PS2Keyboard
	USBMouseAbsolute
	USBMouseAbsoluteWin98
	USBMouseRelative
	PS2Mouse
)

func (k Kind) String() string {
	switch k {
	case USBKeyboard:
		return "usb-keyboard"
	case PS2Keyboard:
		return "ps2-keyboard"
	case USBMouseAbsolute:
		return "usb-mouse-absolute"
	case USBMouseAbsoluteWin98:
		return "usb-mouse-absolute-win98"
	case USBMouseRelative:
		return "usb-mouse-relative"
	case PS2Mouse:
		return "ps2-mouse"
	default:
		return "dummy"
	}
}

// Leds mirrors the three keyboard indicator LEDs.
type Leds struct {
	Caps   bool
	Scroll bool
	Num    bool
}

// Keyboard is the polymorphic capability every keyboard output driver
// implements, matching the firmware's abstract Keyboard interface.
type Keyboard interface {
	Begin() error
	Clear()
	// SendKey posts a key event. Implementations silently ignore codes
	// that map to keymap.UndefinedUsage.
	SendKey(code byte, pressed bool)
	// Periodic is called from the main loop; it must not block.
	Periodic()
	IsOffline() bool
	Leds() Leds
	Type() Kind
}

// Mouse is the polymorphic capability every mouse output driver
// implements.
type Mouse interface {
	Begin() error
	Clear()
	IsOffline() bool
	Type() Kind
	// SendButtons updates only the buttons whose *Sel argument is true,
	// leaving the rest at their prior pressed state.
	SendButtons(leftSel, leftState, rightSel, rightState, midSel, midState, upSel, upState, downSel, downState bool)
	// SendMove is valid for absolute mice only; relative mice ignore it.
	SendMove(x, y int16)
	// SendRelative is valid for relative mice only; absolute mice ignore it.
	SendRelative(dx, dy int8)
	// SendWheel moves the vertical wheel only; horizontal is unsupported
	// by design, matching the firmware.
	SendWheel(dy int8)
}

// Capabilities records which kinds this firmware build was compiled
// with, independent of which kind is currently selected — it backs
// status byte 3's HAS_USB/HAS_USB_WIN98/HAS_PS2 bits.
type Capabilities struct {
	USB      bool
	USBWin98 bool
	PS2      bool
}
