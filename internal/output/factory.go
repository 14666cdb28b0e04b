package output

import (
	"github.com/kbmbridge/hidcore/internal/proto"
	"github.com/kbmbridge/hidcore/internal/ps2"
)

// BuiltKeyboard constructs the concrete Keyboard driver kind selects,
// given whatever backing drivers the build was compiled with. A kind
// with no backing driver available falls back to Dummy, matching the
// firmware's own default case in _initOutputs.
func BuiltKeyboard(kind Kind, usb usbSubmitter, ps2kbd *ps2.Keyboard, ps2phy *ps2.Phy) Keyboard {
	switch kind {
	case USBKeyboard:
		if usb == nil {
			return DummyKeyboard{}
		}
		return NewUsbKeyboard(usb)
	case PS2Keyboard:
		if ps2kbd == nil || ps2phy == nil {
			return DummyKeyboard{}
		}
		return NewPs2Keyboard(ps2kbd, ps2phy)
	default:
		return DummyKeyboard{}
	}
}

// BuiltMouse constructs the concrete Mouse driver kind selects.
func BuiltMouse(kind Kind, usb usbSubmitter, ps2mouse *ps2.Mouse, ps2phy *ps2.Phy) Mouse {
	switch kind {
	case USBMouseAbsolute:
		if usb == nil {
			return DummyMouse{}
		}
		return NewUsbMouseAbsolute(usb)
	case USBMouseAbsoluteWin98:
		if usb == nil {
			return DummyMouse{}
		}
		return NewUsbMouseAbsoluteWin98(usb)
	case USBMouseRelative:
		if usb == nil {
			return DummyMouse{}
		}
		return NewUsbMouseRelative(usb)
	case PS2Mouse:
		if ps2mouse == nil || ps2phy == nil {
			return DummyMouse{}
		}
		return NewPs2Mouse(ps2mouse, ps2phy)
	default:
		return DummyMouse{}
	}
}

// KeyboardKindFromOutputs1 decodes status-byte-2's keyboard bits into a
// Kind, per proto.Outputs1Keyboard's mask.
func KeyboardKindFromOutputs1(outputs1 byte) Kind {
	switch outputs1 & proto.Outputs1Keyboard.Mask {
	case proto.Outputs1Keyboard.USB:
		return USBKeyboard
	case proto.Outputs1Keyboard.PS2:
		return PS2Keyboard
	default:
		return Dummy
	}
}

// MouseKindFromOutputs1 decodes status-byte-2's mouse bits into a Kind,
// per proto.Outputs1Mouse's mask.
func MouseKindFromOutputs1(outputs1 byte) Kind {
	switch outputs1 & proto.Outputs1Mouse.Mask {
	case proto.Outputs1Mouse.USBAbs:
		return USBMouseAbsolute
	case proto.Outputs1Mouse.USBWin98:
		return USBMouseAbsoluteWin98
	case proto.Outputs1Mouse.USBRel:
		return USBMouseRelative
	case proto.Outputs1Mouse.PS2:
		return PS2Mouse
	default:
		return Dummy
	}
}

// KeyboardOutputs1Bits encodes a selected keyboard kind back into
// status-byte-2 bits, the inverse of KeyboardKindFromOutputs1. Kinds
// with no corresponding bit pattern contribute 0.
func KeyboardOutputs1Bits(kind Kind) byte {
	switch kind {
	case USBKeyboard:
		return proto.Outputs1Keyboard.USB
	case PS2Keyboard:
		return proto.Outputs1Keyboard.PS2
	default:
		return 0
	}
}

// MouseOutputs1Bits encodes a selected mouse kind back into
// status-byte-2 bits, the inverse of MouseKindFromOutputs1.
func MouseOutputs1Bits(kind Kind) byte {
	switch kind {
	case USBMouseAbsolute:
		return proto.Outputs1Mouse.USBAbs
	case USBMouseAbsoluteWin98:
		return proto.Outputs1Mouse.USBWin98
	case USBMouseRelative:
		return proto.Outputs1Mouse.USBRel
	case PS2Mouse:
		return proto.Outputs1Mouse.PS2
	default:
		return 0
	}
}
