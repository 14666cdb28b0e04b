package proto

// Frame markers.
const (
	Magic     byte = 0x33
	MagicResp byte = 0x34
)

// FrameSize is the fixed length, in bytes, of every request and response
// frame.
const FrameSize = 8

// RESP holds the plain (non-OK) response codes.
var RESP = struct {
	None          byte
	CRCError      byte
	InvalidError  byte
	TimeoutError  byte
}{
	None:         0x24,
	CRCError:     0x40,
	InvalidError: 0x45,
	TimeoutError: 0x48,
}

// PONG holds the OK-response status-byte-1 bits.
var PONG = struct {
	OK              byte
	Caps            byte
	Scroll          byte
	Num             byte
	KeyboardOffline byte
	MouseOffline    byte
	ResetRequired   byte
}{
	OK:              0x80,
	Caps:            0b00000001,
	Scroll:          0b00000010,
	Num:             0b00000100,
	KeyboardOffline: 0b00001000,
	MouseOffline:    0b00010000,
	ResetRequired:   0b01000000,
}

// Outputs1Keyboard holds the status-byte-2 keyboard kind bits.
var Outputs1Keyboard = struct {
	Mask byte
	USB  byte
	PS2  byte
}{
	Mask: 0b00000111,
	USB:  0b00000001,
	PS2:  0b00000011,
}

// Outputs1Mouse holds the status-byte-2 mouse kind bits.
var Outputs1Mouse = struct {
	Mask     byte
	USBAbs   byte
	USBRel   byte
	PS2      byte
	USBWin98 byte
}{
	Mask:     0b00111000,
	USBAbs:   0b00001000,
	USBRel:   0b00010000,
	PS2:      0b00011000,
	USBWin98: 0b00100000,
}

// Outputs1Dynamic marks a firmware build with a writable NV outputs
// record.
const Outputs1Dynamic byte = 0b10000000

// Outputs2 holds the status-byte-3 capability/connectivity bits.
var Outputs2 = struct {
	Connectable byte
	Connected   byte
	HasUSB      byte
	HasPS2      byte
	HasUSBWin98 byte
}{
	Connectable: 0b10000000,
	Connected:   0b01000000,
	HasUSB:      0b00000001,
	HasPS2:      0b00000010,
	HasUSBWin98: 0b00000100,
}

// CMD holds the request opcodes (byte 1 of a request frame).
var CMD = struct {
	Ping         byte
	Repeat       byte
	SetKeyboard  byte
	SetMouse     byte
	SetConnected byte
	ClearHID     byte
	Key          byte
	MouseButton  byte
	MouseMove    byte
	MouseRelative byte
	MouseWheel   byte
}{
	Ping:          0x01,
	Repeat:        0x02,
	SetKeyboard:   0x03,
	SetMouse:      0x04,
	SetConnected:  0x05,
	ClearHID:      0x10,
	Key:           0x11,
	MouseButton:   0x12,
	MouseMove:     0x13,
	MouseRelative: 0x14,
	MouseWheel:    0x15,
}

// MouseButtonBits holds the per-button {SELECT, STATE} bit pairs packed
// into the two MOUSE_BUTTON payload bytes.
var MouseButtonBits = struct {
	LeftSelect      byte
	LeftState       byte
	RightSelect     byte
	RightState      byte
	MiddleSelect    byte
	MiddleState     byte
	ExtraUpSelect   byte
	ExtraUpState    byte
	ExtraDownSelect byte
	ExtraDownState  byte
}{
	LeftSelect:      0b10000000,
	LeftState:       0b00001000,
	RightSelect:     0b01000000,
	RightState:      0b00000100,
	MiddleSelect:    0b00100000,
	MiddleState:     0b00000010,
	ExtraUpSelect:   0b10000000,
	ExtraUpState:    0b00001000,
	ExtraDownSelect: 0b01000000,
	ExtraDownState:  0b00000100,
}
