// Package device ties the protocol, output, PS/2, non-volatile store, and
// AUM packages together into the single aggregate that owns exactly one
// active Keyboard and Mouse and answers every request frame, matching
// the firmware's own single-instance _kbd/_mouse globals and
// _handleRequest/_sendResponse pair.
package device

import (
	"sync"

	"github.com/kbmbridge/hidcore/internal/aum"
	"github.com/kbmbridge/hidcore/internal/crc16"
	"github.com/kbmbridge/hidcore/internal/nvstore"
	"github.com/kbmbridge/hidcore/internal/output"
	"github.com/kbmbridge/hidcore/internal/proto"
)

// Device is the single owner of the active output drivers and the
// request/response state machine sitting in front of them.
type Device struct {
	mu sync.Mutex

	kbd   output.Keyboard
	mouse output.Mouse

	store    *nvstore.Store // nil when the build has no writable NV record
	aumProxy *aum.Proxy     // nil when the build has no AUM board

	caps output.Capabilities

	resetRequired bool
	prevCode      byte
}

// New constructs a Device around already-built output drivers. store and
// aumProxy may be nil; a nil store makes SET_KEYBOARD/SET_MOUSE a no-op
// that also leaves the reset-required flag clear, matching a
// non-HID_DYNAMIC firmware build.
func New(kbd output.Keyboard, mouse output.Mouse, store *nvstore.Store, aumProxy *aum.Proxy, caps output.Capabilities) *Device {
	return &Device{
		kbd:      kbd,
		mouse:    mouse,
		store:    store,
		aumProxy: aumProxy,
		caps:     caps,
		prevCode: proto.RESP.None,
	}
}

// Periodic calls the active keyboard driver's Periodic hook (a no-op in
// every current driver) and, if an AUM board is present, mirrors VBUS.
// Call once per super-loop iteration.
func (d *Device) Periodic() {
	d.mu.Lock()
	kbd := d.kbd
	proxy := d.aumProxy
	d.mu.Unlock()

	if proxy != nil {
		proxy.ProxyUsbVbus()
	}
	kbd.Periodic()
}

// Handle decodes one raw 8-byte request frame and returns the raw 8-byte
// response frame to send back, exactly mirroring
// _sendResponse(_handleRequest(buffer)).
func (d *Device) Handle(frame []byte) []byte {
	req, ok, err := proto.DecodeRequest(frame)
	if err != nil || !ok {
		return d.respond(proto.RESP.CRCError)
	}
	return d.respond(d.dispatch(req))
}

// TimedOut builds the response for a serial framer idle timeout, which
// bypasses dispatch entirely.
func (d *Device) TimedOut() []byte {
	return d.respond(proto.RESP.TimeoutError)
}

// dispatch runs one decoded request through the opcode switch and
// returns the response code _handleRequest would return: PONG.OK on
// success, 0 to mean "repeat the previous response" (CMD.Repeat), or a
// plain error code.
func (d *Device) dispatch(req proto.Request) byte {
	switch req.Opcode {
	case proto.CMD.Ping:
		return proto.PONG.OK
	case proto.CMD.SetKeyboard:
		d.cmdSetKeyboard(req.Payload)
		return proto.PONG.OK
	case proto.CMD.SetMouse:
		d.cmdSetMouse(req.Payload)
		return proto.PONG.OK
	case proto.CMD.SetConnected:
		d.cmdSetConnected(req.Payload)
		return proto.PONG.OK
	case proto.CMD.ClearHID:
		d.cmdClearHID()
		return proto.PONG.OK
	case proto.CMD.Key:
		d.cmdKeyEvent(req.Payload)
		return proto.PONG.OK
	case proto.CMD.MouseButton:
		d.cmdMouseButtonEvent(req.Payload)
		return proto.PONG.OK
	case proto.CMD.MouseMove:
		d.cmdMouseMoveEvent(req.Payload)
		return proto.PONG.OK
	case proto.CMD.MouseRelative:
		d.cmdMouseRelativeEvent(req.Payload)
		return proto.PONG.OK
	case proto.CMD.MouseWheel:
		d.cmdMouseWheelEvent(req.Payload)
		return proto.PONG.OK
	case proto.CMD.Repeat:
		return 0
	default:
		return proto.RESP.InvalidError
	}
}

func (d *Device) cmdSetKeyboard(payload [4]byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.store != nil {
		d.store.Write(proto.Outputs1Keyboard.Mask, payload[0], false)
		d.resetRequired = true
	}
}

func (d *Device) cmdSetMouse(payload [4]byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.store != nil {
		d.store.Write(proto.Outputs1Mouse.Mask, payload[0], false)
		d.resetRequired = true
	}
}

func (d *Device) cmdSetConnected(payload [4]byte) {
	d.mu.Lock()
	proxy := d.aumProxy
	d.mu.Unlock()
	if proxy != nil {
		proxy.SetUsbConnected(payload[0] != 0)
	}
}

func (d *Device) cmdClearHID() {
	d.mu.Lock()
	kbd, mouse := d.kbd, d.mouse
	d.mu.Unlock()
	kbd.Clear()
	mouse.Clear()
}

func (d *Device) cmdKeyEvent(payload [4]byte) {
	d.mu.Lock()
	kbd := d.kbd
	d.mu.Unlock()
	kbd.SendKey(payload[0], payload[1] != 0)
}

func (d *Device) cmdMouseButtonEvent(payload [4]byte) {
	d.mu.Lock()
	mouse := d.mouse
	d.mu.Unlock()
	b0, b1 := payload[0], payload[1]
	mouse.SendButtons(
		b0&proto.MouseButtonBits.LeftSelect != 0, b0&proto.MouseButtonBits.LeftState != 0,
		b0&proto.MouseButtonBits.RightSelect != 0, b0&proto.MouseButtonBits.RightState != 0,
		b0&proto.MouseButtonBits.MiddleSelect != 0, b0&proto.MouseButtonBits.MiddleState != 0,
		b1&proto.MouseButtonBits.ExtraUpSelect != 0, b1&proto.MouseButtonBits.ExtraUpState != 0,
		b1&proto.MouseButtonBits.ExtraDownSelect != 0, b1&proto.MouseButtonBits.ExtraDownState != 0,
	)
}

func (d *Device) cmdMouseMoveEvent(payload [4]byte) {
	d.mu.Lock()
	mouse := d.mouse
	d.mu.Unlock()
	x := int16(crc16.Merge8(payload[0], payload[1]))
	y := int16(crc16.Merge8(payload[2], payload[3]))
	mouse.SendMove(x, y)
}

func (d *Device) cmdMouseRelativeEvent(payload [4]byte) {
	d.mu.Lock()
	mouse := d.mouse
	d.mu.Unlock()
	mouse.SendRelative(int8(payload[0]), int8(payload[1]))
}

func (d *Device) cmdMouseWheelEvent(payload [4]byte) {
	d.mu.Lock()
	mouse := d.mouse
	d.mu.Unlock()
	// X (payload[0]) is not supported, matching _cmdMouseWheelEvent.
	mouse.SendWheel(int8(payload[1]))
}
