package device

import (
	"github.com/kbmbridge/hidcore/internal/output"
	"github.com/kbmbridge/hidcore/internal/proto"
)

// respond implements _sendResponse: a code of 0 repeats the last
// non-zero code sent (CMD.Repeat), any other code becomes both the
// reply and the new "last code"; an OK code additionally carries the
// full status2/status3 byte encoding, a non-OK code is sent bare.
func (d *Device) respond(code byte) []byte {
	d.mu.Lock()
	if code == 0 {
		code = d.prevCode
	} else {
		d.prevCode = code
	}
	kbd, mouse := d.kbd, d.mouse
	resetRequired := d.resetRequired
	caps := d.caps
	store := d.store
	proxy := d.aumProxy
	d.mu.Unlock()

	if code&proto.PONG.OK == 0 {
		return proto.EncodePlainResponse(code)
	}

	status1 := proto.PONG.OK
	if resetRequired {
		status1 |= proto.PONG.ResetRequired
	}

	var status2 byte

	if kbd.Type() != output.Dummy {
		if kbd.IsOffline() {
			status1 |= proto.PONG.KeyboardOffline
		}
		leds := kbd.Leds()
		if leds.Caps {
			status1 |= proto.PONG.Caps
		}
		if leds.Num {
			status1 |= proto.PONG.Num
		}
		if leds.Scroll {
			status1 |= proto.PONG.Scroll
		}
		status2 |= output.KeyboardOutputs1Bits(kbd.Type())
	}

	if mouse.Type() != output.Dummy {
		if mouse.IsOffline() {
			status1 |= proto.PONG.MouseOffline
		}
		status2 |= output.MouseOutputs1Bits(mouse.Type())
	}

	if store != nil {
		status2 |= proto.Outputs1Dynamic
	}

	var status3 byte
	if caps.USB {
		status3 |= proto.Outputs2.HasUSB
	}
	if caps.USBWin98 {
		status3 |= proto.Outputs2.HasUSBWin98
	}
	if caps.PS2 {
		status3 |= proto.Outputs2.HasPS2
	}
	if proxy != nil {
		status3 |= proto.Outputs2.Connectable
		if proxy.IsUsbConnected() {
			status3 |= proto.Outputs2.Connected
		}
	}

	return proto.EncodeResponse(proto.Response{Status1: status1, Status2: status2, Status3: status3})
}
