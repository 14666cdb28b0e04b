package ps2

import (
	"reflect"
	"testing"
)

func newTestKeyboard() (*Keyboard, *Phy) {
	phy := NewPhy(nil, nil)
	kbd := NewKeyboard(phy)
	phy.onReceive = kbd.Receive
	return kbd, phy
}

func TestSendKeyMakeBreak(t *testing.T) {
	kbd, phy := newTestKeyboard()

	kbd.SendKey(0x04, true) // 'A' press
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0x1c}) {
		t.Errorf("press A = %x, want [1c]", got)
	}

	kbd.SendKey(0x04, false) // 'A' release
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0xf0, 0x1c}) {
		t.Errorf("release A = %x, want [f0 1c]", got)
	}
}

func TestSendKeyExtended(t *testing.T) {
	kbd, phy := newTestKeyboard()

	kbd.SendKey(0x49, true) // Insert press
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0xe0, 0x70}) {
		t.Errorf("press Insert = %x, want [e0 70]", got)
	}

	kbd.SendKey(0x49, false)
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0xe0, 0xf0, 0x70}) {
		t.Errorf("release Insert = %x, want [e0 f0 70]", got)
	}
}

func TestSendKeyModifiers(t *testing.T) {
	kbd, phy := newTestKeyboard()

	kbd.SendKey(0xE1, true) // LShift press
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0x12}) {
		t.Errorf("press LShift = %x, want [12]", got)
	}

	kbd.SendKey(0xE5, true) // RShift press: distinct code, no E0
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0x59}) {
		t.Errorf("press RShift = %x, want [59]", got)
	}

	kbd.SendKey(0xE4, true) // RCtrl press: needs E0
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0xe0, 0x14}) {
		t.Errorf("press RCtrl = %x, want [e0 14]", got)
	}
}

func TestPrintScreenDefaultSequence(t *testing.T) {
	kbd, phy := newTestKeyboard()

	kbd.SendKey(0x48, true)
	want := []byte{0xe1, 0x14, 0x77, 0xe1, 0xf0, 0x14, 0xf0, 0x77}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("PrintScreen press = %x, want %x", got, want)
	}

	kbd.SendKey(0x48, false)
	if got := phy.Drain(); len(got) != 0 {
		t.Errorf("PrintScreen release should be a no-op, got %x", got)
	}
}

func TestPrintScreenWithCtrlHeld(t *testing.T) {
	kbd, phy := newTestKeyboard()

	kbd.SendKey(0xE0, true) // LCtrl down
	phy.Drain()

	kbd.SendKey(0x48, true) // Pause with ctrl held
	want := []byte{0xe0, 0x7e, 0xe0, 0xf0, 0x7e}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pause with ctrl = %x, want %x", got, want)
	}
}

func TestSetLedsCommand(t *testing.T) {
	kbd, phy := newTestKeyboard()

	phy.DeliverReceived(0xed) // Set LEDs
	phy.Drain()
	phy.DeliverReceived(0x06) // NumLock|CapsLock -> led2ps2[6] = 3
	got := phy.Drain()
	if !reflect.DeepEqual(got, []byte{0xfa}) {
		t.Errorf("set-LEDs ack = %x, want [fa]", got)
	}
	caps, scroll, num := kbd.Leds()
	if !caps || scroll || !num {
		t.Errorf("Leds() = caps=%v scroll=%v num=%v, want caps=true scroll=false num=true", caps, scroll, num)
	}
}

func TestIdentifyCommand(t *testing.T) {
	kbd, phy := newTestKeyboard()
	_ = kbd
	phy.DeliverReceived(0xf2)
	want := []byte{0xfa, 0xab, 0x83}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("identify = %x, want %x", got, want)
	}
}

func TestEchoHasNoAck(t *testing.T) {
	kbd, phy := newTestKeyboard()
	_ = kbd
	phy.DeliverReceived(0xee)
	want := []byte{0xee}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("echo = %x, want %x", got, want)
	}
}

func TestResetCommand(t *testing.T) {
	kbd, phy := newTestKeyboard()
	_ = kbd
	phy.DeliverReceived(0xff)
	want := []byte{0xfa, 0xaa}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("reset = %x, want %x", got, want)
	}
}

func TestUnknownCommandStillAcks(t *testing.T) {
	kbd, phy := newTestKeyboard()
	_ = kbd
	phy.DeliverReceived(0x77)
	want := []byte{0xfa}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("unknown command = %x, want %x", got, want)
	}
}
