package output

import (
	"testing"
)

func TestUsbKeyboardModifierBit(t *testing.T) {
	sub := &fakeSubmitter{}
	kbd := NewUsbKeyboard(sub)
	kbd.Begin()

	kbd.SendKey(0xE1, true) // LShift
	if len(sub.sent) == 0 {
		t.Fatalf("expected a report")
	}
	last := sub.sent[len(sub.sent)-1]
	if last[0] != 0x02 {
		t.Errorf("modifier byte = %#x, want %#x", last[0], 0x02)
	}
}

func TestUsbKeyboardKeySlotsAndClear(t *testing.T) {
	sub := &fakeSubmitter{}
	kbd := NewUsbKeyboard(sub)
	kbd.Begin()

	kbd.SendKey(0x04, true) // A
	kbd.SendKey(0x05, true) // B
	last := sub.sent[len(sub.sent)-1]
	if last[2] != 0x04 || last[3] != 0x05 {
		t.Errorf("key slots = %v, want [0x04 0x05 ...]", last[2:8])
	}

	kbd.Clear()
	last = sub.sent[len(sub.sent)-1]
	for i := 2; i < 8; i++ {
		if last[i] != 0 {
			t.Errorf("Clear() left key slot %d = %#x, want 0", i, last[i])
		}
	}
}

func TestUsbKeyboardDropsUndefinedUsage(t *testing.T) {
	sub := &fakeSubmitter{}
	kbd := NewUsbKeyboard(sub)
	kbd.Begin()

	kbd.SendKey(0, true)    // no key
	kbd.SendKey(0x03, true) // ErrorUndefined
	if len(sub.sent) != 0 {
		t.Fatalf("SendKey(0 or 0x03) sent %d reports, want 0", len(sub.sent))
	}

	kbd.SendKey(0x04, true) // A, a real usage
	if len(sub.sent) == 0 {
		t.Fatalf("SendKey(0x04) sent no report")
	}
	last := sub.sent[len(sub.sent)-1]
	if last[2] != 0x04 {
		t.Errorf("key slot 0 = %#x, want 0x04", last[2])
	}
}

func TestUsbKeyboardLeds(t *testing.T) {
	sub := &fakeSubmitter{}
	kbd := NewUsbKeyboard(sub)
	kbd.SetLeds(0x07) // Num | Caps | Scroll
	leds := kbd.Leds()
	if !leds.Num || !leds.Caps || !leds.Scroll {
		t.Errorf("Leds() = %+v, want all set", leds)
	}
}

func TestUsbKeyboardOfflineBeforeBegin(t *testing.T) {
	sub := &fakeSubmitter{}
	kbd := NewUsbKeyboard(sub)
	if !kbd.IsOffline() {
		t.Errorf("IsOffline() before Begin = false, want true")
	}
	kbd.Begin()
	if kbd.IsOffline() {
		t.Errorf("IsOffline() after Begin = true, want false")
	}
}

func TestUsbMouseRelativeSendsSignedDeltas(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewUsbMouseRelative(sub)
	m.Begin()
	m.SendRelative(-10, 5)
	last := sub.sent[len(sub.sent)-1]
	if int8(last[1]) != -10 || int8(last[2]) != 5 {
		t.Errorf("relative report = %v, want [-10 5]", []int8{int8(last[1]), int8(last[2])})
	}
}

func TestUsbMouseAbsoluteSendsMove(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewUsbMouseAbsolute(sub)
	m.Begin()
	m.SendMove(0x1234, 0x5678)
	last := sub.sent[len(sub.sent)-1]
	x := uint16(last[1]) | uint16(last[2])<<8
	y := uint16(last[3]) | uint16(last[4])<<8
	if x != 0x1234 || y != 0x5678 {
		t.Errorf("absolute move = %#x,%#x, want 0x1234,0x5678", x, y)
	}
}

func TestUsbMouseAbsoluteWin98Type(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewUsbMouseAbsoluteWin98(sub)
	if m.Type() != USBMouseAbsoluteWin98 {
		t.Errorf("Type() = %v, want USBMouseAbsoluteWin98", m.Type())
	}
}

func TestUsbMouseButtonsSelectMask(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewUsbMouseRelative(sub)
	m.Begin()
	m.SendButtons(true, true, false, false, false, false, false, false, false, false)
	m.SendRelative(0, 0)
	last := sub.sent[len(sub.sent)-1]
	if last[0]&0x01 == 0 {
		t.Errorf("left button not set in report %#x", last[0])
	}

	// Right button unselected update must not clobber left.
	m.SendButtons(false, false, false, false, false, false, false, false, false, false)
	m.SendRelative(0, 0)
	last = sub.sent[len(sub.sent)-1]
	if last[0]&0x01 == 0 {
		t.Errorf("unselected update cleared left button: %#x", last[0])
	}
}
