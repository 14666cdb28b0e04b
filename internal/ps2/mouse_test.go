package ps2

import (
	"reflect"
	"testing"
)

func newTestMouse() (*Mouse, *Phy) {
	phy := NewPhy(nil, nil)
	m := NewMouse(phy)
	phy.onReceive = m.Receive
	return m, phy
}

func TestMouseButtonsNoPacketUntilStreaming(t *testing.T) {
	m, phy := newTestMouse()
	m.SendButtons(true, true, false, false, false, false)
	if got := phy.Drain(); len(got) != 0 {
		t.Errorf("buttons while not streaming produced %x, want none", got)
	}
}

func TestMouseEnableAndSendButtons(t *testing.T) {
	m, phy := newTestMouse()
	phy.DeliverReceived(0xf4) // enable streaming
	phy.Drain()

	m.SendButtons(true, true, false, false, false, false)
	want := []byte{0x09, 0x00, 0x00} // bit3 always set | bit0 left
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("left-button packet = %x, want %x", got, want)
	}
}

func TestMouseRelativeMotionSignBits(t *testing.T) {
	m, phy := newTestMouse()
	phy.DeliverReceived(0xf4)
	phy.Drain()

	m.SendRelative(-5, 3)
	got := phy.Drain()
	if len(got) != 3 {
		t.Fatalf("motion packet = %x, want 3 bytes", got)
	}
	if got[0]&(1<<4) == 0 {
		t.Errorf("status byte %#x missing negative-X sign bit", got[0])
	}
	if got[0]&(1<<5) != 0 {
		t.Errorf("status byte %#x should not set negative-Y sign bit", got[0])
	}
	if int8(got[1]) != -5 || int8(got[2]) != 3 {
		t.Errorf("motion bytes = %d,%d want -5,3", int8(got[1]), int8(got[2]))
	}
}

func TestMouseResetCommand(t *testing.T) {
	m, phy := newTestMouse()
	_ = m
	phy.DeliverReceived(0xff)
	want := []byte{0xfa, 0xaa, 0x00}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("reset = %x, want %x", got, want)
	}
}

func TestMouseGetDeviceID(t *testing.T) {
	m, phy := newTestMouse()
	_ = m
	phy.DeliverReceived(0xf2)
	want := []byte{0xfa, 0x00}
	if got := phy.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("get device id = %x, want %x", got, want)
	}
}

func TestMouseSetSampleRate(t *testing.T) {
	m, phy := newTestMouse()
	_ = m
	phy.DeliverReceived(0xf3) // set sample rate
	phy.Drain()
	phy.DeliverReceived(200)
	if got := phy.Drain(); !reflect.DeepEqual(got, []byte{0xfa}) {
		t.Errorf("set sample rate ack = %x, want [fa]", got)
	}
}

func TestMouseClearResetsButtons(t *testing.T) {
	m, phy := newTestMouse()
	phy.DeliverReceived(0xf4)
	phy.Drain()
	m.SendButtons(true, true, false, false, false, false)
	phy.Drain()

	m.Clear()
	m.SendRelative(0, 0)
	got := phy.Drain()
	if got[0]&0x07 != 0 {
		t.Errorf("status byte %#x still has buttons set after Clear", got[0])
	}
}
