package aum

import "testing"

type fakeLines struct {
	powered   bool
	vbus      bool
	connected bool
}

func (f *fakeLines) IsUsbPowered() bool     { return f.powered }
func (f *fakeLines) SetUsbVbus(v bool)      { f.vbus = v }
func (f *fakeLines) SetUsbConnected(v bool) { f.connected = v }

func TestNewSetsConnectedHigh(t *testing.T) {
	lines := &fakeLines{}
	New(lines)
	if !lines.connected {
		t.Errorf("connected pin after New = false, want true")
	}
}

func TestProxyUsbVbusMirrorsOnChange(t *testing.T) {
	lines := &fakeLines{powered: true}
	p := New(lines)
	p.ProxyUsbVbus()
	if !lines.vbus {
		t.Errorf("vbus pin = false after VBUS present, want true")
	}

	lines.powered = false
	p.ProxyUsbVbus()
	if lines.vbus {
		t.Errorf("vbus pin = true after VBUS removed, want false")
	}
}

func TestSetUsbConnected(t *testing.T) {
	lines := &fakeLines{}
	p := New(lines)
	p.SetUsbConnected(false)
	if lines.connected {
		t.Errorf("connected pin = true after SetUsbConnected(false), want false")
	}
	if p.IsUsbConnected() {
		t.Errorf("IsUsbConnected() = true, want false")
	}
}
