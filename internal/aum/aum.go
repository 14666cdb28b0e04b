// Package aum implements the optional AUM (USB hub power-switching
// board) proxy: it mirrors VBUS presence onto a second GPIO and exposes
// a host-settable USB-connected flag, both surfaced through status byte
// 3's CONNECTABLE/CONNECTED bits.
package aum

// Lines abstracts the three GPIOs an AUM board wires up, keeping the
// proxy host-testable without real hardware.
type Lines interface {
	// IsUsbPowered reports the AUM_IS_USB_POWERED_PIN input.
	IsUsbPowered() bool
	// SetUsbVbus drives AUM_SET_USB_VBUS_PIN.
	SetUsbVbus(bool)
	// SetUsbConnected drives AUM_SET_USB_CONNECTED_PIN.
	SetUsbConnected(bool)
}

// Proxy owns the AUM GPIO state machine: VBUS passthrough plus a
// host-controlled connected flag.
type Proxy struct {
	lines Lines

	lastVbus  bool
	connected bool
}

// New constructs a Proxy bound to lines and sets the connected flag
// high, matching aumInit's power-on default.
func New(lines Lines) *Proxy {
	p := &Proxy{lines: lines, connected: true}
	lines.SetUsbConnected(true)
	return p
}

// ProxyUsbVbus mirrors the VBUS input onto the VBUS output pin whenever
// it changes, avoiding a redundant write on every call the way
// aumProxyUsbVbus does.
func (p *Proxy) ProxyUsbVbus() {
	vbus := p.lines.IsUsbPowered()
	if vbus != p.lastVbus {
		p.lines.SetUsbVbus(vbus)
		p.lastVbus = vbus
	}
}

// SetUsbConnected drives the host-controlled connected flag, answering
// a SET_CONNECTED command.
func (p *Proxy) SetUsbConnected(connected bool) {
	p.connected = connected
	p.lines.SetUsbConnected(connected)
}

// IsUsbConnected reports the last connected flag set, for status byte 3.
func (p *Proxy) IsUsbConnected() bool {
	return p.connected
}
