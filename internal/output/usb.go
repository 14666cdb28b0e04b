package output

import (
	"context"
	"sync"

	"github.com/ardnew/softusb/device/class/hid"
	"github.com/kbmbridge/hidcore/internal/keymap"
)

// usbSubmitter is the slice of *hid.HID every USB output variant needs:
// enough to push a raw input report to the host. Narrowed to an
// interface so tests can substitute a recording fake.
type usbSubmitter interface {
	SendReport(ctx context.Context, data []byte) error
}

// UsbKeyboard drives a USB HID boot-protocol keyboard endpoint.
type UsbKeyboard struct {
	hid usbSubmitter

	mu      sync.Mutex
	report  hid.KeyboardReport
	offline bool
	leds    Leds
}

// NewUsbKeyboard wraps an already-configured HID class driver.
func NewUsbKeyboard(h usbSubmitter) *UsbKeyboard {
	return &UsbKeyboard{hid: h, offline: true}
}

func (k *UsbKeyboard) Begin() error {
	k.mu.Lock()
	k.offline = false
	k.mu.Unlock()
	return nil
}

func (k *UsbKeyboard) Clear() {
	k.mu.Lock()
	k.report.Clear()
	k.mu.Unlock()
	k.flush()
}

func (k *UsbKeyboard) SendKey(code byte, pressed bool) {
	if code >= 0xE0 && code <= 0xE7 {
		k.mu.Lock()
		bit := uint8(1) << (code - 0xE0)
		if pressed {
			k.report.Modifiers |= bit
		} else {
			k.report.Modifiers &^= bit
		}
		k.mu.Unlock()
		k.flush()
		return
	}
	usage, ok := keymap.USBUsage(code)
	if !ok {
		return
	}
	k.mu.Lock()
	if pressed {
		k.report.SetKey(usage)
	} else {
		k.report.ClearKey(usage)
	}
	k.mu.Unlock()
	k.flush()
}

func (k *UsbKeyboard) flush() {
	k.mu.Lock()
	report := k.report
	k.mu.Unlock()
	_ = k.hid.SendReport(context.Background(), reportBytes(&report))
}

func reportBytes(r *hid.KeyboardReport) []byte {
	buf := make([]byte, hid.KeyboardReportSize)
	r.MarshalTo(buf)
	return buf
}

// Periodic is a no-op: the USB stack drives its own transfer schedule.
func (k *UsbKeyboard) Periodic() {}

func (k *UsbKeyboard) IsOffline() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.offline
}

// Leds reports the indicator state last delivered by the host's output
// report. Wire it via SetLeds from the transport's output-report
// callback.
func (k *UsbKeyboard) Leds() Leds {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.leds
}

// SetLeds updates the cached LED state from a host output report byte
// (bit0=NumLock, bit1=CapsLock, bit2=ScrollLock, per the USB HID boot
// keyboard output report).
func (k *UsbKeyboard) SetLeds(report byte) {
	k.mu.Lock()
	k.leds = Leds{Num: report&0x01 != 0, Caps: report&0x02 != 0, Scroll: report&0x04 != 0}
	k.mu.Unlock()
}

func (k *UsbKeyboard) Type() Kind { return USBKeyboard }

// usbMouseCommon factors the button/report bookkeeping shared by the
// three USB mouse variants.
type usbMouseCommon struct {
	hid usbSubmitter

	mu      sync.Mutex
	offline bool
	buttons byte // bit0=left, bit1=right, bit2=middle, bit3=up, bit4=down
}

func (m *usbMouseCommon) begin() error {
	m.mu.Lock()
	m.offline = false
	m.mu.Unlock()
	return nil
}

func (m *usbMouseCommon) isOffline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offline
}

func (m *usbMouseCommon) updateButtons(leftSel, leftState, rightSel, rightState, midSel, midState, upSel, upState, downSel, downState bool) byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	setBit(&m.buttons, 0, leftSel, leftState)
	setBit(&m.buttons, 1, rightSel, rightState)
	setBit(&m.buttons, 2, midSel, midState)
	setBit(&m.buttons, 3, upSel, upState)
	setBit(&m.buttons, 4, downSel, downState)
	return m.buttons
}

func setBit(b *byte, bit uint, sel, state bool) {
	if !sel {
		return
	}
	if state {
		*b |= 1 << bit
	} else {
		*b &^= 1 << bit
	}
}

func (m *usbMouseCommon) clear() {
	m.mu.Lock()
	m.buttons = 0
	m.mu.Unlock()
}

// UsbMouseRelative drives a USB HID boot-protocol relative mouse.
type UsbMouseRelative struct {
	usbMouseCommon
}

func NewUsbMouseRelative(h usbSubmitter) *UsbMouseRelative {
	return &UsbMouseRelative{usbMouseCommon{hid: h, offline: true}}
}

func (m *UsbMouseRelative) Begin() error   { return m.begin() }
func (m *UsbMouseRelative) Clear()         { m.clear() }
func (m *UsbMouseRelative) IsOffline() bool { return m.isOffline() }
func (m *UsbMouseRelative) Type() Kind      { return USBMouseRelative }

func (m *UsbMouseRelative) SendButtons(leftSel, leftState, rightSel, rightState, midSel, midState, upSel, upState, downSel, downState bool) {
	buttons := m.updateButtons(leftSel, leftState, rightSel, rightState, midSel, midState, upSel, upState, downSel, downState)
	report := hid.MouseReport{Buttons: buttons}
	buf := make([]byte, hid.MouseReportSize)
	report.MarshalTo(buf)
	_ = m.hid.SendReport(context.Background(), buf)
}

func (m *UsbMouseRelative) SendMove(x, y int16) {}

func (m *UsbMouseRelative) SendRelative(dx, dy int8) {
	m.mu.Lock()
	buttons := m.buttons
	m.mu.Unlock()
	report := hid.MouseReport{Buttons: buttons, X: dx, Y: dy}
	buf := make([]byte, hid.MouseReportSize)
	report.MarshalTo(buf)
	_ = m.hid.SendReport(context.Background(), buf)
}

func (m *UsbMouseRelative) SendWheel(dy int8) {
	m.mu.Lock()
	buttons := m.buttons
	m.mu.Unlock()
	report := hid.MouseReport{Buttons: buttons, Wheel: dy}
	buf := make([]byte, hid.MouseReportSize)
	report.MarshalTo(buf)
	_ = m.hid.SendReport(context.Background(), buf)
}

// absoluteReportSize is the report length of the supplemented absolute
// mouse report: buttons, X (16-bit LE), Y (16-bit LE), wheel.
const absoluteReportSize = 6

// UsbMouseAbsolute drives a USB HID absolute-positioning mouse (a
// tablet-style digitizer report), matching a KVM's need to move the
// pointer to an exact screen coordinate rather than relative deltas.
// The ardnew-softusb example ships only the boot-protocol relative
// mouse report; the report layout here is hand-rolled but sent through
// the same hid.HID.SendReport transport, see DESIGN.md. No report
// descriptor is defined in this package.
type UsbMouseAbsolute struct {
	usbMouseCommon
	win98 bool
}

func NewUsbMouseAbsolute(h usbSubmitter) *UsbMouseAbsolute {
	return &UsbMouseAbsolute{usbMouseCommon: usbMouseCommon{hid: h, offline: true}}
}

// NewUsbMouseAbsoluteWin98 is the Windows 98-compatible absolute mouse
// variant: identical wire report, differing from NewUsbMouseAbsolute only
// in the Kind it reports. The USB descriptor is whatever h was configured
// with; this package does not select one.
func NewUsbMouseAbsoluteWin98(h usbSubmitter) *UsbMouseAbsolute {
	return &UsbMouseAbsolute{usbMouseCommon: usbMouseCommon{hid: h, offline: true}, win98: true}
}

func (m *UsbMouseAbsolute) Begin() error   { return m.begin() }
func (m *UsbMouseAbsolute) Clear()         { m.clear() }
func (m *UsbMouseAbsolute) IsOffline() bool { return m.isOffline() }

func (m *UsbMouseAbsolute) Type() Kind {
	if m.win98 {
		return USBMouseAbsoluteWin98
	}
	return USBMouseAbsolute
}

func (m *UsbMouseAbsolute) SendButtons(leftSel, leftState, rightSel, rightState, midSel, midState, upSel, upState, downSel, downState bool) {
	buttons := m.updateButtons(leftSel, leftState, rightSel, rightState, midSel, midState, upSel, upState, downSel, downState)
	m.send(buttons, 0, 0, 0)
}

func (m *UsbMouseAbsolute) SendMove(x, y int16) {
	m.mu.Lock()
	buttons := m.buttons
	m.mu.Unlock()
	m.send(buttons, x, y, 0)
}

func (m *UsbMouseAbsolute) SendRelative(dx, dy int8) {}

func (m *UsbMouseAbsolute) SendWheel(dy int8) {
	m.mu.Lock()
	buttons := m.buttons
	m.mu.Unlock()
	m.send(buttons, 0, 0, dy)
}

func (m *UsbMouseAbsolute) send(buttons byte, x, y int16, wheel int8) {
	buf := make([]byte, absoluteReportSize)
	buf[0] = buttons
	buf[1] = byte(uint16(x))
	buf[2] = byte(uint16(x) >> 8)
	buf[3] = byte(uint16(y))
	buf[4] = byte(uint16(y) >> 8)
	buf[5] = byte(wheel)
	_ = m.hid.SendReport(context.Background(), buf)
}
