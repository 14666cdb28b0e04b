package ps2

import "sync"

// Mouse is the PS/2 mouse channel's command layer: standard 3-byte
// streaming movement packets plus the usual reset/identify/enable
// command set. Supplements spec.md's PS2_MOUSE kind, which the spec
// enumerates as a legal kind but does not narrate a protocol for; see
// DESIGN.md.
type Mouse struct {
	phy *Phy

	mu         sync.Mutex
	streaming  bool
	buttons    byte // bit0=left, bit1=right, bit2=middle
	sampleRate byte
}

// NewMouse constructs a mouse command layer bound to a PHY channel.
func NewMouse(phy *Phy) *Mouse {
	m := &Mouse{phy: phy, sampleRate: 100}
	return m
}

// SendButtons updates the PS/2-tracked button state and, if streaming,
// emits a zero-motion packet reflecting the new buttons.
func (m *Mouse) SendButtons(leftSel, leftState, rightSel, rightState, midSel, midState bool) {
	m.mu.Lock()
	if leftSel {
		setBit(&m.buttons, 0, leftState)
	}
	if rightSel {
		setBit(&m.buttons, 1, rightState)
	}
	if midSel {
		setBit(&m.buttons, 2, midState)
	}
	m.mu.Unlock()
	m.sendMovementPacket(0, 0)
}

// SendRelative emits a 3-byte relative-motion packet while streaming.
func (m *Mouse) SendRelative(dx, dy int8) {
	m.sendMovementPacket(dx, dy)
}

func setBit(b *byte, bit uint, v bool) {
	if v {
		*b |= 1 << bit
	} else {
		*b &^= 1 << bit
	}
}

func (m *Mouse) sendMovementPacket(dx, dy int8) {
	m.mu.Lock()
	streaming := m.streaming
	status := m.buttons & 0x07
	m.mu.Unlock()
	if !streaming {
		return
	}
	if dx < 0 {
		status |= 1 << 4
	}
	if dy < 0 {
		status |= 1 << 5
	}
	status |= 1 << 3 // bit 3 always set per the PS/2 mouse packet format
	m.phy.Send(status)
	m.phy.Send(byte(dx))
	m.phy.Send(byte(dy))
}

// Clear releases all tracked buttons, matching the dispatcher's CLEAR_HID
// ordering barrier. Streaming mode is left as it was.
func (m *Mouse) Clear() {
	m.mu.Lock()
	m.buttons = 0
	m.mu.Unlock()
}

// Receive handles one host-to-device command byte.
func (m *Mouse) Receive(b byte, prev byte) {
	switch prev {
	case 0xf3: // Set sample rate
		m.mu.Lock()
		m.sampleRate = b
		m.mu.Unlock()
		m.phy.Send(0xfa)
		return
	default:
		switch b {
		case 0xff: // Reset
			m.mu.Lock()
			m.streaming = false
			m.buttons = 0
			m.sampleRate = 100
			m.mu.Unlock()
			m.phy.Send(0xfa)
			m.phy.Send(0xaa)
			m.phy.Send(0x00)
			return
		case 0xf2: // Get device ID
			m.phy.Send(0xfa)
			m.phy.Send(0x00)
			return
		case 0xf4: // Enable streaming
			m.mu.Lock()
			m.streaming = true
			m.mu.Unlock()
		case 0xf5: // Disable streaming
			m.mu.Lock()
			m.streaming = false
			m.mu.Unlock()
		case 0xf6: // Set defaults
			m.mu.Lock()
			m.streaming = false
			m.sampleRate = 100
			m.mu.Unlock()
		}
	}
	m.phy.Send(0xfa)
}
