// Package ps2 implements a byte-level PS/2 device (slave) channel: an
// outbound byte queue, delivery of received bytes to a command handler,
// online-state tracking, the odd-parity helper of the PS/2 frame format,
// and the keyboard and mouse command-handling layered on top of it. The
// bit-level start/data/parity/stop clocking of the lines is not
// implemented here: received bytes arrive already framed through
// DeliverReceived, and queued bytes are taken out with Drain.
package ps2

import (
	"sync"

	"github.com/kbmbridge/hidcore/internal/clock"
)

// Lines abstracts the two bit-banged GPIOs a PS/2 channel drives,
// keeping the PHY host-testable without real hardware.
type Lines interface {
	Clock() bool
	Data() bool
	SetClock(bool)
	SetData(bool)
}

// onlineWindowMicros is how long a channel may go without successful
// activity before it is considered offline, per spec.
const onlineWindowMicros = 500_000

// Phy is one PS/2 slave channel (keyboard or mouse). It owns an outbound
// byte queue; the receive side delivers completed bytes to onReceive.
type Phy struct {
	mu sync.Mutex

	lines Lines

	queue []byte

	online     bool
	lastActive uint64

	onReceive func(byte, byte) // (byte, prevByte)
	prevByte  byte
}

// NewPhy constructs a channel bound to lines, delivering received bytes
// to onReceive(byte, prevByte).
func NewPhy(lines Lines, onReceive func(byte, byte)) *Phy {
	return &Phy{
		lines:      lines,
		onReceive:  onReceive,
		lastActive: clock.NowMicros(),
	}
}

// SetOnReceive rebinds the callback that DeliverReceived hands completed
// bytes to. Needed because the command layer (Keyboard or Mouse) is
// constructed from a Phy it doesn't exist yet to pass into NewPhy.
func (p *Phy) SetOnReceive(onReceive func(byte, byte)) {
	p.mu.Lock()
	p.onReceive = onReceive
	p.mu.Unlock()
}

// Send enqueues a byte for transmission to the host.
func (p *Phy) Send(b byte) {
	p.mu.Lock()
	p.queue = append(p.queue, b)
	p.mu.Unlock()
}

// QueueLen reports how many bytes are pending transmission. Exposed for
// tests that assert on exactly what was queued.
func (p *Phy) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Drain removes and returns every queued byte, in order.
func (p *Phy) Drain() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.queue
	p.queue = nil
	return out
}

// DeliverReceived feeds a fully-framed, parity-checked byte from the host
// into the command layer, as if it had just been bit-banged in by the PHY.
// Real hardware calls this from the receive FSM once a stop bit lands;
// tests and the host-simulated build call it directly.
func (p *Phy) DeliverReceived(b byte) {
	p.mu.Lock()
	p.markActive()
	prev := p.prevByte
	p.prevByte = b
	cb := p.onReceive
	p.mu.Unlock()
	if cb != nil {
		cb(b, prev)
	}
}

// NoteTransmitActivity marks the channel online after a successful
// device-to-host byte exchange.
func (p *Phy) NoteTransmitActivity() {
	p.mu.Lock()
	p.markActive()
	p.mu.Unlock()
}

func (p *Phy) markActive() {
	p.online = true
	p.lastActive = clock.NowMicros()
}

// Online reports whether the channel has seen activity within the last
// 500ms. A clock line held low (host inhibit) does not by itself make the
// channel offline.
func (p *Phy) Online() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.online {
		return false
	}
	if clock.TimedOut(p.lastActive, onlineWindowMicros) {
		p.online = false
		return false
	}
	if p.lines != nil && !p.lines.Clock() {
		// Inhibited: the host is present and holding the bus, so the
		// channel still counts as online until lastActive ages out.
		return true
	}
	return true
}

// ParityOdd computes the parity bit that makes the 9-bit (data+parity)
// group have an odd number of set bits, as the PS/2 frame format
// requires.
func ParityOdd(b byte) bool {
	p := false
	for b != 0 {
		p = !p
		b &= b - 1
	}
	return !p
}
