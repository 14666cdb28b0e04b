// Package serial implements the host-link framer for the CMD_SERIAL
// transport: byte-at-a-time accumulation into a fixed 8-byte buffer with
// a 100ms inter-byte idle timeout, plus the real serial port opened
// through jacobsa/go-serial.
package serial

import (
	"io"

	goserial "github.com/jacobsa/go-serial/serial"
	"github.com/kbmbridge/hidcore/internal/clock"
	"github.com/kbmbridge/hidcore/internal/proto"
)

// IdleTimeoutMicros is CMD_SERIAL_TIMEOUT from the firmware: how long
// the framer waits for the next byte before giving up on a partial
// frame and answering TIMEOUT_ERROR.
const IdleTimeoutMicros = 100_000

// Open opens the named serial device at baud, 8 data bits, 1 stop bit,
// returning a port satisfying io.ReadWriteCloser.
func Open(portName string, baud uint) (io.ReadWriteCloser, error) {
	return goserial.Open(goserial.OpenOptions{
		PortName:        portName,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	})
}

// Framer accumulates bytes read one at a time from the link into
// complete 8-byte frames. It intentionally does not gate on the leading
// magic byte while accumulating — see StrictMagic — matching the
// firmware's own disabled check (kvmd/kvmd#80).
type Framer struct {
	buf         [proto.FrameSize]byte
	index       int
	lastByte    uint64
	StrictMagic bool
}

// NewFramer constructs an empty framer.
func NewFramer() *Framer {
	return &Framer{}
}

// Feed processes one byte read from the link. It returns a complete
// 8-byte frame once one is assembled, or timedOut=true if the
// inter-byte idle window elapsed with a partial frame pending (the byte
// passed in that call is discarded) — in either case the framer has
// already reset itself, so the next Feed call starts a fresh frame. Feed
// returns (nil, false) while a frame is still being accumulated.
func (f *Framer) Feed(b byte) (frame []byte, timedOut bool) {
	if f.index == 0 {
		f.lastByte = clock.NowMicros()
	} else if clock.TimedOut(f.lastByte, IdleTimeoutMicros) {
		f.index = 0
		return nil, true
	}

	if f.StrictMagic && f.index == 0 && b != proto.Magic {
		return nil, false
	}

	f.buf[f.index] = b
	f.lastByte = clock.NowMicros()
	f.index++
	if f.index == proto.FrameSize {
		out := append([]byte{}, f.buf[:]...)
		f.index = 0
		return out, false
	}
	return nil, false
}

// PollTimeout reports whether a partial frame has gone idle past the
// timeout without a new byte having arrived to trigger Feed's own
// check. The caller's poll loop should call this when the link has no
// byte ready.
func (f *Framer) PollTimeout() bool {
	if f.index == 0 {
		return false
	}
	if clock.TimedOut(f.lastByte, IdleTimeoutMicros) {
		f.index = 0
		return true
	}
	return false
}
