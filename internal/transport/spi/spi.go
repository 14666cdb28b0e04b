// Package spi implements the host-link framer for the CMD_SPI transport:
// a slave-side 8-byte in/out buffer pair with a sentinel-first-byte
// direction latch, standing in for the ISR-driven SPDR exchange the
// firmware uses.
package spi

import "sync"

// FrameSize is the fixed length of a SPI frame, matching the wire
// protocol's 8-byte request/response size.
const FrameSize = 8

// Framer models the firmware's _spi_in/_spi_out pair. PumpByte stands in
// for the SPI_STC_vect ISR: call it once per byte the master clocks in,
// with whatever byte the hardware's shift register currently holds; it
// returns the byte that should be loaded for the next exchange.
//
// Guarded by a mutex rather than an interrupt-disable section, since Go
// has no ISR-disable primitive; see DESIGN.md.
type Framer struct {
	mu sync.Mutex

	in      [FrameSize]byte
	inIndex int

	out      [FrameSize]byte
	outIndex int

	receiving bool
}

// NewFramer constructs an idle framer.
func NewFramer() *Framer {
	return &Framer{}
}

// PumpByte processes one clocked-in byte and returns the byte to shift
// out on the next exchange.
func (f *Framer) PumpByte(in byte) byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.out[0] != 0 && f.outIndex < FrameSize {
		b := f.out[f.outIndex]
		f.outIndex++
		if f.outIndex == FrameSize {
			f.outIndex = 0
			f.inIndex = 0
			f.out[0] = 0
			f.receiving = false
		}
		return b
	}

	if !f.receiving && in != 0 {
		f.receiving = true
	}
	if f.receiving && f.inIndex < FrameSize {
		f.in[f.inIndex] = in
		f.inIndex++
	}
	if f.inIndex == FrameSize {
		f.receiving = false
	}
	return 0
}

// Ready reports whether a full request frame has been received and no
// response write is still draining out.
func (f *Framer) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out[0] == 0 && f.inIndex == FrameSize
}

// Get returns a snapshot of the received frame.
func (f *Framer) Get() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte{}, f.in[:]...)
}

// Write arms the outgoing frame, re-enabling receive mode once it has
// fully drained.
func (f *Framer) Write(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := FrameSize - 1; i >= 0; i-- {
		f.out[i] = data[i]
	}
}
