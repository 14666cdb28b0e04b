package device

import (
	"io"
	"time"

	"github.com/kbmbridge/hidcore/internal/transport/serial"
	"github.com/kbmbridge/hidcore/internal/transport/spi"
	"github.com/kbmbridge/hidcore/internal/xlog"
)

// pollInterval is how often the serial super-loop re-checks for an idle
// timeout when no byte has arrived, standing in for the firmware's
// free-running loop() iterating as fast as the MCU can.
const pollInterval = 5 * time.Millisecond

// RunSerial drives the device off a serial-framed link until port is
// closed or ctx-equivalent stop is requested via closing done. It mirrors
// v3/tconsole's pattern of a dedicated reader goroutine feeding a
// channel, with the main loop doing the actual dispatch and write.
func (d *Device) RunSerial(port io.ReadWriter, done <-chan struct{}) {
	fromLink := make(chan byte, 1024)
	readErr := make(chan error, 1)

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := port.Read(buf)
			if n == 1 {
				fromLink <- buf[0]
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	framer := serial.NewFramer()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case err := <-readErr:
			xlog.Logf("RunSerial: read error: %v", err)
			return
		case b := <-fromLink:
			d.Periodic()
			frame, timedOut := framer.Feed(b)
			switch {
			case frame != nil:
				if _, err := port.Write(d.Handle(frame)); err != nil {
					xlog.Logf("RunSerial: write error: %v", err)
					return
				}
			case timedOut:
				if _, err := port.Write(d.TimedOut()); err != nil {
					xlog.Logf("RunSerial: write error: %v", err)
					return
				}
			}
		case <-ticker.C:
			d.Periodic()
			if framer.PollTimeout() {
				if _, err := port.Write(d.TimedOut()); err != nil {
					xlog.Logf("RunSerial: write error: %v", err)
					return
				}
			}
		}
	}
}

// SpiPump is the bridge a real SPI peripheral interrupt (or a simulated
// one) drives: it plays one clocked-in byte through the SPI framer,
// answering the prior request (if any) and dispatching the new one once
// it is complete. It is the Go counterpart of ISR(SPI_STC_vect) paired
// with the main loop's `if (spiReady()) _sendResponse(_handleRequest(...))`
// check.
func (d *Device) SpiPump(framer *spi.Framer, in byte) byte {
	out := framer.PumpByte(in)
	if framer.Ready() {
		framer.Write(d.Handle(framer.Get()))
	}
	return out
}

// RunSPI drives the device off a SPI framer whose bytes arrive one at a
// time from nextIn, which should block until the next byte is clocked in
// (or return ok=false to stop the loop).
func (d *Device) RunSPI(framer *spi.Framer, nextIn func() (byte, bool)) {
	for {
		d.Periodic()
		in, ok := nextIn()
		if !ok {
			return
		}
		d.SpiPump(framer, in)
	}
}
