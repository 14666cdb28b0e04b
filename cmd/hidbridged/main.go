// Command hidbridged is the host-simulated entrypoint for hidcore: it
// wires configuration, the persisted outputs record, the output driver
// factory, the host-link transport, and the Device aggregate together
// and runs the super-loop, following v3/tconsole/tconsole.go's main()
// shape (flag.Parse, fatal setup errors, signal handling, then Run).
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	softusbhid "github.com/ardnew/softusb/device/class/hid"
	"github.com/kbmbridge/hidcore/internal/aum"
	"github.com/kbmbridge/hidcore/internal/config"
	"github.com/kbmbridge/hidcore/internal/device"
	"github.com/kbmbridge/hidcore/internal/nvstore"
	"github.com/kbmbridge/hidcore/internal/output"
	"github.com/kbmbridge/hidcore/internal/ps2"
	"github.com/kbmbridge/hidcore/internal/transport/serial"
)

func main() {
	log.SetFlags(0)
	cfg := config.Parse()

	store, err := openStore(cfg.NVPath)
	if err != nil {
		log.Fatalf("hidbridged: opening NV store: %v", err)
	}

	outputs1, ok := store.Read()
	if !ok {
		outputs1 = output.KeyboardOutputs1Bits(cfg.DefaultKeyboard) | output.MouseOutputs1Bits(cfg.DefaultMouse)
		if err := store.Write(0xff, outputs1, true); err != nil {
			log.Fatalf("hidbridged: writing first-boot outputs record: %v", err)
		}
	}

	kbdKind := output.KeyboardKindFromOutputs1(outputs1)
	mouseKind := output.MouseKindFromOutputs1(outputs1)

	kbd := buildKeyboard(kbdKind)
	mouse := buildMouse(mouseKind)

	if err := kbd.Begin(); err != nil {
		log.Fatalf("hidbridged: keyboard Begin: %v", err)
	}
	if err := mouse.Begin(); err != nil {
		log.Fatalf("hidbridged: mouse Begin: %v", err)
	}

	var proxy *aum.Proxy
	if cfg.HasAum {
		proxy = aum.New(noopLines{})
	}

	dev := device.New(kbd, mouse, store, proxy, cfg.Capabilities())

	killed := make(chan os.Signal, 1)
	signal.Notify(killed, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-killed
		log.Printf("hidbridged: stopping on signal %q", sig)
		os.Exit(0)
	}()

	switch cfg.Transport {
	case config.TransportSerial:
		runSerial(dev, cfg)
	case config.TransportSPI:
		runSPI(dev)
	default:
		log.Fatalf("hidbridged: unknown transport %q", cfg.Transport)
	}
}

func openStore(path string) (*nvstore.Store, error) {
	dev, err := nvstore.NewFileBlockDevice(path)
	if err != nil {
		return nil, err
	}
	return nvstore.New(dev), nil
}

func runSerial(dev *device.Device, cfg config.Config) {
	port, err := serial.Open(cfg.Wire, cfg.Baud)
	if err != nil {
		log.Fatalf("hidbridged: serial.Open: %v", err)
	}
	defer port.Close()

	done := make(chan struct{})
	dev.RunSerial(port, done)
}

func runSPI(dev *device.Device) {
	// The host build has no real SPI peripheral to interrupt on; without
	// one, there is nothing to clock bytes in, so SPI transport only
	// makes sense cross-compiled for a board with an actual SPI slave
	// driver wired to RunSPI/SpiPump. See DESIGN.md.
	log.Fatalf("hidbridged: spi transport requires a board-specific build; this host binary has no SPI peripheral")
}

// buildKeyboard constructs the concrete output.Keyboard kind selects.
// The USB and PS/2 branches are kept as separate literal
// output.BuiltKeyboard calls, rather than computed via a shared helper
// that might return a typed-nil *softusbhid.HID or *ps2.Keyboard, so
// that output.BuiltKeyboard's own nil checks see a genuine nil interface
// for whichever backing driver kind doesn't need.
func buildKeyboard(kind output.Kind) output.Keyboard {
	switch kind {
	case output.USBKeyboard:
		usb := softusbhid.New(softusbhid.KeyboardReportDescriptor)
		return output.BuiltKeyboard(kind, usb, nil, nil)
	case output.PS2Keyboard:
		phy := ps2PhyFor(kind)
		kbd := ps2.NewKeyboard(phy)
		phy.SetOnReceive(kbd.Receive)
		return output.BuiltKeyboard(kind, nil, kbd, phy)
	default:
		return output.BuiltKeyboard(kind, nil, nil, nil)
	}
}

// buildMouse constructs the concrete output.Mouse kind selects.
func buildMouse(kind output.Kind) output.Mouse {
	switch kind {
	case output.USBMouseAbsolute, output.USBMouseAbsoluteWin98, output.USBMouseRelative:
		usb := softusbhid.New(softusbhid.MouseReportDescriptor)
		return output.BuiltMouse(kind, usb, nil, nil)
	case output.PS2Mouse:
		phy := ps2PhyFor(kind)
		mouse := ps2.NewMouse(phy)
		phy.SetOnReceive(mouse.Receive)
		return output.BuiltMouse(kind, nil, mouse, phy)
	default:
		return output.BuiltMouse(kind, nil, nil, nil)
	}
}

var sharedPs2Phy *ps2.Phy

// ps2PhyFor returns the single shared PS/2 PHY channel this host build
// constructs, since hidcore owns at most one active PS/2 keyboard or
// mouse output at a time. Real hardware wires the keyboard and mouse
// channels to separate GPIO pairs; that wiring is board-specific and out
// of scope here.
func ps2PhyFor(kind output.Kind) *ps2.Phy {
	if sharedPs2Phy == nil {
		sharedPs2Phy = ps2.NewPhy(noopLines{}, nil)
	}
	return sharedPs2Phy
}

// noopLines satisfies both ps2.Lines and aum.Lines with inert GPIO
// state, since this host build drives no real hardware lines.
type noopLines struct{}

func (noopLines) Clock() bool          { return true }
func (noopLines) Data() bool           { return true }
func (noopLines) SetClock(bool)        {}
func (noopLines) SetData(bool)         {}
func (noopLines) IsUsbPowered() bool   { return false }
func (noopLines) SetUsbVbus(bool)      {}
func (noopLines) SetUsbConnected(bool) {}
