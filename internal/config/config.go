// Package config holds hidcore's flag-based startup configuration,
// following every tfr9 entrypoint's style of plain package-level flags
// rather than a config-file framework.
package config

import (
	"flag"

	"github.com/kbmbridge/hidcore/internal/output"
	"github.com/kbmbridge/hidcore/internal/transport/serial"
)

// Transport names the host-link framing this build listens on.
type Transport string

const (
	TransportSerial Transport = "serial"
	TransportSPI    Transport = "spi"
)

// Config is the parsed set of startup flags.
type Config struct {
	Transport Transport

	Wire             string
	Baud             uint
	SerialTimeoutMus uint

	NVPath string

	DefaultKeyboard output.Kind
	DefaultMouse    output.Kind

	HasUSB      bool
	HasUSBWin98 bool
	HasPS2      bool

	HasAum bool
}

var (
	transport     = flag.String("transport", "serial", "host-link transport: serial or spi")
	wire          = flag.String("wire", "/dev/ttyACM0", "serial device connected to the host")
	baud          = flag.Uint("baud", 115200, "serial device baud rate")
	serialTimeout = flag.Uint("serial-timeout-us", uint(serial.IdleTimeoutMicros), "inter-byte idle timeout, in microseconds, recorded in Config.SerialTimeoutMus; the serial framer itself always uses serial.IdleTimeoutMicros")
	nvPath        = flag.String("nv", "hidcore.nv", "backing file for the persisted outputs-selection record")

	defaultKeyboard = flag.String("default-keyboard", "usb", "keyboard kind to select on first boot: usb, ps2, or dummy")
	defaultMouse    = flag.String("default-mouse", "usb-relative", "mouse kind to select on first boot: usb-absolute, usb-absolute-win98, usb-relative, ps2, or dummy")

	hasUSB      = flag.Bool("has-usb", true, "this build is compiled with USB output support")
	hasUSBWin98 = flag.Bool("has-usb-win98", false, "this build is compiled with the Windows 98 USB absolute-mouse report")
	hasPS2      = flag.Bool("has-ps2", true, "this build is compiled with PS/2 output support")

	hasAum = flag.Bool("aum", false, "this build drives an AUM USB-power-switching board")
)

// Parse parses the command-line flags into a Config. Call flag.Parse
// exactly once before or via this function; Parse calls it if it has not
// already run.
func Parse() Config {
	if !flag.Parsed() {
		flag.Parse()
	}
	return Config{
		Transport:       Transport(*transport),
		Wire:             *wire,
		Baud:             *baud,
		SerialTimeoutMus: *serialTimeout,
		NVPath:           *nvPath,
		DefaultKeyboard: parseKeyboardKind(*defaultKeyboard),
		DefaultMouse:    parseMouseKind(*defaultMouse),
		HasUSB:          *hasUSB,
		HasUSBWin98:     *hasUSBWin98,
		HasPS2:          *hasPS2,
		HasAum:          *hasAum,
	}
}

func parseKeyboardKind(s string) output.Kind {
	switch s {
	case "usb":
		return output.USBKeyboard
	case "ps2":
		return output.PS2Keyboard
	default:
		return output.Dummy
	}
}

func parseMouseKind(s string) output.Kind {
	switch s {
	case "usb-absolute":
		return output.USBMouseAbsolute
	case "usb-absolute-win98":
		return output.USBMouseAbsoluteWin98
	case "usb-relative":
		return output.USBMouseRelative
	case "ps2":
		return output.PS2Mouse
	default:
		return output.Dummy
	}
}

// Capabilities builds the output.Capabilities this build advertises,
// independent of which kind is currently selected.
func (c Config) Capabilities() output.Capabilities {
	return output.Capabilities{
		USB:      c.HasUSB,
		USBWin98: c.HasUSBWin98,
		PS2:      c.HasPS2,
	}
}
