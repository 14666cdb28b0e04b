package ps2

import (
	"sync"

	"github.com/kbmbridge/hidcore/internal/keymap"
)

// Keyboard is the PS/2 keyboard channel's command layer: translates HID
// key events into scan-code-set-2 byte sequences and answers host
// commands (reset, identify, set-LEDs, set-typematic, enable/disable).
type Keyboard struct {
	phy *Phy

	mu sync.Mutex

	scanning bool
	leds     byte // PS/2-encoded: bit0=Scroll, bit1=Num, bit2=Caps

	// isCtrl tracks whether a Ctrl modifier is currently held, selecting
	// between the two PrintScreen/Pause byte sequences. This mirrors the
	// firmware's ph_ps2_is_ctrl counter; see DESIGN.md for why this
	// tracks Ctrl rather than the Shift state spec.md's prose names.
	isCtrl int

	repeatUs    uint32
	repeatDelay uint16
}

// NewKeyboard constructs a keyboard command layer bound to a PHY
// channel. The PHY's onReceive callback must be wired to Receive.
func NewKeyboard(phy *Phy) *Keyboard {
	k := &Keyboard{phy: phy}
	k.reset()
	return k
}

func (k *Keyboard) reset() {
	k.scanning = true
	k.repeatUs = 91743
	k.repeatDelay = 500
	k.leds = 7
}

// Leds returns the LED state last set by the host, as the caps/scroll/num
// triple the dispatcher reports.
func (k *Keyboard) Leds() (caps, scroll, num bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.leds&2 != 0, k.leds&4 != 0, k.leds&1 != 0
}

// SendKey encodes one HID key event as PS/2 set-2 bytes and queues them
// for transmission to the host.
func (k *Keyboard) SendKey(code byte, pressed bool) {
	k.mu.Lock()
	scanning := k.scanning
	k.mu.Unlock()
	if !scanning {
		return
	}

	if code >= 0xE0 && code <= 0xE7 {
		k.sendModifier(code, pressed)
		return
	}
	if int(code) >= len(keymap.HIDToPS2) {
		return
	}
	if code == 0x48 { // PrintScreen/Pause
		k.sendPrintScreen(pressed)
		return
	}
	if keymap.MaybeE0Prefix(code) {
		k.phy.Send(0xe0)
	}
	if !pressed {
		k.phy.Send(0xf0)
	}
	k.phy.Send(keymap.HIDToPS2[code])
}

func (k *Keyboard) sendModifier(code byte, pressed bool) {
	if code == 0xE0 || code == 0xE4 { // LCtrl or RCtrl
		k.mu.Lock()
		if pressed {
			k.isCtrl++
		} else {
			k.isCtrl--
		}
		if k.isCtrl < 0 || k.isCtrl > 2 {
			k.isCtrl = 0
		}
		k.mu.Unlock()
	}

	index := code - 0xE0
	if keymap.ModNeedsE0Prefix(index) {
		k.phy.Send(0xe0)
	}
	if !pressed {
		k.phy.Send(0xf0)
	}
	k.phy.Send(keymap.ModToPS2[index])
}

func (k *Keyboard) sendPrintScreen(pressed bool) {
	if !pressed {
		return // no release sequence, matching the firmware
	}
	k.mu.Lock()
	ctrlHeld := k.isCtrl != 0
	k.mu.Unlock()
	if ctrlHeld {
		k.phy.Send(0xe0)
		k.phy.Send(0x7e)
		k.phy.Send(0xe0)
		k.phy.Send(0xf0)
		k.phy.Send(0x7e)
	} else {
		k.phy.Send(0xe1)
		k.phy.Send(0x14)
		k.phy.Send(0x77)
		k.phy.Send(0xe1)
		k.phy.Send(0xf0)
		k.phy.Send(0x14)
		k.phy.Send(0xf0)
		k.phy.Send(0x77)
	}
}

// Clear releases no keys explicitly (PS/2 has no firmware-tracked "held
// keys" set to release) but resets modifier tracking, matching the
// dispatcher's CLEAR_HID ordering barrier.
func (k *Keyboard) Clear() {
	k.mu.Lock()
	k.isCtrl = 0
	k.mu.Unlock()
}

// Receive handles one host-to-device command byte. It must be wired as
// the Phy's onReceive callback.
func (k *Keyboard) Receive(b byte, prev byte) {
	switch prev {
	case 0xed: // Set LEDs
		idx := b
		if idx > 7 {
			idx = 0
		}
		k.mu.Lock()
		k.leds = keymap.LedToPS2[idx]
		k.mu.Unlock()
	case 0xf3: // Set typematic rate and delay
		k.mu.Lock()
		k.repeatUs = keymap.TypematicRepeatMicros[b&0x1f]
		k.repeatDelay = keymap.TypematicDelayMillis[(b&0x60)>>5]
		k.mu.Unlock()
	default:
		switch b {
		case 0xff: // Reset
			k.mu.Lock()
			k.reset()
			k.mu.Unlock()
			k.phy.Send(0xfa)
			k.phy.Send(0xaa)
			return
		case 0xee: // Echo: no ACK
			k.phy.Send(0xee)
			return
		case 0xf2: // Identify
			k.phy.Send(0xfa)
			k.phy.Send(0xab)
			k.phy.Send(0x83)
			return
		case 0xf4: // Enable scanning
			k.mu.Lock()
			k.scanning = true
			k.mu.Unlock()
		case 0xf5, 0xf6: // Disable scanning / set defaults
			k.mu.Lock()
			k.scanning = b == 0xf6
			k.repeatUs = 91743
			k.repeatDelay = 500
			k.leds = 0
			k.mu.Unlock()
		}
	}
	k.phy.Send(0xfa)
}
