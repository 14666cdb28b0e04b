package output

import "github.com/kbmbridge/hidcore/internal/ps2"

// Ps2Keyboard adapts the ps2.Keyboard command layer to the Keyboard
// capability, adding the online/offline tracking the PHY doesn't itself
// surface as a driver-level capability.
type Ps2Keyboard struct {
	kbd *ps2.Keyboard
	phy *ps2.Phy
}

func NewPs2Keyboard(kbd *ps2.Keyboard, phy *ps2.Phy) *Ps2Keyboard {
	return &Ps2Keyboard{kbd: kbd, phy: phy}
}

func (k *Ps2Keyboard) Begin() error               { return nil }
func (k *Ps2Keyboard) Clear()                     { k.kbd.Clear() }
func (k *Ps2Keyboard) SendKey(code byte, pressed bool) { k.kbd.SendKey(code, pressed) }
func (k *Ps2Keyboard) Periodic()                  {}
func (k *Ps2Keyboard) IsOffline() bool            { return !k.phy.Online() }
func (k *Ps2Keyboard) Type() Kind                 { return PS2Keyboard }

func (k *Ps2Keyboard) Leds() Leds {
	caps, scroll, num := k.kbd.Leds()
	return Leds{Caps: caps, Scroll: scroll, Num: num}
}

// Ps2Mouse adapts the ps2.Mouse command layer to the Mouse capability.
//
// The basic PS/2 mouse packet has no fourth and fifth buttons, so the
// extra up/down button pair the wire protocol carries (for parity with
// a 5-button USB mouse) has nowhere to go on this transport and is
// silently dropped, matching the firmware's own PS/2 mouse support,
// which never grew past the 3-button packet; see DESIGN.md.
type Ps2Mouse struct {
	mouse *ps2.Mouse
	phy   *ps2.Phy
}

func NewPs2Mouse(mouse *ps2.Mouse, phy *ps2.Phy) *Ps2Mouse {
	return &Ps2Mouse{mouse: mouse, phy: phy}
}

func (m *Ps2Mouse) Begin() error    { return nil }
func (m *Ps2Mouse) Clear()          { m.mouse.Clear() }
func (m *Ps2Mouse) IsOffline() bool { return !m.phy.Online() }
func (m *Ps2Mouse) Type() Kind      { return PS2Mouse }

func (m *Ps2Mouse) SendButtons(leftSel, leftState, rightSel, rightState, midSel, midState, _, _, _, _ bool) {
	m.mouse.SendButtons(leftSel, leftState, rightSel, rightState, midSel, midState)
}

func (m *Ps2Mouse) SendMove(x, y int16) {}

func (m *Ps2Mouse) SendRelative(dx, dy int8) { m.mouse.SendRelative(dx, dy) }

func (m *Ps2Mouse) SendWheel(dy int8) {}
