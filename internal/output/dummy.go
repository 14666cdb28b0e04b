package output

// DummyKeyboard discards every event. It is the fallback whenever no
// keyboard output kind is selected or compiled in.
type DummyKeyboard struct{}

func (DummyKeyboard) Begin() error       { return nil }
func (DummyKeyboard) Clear()             {}
func (DummyKeyboard) SendKey(byte, bool) {}
func (DummyKeyboard) Periodic()          {}
func (DummyKeyboard) IsOffline() bool    { return false }
func (DummyKeyboard) Leds() Leds         { return Leds{} }
func (DummyKeyboard) Type() Kind         { return Dummy }

// DummyMouse discards every event.
type DummyMouse struct{}

func (DummyMouse) Begin() error    { return nil }
func (DummyMouse) Clear()          {}
func (DummyMouse) IsOffline() bool { return false }
func (DummyMouse) Type() Kind      { return Dummy }
func (DummyMouse) SendButtons(_, _, _, _, _, _, _, _, _, _ bool) {}
func (DummyMouse) SendMove(_, _ int16)                           {}
func (DummyMouse) SendRelative(_, _ int8)                        {}
func (DummyMouse) SendWheel(_ int8)                              {}
