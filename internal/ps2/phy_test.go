package ps2

import (
	"reflect"
	"testing"
)

func TestParityOdd(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{0x00, true},  // zero set bits -> need odd parity bit
		{0x01, false}, // one set bit already odd
		{0x03, true},  // two set bits -> need one more
		{0xff, true}, // eight set bits, even -> need odd parity bit
	}
	for _, c := range cases {
		if got := ParityOdd(c.b); got != c.want {
			t.Errorf("ParityOdd(%#x) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestSendAndDrain(t *testing.T) {
	p := NewPhy(nil, nil)
	p.Send(0x01)
	p.Send(0x02)
	if n := p.QueueLen(); n != 2 {
		t.Fatalf("QueueLen() = %d, want 2", n)
	}
	got := p.Drain()
	if !reflect.DeepEqual(got, []byte{0x01, 0x02}) {
		t.Errorf("Drain() = %x, want [01 02]", got)
	}
	if n := p.QueueLen(); n != 0 {
		t.Errorf("QueueLen() after Drain = %d, want 0", n)
	}
}

func TestDeliverReceivedTracksPrevByte(t *testing.T) {
	var gotPrev []byte
	var gotByte []byte
	p := NewPhy(nil, func(b, prev byte) {
		gotByte = append(gotByte, b)
		gotPrev = append(gotPrev, prev)
	})
	p.DeliverReceived(0xed)
	p.DeliverReceived(0x07)

	if !reflect.DeepEqual(gotByte, []byte{0xed, 0x07}) {
		t.Errorf("byte sequence = %x, want [ed 07]", gotByte)
	}
	if !reflect.DeepEqual(gotPrev, []byte{0x00, 0xed}) {
		t.Errorf("prev sequence = %x, want [00 ed]", gotPrev)
	}
}

func TestOnlineBecomesFalseAfterTimeout(t *testing.T) {
	p := NewPhy(nil, nil)
	if p.Online() {
		t.Errorf("Online() before any activity = true, want false")
	}
	p.NoteTransmitActivity()
	if !p.Online() {
		t.Errorf("Online() right after activity = false, want true")
	}
	p.mu.Lock()
	p.lastActive -= onlineWindowMicros + 1
	p.mu.Unlock()
	if p.Online() {
		t.Errorf("Online() after the activity window elapsed = true, want false")
	}
}

type fakeLines struct {
	clock, data bool
}

func (f *fakeLines) Clock() bool     { return f.clock }
func (f *fakeLines) Data() bool      { return f.data }
func (f *fakeLines) SetClock(v bool) { f.clock = v }
func (f *fakeLines) SetData(v bool)  { f.data = v }

func TestOnlineInhibitedByClockLine(t *testing.T) {
	lines := &fakeLines{clock: false}
	p := NewPhy(lines, nil)
	p.NoteTransmitActivity()
	if !p.Online() {
		t.Errorf("Online() with clock held low = false, want true (inhibited still counts as present)")
	}
}
