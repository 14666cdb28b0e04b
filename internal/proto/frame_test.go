package proto

import (
	"testing"

	"github.com/kbmbridge/hidcore/internal/crc16"
)

func TestEncodeDecodeRequestRoundTrip(t *testing.T) {
	frame := EncodeRequest(CMD.Key, [4]byte{0x04, 1, 0, 0})
	req, ok, err := DecodeRequest(frame)
	if err != nil {
		t.Fatalf("DecodeRequest error: %v", err)
	}
	if !ok {
		t.Fatalf("DecodeRequest ok = false, want true")
	}
	if req.Opcode != CMD.Key {
		t.Errorf("Opcode = %#x, want %#x", req.Opcode, CMD.Key)
	}
	if req.Payload != [4]byte{0x04, 1, 0, 0} {
		t.Errorf("Payload = %v", req.Payload)
	}
}

func TestDecodeRequestCRCMismatch(t *testing.T) {
	frame := EncodeRequest(CMD.Ping, [4]byte{})
	frame[2] ^= 0xff // corrupt payload, leaving CRC stale
	_, ok, err := DecodeRequest(frame)
	if err != nil {
		t.Fatalf("DecodeRequest error: %v", err)
	}
	if ok {
		t.Errorf("DecodeRequest ok = true on corrupted frame, want false")
	}
}

func TestDecodeRequestWrongLength(t *testing.T) {
	_, _, err := DecodeRequest([]byte{0x33, 0x01})
	if err == nil {
		t.Fatalf("expected error for short frame")
	}
}

func TestDecodeRequestIgnoresMagicByte(t *testing.T) {
	// Ground truth (_handleRequest) checks only the CRC, not the magic
	// byte, so a wrong-magic frame with a correct CRC still dispatches.
	frame := crc16.Append([]byte{0x99, CMD.Ping, 0, 0, 0, 0})
	req, ok, err := DecodeRequest(frame)
	if err != nil || !ok {
		t.Fatalf("DecodeRequest(ok=%v, err=%v), want ok=true, err=nil", ok, err)
	}
	if req.Opcode != CMD.Ping {
		t.Errorf("Opcode = %#x, want %#x", req.Opcode, CMD.Ping)
	}
}

func TestEncodeDecodeResponseRoundTrip(t *testing.T) {
	frame := EncodeResponse(Response{Status1: PONG.OK, Status2: Outputs1Keyboard.USB, Status3: Outputs2.HasUSB})
	if frame[0] != MagicResp {
		t.Errorf("frame[0] = %#x, want %#x", frame[0], MagicResp)
	}
	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("DecodeResponse error: %v", err)
	}
	if resp.Status1 != PONG.OK || resp.Status2 != Outputs1Keyboard.USB || resp.Status3 != Outputs2.HasUSB {
		t.Errorf("decoded response = %+v", resp)
	}
}

func TestEncodePlainResponse(t *testing.T) {
	frame := EncodePlainResponse(RESP.CRCError)
	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("DecodeResponse error: %v", err)
	}
	if resp.Status1 != RESP.CRCError {
		t.Errorf("Status1 = %#x, want %#x", resp.Status1, RESP.CRCError)
	}
}
