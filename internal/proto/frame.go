package proto

import "github.com/kbmbridge/hidcore/internal/crc16"

// Request is a parsed, CRC-validated request frame.
type Request struct {
	Opcode  byte
	Payload [4]byte
}

// DecodeRequest validates a raw 8-byte frame's length and CRC, returning
// the opcode and payload on success. Unlike the response side, the
// leading magic byte is not checked here — _handleRequest in the
// original firmware validates only the CRC and trusts the framer for
// everything else, so a frame with a wrong magic byte but a correct CRC
// still dispatches. CRC failures are reported through ok=false rather
// than an error, since the dispatcher must answer them with
// RESP.CRCError rather than drop the frame.
func DecodeRequest(frame []byte) (req Request, ok bool, err error) {
	if len(frame) != FrameSize {
		return Request{}, false, &FrameError{Reason: "wrong length", Got: len(frame)}
	}
	if !crc16.Verify(frame) {
		return Request{}, false, nil
	}
	req.Opcode = frame[1]
	copy(req.Payload[:], frame[2:6])
	return req, true, nil
}

// EncodeRequest builds a framed, CRC-appended request. Used by tests and
// by anything emulating the host side of the link.
func EncodeRequest(opcode byte, payload [4]byte) []byte {
	frame := make([]byte, FrameSize)
	frame[0] = Magic
	frame[1] = opcode
	copy(frame[2:6], payload[:])
	return crc16.Append(frame[:6])
}

// Response is a parsed or about-to-be-encoded response frame's status
// bytes, excluding magic, reserved, and CRC.
type Response struct {
	Status1 byte
	Status2 byte
	Status3 byte
}

// EncodeResponse builds a framed, CRC-appended response.
func EncodeResponse(resp Response) []byte {
	frame := make([]byte, FrameSize)
	frame[0] = MagicResp
	frame[1] = resp.Status1
	frame[2] = resp.Status2
	frame[3] = resp.Status3
	return crc16.Append(frame[:6])
}

// EncodePlainResponse builds a response frame carrying a single plain
// (non-OK) status code such as RESP.CRCError or RESP.TimeoutError.
func EncodePlainResponse(code byte) []byte {
	return EncodeResponse(Response{Status1: code})
}

// DecodeResponse validates and parses a raw 8-byte response frame. Used
// by tests exercising the link from the host side.
func DecodeResponse(frame []byte) (resp Response, err error) {
	if len(frame) != FrameSize {
		return Response{}, &FrameError{Reason: "wrong length", Got: len(frame)}
	}
	if frame[0] != MagicResp {
		return Response{}, &FrameError{Reason: "bad magic byte", Got: int(frame[0])}
	}
	if !crc16.Verify(frame) {
		return Response{}, &FrameError{Reason: "crc mismatch", Got: len(frame)}
	}
	return Response{Status1: frame[1], Status2: frame[2], Status3: frame[3]}, nil
}
