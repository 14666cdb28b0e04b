// Package nvstore persists the 8-byte outputs-selection record: which
// keyboard and mouse kind the firmware should construct on the next
// boot. The record is CRC-16/ARC validated exactly like a wire frame,
// and read-modify-write always goes through the same mask-and-merge
// rule the firmware uses when a SET_KEYBOARD/SET_MOUSE command arrives.
package nvstore

import "github.com/kbmbridge/hidcore/internal/crc16"

// RecordSize is the fixed length of the persisted outputs record.
const RecordSize = 8

// recordMagic tags byte 0 of the record; it has the same value as the
// wire protocol's request magic, and the record uses the same CRC scheme.
const recordMagic byte = 0x33

// BlockDevice is the slice of a block storage peripheral the outputs
// store needs, shaped after `tinygo.org/x/drivers`'s BlockDevice
// interface (ReadAt/WriteAt/Size) so a real on-board flash or EEPROM
// driver from that module can be dropped in without touching Store. See
// the host-simulated FileBlockDevice for development off real hardware.
type BlockDevice interface {
	ReadAt(p []byte, off int64) (n int, err error)
	WriteAt(p []byte, off int64) (n int, err error)
	Size() int64
}

// RecordError reports a backing-store I/O failure distinct from an
// absent or corrupted record, which Read treats as a normal first-boot
// condition rather than an error.
type RecordError struct {
	Op  string
	Err error
}

func (e *RecordError) Error() string {
	return "nvstore: " + e.Op + ": " + e.Err.Error()
}

func (e *RecordError) Unwrap() error { return e.Err }

// Store owns the persisted outputs byte: which keyboard/mouse kind bits
// are selected, read once at boot and read-modify-written whenever a
// SET_KEYBOARD or SET_MOUSE command arrives.
type Store struct {
	dev BlockDevice
}

// New constructs a Store over dev. Nothing is read until Read is called.
func New(dev BlockDevice) *Store {
	return &Store{dev: dev}
}

// Read returns the persisted outputs byte, or ok=false if the record is
// missing, unwritten, or fails its CRC check — all treated as "no prior
// selection", matching _readOutputs returning -1.
func (s *Store) Read() (outputs byte, ok bool) {
	buf := make([]byte, RecordSize)
	if _, err := s.dev.ReadAt(buf, 0); err != nil {
		return 0, false
	}
	if buf[0] != recordMagic || !crc16.Verify(buf) {
		return 0, false
	}
	return buf[1], true
}

// Write applies (old &^ mask) | (outputs & mask) to the persisted byte
// and writes the result back, exactly matching the firmware's
// writeOutputs mask-merge rule. With force set, the old value is
// discarded instead of read back first (used for the first-boot
// default write).
func (s *Store) Write(mask, outputs byte, force bool) error {
	old := byte(0)
	if !force {
		if v, ok := s.Read(); ok {
			old = v
		}
	}
	merged := (old &^ mask) | (outputs & mask)

	buf := make([]byte, RecordSize)
	buf[0] = recordMagic
	buf[1] = merged
	copy(buf, crc16.Append(buf[:6]))
	if _, err := s.dev.WriteAt(buf, 0); err != nil {
		return &RecordError{Op: "write", Err: err}
	}
	return nil
}
