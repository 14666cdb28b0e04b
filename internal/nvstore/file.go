package nvstore

import "os"

// FileBlockDevice backs a Store with a plain file, standing in for the
// EEPROM/flash block a real board would use. Used by the host build of
// cmd/hidbridged so the outputs selection survives a restart without
// real hardware.
type FileBlockDevice struct {
	f *os.File
}

// NewFileBlockDevice opens (creating if necessary) a single-block file
// at path.
func NewFileBlockDevice(path string) (*FileBlockDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	return &FileBlockDevice{f: f}, nil
}

func (d *FileBlockDevice) ReadAt(p []byte, off int64) (int, error) {
	return d.f.ReadAt(p, off)
}

func (d *FileBlockDevice) WriteAt(p []byte, off int64) (int, error) {
	return d.f.WriteAt(p, off)
}

func (d *FileBlockDevice) Size() int64 {
	info, err := d.f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// Close releases the backing file handle.
func (d *FileBlockDevice) Close() error { return d.f.Close() }
