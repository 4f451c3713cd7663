package room

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	fieldMagic   = "ROOM"
	fieldVersion = 1
	headerSize   = len(fieldMagic) + 1 + 4
	maxSide      = 1 << 16
)

// MarshalBinary encodes the field as magic, version, big-endian uint32 N and
// N² big-endian uint32 heights in row-major order.
func (f *Field) MarshalBinary() ([]byte, error) {
	cells := f.h.Cells()
	buf := make([]byte, headerSize+4*len(cells))
	copy(buf, fieldMagic)
	buf[len(fieldMagic)] = fieldVersion
	binary.BigEndian.PutUint32(buf[len(fieldMagic)+1:], uint32(f.n))
	off := headerSize
	for _, v := range cells {
		binary.BigEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}
	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary. The decoded field
// must be in range and monotone.
func (f *Field) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize || string(data[:len(fieldMagic)]) != fieldMagic {
		return fmt.Errorf("missing %q header: %w", fieldMagic, ErrCorruptField)
	}
	if v := data[len(fieldMagic)]; v != fieldVersion {
		return fmt.Errorf("unsupported version %d: %w", v, ErrCorruptField)
	}
	n := int(binary.BigEndian.Uint32(data[len(fieldMagic)+1:]))
	if n <= 0 || n > maxSide {
		return fmt.Errorf("side %d: %w", n, ErrCorruptField)
	}
	if want := headerSize + 4*n*n; len(data) != want {
		return fmt.Errorf("%d bytes for side %d, want %d: %w", len(data), n, want, ErrCorruptField)
	}
	decoded := &Field{n: n, h: newIntGrid(n)}
	cells := decoded.h.Cells()
	off := headerSize
	for i := range cells {
		cells[i] = int(binary.BigEndian.Uint32(data[off:]))
		off += 4
	}
	if !decoded.InRange() {
		return fmt.Errorf("height outside [0,%d]: %w", n, ErrCorruptField)
	}
	if !decoded.Monotone() {
		return fmt.Errorf("heights not monotone: %w", ErrCorruptField)
	}
	*f = *decoded
	return nil
}

// SaveField writes f to path.
func SaveField(path string, f *Field) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save room %s: %w", path, err)
	}
	return nil
}

// LoadField reads a field written by SaveField.
func LoadField(path string) (*Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", path, err)
	}
	f := &Field{}
	if err := f.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("load room %s: %w", path, err)
	}
	return f, nil
}
