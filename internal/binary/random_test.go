package binary

import (
	"bytes"
	"testing"
)

// memWriterAt is a minimal in-memory io.WriterAt that grows on demand,
// standing in for the file handle the rewriter patches in place.
type memWriterAt struct {
	buf []byte
}

func (m *memWriterAt) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[off:end], p)
	return len(p), nil
}

func TestRandomWriter_WriteAt(t *testing.T) {
	m := &memWriterAt{buf: make([]byte, 8)}
	rw := NewRandomWriter(m)

	if err := rw.WriteAt([]byte{0xDE, 0xAD}, 2); err != nil {
		t.Fatalf("WriteAt() error = %v", err)
	}

	expected := []byte{0, 0, 0xDE, 0xAD, 0, 0, 0, 0}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}

func TestRandomWriter_WriteAtGrowsUnderlyingBuffer(t *testing.T) {
	m := &memWriterAt{}
	rw := NewRandomWriter(m)

	if err := rw.WriteAt([]byte{0x01, 0x02}, 4); err != nil {
		t.Fatalf("WriteAt() error = %v", err)
	}

	expected := []byte{0, 0, 0, 0, 0x01, 0x02}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}

func TestWriteValueAt_Uint8(t *testing.T) {
	m := &memWriterAt{buf: make([]byte, 4)}
	rw := NewRandomWriter(m)

	if err := WriteValueAt[uint8](rw, 0x42, 1); err != nil {
		t.Fatalf("WriteValueAt() error = %v", err)
	}

	expected := []byte{0, 0x42, 0, 0}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}

func TestWriteValueAt_Uint16BE(t *testing.T) {
	m := &memWriterAt{buf: make([]byte, 4)}
	rw := NewRandomWriter(m)

	if err := WriteValueAt[uint16](rw, 0xABCD, 1); err != nil {
		t.Fatalf("WriteValueAt() error = %v", err)
	}

	expected := []byte{0, 0xAB, 0xCD, 0}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}

func TestWriteValueAt_Uint32BE(t *testing.T) {
	m := &memWriterAt{buf: make([]byte, 8)}
	rw := NewRandomWriter(m)

	if err := WriteValueAt[uint32](rw, 0x12345678, 2); err != nil {
		t.Fatalf("WriteValueAt() error = %v", err)
	}

	expected := []byte{0, 0, 0x12, 0x34, 0x56, 0x78, 0, 0}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}

func TestWriteValueAt_Uint64BE(t *testing.T) {
	m := &memWriterAt{buf: make([]byte, 8)}
	rw := NewRandomWriter(m)

	if err := WriteValueAt[uint64](rw, 0x0102030405060708, 0); err != nil {
		t.Fatalf("WriteValueAt() error = %v", err)
	}

	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}

func TestWriteValueAt_OverwritesExistingBytesAtOffset(t *testing.T) {
	m := &memWriterAt{buf: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}}
	rw := NewRandomWriter(m)

	if err := WriteValueAt[uint32](rw, 0, 1); err != nil {
		t.Fatalf("WriteValueAt() error = %v", err)
	}

	expected := []byte{0xFF, 0, 0, 0, 0, 0xFF}
	if !bytes.Equal(m.buf, expected) {
		t.Errorf("buf = %v, want %v", m.buf, expected)
	}
}
