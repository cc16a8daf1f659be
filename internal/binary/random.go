package binary

import (
	"encoding/binary"
	"io"
)

// RandomWriter wraps io.WriterAt for the patch-in-place writes the rewriter
// performs: size fields, chunk-offset tables, and the relocated tail all
// land at specific, independently-computed offsets rather than sequentially.
type RandomWriter struct {
	w io.WriterAt
}

// NewRandomWriter creates a new RandomWriter.
func NewRandomWriter(w io.WriterAt) *RandomWriter {
	return &RandomWriter{w: w}
}

// WriteAt writes raw bytes at the given offset.
func (rw *RandomWriter) WriteAt(b []byte, off int64) error {
	_, err := rw.w.WriteAt(b, off)
	return err
}

// WriteValueAt writes a value of type T in big-endian byte order at the given offset.
func WriteValueAt[T uint8 | uint16 | uint32 | uint64](rw *RandomWriter, val T, off int64) error {
	var buf []byte
	switch any(val).(type) {
	case uint8:
		buf = []byte{byte(val)}
	case uint16:
		buf = make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(val))
	case uint32:
		buf = make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(val))
	case uint64:
		buf = make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(val))
	}
	return rw.WriteAt(buf, off)
}
