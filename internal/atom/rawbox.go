package atom

import "github.com/go-m4a/m4atag/internal/binary"

// RawBox is a pass-through atom kept only for round-tripping: tkhd, mdhd,
// and tref carry no field this module's named accessors expose, so their
// bytes are read once and replayed unchanged rather than field-modeled.
type RawBox struct {
	Fourcc  Fourcc
	Payload []byte
}

// ParseRawBox copies a box's body verbatim.
func ParseRawBox(sr *binary.SafeReader, h Head) (RawBox, error) {
	buf := make([]byte, h.BodyLen())
	if err := sr.ReadAt(buf, h.BodyStart, h.Fourcc.String()+" payload"); err != nil {
		return RawBox{}, NewIOError(h.Fourcc.String()+" payload", err).WithFourcc(h.Fourcc)
	}
	return RawBox{Fourcc: h.Fourcc, Payload: buf}, nil
}

// Size returns the serialized size including the box header.
func (r RawBox) Size() int64 {
	return int64(headerSize) + int64(len(r.Payload))
}

// Write serializes the box unchanged.
func (r RawBox) Write(w *binary.SafeWriter) error {
	if err := w.WriteBytes(WriteHead(r.Fourcc, uint32(r.Size()))); err != nil {
		return NewIOError("write "+r.Fourcc.String()+" header", err)
	}
	if err := w.WriteBytes(r.Payload); err != nil {
		return NewIOError("write "+r.Fourcc.String()+" payload", err)
	}
	return nil
}
