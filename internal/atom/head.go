package atom

import (
	"github.com/go-m4a/m4atag/internal/binary"
)

// headerSize is the length of the ordinary 8-byte size+fourcc header.
const headerSize = 8

// extendedHeaderSize is the length when the 32-bit size field reads 1,
// meaning an 8-byte size follows the fourcc.
const extendedHeaderSize = 16

// Head is a decoded box header: its fourcc, the offset of the header
// itself, the offset its payload starts at, and the offset just past the
// box (pos+size), which is what every sibling walk advances to.
type Head struct {
	Fourcc    Fourcc
	Pos       int64 // offset of the first size byte
	BodyStart int64 // offset of the first payload byte
	End       int64 // offset one past the last byte of this box
}

// Size returns the total length of the box including its header.
func (h Head) Size() int64 {
	return h.End - h.Pos
}

// BodyLen returns the length of the box's payload, excluding the header.
func (h Head) BodyLen() int64 {
	return h.End - h.BodyStart
}

// ReadHead decodes the box header at pos. limit is the offset one past the
// end of the enclosing container (or the file size at top level); it is
// used to resolve a size==0 "extends to end" box, which is only valid for
// mdat.
func ReadHead(sr *binary.SafeReader, pos int64, limit int64) (Head, error) {
	size32, err := binary.Read[uint32](sr, pos, "box size")
	if err != nil {
		return Head{}, NewIOError("box size", err)
	}
	fcBytes := make([]byte, 4)
	if err := sr.ReadAt(fcBytes, pos+4, "box fourcc"); err != nil {
		return Head{}, NewIOError("box fourcc", err)
	}
	fc := FourccFromBytes(fcBytes)

	bodyStart := pos + headerSize
	var end int64

	switch size32 {
	case 0:
		if fc != FourccMdat {
			return Head{}, NewParsingError("zero-length box not permitted for " + fc.String()).WithFourcc(fc)
		}
		end = limit
	case 1:
		size64, err := binary.Read[uint64](sr, pos+headerSize, "extended box size")
		if err != nil {
			return Head{}, NewIOError("extended box size", err).WithFourcc(fc)
		}
		if size64 < extendedHeaderSize {
			return Head{}, NewParsingError("extended size smaller than header").WithFourcc(fc)
		}
		bodyStart = pos + extendedHeaderSize
		end = pos + int64(size64)
	default:
		if size32 < headerSize {
			return Head{}, NewParsingError("box size smaller than header").WithFourcc(fc)
		}
		end = pos + int64(size32)
	}

	if end > limit {
		return Head{}, NewParsingError("box extends past its container").WithFourcc(fc)
	}

	return Head{Fourcc: fc, Pos: pos, BodyStart: bodyStart, End: end}, nil
}

// WriteHead serializes a standard (non-extended) 8-byte header for a box
// of the given total size. Callers needing the rare 64-bit extended form
// build it inline; this module never writes boxes exceeding 4GiB.
func WriteHead(fc Fourcc, totalSize uint32) []byte {
	buf := make([]byte, headerSize)
	buf[0] = byte(totalSize >> 24)
	buf[1] = byte(totalSize >> 16)
	buf[2] = byte(totalSize >> 8)
	buf[3] = byte(totalSize)
	copy(buf[4:8], fc.Bytes())
	return buf
}
