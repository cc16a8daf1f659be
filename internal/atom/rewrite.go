package atom

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-m4a/m4atag/internal/binary"
)

// RandomAccessFile is everything the in-place rewriter needs from the
// underlying file: bounds-checked reads and writes at arbitrary offsets,
// plus the ability to grow or shrink it.
type RandomAccessFile interface {
	io.ReaderAt
	io.WriterAt
	Truncate(size int64) error
}

// WriteIlstTo rewrites the ilst item list in place, growing or shrinking
// the file as needed and shifting every chunk offset that lies after the
// rewritten region.
//
// The plan:
//  1. Find the moov box and, within it, how far the udta/meta/ilst chain
//     already descends. Any missing link in that chain is materialized
//     fresh (udta -> meta{hdlr,ilst} -> ilst, from whichever point the
//     existing file stops).
//  2. Compute the byte delta between the new subtree and whatever it
//     replaces (zero, for a chain being created outright).
//  3. Read everything after the rewritten region into memory: this is
//     the unmodified tail of moov, along with mdat and any top-level
//     siblings.
//  4. If mdat lies after moov, every stco/co64 entry is an absolute file
//     offset that needs shifting by the size delta. If mdat lies before
//     moov (a "fast start" layout with mdat first), offsets into mdat are
//     untouched by a change that lies entirely after it.
//  5. Patch the size field of every existing ancestor (moov, and udta and
//     meta when they already existed) by the size delta.
//  6. Resize the file, write the new subtree, and write the tail back at
//     its shifted position.
func WriteIlstTo(f RandomAccessFile, size int64, path string, newIlst Ilst) (int64, error) {
	sr := binary.NewSafeReader(f, size, path)

	tb, err := FindTreeBounds(sr, size)
	if err != nil {
		return 0, err
	}

	newAtomsStart, oldAtomsEnd, newSubtree, err := planNewSubtree(sr, tb, newIlst)
	if err != nil {
		return 0, err
	}

	lenDiff := int64(len(newSubtree)) - (oldAtomsEnd - newAtomsStart)
	movedDataStart := oldAtomsEnd
	newSize := size + lenDiff

	trailer := make([]byte, size-movedDataStart)
	if err := sr.ReadAt(trailer, movedDataStart, "rewrite trailer"); err != nil {
		return 0, NewIOError("read trailer", err)
	}

	if tb.HasMdat && tb.Mdat.Pos > tb.Moov.Pos {
		if err := shiftChunkOffsets(f, sr, tb, lenDiff); err != nil {
			return 0, err
		}
	}

	rw := binary.NewRandomWriter(f)
	if err := patchAncestorSizes(rw, sr, tb, lenDiff); err != nil {
		return 0, err
	}

	if lenDiff > 0 {
		if err := f.Truncate(newSize); err != nil {
			return 0, NewIOError("grow file", err)
		}
	}

	if err := rw.WriteAt(newSubtree, newAtomsStart); err != nil {
		return 0, NewIOError("write new subtree", err)
	}
	if err := rw.WriteAt(trailer, movedDataStart+lenDiff); err != nil {
		return 0, NewIOError("write trailer", err)
	}

	if lenDiff < 0 {
		if err := f.Truncate(newSize); err != nil {
			return 0, NewIOError("shrink file", err)
		}
	}

	return newSize, nil
}

// planNewSubtree decides what to (re)write and where, based on how far the
// udta/meta/ilst chain already descends.
func planNewSubtree(sr *binary.SafeReader, tb TreeBounds, newIlst Ilst) (start, oldEnd int64, subtree []byte, err error) {
	switch {
	case tb.HasIlst:
		b, err := serializeIlst(newIlst)
		if err != nil {
			return 0, 0, nil, err
		}
		return tb.Ilst.Pos, tb.Ilst.End, b, nil

	case tb.HasMeta:
		b, err := serializeIlst(newIlst)
		if err != nil {
			return 0, 0, nil, err
		}
		return tb.Meta.End, tb.Meta.End, b, nil

	case tb.HasUdta:
		meta := Meta{Hdlr: hdlrPtr(), Ilst: &newIlst}
		b := &bytes.Buffer{}
		sw := binary.NewSafeWriter(b)
		if err := meta.Write(sw); err != nil {
			return 0, 0, nil, err
		}
		return tb.Udta.End, tb.Udta.End, b.Bytes(), nil

	default:
		meta := Meta{Hdlr: hdlrPtr(), Ilst: &newIlst}
		udta := Udta{Meta: &meta}
		b := &bytes.Buffer{}
		sw := binary.NewSafeWriter(b)
		if err := udta.Write(sw); err != nil {
			return 0, 0, nil, err
		}
		return tb.Moov.End, tb.Moov.End, b.Bytes(), nil
	}
}

func hdlrPtr() *Hdlr {
	h := NewMetaHdlr()
	return &h
}

func serializeIlst(il Ilst) ([]byte, error) {
	b := &bytes.Buffer{}
	sw := binary.NewSafeWriter(b)
	if err := il.Write(sw); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// shiftChunkOffsets adds delta to every entry of every stco/co64 table
// found under moov. Only called when mdat follows moov, since that's the
// only layout where a size change earlier in the file invalidates
// absolute chunk offsets.
func shiftChunkOffsets(f RandomAccessFile, sr *binary.SafeReader, tb TreeBounds, delta int64) error {
	rw := binary.NewRandomWriter(f)

	for _, b := range tb.StcoTables {
		h, err := ReadHead(sr, b.Pos, b.End)
		if err != nil {
			return err
		}
		table, err := ParseStco(sr, h)
		if err != nil {
			return err
		}
		for i, off := range table.Offsets {
			shifted := int64(off) + delta
			if shifted < 0 {
				shifted = 0
			} else if shifted > math.MaxUint32 {
				shifted = math.MaxUint32
			}
			newOff := uint32(shifted)
			if err := binary.WriteValueAt(rw, newOff, table.TablePos+int64(i)*4); err != nil {
				return NewIOError("patch stco entry", err)
			}
		}
	}

	for _, b := range tb.Co64Tables {
		h, err := ReadHead(sr, b.Pos, b.End)
		if err != nil {
			return err
		}
		table, err := ParseCo64(sr, h)
		if err != nil {
			return err
		}
		for i, off := range table.Offsets {
			newOff := uint64(int64(off) + delta)
			if err := binary.WriteValueAt(rw, newOff, table.TablePos+int64(i)*8); err != nil {
				return NewIOError("patch co64 entry", err)
			}
		}
	}

	return nil
}

// patchAncestorSizes adds delta to the size field of every ancestor box
// that existed before this rewrite and whose size field covers the
// rewritten region. A freshly materialized ancestor already embeds the
// correct size in its serialized bytes and needs no patch.
func patchAncestorSizes(rw *binary.RandomWriter, sr *binary.SafeReader, tb TreeBounds, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := patchOneSize(rw, sr, tb.Moov, delta); err != nil {
		return err
	}
	if tb.HasUdta {
		if err := patchOneSize(rw, sr, tb.Udta, delta); err != nil {
			return err
		}
	}
	if tb.HasMeta {
		if err := patchOneSize(rw, sr, tb.Meta, delta); err != nil {
			return err
		}
	}
	return nil
}

func patchOneSize(rw *binary.RandomWriter, sr *binary.SafeReader, b Bounds, delta int64) error {
	size32, err := binary.Read[uint32](sr, b.Pos, "ancestor size field")
	if err != nil {
		return NewIOError("read ancestor size", err).WithFourcc(b.Fourcc)
	}
	if size32 == 1 {
		size64, err := binary.Read[uint64](sr, b.Pos+8, "ancestor extended size field")
		if err != nil {
			return NewIOError("read ancestor extended size", err).WithFourcc(b.Fourcc)
		}
		newSize := uint64(int64(size64) + delta)
		return binary.WriteValueAt(rw, newSize, b.Pos+8)
	}
	newSize64 := int64(size32) + delta
	if newSize64 < 0 || newSize64 > math.MaxUint32 {
		return NewUnsupportedError(fmt.Sprintf("%s size %d would overflow a 32-bit head; needs extended-size promotion", b.Fourcc, newSize64)).WithFourcc(b.Fourcc)
	}
	return binary.WriteValueAt(rw, uint32(newSize64), b.Pos)
}
