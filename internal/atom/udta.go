package atom

import "github.com/go-m4a/m4atag/internal/binary"

// FourccChpl is Nero's chapter-list atom, carried directly under udta.
var FourccChpl = NewFourcc('c', 'h', 'p', 'l')

// Udta is the user-data box. Meta and an optional Nero chpl chapter list
// are modeled; any other sibling (e.g. a QuickTime copyright atom outside
// meta) is outside this module's named accessor schedule and is left
// untouched by the rewriter since udta's own bytes before/after meta are
// never rewritten in place.
type Udta struct {
	Meta *Meta
	Chpl *RawBox
}

// ParseUdta decodes a udta box, descending into its meta and chpl children
// if present.
func ParseUdta(sr *binary.SafeReader, h Head) (Udta, error) {
	var u Udta
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Udta{}, err
		}
		switch childHead.Fourcc {
		case FourccMeta:
			m, err := ParseMeta(sr, childHead)
			if err != nil {
				return Udta{}, err
			}
			u.Meta = &m
		case FourccChpl:
			c, err := ParseRawBox(sr, childHead)
			if err != nil {
				return Udta{}, err
			}
			u.Chpl = &c
		}
		pos = childHead.End
	}
	return u, nil
}

// Size returns the serialized size of this udta box including its header.
// Used only when materializing a brand new udta (the existing-udta case
// never re-serializes udta itself, only its ilst/meta descendant).
func (u Udta) Size() (int64, error) {
	total := int64(headerSize)
	if u.Meta != nil {
		sz, err := u.Meta.Size()
		if err != nil {
			return 0, err
		}
		total += sz
	}
	return total, nil
}

// Write serializes a freshly materialized udta box.
func (u Udta) Write(w *binary.SafeWriter) error {
	size, err := u.Size()
	if err != nil {
		return err
	}
	if err := w.WriteBytes(WriteHead(FourccUdta, uint32(size))); err != nil {
		return NewIOError("write udta header", err)
	}
	if u.Meta != nil {
		if err := u.Meta.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// FindMeta locates meta's bounds under udta without materializing it.
func FindMeta(sr *binary.SafeReader, h Head) (Bounds, bool, error) {
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Bounds{}, false, err
		}
		if childHead.Fourcc == FourccMeta {
			return Bounds{Fourcc: FourccMeta, Pos: childHead.Pos, End: childHead.End}, true, nil
		}
		pos = childHead.End
	}
	return Bounds{}, false, nil
}
