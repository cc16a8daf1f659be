package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Minf is the media information box; this module only descends through it
// to reach stbl.
type Minf struct {
	Stbl *Stbl
}

// ParseMinf decodes a minf box's children.
func ParseMinf(sr *binary.SafeReader, h Head) (Minf, error) {
	var m Minf
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Minf{}, err
		}
		if childHead.Fourcc == FourccStbl {
			s, err := ParseStbl(sr, childHead)
			if err != nil {
				return Minf{}, err
			}
			m.Stbl = &s
		}
		pos = childHead.End
	}
	return m, nil
}

// FindStbl locates stbl's header under minf without descending further.
func FindStbl(sr *binary.SafeReader, h Head) (Head, bool, error) {
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Head{}, false, err
		}
		if childHead.Fourcc == FourccStbl {
			return childHead, true, nil
		}
		pos = childHead.End
	}
	return Head{}, false, nil
}
