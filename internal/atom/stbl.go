package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Stbl is the sample table box. Stco and Co64 are mutually exclusive in
// practice (a track uses one or the other) but both fields are kept so a
// malformed file carrying both still round-trips.
type Stbl struct {
	Stsd *Stsd
	Stco *Stco
	Co64 *Co64
}

// ParseStbl decodes an stbl box's children.
func ParseStbl(sr *binary.SafeReader, h Head) (Stbl, error) {
	var s Stbl
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Stbl{}, err
		}
		switch childHead.Fourcc {
		case FourccStsd:
			v, err := ParseStsd(sr, childHead)
			if err != nil {
				return Stbl{}, err
			}
			s.Stsd = &v
		case FourccStco:
			v, err := ParseStco(sr, childHead)
			if err != nil {
				return Stbl{}, err
			}
			s.Stco = &v
		case FourccCo64:
			v, err := ParseCo64(sr, childHead)
			if err != nil {
				return Stbl{}, err
			}
			s.Co64 = &v
		}
		pos = childHead.End
	}
	return s, nil
}

// FindChunkOffsetTables locates every stco/co64 box under stbl without
// materializing its entries, for the rewriter's patch pass.
func FindChunkOffsetTables(sr *binary.SafeReader, h Head) (stco, co64 []Bounds, err error) {
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, e := ReadHead(sr, pos, h.End)
		if e != nil {
			return nil, nil, e
		}
		switch childHead.Fourcc {
		case FourccStco:
			stco = append(stco, Bounds{Fourcc: FourccStco, Pos: childHead.Pos, End: childHead.End})
		case FourccCo64:
			co64 = append(co64, Bounds{Fourcc: FourccCo64, Pos: childHead.Pos, End: childHead.End})
		}
		pos = childHead.End
	}
	return stco, co64, nil
}
