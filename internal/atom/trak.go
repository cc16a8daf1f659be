package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Trak is one track box. Tkhd and Tref are kept raw since no named
// accessor needs their individual fields.
type Trak struct {
	Tkhd *RawBox
	Tref *RawBox
	Mdia *Mdia
}

// ParseTrak decodes a trak box's children.
func ParseTrak(sr *binary.SafeReader, h Head) (Trak, error) {
	var t Trak
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Trak{}, err
		}
		switch childHead.Fourcc {
		case FourccTkhd:
			v, err := ParseRawBox(sr, childHead)
			if err != nil {
				return Trak{}, err
			}
			t.Tkhd = &v
		case FourccTref:
			v, err := ParseRawBox(sr, childHead)
			if err != nil {
				return Trak{}, err
			}
			t.Tref = &v
		case FourccMdia:
			v, err := ParseMdia(sr, childHead)
			if err != nil {
				return Trak{}, err
			}
			t.Mdia = &v
		}
		pos = childHead.End
	}
	return t, nil
}

// IsAudio reports whether this track's handler type is "soun".
func (t Trak) IsAudio() bool {
	return t.Mdia != nil && t.Mdia.isAudioHandler()
}
