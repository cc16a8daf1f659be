package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Moov is the movie box: header, every track, and user data.
type Moov struct {
	Mvhd Mvhd
	Trak []Trak
	Udta *Udta
}

// ParseMoov decodes a moov box's children. audio/chapters/tag descent is
// gated by the caller (the tree reader) rather than here, so this always
// does a full descent; callers that only need bounds should use
// FindTreeBounds instead.
func ParseMoov(sr *binary.SafeReader, h Head) (Moov, error) {
	var m Moov
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Moov{}, err
		}
		switch childHead.Fourcc {
		case FourccMvhd:
			v, err := ParseMvhd(sr, childHead)
			if err != nil {
				return Moov{}, err
			}
			m.Mvhd = v
		case FourccTrak:
			v, err := ParseTrak(sr, childHead)
			if err != nil {
				return Moov{}, err
			}
			m.Trak = append(m.Trak, v)
		case FourccUdta:
			v, err := ParseUdta(sr, childHead)
			if err != nil {
				return Moov{}, err
			}
			m.Udta = &v
		}
		pos = childHead.End
	}
	return m, nil
}

// AudioTrack returns the first audio track, if any.
func (m Moov) AudioTrack() (Trak, bool) {
	for _, t := range m.Trak {
		if t.IsAudio() {
			return t, true
		}
	}
	return Trak{}, false
}

// Tag returns the ilst item list, if the udta/meta/ilst chain exists.
func (m Moov) Tag() (Ilst, bool) {
	if m.Udta == nil || m.Udta.Meta == nil || m.Udta.Meta.Ilst == nil {
		return Ilst{}, false
	}
	return *m.Udta.Meta.Ilst, true
}
