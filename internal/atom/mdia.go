package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Mdia is the media box: handler-declared media type (audio, video, ...)
// and, for audio, the path down to the sample tables.
type Mdia struct {
	Mdhd *RawBox
	Hdlr *RawBox
	Minf *Minf
}

// ParseMdia decodes an mdia box's children.
func ParseMdia(sr *binary.SafeReader, h Head) (Mdia, error) {
	var m Mdia
	pos := h.BodyStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Mdia{}, err
		}
		switch childHead.Fourcc {
		case FourccMdhd:
			v, err := ParseRawBox(sr, childHead)
			if err != nil {
				return Mdia{}, err
			}
			m.Mdhd = &v
		case FourccHdlr:
			v, err := ParseRawBox(sr, childHead)
			if err != nil {
				return Mdia{}, err
			}
			m.Hdlr = &v
		case FourccMinf:
			v, err := ParseMinf(sr, childHead)
			if err != nil {
				return Mdia{}, err
			}
			m.Minf = &v
		}
		pos = childHead.End
	}
	return m, nil
}

// isAudioHandler reports whether this mdia's hdlr declares a "soun"
// (audio) handler type, found 8 bytes into the hdlr full-box body
// (after version+flags and the pre_defined field).
func (m Mdia) isAudioHandler() bool {
	if m.Hdlr == nil || len(m.Hdlr.Payload) < 12 {
		return false
	}
	return FourccFromBytes(m.Hdlr.Payload[8:12]) == NewFourcc('s', 'o', 'u', 'n')
}
