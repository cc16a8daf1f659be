package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Stsd is the sample description box. Only its mp4a child is modeled;
// other sample entry types (e.g. video codecs in an M4V file) are skipped
// since this module's audio-info reader only reports on the audio track.
type Stsd struct {
	Mp4a *Mp4a
}

// ParseStsd decodes an stsd box, looking for an mp4a sample entry among
// its children.
func ParseStsd(sr *binary.SafeReader, h Head) (Stsd, error) {
	var s Stsd
	// Full-box header (version+flags) then a 4-byte entry count precede
	// the sample entries.
	pos := h.BodyStart + 4 + 4
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Stsd{}, err
		}
		if childHead.Fourcc == FourccMp4a {
			m, err := ParseMp4a(sr, childHead)
			if err != nil {
				return Stsd{}, err
			}
			s.Mp4a = &m
		}
		pos = childHead.End
	}
	return s, nil
}
