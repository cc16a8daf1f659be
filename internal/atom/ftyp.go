package atom

import (
	"unicode/utf8"

	"github.com/go-m4a/m4atag/internal/binary"
)

// Recognized major and compatible brands for the containers this module
// reads. M4A/M4B/M4P/M4V audiobook and video brands and the generic isom
// family are all accepted; anything else is InvalidFiletype.
var recognizedBrandPrefixes = []Fourcc{
	NewFourcc('M', '4', 'A', ' '),
	NewFourcc('M', '4', 'B', ' '),
	NewFourcc('M', '4', 'P', ' '),
	NewFourcc('M', '4', 'V', ' '),
	NewFourcc('i', 's', 'o', 'm'),
}

// Ftyp is the file-type box: the major brand, minor version, and list of
// compatible brands declared at the start of the file.
type Ftyp struct {
	MajorBrand       Fourcc
	MinorVersion     uint32
	CompatibleBrands []Fourcc
}

// ParseFtyp decodes an ftyp box body.
func ParseFtyp(sr *binary.SafeReader, h Head) (Ftyp, error) {
	major, err := binary.Read[uint32](sr, h.BodyStart, "ftyp major brand")
	if err != nil {
		return Ftyp{}, NewIOError("ftyp major brand", err).WithFourcc(FourccFtyp)
	}
	minor, err := binary.Read[uint32](sr, h.BodyStart+4, "ftyp minor version")
	if err != nil {
		return Ftyp{}, NewIOError("ftyp minor version", err).WithFourcc(FourccFtyp)
	}

	ft := Ftyp{MajorBrand: u32ToFourcc(major), MinorVersion: minor}

	if !utf8.Valid(ft.MajorBrand.Bytes()) {
		return Ftyp{}, NewNoTagError()
	}

	for pos := h.BodyStart + 8; pos+4 <= h.End; pos += 4 {
		b, err := binary.Read[uint32](sr, pos, "ftyp compatible brand")
		if err != nil {
			return Ftyp{}, NewIOError("ftyp compatible brand", err).WithFourcc(FourccFtyp)
		}
		ft.CompatibleBrands = append(ft.CompatibleBrands, u32ToFourcc(b))
	}

	if !ft.isRecognized() {
		return Ftyp{}, NewInvalidFiletypeError(ft.MajorBrand)
	}
	return ft, nil
}

func (ft Ftyp) isRecognized() bool {
	if brandMatches(ft.MajorBrand) {
		return true
	}
	for _, b := range ft.CompatibleBrands {
		if brandMatches(b) {
			return true
		}
	}
	return false
}

func brandMatches(fc Fourcc) bool {
	for _, want := range recognizedBrandPrefixes {
		if fc == want {
			return true
		}
		// Otherwise a brand matches when its first two bytes equal those
		// of any recognized brand ("M4" or "is").
		if fc[0] == want[0] && fc[1] == want[1] {
			return true
		}
	}
	return false
}

func u32ToFourcc(v uint32) Fourcc {
	return NewFourcc(byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func fourccToU32(fc Fourcc) uint32 {
	return uint32(fc[0])<<24 | uint32(fc[1])<<16 | uint32(fc[2])<<8 | uint32(fc[3])
}
