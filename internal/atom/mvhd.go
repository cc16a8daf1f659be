package atom

import (
	"time"

	"github.com/go-m4a/m4atag/internal/binary"
)

// Mvhd is the movie header box. Only Duration is modeled; the rest of its
// fields (matrix, rates, next-track-id) aren't needed by any named
// operation this module exposes.
type Mvhd struct {
	Duration time.Duration
}

// ParseMvhd decodes an mvhd box body, handling both version 0 (32-bit
// times) and version 1 (64-bit times).
func ParseMvhd(sr *binary.SafeReader, h Head) (Mvhd, error) {
	version, err := binary.Read[uint8](sr, h.BodyStart, "mvhd version")
	if err != nil {
		return Mvhd{}, NewIOError("mvhd version", err).WithFourcc(FourccMvhd)
	}

	var timescale uint32
	var duration uint64

	switch version {
	case 0:
		timescale, err = binary.Read[uint32](sr, h.BodyStart+12, "mvhd timescale")
		if err != nil {
			return Mvhd{}, NewIOError("mvhd timescale", err).WithFourcc(FourccMvhd)
		}
		d32, err := binary.Read[uint32](sr, h.BodyStart+16, "mvhd duration")
		if err != nil {
			return Mvhd{}, NewIOError("mvhd duration", err).WithFourcc(FourccMvhd)
		}
		duration = uint64(d32)
	case 1:
		timescale, err = binary.Read[uint32](sr, h.BodyStart+20, "mvhd timescale")
		if err != nil {
			return Mvhd{}, NewIOError("mvhd timescale", err).WithFourcc(FourccMvhd)
		}
		duration, err = binary.Read[uint64](sr, h.BodyStart+24, "mvhd duration")
		if err != nil {
			return Mvhd{}, NewIOError("mvhd duration", err).WithFourcc(FourccMvhd)
		}
	default:
		return Mvhd{}, NewUnknownVersionError(version).WithFourcc(FourccMvhd)
	}

	if timescale == 0 {
		return Mvhd{}, nil
	}
	seconds := float64(duration) / float64(timescale)
	return Mvhd{Duration: time.Duration(seconds * float64(time.Second))}, nil
}
