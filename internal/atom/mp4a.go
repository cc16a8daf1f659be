package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Mp4a is the AAC sample entry inside stsd: the handful of fields the
// audio-info reader needs (channel count, sample rate, bit rates), not
// the full QuickTime sound-sample-description layout.
type Mp4a struct {
	ChannelConfig uint16
	SampleRate    uint32 // Hz, derived from the 16.16 fixed-point field
	MaxBitrate    uint32
	AvgBitrate    uint32
}

// ParseMp4a decodes an mp4a sample entry. The structure is:
//
//	6 bytes reserved, 2 bytes data-reference-index,
//	2 bytes version, 2 bytes revision, 4 bytes vendor,
//	2 bytes channel count, 2 bytes sample size, 2 bytes pre-defined,
//	2 bytes reserved, 4 bytes sample rate (16.16 fixed point),
//	then an esds box carrying bitrate info (optional).
func ParseMp4a(sr *binary.SafeReader, h Head) (Mp4a, error) {
	base := h.BodyStart
	channels, err := binary.Read[uint16](sr, base+16, "mp4a channel count")
	if err != nil {
		return Mp4a{}, NewIOError("mp4a channel count", err).WithFourcc(FourccMp4a)
	}
	rateFixed, err := binary.Read[uint32](sr, base+24, "mp4a sample rate")
	if err != nil {
		return Mp4a{}, NewIOError("mp4a sample rate", err).WithFourcc(FourccMp4a)
	}

	mp4a := Mp4a{ChannelConfig: channels, SampleRate: rateFixed >> 16}

	if max, avg, ok := findEsdsBitrates(sr, base+28, h.End); ok {
		mp4a.MaxBitrate = max
		mp4a.AvgBitrate = avg
	}
	return mp4a, nil
}

// findEsdsBitrates scans for an esds box's decoder-config-descriptor and
// extracts the max/avg bitrate fields it carries. esds nesting (ES, decoder
// config, and decoder-specific-info descriptors with variable-length size
// fields) makes a full descriptor walk worthwhile only for these two
// fields, so this looks for the fixed 13-byte decoder-config-descriptor
// tail (bufferSizeDB + maxBitrate + avgBitrate) following tag 0x04.
func findEsdsBitrates(sr *binary.SafeReader, start, end int64) (max, avg uint32, ok bool) {
	for pos := start; pos+headerSize <= end; pos++ {
		tag, err := binary.Read[uint8](sr, pos, "esds descriptor tag")
		if err != nil {
			return 0, 0, false
		}
		if tag != 0x04 {
			continue
		}
		// tag(1) + length(1, assume single-byte length < 0x80) +
		// objectTypeIndication(1) + streamType+flags(1) + bufferSizeDB(3)
		fieldsStart := pos + 2 + 2 + 3
		m, err := binary.Read[uint32](sr, fieldsStart, "esds max bitrate")
		if err != nil {
			continue
		}
		a, err := binary.Read[uint32](sr, fieldsStart+4, "esds avg bitrate")
		if err != nil {
			continue
		}
		if m == 0 && a == 0 {
			continue
		}
		return m, a, true
	}
	return 0, 0, false
}
