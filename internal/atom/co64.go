package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Co64 is the 64-bit chunk-offset table, used instead of stco once any
// chunk offset exceeds 32 bits.
type Co64 struct {
	TablePos int64
	Offsets  []uint64
}

// ParseCo64 decodes a co64 box: full-box header, 4-byte entry count, then
// that many 64-bit absolute chunk offsets.
func ParseCo64(sr *binary.SafeReader, h Head) (Co64, error) {
	count, err := binary.Read[uint32](sr, h.BodyStart+4, "co64 entry count")
	if err != nil {
		return Co64{}, NewIOError("co64 entry count", err).WithFourcc(FourccCo64)
	}
	tablePos := h.BodyStart + 8
	offsets := make([]uint64, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := binary.Read[uint64](sr, tablePos+int64(i)*8, "co64 entry")
		if err != nil {
			return Co64{}, NewIOError("co64 entry", err).WithFourcc(FourccCo64)
		}
		offsets = append(offsets, v)
	}
	return Co64{TablePos: tablePos, Offsets: offsets}, nil
}
