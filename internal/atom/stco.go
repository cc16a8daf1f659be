package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Stco is the 32-bit chunk-offset table. TablePos is the file offset of
// the first entry, so the rewriter can patch every entry in place without
// re-finding the box.
type Stco struct {
	TablePos int64
	Offsets  []uint32
}

// ParseStco decodes an stco box: full-box header, 4-byte entry count,
// then that many 32-bit absolute chunk offsets.
func ParseStco(sr *binary.SafeReader, h Head) (Stco, error) {
	count, err := binary.Read[uint32](sr, h.BodyStart+4, "stco entry count")
	if err != nil {
		return Stco{}, NewIOError("stco entry count", err).WithFourcc(FourccStco)
	}
	tablePos := h.BodyStart + 8
	offsets := make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := binary.Read[uint32](sr, tablePos+int64(i)*4, "stco entry")
		if err != nil {
			return Stco{}, NewIOError("stco entry", err).WithFourcc(FourccStco)
		}
		offsets = append(offsets, v)
	}
	return Stco{TablePos: tablePos, Offsets: offsets}, nil
}
