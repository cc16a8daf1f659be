package atom

// Bounds names a byte range occupied by some atom, without materializing
// its contents. The rewriter and bounds finder work in terms of Bounds so
// that locating moov/udta/meta/ilst/mdat never requires decoding values
// that won't be touched.
type Bounds struct {
	Fourcc Fourcc
	Pos    int64 // offset of the box's size field
	End    int64 // offset one past the box
}

// Size returns the total byte length of the bounded box.
func (b Bounds) Size() int64 {
	return b.End - b.Pos
}

// BodyStart is recomputed rather than stored on Bounds directly, since a
// box's header length (8 vs 16 bytes) is only known after re-reading it;
// Find implementations that need it return a Head instead of a bare Bounds.

// TreeBounds records the byte ranges the rewriter cares about: the moov
// subtree down through its udta/meta/ilst descendants (however much of
// that chain exists), and the single top-level mdat box.
type TreeBounds struct {
	Moov Bounds

	// HasUdta/HasMeta/HasIlst report how far the udta->meta->ilst chain
	// descends in the file as found; missing links must be materialized
	// fresh by the rewriter.
	HasUdta bool
	Udta    Bounds
	HasMeta bool
	Meta    Bounds
	HasIlst bool
	Ilst    Bounds

	HasMdat bool
	Mdat    Bounds

	// StcoTables and Co64Tables record every sample-table chunk-offset box
	// found under moov, so the rewriter can patch every track's offsets.
	StcoTables []Bounds
	Co64Tables []Bounds
}
