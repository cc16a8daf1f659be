package atom

import "github.com/go-m4a/m4atag/internal/binary"

// FindTreeBounds walks the top-level boxes recording only byte ranges,
// never materializing field values, so a write that only touches ilst
// doesn't pay for decoding mvhd/stsd/etc. It records the moov box, the
// udta/meta/ilst chain as far as it actually descends, every stco/co64
// table under moov, and the single top-level mdat box.
func FindTreeBounds(sr *binary.SafeReader, size int64) (TreeBounds, error) {
	var tb TreeBounds
	var haveMoov bool

	pos := int64(0)
	for pos+headerSize <= size {
		h, err := ReadHead(sr, pos, size)
		if err != nil {
			return TreeBounds{}, err
		}
		switch h.Fourcc {
		case FourccMoov:
			tb.Moov = Bounds{Fourcc: FourccMoov, Pos: h.Pos, End: h.End}
			haveMoov = true
			if err := findMoovDescendants(sr, h, &tb); err != nil {
				return TreeBounds{}, err
			}
		case FourccMdat:
			tb.Mdat = Bounds{Fourcc: FourccMdat, Pos: h.Pos, End: h.End}
			tb.HasMdat = true
		}
		pos = h.End
	}

	if !haveMoov {
		return TreeBounds{}, NewAtomNotFoundError(FourccMoov)
	}
	return tb, nil
}

func findMoovDescendants(sr *binary.SafeReader, moovHead Head, tb *TreeBounds) error {
	pos := moovHead.BodyStart
	for pos+headerSize <= moovHead.End {
		h, err := ReadHead(sr, pos, moovHead.End)
		if err != nil {
			return err
		}
		switch h.Fourcc {
		case FourccUdta:
			tb.Udta = Bounds{Fourcc: FourccUdta, Pos: h.Pos, End: h.End}
			tb.HasUdta = true
			metaBounds, hasMeta, err := FindMeta(sr, h)
			if err != nil {
				return err
			}
			if hasMeta {
				tb.HasMeta = true
				metaHead, err := ReadHead(sr, metaBounds.Pos, moovHead.End)
				if err != nil {
					return err
				}
				tb.Meta = metaBounds
				_, ilstBounds, _, hasIlst, err := FindMetaChildren(sr, metaHead)
				if err != nil {
					return err
				}
				if hasIlst {
					tb.HasIlst = true
					tb.Ilst = ilstBounds
				}
			}
		case FourccTrak:
			if err := findTrakChunkTables(sr, h, tb); err != nil {
				return err
			}
		}
		pos = h.End
	}
	return nil
}

func findTrakChunkTables(sr *binary.SafeReader, trakHead Head, tb *TreeBounds) error {
	pos := trakHead.BodyStart
	for pos+headerSize <= trakHead.End {
		h, err := ReadHead(sr, pos, trakHead.End)
		if err != nil {
			return err
		}
		if h.Fourcc == FourccMdia {
			if err := findMdiaChunkTables(sr, h, tb); err != nil {
				return err
			}
		}
		pos = h.End
	}
	return nil
}

func findMdiaChunkTables(sr *binary.SafeReader, mdiaHead Head, tb *TreeBounds) error {
	pos := mdiaHead.BodyStart
	for pos+headerSize <= mdiaHead.End {
		h, err := ReadHead(sr, pos, mdiaHead.End)
		if err != nil {
			return err
		}
		if h.Fourcc == FourccMinf {
			stblHead, ok, err := FindStbl(sr, h)
			if err != nil {
				return err
			}
			if ok {
				stco, co64, err := FindChunkOffsetTables(sr, stblHead)
				if err != nil {
					return err
				}
				tb.StcoTables = append(tb.StcoTables, stco...)
				tb.Co64Tables = append(tb.Co64Tables, co64...)
			}
		}
		pos = h.End
	}
	return nil
}
