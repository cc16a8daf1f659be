package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Meta is the metadata box: a full-box carrying a handler and an item
// list. Meta is modeled loosely — Hdlr is kept raw and Ilst is the only
// child this module materializes values for — because hdlr's bytes are
// never inspected by any named accessor.
type Meta struct {
	HasVersionFlags bool // false for writers that omit the full-box prefix
	Hdlr            *Hdlr
	Ilst            *Ilst
}

// metaHasFullBoxPrefix implements the meta quirk: some encoders write meta
// as a plain box whose body starts directly with its first child (hdlr),
// omitting the 4-byte version+flags full-box prefix every other full-box
// atom in this tree carries. Peek the 4 bytes where the first child's
// fourcc would sit if the prefix were absent (bodyStart+4); if they spell
// a fourcc meta is known to carry as its first child, the prefix is absent.
func metaHasFullBoxPrefix(sr *binary.SafeReader, bodyStart int64) (bool, error) {
	peek := make([]byte, 4)
	if err := sr.ReadAt(peek, bodyStart+4, "meta quirk peek"); err != nil {
		return true, nil // too short to disambiguate; assume standard form
	}
	fc := FourccFromBytes(peek)
	if fc == FourccHdlr {
		return false, nil
	}
	return true, nil
}

// ParseMeta decodes a meta box, descending into hdlr and ilst children.
func ParseMeta(sr *binary.SafeReader, h Head) (Meta, error) {
	hasPrefix, err := metaHasFullBoxPrefix(sr, h.BodyStart)
	if err != nil {
		return Meta{}, err
	}

	childrenStart := h.BodyStart
	if hasPrefix {
		childrenStart += 4
	}

	m := Meta{HasVersionFlags: hasPrefix}

	pos := childrenStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return Meta{}, err
		}
		switch childHead.Fourcc {
		case FourccHdlr:
			hd, err := ParseHdlr(sr, childHead)
			if err != nil {
				return Meta{}, err
			}
			m.Hdlr = &hd
		case FourccIlst:
			il, err := ParseIlst(sr, childHead)
			if err != nil {
				return Meta{}, err
			}
			m.Ilst = &il
		}
		pos = childHead.End
	}
	return m, nil
}

// FindMetaChildren locates the byte ranges of hdlr and ilst under meta
// without materializing their contents, for use by the bounds finder.
func FindMetaChildren(sr *binary.SafeReader, h Head) (hdlr, ilst Bounds, hasHdlr, hasIlst bool, err error) {
	hasPrefix, perr := metaHasFullBoxPrefix(sr, h.BodyStart)
	if perr != nil {
		return Bounds{}, Bounds{}, false, false, perr
	}
	pos := h.BodyStart
	if hasPrefix {
		pos += 4
	}
	for pos+headerSize <= h.End {
		childHead, e := ReadHead(sr, pos, h.End)
		if e != nil {
			return Bounds{}, Bounds{}, false, false, e
		}
		switch childHead.Fourcc {
		case FourccHdlr:
			hdlr = Bounds{Fourcc: FourccHdlr, Pos: childHead.Pos, End: childHead.End}
			hasHdlr = true
		case FourccIlst:
			ilst = Bounds{Fourcc: FourccIlst, Pos: childHead.Pos, End: childHead.End}
			hasIlst = true
		}
		pos = childHead.End
	}
	return hdlr, ilst, hasHdlr, hasIlst, nil
}

// Size returns the serialized size of the meta box including its header.
func (m Meta) Size() (int64, error) {
	total := int64(headerSize + 4) // standard form always writes the prefix
	if m.Hdlr != nil {
		total += m.Hdlr.Size()
	}
	if m.Ilst != nil {
		sz, err := m.Ilst.Size()
		if err != nil {
			return 0, err
		}
		total += sz
	}
	return total, nil
}

// Write serializes meta in standard (version+flags present) form.
func (m Meta) Write(w *binary.SafeWriter) error {
	size, err := m.Size()
	if err != nil {
		return err
	}
	if err := w.WriteBytes(WriteHead(FourccMeta, uint32(size))); err != nil {
		return NewIOError("write meta header", err)
	}
	if err := w.WriteBytes([]byte{0, 0, 0, 0}); err != nil {
		return NewIOError("write meta full-box prefix", err)
	}
	if m.Hdlr != nil {
		if err := m.Hdlr.Write(w); err != nil {
			return err
		}
	}
	if m.Ilst != nil {
		if err := m.Ilst.Write(w); err != nil {
			return err
		}
	}
	return nil
}
