package atom

import (
	"fmt"
	"io"

	"github.com/go-m4a/m4atag/internal/binary"
)

// containerFourccs lists every box this module knows has children, so Dump
// can decide whether to recurse or print a box as a leaf.
var containerFourccs = map[Fourcc]bool{
	FourccMoov: true,
	FourccTrak: true,
	FourccMdia: true,
	FourccMinf: true,
	FourccStbl: true,
	FourccStsd: true,
	FourccUdta: true,
	FourccMeta: true,
	FourccIlst: true,
}

// DumpTree writes an indented listing of every box in the file, depth
// first, in the style of a directory tree. meta's full-box quirk is
// accounted for so its hdlr/ilst children are reached even when the
// version+flags prefix is absent.
func DumpTree(w io.Writer, sr *binary.SafeReader, size int64) error {
	pos := int64(0)
	for pos+headerSize <= size {
		h, err := ReadHead(sr, pos, size)
		if err != nil {
			return err
		}
		if err := dumpBox(w, sr, h, 0); err != nil {
			return err
		}
		pos = h.End
	}
	return nil
}

func dumpBox(w io.Writer, sr *binary.SafeReader, h Head, depth int) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(w, "%s%s  size=%d  offset=%d\n", indent, h.Fourcc.String(), h.Size(), h.Pos)

	if !containerFourccs[h.Fourcc] {
		return nil
	}

	childrenStart := h.BodyStart
	if h.Fourcc == FourccMeta {
		hasPrefix, err := metaHasFullBoxPrefix(sr, h.BodyStart)
		if err != nil {
			return err
		}
		if hasPrefix {
			childrenStart += 4
		}
	} else if h.Fourcc == FourccIlst {
		return dumpIlst(w, sr, h, depth+1)
	} else if h.Fourcc == FourccStsd {
		childrenStart += 8 // full-box header + entry count
	}

	pos := childrenStart
	for pos+headerSize <= h.End {
		childHead, err := ReadHead(sr, pos, h.End)
		if err != nil {
			return err
		}
		if err := dumpBox(w, sr, childHead, depth+1); err != nil {
			return err
		}
		pos = childHead.End
	}
	return nil
}

// dumpIlst prints each item's identifier rather than recursing into
// "data"/"mean"/"name" boxes, since ilst is the one container whose
// children aren't named by a fixed fourcc set.
func dumpIlst(w io.Writer, sr *binary.SafeReader, h Head, depth int) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	body := make([]byte, h.BodyLen())
	if err := sr.ReadAt(body, h.BodyStart, "ilst dump body"); err != nil {
		return NewIOError("ilst dump body", err).WithFourcc(FourccIlst)
	}
	pos := 0
	for pos < len(body) {
		childBody, fc, next, err := readChildBox(body, pos)
		if err != nil {
			return err.WithFourcc(FourccIlst)
		}
		item, err := ParseMetaItem(fc, childBody)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%s\n", indent, item.Ident.String())
		pos = next
	}
	return nil
}
