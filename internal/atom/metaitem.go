package atom

import (
	"github.com/go-m4a/m4atag/internal/binary"
)

// MetaItem is one ilst child: an identifier plus the one-or-more "data"
// atoms it carries. Apple permits multiple data atoms under one item
// (e.g. multiple artists via repeated "©ART" data children); this module
// keeps all of them rather than only the first.
type MetaItem struct {
	Ident DataIdent
	Data  []Data
}

// ParseMetaItem decodes one ilst child box. body is everything after the
// item's own 8-byte header. For a well-known fourcc item, body is a
// sequence of "data" boxes. For a freeform "----" item, body is a
// sequence of mean/name/data boxes.
func ParseMetaItem(fc Fourcc, body []byte) (MetaItem, error) {
	if fc == FourccFreeform {
		return parseFreeformItem(body)
	}
	item := MetaItem{Ident: Ident(fc)}
	pos := 0
	for pos < len(body) {
		childBody, childFc, next, err := readChildBox(body, pos)
		if err != nil {
			return MetaItem{}, err.WithFourcc(fc)
		}
		if childFc == FourccData {
			d, err := ParseData(childBody)
			if err != nil {
				return MetaItem{}, err
			}
			item.Data = append(item.Data, d)
		}
		pos = next
	}
	return item, nil
}

func parseFreeformItem(body []byte) (MetaItem, error) {
	item := MetaItem{Ident: DataIdent{IsFreeform: true}}
	pos := 0
	for pos < len(body) {
		childBody, childFc, next, err := readChildBox(body, pos)
		if err != nil {
			return MetaItem{}, err.WithFourcc(FourccFreeform)
		}
		switch childFc {
		case FourccMean:
			item.Ident.Mean = string(fullBoxPayload(childBody))
		case FourccName:
			item.Ident.Name = string(fullBoxPayload(childBody))
		case FourccData:
			d, err := ParseData(childBody)
			if err != nil {
				return MetaItem{}, err
			}
			item.Data = append(item.Data, d)
		}
		pos = next
	}
	return item, nil
}

// fullBoxPayload strips the 4-byte version+flags prefix shared by mean and
// name boxes, returning just the namespace/field-name string bytes.
func fullBoxPayload(fullBody []byte) []byte {
	if len(fullBody) < 4 {
		return nil
	}
	return fullBody[4:]
}

// readChildBox decodes the box at body[pos:], returning its header-stripped
// body, its fourcc, and the offset of the next sibling.
func readChildBox(body []byte, pos int) (childBody []byte, fc Fourcc, next int, errOut *Error) {
	if pos+headerSize > len(body) {
		return nil, Fourcc{}, 0, NewParsingError("truncated child box header")
	}
	size := uint32(body[pos])<<24 | uint32(body[pos+1])<<16 | uint32(body[pos+2])<<8 | uint32(body[pos+3])
	fc = FourccFromBytes(body[pos+4 : pos+8])
	if size < headerSize || pos+int(size) > len(body) {
		return nil, fc, 0, NewParsingError("child box size out of range").WithFourcc(fc)
	}
	return body[pos+headerSize : pos+int(size)], fc, pos + int(size), nil
}

// Size returns the serialized size of this item including its own header.
func (m MetaItem) Size() (int64, error) {
	total := int64(headerSize)
	if m.Ident.IsFreeform {
		total += int64(headerSize+4) + int64(len(m.Ident.Mean))
		total += int64(headerSize+4) + int64(len(m.Ident.Name))
	}
	for _, d := range m.Data {
		sz, err := d.Size()
		if err != nil {
			return 0, err
		}
		total += sz
	}
	return total, nil
}

// Write serializes this item, including the outer identifier box header.
func (m MetaItem) Write(w *binary.SafeWriter) error {
	size, err := m.Size()
	if err != nil {
		return err
	}
	fc := m.Ident.Fourcc
	if m.Ident.IsFreeform {
		fc = FourccFreeform
	}
	if err := w.WriteBytes(WriteHead(fc, uint32(size))); err != nil {
		return NewIOError("write item header", err)
	}
	if m.Ident.IsFreeform {
		if err := writeFullBoxString(w, FourccMean, m.Ident.Mean); err != nil {
			return err
		}
		if err := writeFullBoxString(w, FourccName, m.Ident.Name); err != nil {
			return err
		}
	}
	for _, d := range m.Data {
		if err := d.Write(w); err != nil {
			return err
		}
	}
	return nil
}

func writeFullBoxString(w *binary.SafeWriter, fc Fourcc, s string) error {
	size := headerSize + 4 + len(s)
	if err := w.WriteBytes(WriteHead(fc, uint32(size))); err != nil {
		return NewIOError("write "+fc.String()+" header", err)
	}
	if err := w.WriteBytes([]byte{0, 0, 0, 0}); err != nil {
		return NewIOError("write "+fc.String()+" full-box prefix", err)
	}
	if err := w.WriteString(s); err != nil {
		return NewIOError("write "+fc.String()+" payload", err)
	}
	return nil
}
