package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Ilst is the list of metadata items under meta. Duplicate identifiers
// (e.g. two "©ART" items) are kept as independent entries in order, never
// merged or deduplicated, matching how multi-valued tags round-trip.
type Ilst struct {
	Items []MetaItem
}

// ParseIlst decodes every child item under an ilst box.
func ParseIlst(sr *binary.SafeReader, h Head) (Ilst, error) {
	var ilst Ilst
	body := make([]byte, h.BodyLen())
	if err := sr.ReadAt(body, h.BodyStart, "ilst body"); err != nil {
		return Ilst{}, NewIOError("ilst body", err).WithFourcc(FourccIlst)
	}

	pos := 0
	for pos < len(body) {
		childBody, fc, next, err := readChildBox(body, pos)
		if err != nil {
			return Ilst{}, err.WithFourcc(FourccIlst)
		}
		item, err := ParseMetaItem(fc, childBody)
		if err != nil {
			return Ilst{}, err
		}
		ilst.Items = append(ilst.Items, item)
		pos = next
	}
	return ilst, nil
}

// Get returns every item matching ident, in file order.
func (i Ilst) Get(ident DataIdent) []MetaItem {
	var out []MetaItem
	for _, item := range i.Items {
		if item.Ident.Equal(ident) {
			out = append(out, item)
		}
	}
	return out
}

// Set replaces every item matching ident with a single new item carrying
// data. If no item matches, the new item is appended.
func (i *Ilst) Set(ident DataIdent, data ...Data) {
	i.Remove(ident)
	i.Items = append(i.Items, MetaItem{Ident: ident, Data: data})
}

// Add appends a new item carrying data without touching any existing
// items with the same identifier, for multi-valued fields like artist.
func (i *Ilst) Add(ident DataIdent, data ...Data) {
	i.Items = append(i.Items, MetaItem{Ident: ident, Data: data})
}

// Remove deletes every item matching ident, reporting whether anything was
// removed.
func (i *Ilst) Remove(ident DataIdent) bool {
	out := i.Items[:0]
	removed := false
	for _, item := range i.Items {
		if item.Ident.Equal(ident) {
			removed = true
			continue
		}
		out = append(out, item)
	}
	i.Items = out
	return removed
}

// Size returns the serialized size of the ilst box including its header.
func (i Ilst) Size() (int64, error) {
	total := int64(headerSize)
	for _, item := range i.Items {
		sz, err := item.Size()
		if err != nil {
			return 0, err
		}
		total += sz
	}
	return total, nil
}

// Write serializes the ilst box and every item it contains.
func (i Ilst) Write(w *binary.SafeWriter) error {
	size, err := i.Size()
	if err != nil {
		return err
	}
	if err := w.WriteBytes(WriteHead(FourccIlst, uint32(size))); err != nil {
		return NewIOError("write ilst header", err)
	}
	for _, item := range i.Items {
		if err := item.Write(w); err != nil {
			return err
		}
	}
	return nil
}
