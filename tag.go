package m4atag

import "github.com/go-m4a/m4atag/internal/atom"

// DataIdent names an ilst item: either a well-known fourcc, or a freeform
// "----" item identified by its mean/name pair.
type DataIdent = atom.DataIdent

// Ident builds a well-known fourcc identifier.
func Ident(b0, b1, b2, b3 byte) DataIdent {
	return atom.Ident(atom.NewFourcc(b0, b1, b2, b3))
}

// Freeform builds a "----" freeform identifier, e.g.
// Freeform("com.apple.iTunes", "ISRC").
func Freeform(mean, name string) DataIdent {
	return atom.Freeform(mean, name)
}

// MetaItem is one ilst entry: an identifier plus the data atoms it
// carries.
type MetaItem = atom.MetaItem

// Tag is the ilst item list for a file. Use the named accessors (Title,
// Artist, BPM, Compilation and the rest in accessors.go) for well-known
// fields, or Get/Set/Add/Remove directly for anything else, including
// freeform items.
type Tag struct {
	Items []MetaItem
	dirty bool
}

func newTag(il atom.Ilst) *Tag {
	return &Tag{Items: il.Items}
}

func (t *Tag) ilst() atom.Ilst {
	return atom.Ilst{Items: t.Items}
}

// Dirty reports whether this tag has unsaved changes.
func (t *Tag) Dirty() bool {
	return t.dirty
}

// Get returns every item matching ident, in file order.
func (t *Tag) Get(ident DataIdent) []MetaItem {
	return t.ilst().Get(ident)
}

// Set replaces every item matching ident with a single new item carrying
// data.
func (t *Tag) Set(ident DataIdent, data ...atom.Data) {
	il := t.ilst()
	il.Set(ident, data...)
	t.Items = il.Items
	t.dirty = true
}

// Add appends a new item carrying data without removing any existing item
// with the same identifier, for multi-valued fields like artist.
func (t *Tag) Add(ident DataIdent, data ...atom.Data) {
	il := t.ilst()
	il.Add(ident, data...)
	t.Items = il.Items
	t.dirty = true
}

// Remove deletes every item matching ident, reporting whether anything
// was removed.
func (t *Tag) Remove(ident DataIdent) bool {
	il := t.ilst()
	removed := il.Remove(ident)
	t.Items = il.Items
	if removed {
		t.dirty = true
	}
	return removed
}

func firstUtf8(items []MetaItem) (string, bool) {
	for _, item := range items {
		for _, d := range item.Data {
			if s, ok := d.Value.(atom.Utf8); ok {
				return string(s), true
			}
		}
	}
	return "", false
}

func allUtf8(items []MetaItem) []string {
	var out []string
	for _, item := range items {
		for _, d := range item.Data {
			if s, ok := d.Value.(atom.Utf8); ok {
				out = append(out, string(s))
			}
		}
	}
	return out
}

func (t *Tag) getString(ident DataIdent) (string, bool) {
	return firstUtf8(t.Get(ident))
}

func (t *Tag) setString(ident DataIdent, value string) {
	t.Set(ident, atom.Data{TypeCode: 1, Value: atom.Utf8(value)})
}

func (t *Tag) getStrings(ident DataIdent) []string {
	return allUtf8(t.Get(ident))
}

func (t *Tag) setStrings(ident DataIdent, values []string) {
	if len(values) == 0 {
		t.Remove(ident)
		return
	}
	t.Set(ident, atom.Data{TypeCode: 1, Value: atom.Utf8(values[0])})
	for _, v := range values[1:] {
		t.Add(ident, atom.Data{TypeCode: 1, Value: atom.Utf8(v)})
	}
}

func (t *Tag) getU16(ident DataIdent) (uint16, bool) {
	for _, item := range t.Get(ident) {
		for _, d := range item.Data {
			if b, ok := d.Value.(atom.BeSigned); ok && len(b) >= 2 {
				return uint16(b[0])<<8 | uint16(b[1]), true
			}
		}
	}
	return 0, false
}

func (t *Tag) setU16(ident DataIdent, value uint16) {
	t.Set(ident, atom.Data{TypeCode: 21, Value: atom.BeSigned{byte(value >> 8), byte(value)}})
}

func (t *Tag) getFlag(ident DataIdent) bool {
	for _, item := range t.Get(ident) {
		for _, d := range item.Data {
			if b, ok := d.Value.(atom.BeSigned); ok && len(b) >= 1 {
				return b[0] == 1
			}
		}
	}
	return false
}

func (t *Tag) setFlag(ident DataIdent, value bool) {
	if !value {
		t.Remove(ident)
		return
	}
	t.Set(ident, atom.Data{TypeCode: 21, Value: atom.BeSigned{1}})
}
