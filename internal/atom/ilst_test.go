package atom

import (
	"bytes"
	"testing"

	"github.com/go-m4a/m4atag/internal/binary"
)

func parseIlstFromBytes(t *testing.T, raw []byte) Ilst {
	t.Helper()
	sr := binary.NewSafeReader(bytes.NewReader(raw), int64(len(raw)), "test")
	h, err := ReadHead(sr, 0, int64(len(raw)))
	if err != nil {
		t.Fatalf("ReadHead() error = %v", err)
	}
	ilst, err := ParseIlst(sr, h)
	if err != nil {
		t.Fatalf("ParseIlst() error = %v", err)
	}
	return ilst
}

func TestParseIlst_MultipleItems(t *testing.T) {
	nam := itemBox(NewFourcc(0xA9, 'n', 'a', 'm'), dataBox(1, []byte("Title")))
	art1 := itemBox(NewFourcc(0xA9, 'A', 'R', 'T'), dataBox(1, []byte("Artist One")))
	art2 := itemBox(NewFourcc(0xA9, 'A', 'R', 'T'), dataBox(1, []byte("Artist Two")))
	raw := box(FourccIlst, append(append(append([]byte{}, nam...), art1...), art2...))

	ilst := parseIlstFromBytes(t, raw)
	if len(ilst.Items) != 3 {
		t.Fatalf("Items length = %d, want 3", len(ilst.Items))
	}

	artistIdent := Ident(NewFourcc(0xA9, 'A', 'R', 'T'))
	artists := ilst.Get(artistIdent)
	if len(artists) != 2 {
		t.Fatalf("Get(artist) length = %d, want 2 (duplicates must not be merged)", len(artists))
	}
}

func TestIlst_SetReplacesAllMatches(t *testing.T) {
	titleIdent := Ident(NewFourcc(0xA9, 'n', 'a', 'm'))
	ilst := Ilst{Items: []MetaItem{
		{Ident: titleIdent, Data: []Data{{TypeCode: 1, Value: Utf8("old")}}},
	}}
	ilst.Set(titleIdent, Data{TypeCode: 1, Value: Utf8("new")})

	got := ilst.Get(titleIdent)
	if len(got) != 1 {
		t.Fatalf("Get() length = %d, want 1", len(got))
	}
	if s, ok := got[0].Data[0].Value.(Utf8); !ok || string(s) != "new" {
		t.Errorf("Data[0].Value = %v, want Utf8(new)", got[0].Data[0].Value)
	}
}

func TestIlst_AddKeepsExistingItems(t *testing.T) {
	artistIdent := Ident(NewFourcc(0xA9, 'A', 'R', 'T'))
	var ilst Ilst
	ilst.Add(artistIdent, Data{TypeCode: 1, Value: Utf8("First")})
	ilst.Add(artistIdent, Data{TypeCode: 1, Value: Utf8("Second")})

	got := ilst.Get(artistIdent)
	if len(got) != 2 {
		t.Fatalf("Get() length = %d, want 2", len(got))
	}
}

func TestIlst_RemoveReportsWhetherAnythingWasRemoved(t *testing.T) {
	titleIdent := Ident(NewFourcc(0xA9, 'n', 'a', 'm'))
	ilst := Ilst{Items: []MetaItem{
		{Ident: titleIdent, Data: []Data{{TypeCode: 1, Value: Utf8("x")}}},
	}}
	if !ilst.Remove(titleIdent) {
		t.Error("Remove() on present ident should return true")
	}
	if ilst.Remove(titleIdent) {
		t.Error("Remove() on absent ident should return false")
	}
	if len(ilst.Items) != 0 {
		t.Errorf("Items length = %d, want 0", len(ilst.Items))
	}
}

func TestIlst_RoundTrip(t *testing.T) {
	titleIdent := Ident(NewFourcc(0xA9, 'n', 'a', 'm'))
	ilst := Ilst{Items: []MetaItem{
		{Ident: titleIdent, Data: []Data{{TypeCode: 1, Value: Utf8("Round Trip")}}},
	}}
	size, err := ilst.Size()
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}

	var out bytes.Buffer
	sw := binary.NewSafeWriter(&out)
	if err := ilst.Write(sw); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if int64(out.Len()) != size {
		t.Errorf("written %d bytes, Size() said %d", out.Len(), size)
	}

	parsed := parseIlstFromBytes(t, out.Bytes())
	got := parsed.Get(titleIdent)
	if len(got) != 1 {
		t.Fatalf("Get() length = %d, want 1", len(got))
	}
	if s, ok := got[0].Data[0].Value.(Utf8); !ok || string(s) != "Round Trip" {
		t.Errorf("value = %v, want Utf8(Round Trip)", got[0].Data[0].Value)
	}
}
