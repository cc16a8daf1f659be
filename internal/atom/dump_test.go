package atom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-m4a/m4atag/internal/binary"
)

func TestDumpTree_ListsBoxesAndIlstItemsByIdentifier(t *testing.T) {
	ftypBody := append(be32(fourccToU32(NewFourcc('M', '4', 'A', ' '))), be32(0)...)
	ftyp := box(FourccFtyp, ftypBody)

	item := itemBox(NewFourcc(0xA9, 'n', 'a', 'm'), dataBox(1, []byte("Dump Me")))
	ilst := box(FourccIlst, item)
	metaHdlrBytes := func() []byte {
		h := NewMetaHdlr()
		out := WriteHead(h.Fourcc, uint32(h.Size()))
		return append(out, h.Payload...)
	}()
	meta := box(FourccMeta, fullBoxBody(append(metaHdlrBytes, ilst...)...))
	udta := box(FourccUdta, meta)
	moov := box(FourccMoov, udta)

	raw := append(append([]byte{}, ftyp...), moov...)

	var out bytes.Buffer
	sr := binary.NewSafeReader(bytes.NewReader(raw), int64(len(raw)), "test")
	if err := DumpTree(&out, sr, int64(len(raw))); err != nil {
		t.Fatalf("DumpTree() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{"ftyp", "moov", "udta", "meta", "ilst", "©nam"} {
		if !strings.Contains(text, want) {
			t.Errorf("dump output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "data") {
		t.Error("dump should print ilst item identifiers, not descend into data boxes")
	}
}
