package m4atag

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-m4a/m4atag/internal/atom"
)

func fbox(fc atom.Fourcc, body []byte) []byte {
	out := make([]byte, 0, 8+len(body))
	out = append(out, atom.WriteHead(fc, uint32(8+len(body)))...)
	out = append(out, body...)
	return out
}

func fbe32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func fourccToU32Test(fc atom.Fourcc) uint32 {
	b := fc.Bytes()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// buildTestFile assembles a minimal, valid M4A file with a title tag and
// writes it to a temp file, returning its path.
func buildTestFile(t *testing.T, title string) string {
	t.Helper()

	ftypBody := append(fbe32(fourccToU32Test(atom.NewFourcc('M', '4', 'A', ' '))), fbe32(0)...)
	ftyp := fbox(atom.FourccFtyp, ftypBody)

	mvhd := fbox(atom.FourccMvhd, make([]byte, 100))

	titleDataBody := append([]byte{0, 0, 0, 1}, []byte{0, 0, 0, 0}...)
	titleDataBody = append(titleDataBody, []byte(title)...)
	titleData := fbox(atom.FourccData, titleDataBody)
	item := fbox(atom.NewFourcc(0xA9, 'n', 'a', 'm'), titleData)
	ilst := fbox(atom.FourccIlst, item)
	metaHdlr := fbox(atom.FourccHdlr, make([]byte, 25))
	metaBody := append([]byte{0, 0, 0, 0}, metaHdlr...)
	metaBody = append(metaBody, ilst...)
	meta := fbox(atom.FourccMeta, metaBody)
	udta := fbox(atom.FourccUdta, meta)

	moovBody := append(mvhd, udta...)
	moov := fbox(atom.FourccMoov, moovBody)

	mdat := fbox(atom.FourccMdat, []byte("some audio payload bytes"))

	raw := append(append([]byte{}, ftyp...), moov...)
	raw = append(raw, mdat...)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.m4a")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestOpen_ReadsExistingTag(t *testing.T) {
	path := buildTestFile(t, "Original Title")
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	got, ok := file.Tag().Title()
	if !ok || got != "Original Title" {
		t.Errorf("Title() = (%q, %v), want (%q, true)", got, ok, "Original Title")
	}
	if file.HasAudio {
		t.Error("fixture has no audio track; HasAudio should be false")
	}
	if file.Filetype != "M4A " {
		t.Errorf("Filetype = %q, want %q", file.Filetype, "M4A ")
	}
}

func TestFile_SaveRoundTrip(t *testing.T) {
	path := buildTestFile(t, "Original Title")
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	file.Tag().SetTitle("Updated Title")
	file.Tag().SetAlbum("New Album")
	if err := file.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after save error = %v", err)
	}
	defer reopened.Close()

	title, ok := reopened.Tag().Title()
	if !ok || title != "Updated Title" {
		t.Errorf("Title() after save = (%q, %v), want (%q, true)", title, ok, "Updated Title")
	}
	album, ok := reopened.Tag().Album()
	if !ok || album != "New Album" {
		t.Errorf("Album() after save = (%q, %v), want (%q, true)", album, ok, "New Album")
	}
}

func TestFile_SaveWithBackup(t *testing.T) {
	path := buildTestFile(t, "Original Title")
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	file.Tag().SetTitle("Changed")
	if err := file.Save(WithBackup(".bak")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	backup, err := Open(path + ".bak")
	if err != nil {
		t.Fatalf("Open(backup) error = %v", err)
	}
	defer backup.Close()
	title, _ := backup.Tag().Title()
	if title != "Original Title" {
		t.Errorf("backup title = %q, want %q", title, "Original Title")
	}
}

func TestFile_SaveAsPreservesOriginal(t *testing.T) {
	path := buildTestFile(t, "Original Title")
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	file.Tag().SetTitle("Copy's Title")
	outPath := path + ".copy"
	if err := file.SaveAs(outPath); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}

	original, err := Open(path)
	if err != nil {
		t.Fatalf("Open(original) error = %v", err)
	}
	defer original.Close()
	if title, _ := original.Tag().Title(); title != "Original Title" {
		t.Errorf("original title changed to %q after SaveAs", title)
	}

	copyFile, err := Open(outPath)
	if err != nil {
		t.Fatalf("Open(copy) error = %v", err)
	}
	defer copyFile.Close()
	if title, _ := copyFile.Tag().Title(); title != "Copy's Title" {
		t.Errorf("copy title = %q, want %q", title, "Copy's Title")
	}
}

func TestFile_SaveWithValidation(t *testing.T) {
	path := buildTestFile(t, "Original Title")
	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	file.Tag().SetTitle("Validated Title")
	if err := file.Save(WithValidation()); err != nil {
		t.Fatalf("Save() with validation error = %v", err)
	}
}

func TestOpenMany_OpensAllFilesConcurrently(t *testing.T) {
	paths := []string{
		buildTestFile(t, "First"),
		buildTestFile(t, "Second"),
		buildTestFile(t, "Third"),
	}
	files, err := OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany() error = %v", err)
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	want := []string{"First", "Second", "Third"}
	for i, f := range files {
		got, _ := f.Tag().Title()
		if got != want[i] {
			t.Errorf("files[%d].Title() = %q, want %q", i, got, want[i])
		}
	}
}

func TestOpenMany_FailsOnMissingFile(t *testing.T) {
	paths := []string{
		buildTestFile(t, "Exists"),
		filepath.Join(t.TempDir(), "does-not-exist.m4a"),
	}
	_, err := OpenMany(context.Background(), paths...)
	if err == nil {
		t.Fatal("expected error when one path does not exist")
	}
}

func TestOpen_MissingTagProducesWarning(t *testing.T) {
	ftypBody := append(fbe32(fourccToU32Test(atom.NewFourcc('M', '4', 'A', ' '))), fbe32(0)...)
	ftyp := fbox(atom.FourccFtyp, ftypBody)
	moov := fbox(atom.FourccMoov, fbox(atom.FourccMvhd, make([]byte, 100)))
	mdat := fbox(atom.FourccMdat, []byte("payload"))
	raw := append(append([]byte{}, ftyp...), moov...)
	raw = append(raw, mdat...)

	dir := t.TempDir()
	path := filepath.Join(dir, "notag.m4a")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	if len(file.Warnings) != 1 {
		t.Fatalf("Warnings length = %d, want 1", len(file.Warnings))
	}
	if _, ok := file.Tag().Title(); ok {
		t.Error("expected no title on a tagless file")
	}
}

func TestOpen_StrictParsingFailsOnWarning(t *testing.T) {
	ftypBody := append(fbe32(fourccToU32Test(atom.NewFourcc('M', '4', 'A', ' '))), fbe32(0)...)
	ftyp := fbox(atom.FourccFtyp, ftypBody)
	moov := fbox(atom.FourccMoov, fbox(atom.FourccMvhd, make([]byte, 100)))
	raw := append([]byte{}, ftyp...)
	raw = append(raw, moov...)

	dir := t.TempDir()
	path := filepath.Join(dir, "notag.m4a")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	_, err := Open(path, WithStrictParsing())
	if err == nil {
		t.Fatal("expected an error with strict parsing enabled on a file with no tag")
	}
}
