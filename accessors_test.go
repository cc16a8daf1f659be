package m4atag

import "testing"

func TestTag_StringAccessorRoundTrip(t *testing.T) {
	tag := &Tag{}
	if _, ok := tag.Title(); ok {
		t.Error("Title() should report ok=false on an empty tag")
	}
	tag.SetTitle("My Book")
	got, ok := tag.Title()
	if !ok || got != "My Book" {
		t.Errorf("Title() = (%q, %v), want (%q, true)", got, ok, "My Book")
	}
	if !tag.Dirty() {
		t.Error("SetTitle should mark the tag dirty")
	}
}

func TestTag_MultiValuedAccessorPreservesOrder(t *testing.T) {
	tag := &Tag{}
	tag.SetArtist("First", "Second", "Third")
	got := tag.Artist()
	want := []string{"First", "Second", "Third"}
	if len(got) != len(want) {
		t.Fatalf("Artist() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Artist()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTag_SetArtistWithNoValuesRemoves(t *testing.T) {
	tag := &Tag{}
	tag.SetArtist("Someone")
	tag.SetArtist()
	if got := tag.Artist(); len(got) != 0 {
		t.Errorf("Artist() = %v, want empty after SetArtist() with no values", got)
	}
}

func TestTag_U16AccessorRoundTrip(t *testing.T) {
	tag := &Tag{}
	if _, ok := tag.BPM(); ok {
		t.Error("BPM() should report ok=false on an empty tag")
	}
	tag.SetBPM(128)
	got, ok := tag.BPM()
	if !ok || got != 128 {
		t.Errorf("BPM() = (%d, %v), want (128, true)", got, ok)
	}
}

func TestTag_FlagAccessorSetFalseRemovesItem(t *testing.T) {
	tag := &Tag{}
	tag.SetCompilation(true)
	if !tag.Compilation() {
		t.Fatal("expected Compilation()=true after SetCompilation(true)")
	}
	tag.SetCompilation(false)
	if tag.Compilation() {
		t.Error("expected Compilation()=false after SetCompilation(false)")
	}
	if len(tag.Get(identCompilation)) != 0 {
		t.Error("SetCompilation(false) should remove the item, not write a zero flag")
	}
}

func TestTag_UnsetFlagDefaultsFalse(t *testing.T) {
	tag := &Tag{}
	if tag.Podcast() {
		t.Error("Podcast() should default to false when absent")
	}
}
