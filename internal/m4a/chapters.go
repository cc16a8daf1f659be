package m4a

import (
	"time"

	"github.com/go-m4a/m4atag/internal/atom"
)

// Chapter is one entry from a Nero-style chapter list.
type Chapter struct {
	Index int
	Title string
	Start time.Duration
}

// chplTimeUnit is the 100-nanosecond tick Nero's chpl atom uses for
// chapter start times.
const chplTimeUnit = 100 * time.Nanosecond

// ReadChapters extracts chapters from the udta/chpl (Nero) atom, if
// present. QuickTime text-track chapters (tref/chap correlation into a
// second timed-text track) are not read: that requires walking a second
// track's own sample table to pull per-sample text, which is audio-track
// adjacent sample decoding this module's scope excludes.
//
// truncated reports whether the chpl body was malformed or cut off before
// every declared chapter could be decoded; callers surface this as a
// warning rather than failing the whole open over one optional atom.
func ReadChapters(tree atom.Tree) (chapters []Chapter, truncated bool) {
	if tree.Moov.Udta == nil || tree.Moov.Udta.Chpl == nil {
		return nil, false
	}
	return parseChpl(tree.Moov.Udta.Chpl.Payload)
}

// parseChpl decodes a chpl body: 4-byte version+flags, 1 reserved byte,
// 1-byte chapter count, then per chapter an 8-byte 100ns start time
// followed by a 1-byte title length and that many bytes of title text.
func parseChpl(body []byte) (chapters []Chapter, truncated bool) {
	if len(body) < 6 {
		return nil, true
	}
	count := int(body[5])
	pos := 6

	chapters = make([]Chapter, 0, count)
	for i := 0; i < count; i++ {
		if pos+9 > len(body) {
			return chapters, true
		}
		start100ns := beUint64(body[pos : pos+8])
		titleLen := int(body[pos+8])
		pos += 9
		if pos+titleLen > len(body) {
			return chapters, true
		}
		title := string(body[pos : pos+titleLen])
		pos += titleLen

		chapters = append(chapters, Chapter{
			Index: i,
			Title: title,
			Start: time.Duration(start100ns) * chplTimeUnit,
		})
	}
	return chapters, false
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}
