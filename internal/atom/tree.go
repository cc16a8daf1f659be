package atom

import (
	"io"

	"github.com/go-m4a/m4atag/internal/binary"
)

// ReadConfig names the concerns a read is for. All three default to true
// for a normal open. ReadTree skips the moov descent only when all three
// are false; if any is set, moov is parsed in full.
type ReadConfig struct {
	ReadAudioInfo bool
	ReadChapters  bool
	ReadTag       bool
}

// DefaultReadConfig reads everything this module models.
func DefaultReadConfig() ReadConfig {
	return ReadConfig{ReadAudioInfo: true, ReadChapters: true, ReadTag: true}
}

// Tree is the parsed top-level structure of an MPEG-4 file: its ftyp
// brand declaration, its movie box, and the bounds of its media-data box.
type Tree struct {
	Ftyp Ftyp
	Moov Moov
	Mdat Bounds
	// HasMdat reports whether a top-level mdat box was found. Its absence
	// isn't fatal to reading metadata, only to anything needing the
	// audio payload itself.
	HasMdat bool
}

// ReadTree walks the top-level boxes (ftyp, moov, mdat, and any unknown
// siblings like free/skip, which are simply skipped) and parses moov
// according to cfg.
func ReadTree(sr *binary.SafeReader, size int64, cfg ReadConfig) (Tree, error) {
	var t Tree
	var haveFtyp, haveMoov bool

	if size == 0 {
		return Tree{}, NewIOError("box size", io.ErrUnexpectedEOF)
	}

	pos := int64(0)
	for pos+headerSize <= size {
		h, err := ReadHead(sr, pos, size)
		if err != nil {
			return Tree{}, err
		}
		switch h.Fourcc {
		case FourccFtyp:
			ft, err := ParseFtyp(sr, h)
			if err != nil {
				return Tree{}, err
			}
			t.Ftyp = ft
			haveFtyp = true
		case FourccMoov:
			if !cfg.ReadAudioInfo && !cfg.ReadChapters && !cfg.ReadTag {
				// nothing under moov was requested; skip the descent
				// entirely but still record that it exists.
				haveMoov = true
				pos = h.End
				continue
			}
			mv, err := ParseMoov(sr, h)
			if err != nil {
				return Tree{}, err
			}
			t.Moov = mv
			haveMoov = true
		case FourccMdat:
			t.Mdat = Bounds{Fourcc: FourccMdat, Pos: h.Pos, End: h.End}
			t.HasMdat = true
		}
		pos = h.End
	}

	if !haveFtyp {
		return Tree{}, NewNoTagError()
	}
	if !haveMoov {
		return Tree{}, NewAtomNotFoundError(FourccMoov)
	}
	return t, nil
}
