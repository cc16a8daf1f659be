package m4a

import (
	"github.com/go-m4a/m4atag/internal/atom"
	"github.com/go-m4a/m4atag/internal/binary"
)

// ReadConfig gates which optional parts of a read are performed. This
// mirrors atom.ReadConfig at the tree-parsing level and additionally
// controls whether this package's own chapter reader runs.
type ReadConfig struct {
	ReadAudioInfo bool
	ReadChapters  bool
	ReadTag       bool
}

// DefaultReadConfig reads everything.
func DefaultReadConfig() ReadConfig {
	return ReadConfig{ReadAudioInfo: true, ReadChapters: true, ReadTag: true}
}

// Result bundles everything a file open produces.
type Result struct {
	Tree              atom.Tree
	Audio             AudioInfo
	HasAudio          bool
	Chapters          []Chapter
	ChaptersTruncated bool
	Ilst              atom.Ilst
	HasTag            bool
}

// Read parses the tree and, per cfg, fills in audio info, chapters, and
// tag data.
func Read(sr *binary.SafeReader, size int64, cfg ReadConfig) (Result, error) {
	tree, err := atom.ReadTree(sr, size, atom.ReadConfig{
		ReadAudioInfo: cfg.ReadAudioInfo,
		ReadChapters:  cfg.ReadChapters,
		ReadTag:       cfg.ReadTag,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Tree: tree}

	if cfg.ReadAudioInfo {
		info, ok := ReadAudioInfo(tree)
		res.Audio, res.HasAudio = info, ok
	}
	if cfg.ReadChapters {
		res.Chapters, res.ChaptersTruncated = ReadChapters(tree)
	}
	if cfg.ReadTag {
		ilst, ok := tree.Moov.Tag()
		res.Ilst, res.HasTag = ilst, ok
	}

	return res, nil
}
