package m4atag

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-m4a/m4atag/internal/atom"
	"github.com/go-m4a/m4atag/internal/binary"
	"github.com/go-m4a/m4atag/internal/m4a"
)

// File represents an opened MPEG-4 file: its audio technical info, its
// chapter list, and its tag, all read from the ftyp/moov/mdat tree.
type File struct {
	Path     string
	Filetype string
	Audio    AudioInfo
	HasAudio bool
	Chapters []Chapter
	Warnings []Warning

	reader *os.File
	size   int64
	tree   atom.Tree
	tag    *Tag
}

// AudioInfo is the technical info reported about a file's audio track.
type AudioInfo = m4a.AudioInfo

// Chapter is one entry from a Nero-style chapter list.
type Chapter = m4a.Chapter

// Open opens path and reads its metadata.
//
// Open performs no audio decoding; only the parts of the box tree named
// by the given Options are descended into. If an optional part is
// missing or malformed, Open returns a usable File with a Warning rather
// than an error — see the package doc's Error Handling section for which
// conditions are fatal instead.
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}
	size := stat.Size()

	file, err := openReader(f, size, path, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	file.reader = f
	return file, nil
}

func openReader(r *os.File, size int64, path string, options *openOptions) (*File, error) {
	sr := binary.NewSafeReader(r, size, path)

	result, err := m4a.Read(sr, size, options.readConfig())
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:     path,
		Filetype: result.Tree.Ftyp.MajorBrand.String(),
		size:     size,
		tree:     result.Tree,
		Audio:    result.Audio,
		HasAudio: result.HasAudio,
		Chapters: result.Chapters,
	}

	if result.ChaptersTruncated {
		file.addWarning("chapters", "chpl chapter list was truncated or malformed")
	}

	if options.readTag {
		if result.HasTag {
			file.tag = newTag(result.Ilst)
		} else {
			file.addWarning("tag", "no tag data found")
			file.tag = newTag(atom.Ilst{})
		}
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0].Message)
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

func (f *File) addWarning(stage, message string) {
	f.Warnings = append(f.Warnings, Warning{Stage: stage, Message: message})
}

// Tag returns this file's tag, materializing an empty one if the file had
// none. Edits made through it take effect on the next Save.
func (f *File) Tag() *Tag {
	if f.tag == nil {
		f.tag = newTag(atom.Ilst{})
	}
	return f.tag
}

// Close releases the underlying file handle. After Close, the File must
// not be used.
func (f *File) Close() error {
	if f.reader == nil {
		return nil
	}
	return f.reader.Close()
}

// OpenContext opens path with context support for cancellation.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently, bounded by runtime.NumCPU().
// Results are returned in the same order as paths. If any file fails to
// open, every successfully opened file is closed and an error is
// returned.
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
