package m4atag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-m4a/m4atag/internal/atom"
)

// Save writes this file's tag back to disk, in place: only the ilst
// subtree, the ancestor box sizes above it, and any chunk offsets after
// it are touched. The write goes through a temp file in the same
// directory plus an atomic rename, so a crash mid-write never leaves a
// half-written file at Path.
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes this file's tag to outputPath, leaving the File's
// original Path unmodified.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.backupSuffix != "" {
		if err := copyFile(f.Path, f.Path+options.backupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".m4atag-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := copyFileInto(f.Path, tmp); err != nil {
		return fmt.Errorf("copy original into temp file: %w", err)
	}

	newSize, err := atom.WriteIlstTo(tmp, f.size, tmpPath, f.Tag().ilst())
	if err != nil {
		return fmt.Errorf("rewrite tag: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	var origModTime os.FileInfo
	if options.preserveModTime {
		origModTime, _ = os.Stat(f.Path)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		return fmt.Errorf("rename temp file into place: %w", err)
	}
	success = true

	if options.preserveModTime && origModTime != nil {
		_ = os.Chtimes(outputPath, origModTime.ModTime(), origModTime.ModTime())
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if outputPath == f.Path {
		f.size = newSize
		f.tag.dirty = false
		if err := f.reopen(outputPath); err != nil {
			return fmt.Errorf("reopen after save: %w", err)
		}
	}

	return nil
}

func (f *File) reopen(path string) error {
	if f.reader != nil {
		f.reader.Close()
	}
	nf, err := os.Open(path)
	if err != nil {
		return err
	}
	f.reader = nf
	return nil
}

func (f *File) validateWrittenFile(path string) error {
	check, err := Open(path, WithoutAudioInfo(), WithoutChapters())
	if err != nil {
		return err
	}
	defer check.Close()

	want, wantOk := f.Tag().Title()
	got, gotOk := check.Tag().Title()
	if wantOk != gotOk || want != got {
		return fmt.Errorf("title mismatch after save: got %q, want %q", got, want)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyFileInto(src string, dst *os.File) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(dst, in)
	return err
}
