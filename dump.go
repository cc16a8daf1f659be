package m4atag

import (
	"fmt"
	"io"
	"os"

	"github.com/go-m4a/m4atag/internal/atom"
	"github.com/go-m4a/m4atag/internal/binary"
)

// Dump writes an indented listing of every box in the file at path to w,
// for debugging and for the dump subcommand of cmd/m4atag.
func Dump(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	sr := binary.NewSafeReader(f, stat.Size(), path)
	return atom.DumpTree(w, sr, stat.Size())
}
