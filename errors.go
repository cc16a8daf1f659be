package m4atag

import (
	"github.com/go-m4a/m4atag/internal/atom"
)

// Error is the unified error type every parsing, finding, and rewriting
// operation returns. Re-exported from internal/atom so callers never need
// to import an internal package to use errors.Is/errors.As against it.
type Error = atom.Error

// Kind categorizes what an Error reports.
type Kind = atom.Kind

// Error kinds, re-exported for use with errors.Is(err, &m4atag.Error{Kind: m4atag.KindNoTag}).
const (
	KindIO               = atom.KindIO
	KindParsing          = atom.KindParsing
	KindAtomNotFound     = atom.KindAtomNotFound
	KindUnknownVersion   = atom.KindUnknownVersion
	KindInvalidFiletype  = atom.KindInvalidFiletype
	KindNoTag            = atom.KindNoTag
	KindUnsupported      = atom.KindUnsupported
)

// Warning describes a non-fatal issue encountered while opening a file:
// an optional atom that was missing or couldn't be parsed. Open still
// returns a usable File when warnings occur; only the conditions listed
// in the package doc under Error Handling are fatal.
type Warning struct {
	Stage   string
	Message string
}

func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}
