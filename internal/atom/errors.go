package atom

import "fmt"

// Kind categorizes what went wrong while reading, finding or rewriting an
// atom tree. Kept as a closed enum (rather than sentinel error values per
// failure) so callers can switch on Kind and still get a formatted message.
type Kind int

const (
	// KindIO wraps an underlying I/O error (short read, seek failure, etc).
	KindIO Kind = iota
	// KindParsing means the bytes at a position didn't decode as expected
	// (bad atom header, truncated box, inconsistent size field).
	KindParsing
	// KindAtomNotFound means a required atom was missing from the tree.
	KindAtomNotFound
	// KindUnknownVersion means a full-box version byte wasn't recognized.
	KindUnknownVersion
	// KindInvalidFiletype means the ftyp brand wasn't one this module reads.
	KindInvalidFiletype
	// KindNoTag means the ftyp box is missing or its major brand is not
	// valid UTF-8. A file without udta/meta/ilst tag data is not an error.
	KindNoTag
	// KindUnsupported means a structurally valid but unsupported feature
	// was encountered (fragmented MP4, an atom variant not modeled).
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParsing:
		return "parsing"
	case KindAtomNotFound:
		return "atom not found"
	case KindUnknownVersion:
		return "unknown version"
	case KindInvalidFiletype:
		return "invalid filetype"
	case KindNoTag:
		return "no tag"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is the unified error type returned by every atom-model operation.
// Fourcc, when non-zero, names the box that was being read or written when
// the error occurred. WithFourcc sets it only once, so as the error bubbles
// up through nested containers it keeps naming the innermost box that
// annotated it, and the message reads like "mdia: parsing: ...".
type Error struct {
	Kind    Kind
	Fourcc  Fourcc
	Detail  string
	Wrapped error
}

func (e *Error) Error() string {
	var fc string
	if e.Fourcc != (Fourcc{}) {
		fc = e.Fourcc.String() + ": "
	}
	msg := fc + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same Kind, so callers can
// do errors.Is(err, &atom.Error{Kind: atom.KindNoTag}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithFourcc returns a copy of e annotated with the fourcc of the box
// currently being processed, if e doesn't already name one. Used as errors
// bubble up through container Parse/Find/Write methods.
func (e *Error) WithFourcc(fc Fourcc) *Error {
	if e.Fourcc != (Fourcc{}) {
		return e
	}
	cp := *e
	cp.Fourcc = fc
	return &cp
}

// NewIOError wraps an underlying I/O error.
func NewIOError(what string, err error) *Error {
	return &Error{Kind: KindIO, Detail: what, Wrapped: err}
}

// NewParsingError reports a structural parsing failure.
func NewParsingError(detail string) *Error {
	return &Error{Kind: KindParsing, Detail: detail}
}

// NewAtomNotFoundError reports a missing required atom.
func NewAtomNotFoundError(fc Fourcc) *Error {
	return &Error{Kind: KindAtomNotFound, Fourcc: fc}
}

// NewUnknownVersionError reports an unrecognized full-box version.
func NewUnknownVersionError(version uint8) *Error {
	return &Error{Kind: KindUnknownVersion, Detail: fmt.Sprintf("version %d", version)}
}

// NewInvalidFiletypeError reports an unrecognized ftyp brand.
func NewInvalidFiletypeError(brand Fourcc) *Error {
	return &Error{Kind: KindInvalidFiletype, Detail: fmt.Sprintf("brand %q", brand.String())}
}

// NewNoTagError reports the absence of any tag data.
func NewNoTagError() *Error {
	return &Error{Kind: KindNoTag}
}

// NewUnsupportedError reports a structurally valid but unhandled feature.
func NewUnsupportedError(detail string) *Error {
	return &Error{Kind: KindUnsupported, Detail: detail}
}
