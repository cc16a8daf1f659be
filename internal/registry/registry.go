// Package registry dispatches well-known iTunes data-type codes to the
// codec that knows how to decode and encode that type's payload.
//
// The atom package registers one Codec per type code during init(). This
// is the module's only registry; boxes themselves are dispatched by
// fourcc in switch statements.
package registry

// TypeCode is the 32-bit well-known data type carried by a data atom,
// per Apple's QuickTime File Format "Well-known data types" table.
type TypeCode uint32

// Recognized type codes.
const (
	TypeReserved TypeCode = 0
	TypeUTF8     TypeCode = 1
	TypeUTF16    TypeCode = 2
	TypeJPEG     TypeCode = 13
	TypePNG      TypeCode = 14
	TypeBESigned TypeCode = 21
	TypeBMP      TypeCode = 27
)

// Codec decodes and encodes the payload of a data atom for one type code.
// Decode/Encode operate purely on bytes so this package never needs to
// import the atom package that registers codecs into it.
type Codec struct {
	Decode func([]byte) (any, error)
	Encode func(any) ([]byte, error)
}

var codecs = make(map[TypeCode]Codec)

// Register installs the codec for a type code. Called from init() in the
// atom package for each well-known type.
func Register(code TypeCode, c Codec) {
	codecs[code] = c
}

// Get returns the codec registered for a type code, if any.
func Get(code TypeCode) (Codec, bool) {
	c, ok := codecs[code]
	return c, ok
}
