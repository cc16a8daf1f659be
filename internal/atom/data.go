package atom

import (
	"golang.org/x/image/bmp"
	"golang.org/x/text/encoding/unicode"

	"bytes"
	"fmt"

	"github.com/go-m4a/m4atag/internal/binary"
	"github.com/go-m4a/m4atag/internal/registry"
)

// localeIndicatorLen is the 4-byte field following the type code in a data
// atom's full-box header. Real-world files always leave it zero; this
// module reads it for round-trip fidelity and always writes zero back.
const localeIndicatorLen = 4

// Value is the decoded payload carried by a data atom. Each well-known
// type code decodes to exactly one Go type, and a type switch over Value
// recovers which one a given Data holds.
type Value interface {
	isValue()
}

// Utf8 is a UTF-8 text value (type code 1), used by every string-valued
// named field in this module's accessor schedule.
type Utf8 string

func (Utf8) isValue() {}

// Utf16 is a UTF-16BE text value (type code 2). Rare in the wild but
// produced by some non-Apple encoders.
type Utf16 string

func (Utf16) isValue() {}

// Jpeg is raw JPEG-encoded artwork (type code 13).
type Jpeg []byte

func (Jpeg) isValue() {}

// Png is raw PNG-encoded artwork (type code 14).
type Png []byte

func (Png) isValue() {}

// Bmp is raw BMP-encoded artwork (type code 27).
type Bmp []byte

func (Bmp) isValue() {}

// BeSigned is a big-endian signed-integer value (type code 21), used by
// every numeric and boolean-flag named field.
type BeSigned []byte

func (BeSigned) isValue() {}

// Reserved is an unrecognized type code's payload, preserved verbatim.
type Reserved struct {
	TypeCode uint32
	Raw      []byte
}

func (Reserved) isValue() {}

// Data is one "data" atom: a full-box carrying a well-known type code, a
// (normally zero) locale indicator, and the decoded payload.
type Data struct {
	TypeCode uint32
	Locale   uint32
	Value    Value
}

func init() {
	registry.Register(registry.TypeCode(registry.TypeUTF8), registry.Codec{
		Decode: func(b []byte) (any, error) { return Utf8(b), nil },
		Encode: func(v any) ([]byte, error) { return []byte(v.(Utf8)), nil },
	})
	registry.Register(registry.TypeCode(registry.TypeUTF16), registry.Codec{
		Decode: decodeUTF16BE,
		Encode: encodeUTF16BE,
	})
	registry.Register(registry.TypeCode(registry.TypeJPEG), registry.Codec{
		Decode: func(b []byte) (any, error) { return Jpeg(b), nil },
		Encode: func(v any) ([]byte, error) { return []byte(v.(Jpeg)), nil },
	})
	registry.Register(registry.TypeCode(registry.TypePNG), registry.Codec{
		Decode: func(b []byte) (any, error) { return Png(b), nil },
		Encode: func(v any) ([]byte, error) { return []byte(v.(Png)), nil },
	})
	registry.Register(registry.TypeCode(registry.TypeBMP), registry.Codec{
		Decode: decodeBMP,
		Encode: func(v any) ([]byte, error) { return []byte(v.(Bmp)), nil },
	})
	registry.Register(registry.TypeCode(registry.TypeBESigned), registry.Codec{
		Decode: func(b []byte) (any, error) { return BeSigned(b), nil },
		Encode: func(v any) ([]byte, error) { return []byte(v.(BeSigned)), nil },
	})
}

func decodeUTF16BE(b []byte) (any, error) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16be: %w", err)
	}
	return Utf16(out), nil
}

func encodeUTF16BE(v any) ([]byte, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(v.(Utf16)))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16be: %w", err)
	}
	return out, nil
}

// decodeBMP validates the payload is a well-formed BMP so malformed
// artwork fails at decode time rather than silently round-tripping.
func decodeBMP(b []byte) (any, error) {
	if _, err := bmp.Decode(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("decode bmp: %w", err)
	}
	return Bmp(b), nil
}

// ParseData decodes a "data" atom's body. body is everything after the
// 8-byte header (size+fourcc) has already been consumed.
func ParseData(body []byte) (Data, error) {
	if len(body) < 8 {
		return Data{}, NewParsingError("data atom shorter than full-box header").WithFourcc(FourccData)
	}
	typeCode := uint32(body[1])<<16 | uint32(body[2])<<8 | uint32(body[3])
	locale := uint32(body[4])<<24 | uint32(body[5])<<16 | uint32(body[6])<<8 | uint32(body[7])
	payload := body[8:]

	codec, ok := registry.Get(registry.TypeCode(typeCode))
	if !ok {
		return Data{TypeCode: typeCode, Locale: locale, Value: Reserved{TypeCode: typeCode, Raw: payload}}, nil
	}
	val, err := codec.Decode(payload)
	if err != nil {
		return Data{}, NewParsingError(err.Error()).WithFourcc(FourccData)
	}
	return Data{TypeCode: typeCode, Locale: locale, Value: val.(Value)}, nil
}

// Size returns the total serialized size of this data atom, header
// included.
func (d Data) Size() (int64, error) {
	payload, err := d.encodePayload()
	if err != nil {
		return 0, err
	}
	return int64(headerSize + 4 /* version+flags */ + localeIndicatorLen + len(payload)), nil
}

// Write serializes this data atom (header, full-box prefix, locale, and
// payload) to w.
func (d Data) Write(w *binary.SafeWriter) error {
	payload, err := d.encodePayload()
	if err != nil {
		return err
	}
	size, _ := d.Size()
	if err := w.WriteBytes(WriteHead(FourccData, uint32(size))); err != nil {
		return NewIOError("write data header", err)
	}
	fullbox := []byte{0, byte(d.TypeCode >> 16), byte(d.TypeCode >> 8), byte(d.TypeCode)}
	if err := w.WriteBytes(fullbox); err != nil {
		return NewIOError("write data type code", err)
	}
	locale := make([]byte, localeIndicatorLen)
	if err := w.WriteBytes(locale); err != nil {
		return NewIOError("write data locale", err)
	}
	if err := w.WriteBytes(payload); err != nil {
		return NewIOError("write data payload", err)
	}
	return nil
}

func (d Data) encodePayload() ([]byte, error) {
	if rv, ok := d.Value.(Reserved); ok {
		return rv.Raw, nil
	}
	codec, ok := registry.Get(registry.TypeCode(d.TypeCode))
	if !ok {
		return nil, NewParsingError(fmt.Sprintf("no codec for type code %d", d.TypeCode)).WithFourcc(FourccData)
	}
	return codec.Encode(d.Value)
}
