package atom

import "encoding/binary"

// box builds a complete box (header + body) for test fixtures.
func box(fc Fourcc, body []byte) []byte {
	out := make([]byte, 0, headerSize+len(body))
	out = append(out, WriteHead(fc, uint32(headerSize+len(body)))...)
	out = append(out, body...)
	return out
}

// fullBoxBody prepends a zeroed 4-byte version+flags prefix.
func fullBoxBody(rest ...byte) []byte {
	return append([]byte{0, 0, 0, 0}, rest...)
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// dataBox builds a "data" box with the given well-known type code and
// payload, as found inside an ilst item.
func dataBox(typeCode uint32, payload []byte) []byte {
	body := make([]byte, 0, 8+len(payload))
	body = append(body, 0, byte(typeCode>>16), byte(typeCode>>8), byte(typeCode))
	body = append(body, 0, 0, 0, 0) // locale
	body = append(body, payload...)
	return box(FourccData, body)
}

// itemBox builds an ilst child item box wrapping one or more data boxes.
func itemBox(fc Fourcc, dataBoxes ...[]byte) []byte {
	var body []byte
	for _, d := range dataBoxes {
		body = append(body, d...)
	}
	return box(fc, body)
}

// freeformBox builds a "----" ilst item with mean/name/data children.
func freeformBox(mean, name string, dataBoxes ...[]byte) []byte {
	meanBox := box(FourccMean, fullBoxBody([]byte(mean)...))
	nameBox := box(FourccName, fullBoxBody([]byte(name)...))
	body := append(append([]byte{}, meanBox...), nameBox...)
	for _, d := range dataBoxes {
		body = append(body, d...)
	}
	return box(FourccFreeform, body)
}
