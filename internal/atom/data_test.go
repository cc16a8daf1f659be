package atom

import (
	"bytes"
	"testing"

	"github.com/go-m4a/m4atag/internal/binary"
)

func TestParseData_Utf8(t *testing.T) {
	body := append([]byte{0, 0, 0, 1, 0, 0, 0, 0}, []byte("hello")...)
	d, err := ParseData(body)
	if err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	s, ok := d.Value.(Utf8)
	if !ok {
		t.Fatalf("Value type = %T, want Utf8", d.Value)
	}
	if string(s) != "hello" {
		t.Errorf("value = %q, want %q", s, "hello")
	}
}

func TestParseData_BeSigned(t *testing.T) {
	body := []byte{0, 0, 0, 21, 0, 0, 0, 0, 0x00, 0x7B}
	d, err := ParseData(body)
	if err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	b, ok := d.Value.(BeSigned)
	if !ok {
		t.Fatalf("Value type = %T, want BeSigned", d.Value)
	}
	if len(b) != 2 || b[0] != 0 || b[1] != 0x7B {
		t.Errorf("value = %v, want [0 123]", b)
	}
}

func TestParseData_ReservedTypeCode(t *testing.T) {
	body := []byte{0, 0, 0, 99, 0, 0, 0, 0, 1, 2, 3}
	d, err := ParseData(body)
	if err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	rv, ok := d.Value.(Reserved)
	if !ok {
		t.Fatalf("Value type = %T, want Reserved", d.Value)
	}
	if rv.TypeCode != 99 {
		t.Errorf("TypeCode = %d, want 99", rv.TypeCode)
	}
}

func TestData_RoundTrip(t *testing.T) {
	d := Data{TypeCode: 1, Value: Utf8("round trip")}
	size, err := d.Size()
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}

	var out bytes.Buffer
	sw := binary.NewSafeWriter(&out)
	if err := d.Write(sw); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	buf := out.Bytes()
	if int64(len(buf)) != size {
		t.Errorf("written %d bytes, Size() said %d", len(buf), size)
	}

	sr := binary.NewSafeReader(bytes.NewReader(buf), int64(len(buf)), "test")
	h, err := ReadHead(sr, 0, int64(len(buf)))
	if err != nil {
		t.Fatalf("ReadHead() error = %v", err)
	}
	parsed, err := ParseData(buf[headerSize:h.End])
	if err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	if parsed.Value != Utf8("round trip") {
		t.Errorf("round trip value = %v, want %q", parsed.Value, "round trip")
	}
}
