package atom

import "github.com/go-m4a/m4atag/internal/binary"

// Hdlr is the handler-reference box. The only variant this module ever
// writes is meta's metadata handler, so Parse keeps the box as a RawBox
// for round-tripping and this file supplies just the canonical bytes
// needed to materialize a fresh one when udta/meta/hdlr doesn't exist yet.
type Hdlr = RawBox

// metaHdlrHandlerType is the handler type iTunes/QuickTime use for a meta
// box's required hdlr child: "mdir" (metadata-is-here).
var metaHdlrHandlerType = NewFourcc('m', 'd', 'i', 'r')

// metaHdlrManufacturer is Apple's component manufacturer code, carried in
// the slot ISO/IEC 14496-12 marks reserved; QuickTime-derived writers
// (including Apple's own) populate it rather than zeroing it, and readers
// that check it at all expect "appl" here.
var metaHdlrManufacturer = NewFourcc('a', 'p', 'p', 'l')

// NewMetaHdlr builds the canonical 33-byte hdlr box materialized under a
// freshly created meta atom: 8-byte box header, 4-byte full-box
// version+flags, 4-byte pre_defined/component type, 4-byte handler type
// "mdir", 4-byte manufacturer "appl", two reserved 4-byte fields, and a
// single zero byte terminating an empty component name.
func NewMetaHdlr() RawBox {
	payload := make([]byte, 0, 25)
	payload = append(payload, 0, 0, 0, 0) // version + flags
	payload = append(payload, 0, 0, 0, 0) // pre_defined / component type
	payload = append(payload, metaHdlrHandlerType.Bytes()...)
	payload = append(payload, metaHdlrManufacturer.Bytes()...)
	payload = append(payload, 0, 0, 0, 0) // reserved flags
	payload = append(payload, 0, 0, 0, 0) // reserved flags mask
	payload = append(payload, 0)          // empty pascal/c-string name
	return RawBox{Fourcc: FourccHdlr, Payload: payload}
}

// ParseHdlr reads a hdlr box verbatim.
func ParseHdlr(sr *binary.SafeReader, h Head) (Hdlr, error) {
	return ParseRawBox(sr, h)
}
