// Package atom implements the MPEG-4/ISO-BMFF box model: parsing, bounds
// finding, and in-place rewriting of the ftyp/moov/mdat atom tree used by
// M4A/M4B/M4P/M4V files.
//
// The tree below the top level looks like:
//
//	ftyp
//	moov
//	  mvhd
//	  trak[]
//	    tkhd
//	    tref
//	    mdia
//	      mdhd
//	      hdlr
//	      minf
//	        stbl
//	          stsd
//	            mp4a
//	          stco / co64
//	  udta
//	    meta
//	      hdlr
//	      ilst
//	        <ident>
//	          data
//	mdat
//
// Every recognized box has a Parse function that materializes its values.
// The boxes the rewriter serializes (udta, meta, ilst, its items and their
// data atoms) also have Size (serialized length) and Write (serialize);
// the containers above them (moov, trak, mdia, minf, stbl) are parse-only.
// The Find functions (FindTreeBounds and its helpers) record box positions
// for the rewriter without decoding their contents.
package atom

// Fourcc is a four-character-code atom type, compared by raw bytes rather
// than as a string because iTunes atom names like "©nam" carry 0xA9, a
// byte that is not valid UTF-8 on its own.
type Fourcc [4]byte

// NewFourcc builds a Fourcc from four raw bytes.
func NewFourcc(b0, b1, b2, b3 byte) Fourcc {
	return Fourcc{b0, b1, b2, b3}
}

// FourccFromBytes builds a Fourcc from a 4-byte slice. Panics if b is not
// exactly 4 bytes; callers must slice a verified-length header first.
func FourccFromBytes(b []byte) Fourcc {
	return Fourcc{b[0], b[1], b[2], b[3]}
}

// String renders the fourcc for diagnostics. The 0xA9 prefix byte renders
// as "©" (so ©nam reads as "©nam"); any other non-printable byte renders
// as '?'. This is for logging and error messages, never for comparison.
func (f Fourcc) String() string {
	out := make([]byte, 0, 5)
	for _, b := range f {
		if b >= 0x20 && b < 0x7f {
			out = append(out, b)
		} else if b == 0xA9 {
			out = append(out, "©"...)
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}

// Bytes returns the raw 4 bytes.
func (f Fourcc) Bytes() []byte {
	return f[:]
}

// Well-known top-level and container fourccs.
var (
	FourccFtyp = NewFourcc('f', 't', 'y', 'p')
	FourccMoov = NewFourcc('m', 'o', 'o', 'v')
	FourccMdat = NewFourcc('m', 'd', 'a', 't')
	FourccFree = NewFourcc('f', 'r', 'e', 'e')
	FourccSkip = NewFourcc('s', 'k', 'i', 'p')
	FourccWide = NewFourcc('w', 'i', 'd', 'e')

	FourccMvhd = NewFourcc('m', 'v', 'h', 'd')
	FourccTrak = NewFourcc('t', 'r', 'a', 'k')
	FourccTkhd = NewFourcc('t', 'k', 'h', 'd')
	FourccTref = NewFourcc('t', 'r', 'e', 'f')
	FourccMdia = NewFourcc('m', 'd', 'i', 'a')
	FourccMdhd = NewFourcc('m', 'd', 'h', 'd')
	FourccHdlr = NewFourcc('h', 'd', 'l', 'r')
	FourccMinf = NewFourcc('m', 'i', 'n', 'f')
	FourccStbl = NewFourcc('s', 't', 'b', 'l')
	FourccStsd = NewFourcc('s', 't', 's', 'd')
	FourccMp4a = NewFourcc('m', 'p', '4', 'a')
	FourccStco = NewFourcc('s', 't', 'c', 'o')
	FourccCo64 = NewFourcc('c', 'o', '6', '4')
	FourccUdta = NewFourcc('u', 'd', 't', 'a')
	FourccMeta = NewFourcc('m', 'e', 't', 'a')
	FourccIlst = NewFourcc('i', 'l', 's', 't')
	FourccData = NewFourcc('d', 'a', 't', 'a')
	FourccMean = NewFourcc('m', 'e', 'a', 'n')
	FourccName = NewFourcc('n', 'a', 'm', 'e')
	FourccFreeform = NewFourcc('-', '-', '-', '-')
)
