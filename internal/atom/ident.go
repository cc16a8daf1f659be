package atom

// DataIdent names one ilst child: either a well-known fourcc item like
// "©nam", or a freeform "----" item distinguished by its mean/name pair
// (e.g. mean="com.apple.iTunes", name="ISRC").
type DataIdent struct {
	// IsFreeform reports which variant this is. When false, Fourcc names
	// the item directly. When true, Mean and Name name it.
	IsFreeform bool
	Fourcc     Fourcc
	Mean       string
	Name       string
}

// Ident builds a well-known fourcc identifier.
func Ident(fc Fourcc) DataIdent {
	return DataIdent{Fourcc: fc}
}

// Freeform builds a "----" freeform identifier.
func Freeform(mean, name string) DataIdent {
	return DataIdent{IsFreeform: true, Mean: mean, Name: name}
}

// Equal reports whether two identifiers name the same item.
func (d DataIdent) Equal(other DataIdent) bool {
	if d.IsFreeform != other.IsFreeform {
		return false
	}
	if d.IsFreeform {
		return d.Mean == other.Mean && d.Name == other.Name
	}
	return d.Fourcc == other.Fourcc
}

// String renders the identifier for diagnostics.
func (d DataIdent) String() string {
	if d.IsFreeform {
		return d.Mean + ":" + d.Name
	}
	return d.Fourcc.String()
}
