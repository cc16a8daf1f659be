package atom

// Mdat represents the media-data box only by its bounds; this module never
// decodes audio samples, so the payload is treated as an opaque blob moved
// verbatim during a rewrite.
type Mdat struct {
	Bounds Bounds
}
