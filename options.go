package m4atag

import "github.com/go-m4a/m4atag/internal/m4a"

// Option configures what Open reads.
//
// Options use the functional options pattern.
//
// Example:
//
//	file, err := m4atag.Open("book.m4b",
//	    m4atag.WithoutChapters(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	readAudioInfo  bool
	readChapters   bool
	readTag        bool
	strictParsing  bool
	ignoreWarnings bool
}

// defaultOptions reads everything and tolerates warnings.
func defaultOptions() *openOptions {
	return &openOptions{
		readAudioInfo: true,
		readChapters:  true,
		readTag:       true,
	}
}

func (o *openOptions) readConfig() m4a.ReadConfig {
	return m4a.ReadConfig{
		ReadAudioInfo: o.readAudioInfo,
		ReadChapters:  o.readChapters,
		ReadTag:       o.readTag,
	}
}

// WithoutAudioInfo skips extracting the audio track's technical info
// (duration, codec, sample rate). moov's track subtree is still parsed
// while the tag or chapters are being read.
func WithoutAudioInfo() Option {
	return func(o *openOptions) { o.readAudioInfo = false }
}

// WithoutChapters skips reading the Nero chpl chapter list.
func WithoutChapters() Option {
	return func(o *openOptions) { o.readChapters = false }
}

// WithoutTag skips reading the udta/meta/ilst tag chain.
func WithoutTag() Option {
	return func(o *openOptions) { o.readTag = false }
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, m4atag continues past a missing or malformed optional atom,
// returning a partial File plus a warning. With strict parsing enabled,
// the first warning becomes the error Open returns.
func WithStrictParsing() Option {
	return func(o *openOptions) { o.strictParsing = true }
}

// WithIgnoreWarnings discards warnings instead of collecting them in
// File.Warnings.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) { o.ignoreWarnings = true }
}
