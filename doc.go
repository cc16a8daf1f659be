// Package m4atag reads, edits, and rewrites iTunes-style metadata in
// MPEG-4/ISO-BMFF containers: .m4a, .m4b, .m4p, and .m4v files.
//
// m4atag parses only as much of a file as it needs. Opening a file reads
// its ftyp brand, its moov box (audio technical info, chapter list, and
// tag data), and the bounds of its mdat box, without decoding a single
// audio sample. Saving rewrites only the ilst metadata subtree in place,
// shifting chunk offsets and patching ancestor box sizes as needed rather
// than re-muxing the file from scratch.
//
// # Quick Start
//
//	file, err := m4atag.Open("book.m4b")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Println(file.Tag().Title())
//	fmt.Println(file.Audio.Duration)
//
//	file.Tag().SetTitle("New Title")
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// # Philosophy
//
// m4atag embodies three principles:
//
// 1. Bounds before values. Anything that only needs to find a subtree —
// the rewriter, the dumper — works in terms of byte ranges and never pays
// to decode fields it won't use.
//
// 2. Graceful degradation. A missing optional atom produces a warning and
// a partial result, not a hard error. Only the handful of conditions
// listed under Error Handling below are fatal.
//
// 3. In-place, not from-scratch. Saving a tag edit touches only the bytes
// that changed: the ilst subtree, the ancestor size fields above it, and
// the chunk offsets after it. Everything else in the file — the audio
// payload above all — moves unchanged.
//
// # Architecture
//
//	[File]              - Entry point with Open()
//	  ├─ [Tag]          - ilst item list: named accessors + generic Get/Set
//	  ├─ [AudioInfo]    - Technical properties of the audio track
//	  └─ [Chapter]      - Nero-style chapter list, if present
//
// Internally, internal/atom models the box tree (ftyp/moov/mdat and
// everything moov contains), internal/m4a orchestrates a read against
// that model, and internal/registry dispatches each data atom's type
// code to its codec.
//
// # Advanced Usage
//
// Open multiple files concurrently:
//
//	ctx := context.Background()
//	files, err := m4atag.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
//
// Iterate over every item in a tag, including freeform ones:
//
//	for _, item := range file.Tag().Items {
//		fmt.Println(item.Ident)
//	}
//
// Dump the full atom tree for debugging:
//
//	if err := m4atag.Dump(os.Stdout, "book.m4b"); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// m4atag distinguishes fatal errors from warnings:
//
//   - Fatal: the file can't be opened at all (missing moov, unrecognized
//     ftyp brand, truncated header).
//   - Warning: no tag data was found, or the chpl chapter list is
//     truncated or malformed. Open still returns a usable File; check
//     File.Warnings. A malformed box anywhere else is fatal.
//
// Check file.Warnings for anything encountered during parsing:
//
//	for _, w := range file.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// # Concurrency
//
// A File is not safe for concurrent use. OpenMany opens multiple files
// concurrently, each with its own File, bounded by runtime.NumCPU().
package m4atag
