// Package tvg decodes the proprietary TVG binary vector-drawing container
// produced by an animation authoring tool and reconstructs its contents as
// a tree of self-describing tagged records.
//
// The package is a synchronous, single-threaded decoder: Decode consumes an
// immutable byte slice and returns an owned document or an error. There is
// no suspension, no background work, and no shared state between decoder
// instances, so independent files may be decoded concurrently from
// separate goroutines.
//
// # Pipeline
//
// The package is built from six stages, leaves first (Decode runs the
// first five; Emit is the last):
//
//	byte reader -> number decoder -> tag dispatcher -> path bitstream
//	decoder -> structural decoders -> emitter
//
// Unrecognized tags at any level are preserved as opaque "unknown" records
// rather than rejected, so the decoder degrades gracefully on inputs from
// newer versions of the authoring tool.
//
// # Boundary encoding
//
// Emit serializes a decoded Document to a self-describing MessagePack
// encoding (see Emit and Node). Rendering, animation timeline semantics,
// and certificate/signature verification are explicitly out of scope: the
// decoder surfaces raw bytes for Certificate and Signature records and
// leaves interpretation to the caller.
package tvg
