package tvg

// Tag ids identify records in the tagged-record tree (§3, §4.2). Every tag
// currently named in the format uses a uniform 4-byte big-endian ASCII id
// followed by a 4-byte big-endian length (Open Question Resolution #1 in
// SPEC_FULL.md): no tag observed in the corpus needs a narrower width, so
// this package does not implement one. A context that someday needs a
// 2-byte or 1-byte id/length pair can add a sibling dispatch table without
// touching the ones below — the tag space is per-context, not global.
type tagID [4]byte

func tag(s string) tagID {
	var t tagID
	copy(t[:], s)
	return t
}

func (t tagID) String() string {
	return string(t[:])
}

// Top-level (file envelope) tags, dispatched directly under the magic and
// version preamble.
var (
	tagMain        = tag("MAIN")
	tagCertificate = tag("CERT")
	tagIdentity    = tag("IDNT")
	tagSignature   = tag("SIGN")
)

// Main-body tags: the layer list and the palette.
var (
	tagLayers  = tag("LYRS")
	tagPalette = tag("PLTE")
)

// Layer envelope tags.
var (
	tagLayer = tag("LAYR")
)

// Shape component tags, named after the format's own abbreviations
// (original_source/src/layer.rs's ShapeComponentTag), preserved verbatim
// since they're what a hex-dump of a real file actually shows.
var (
	tagShapeDef    = tag("TGSD") // shape definition: kind; the TGBP records after it are its components
	tagShapePath   = tag("TGBP") // boundary path
	tagShapeThick  = tag("tGTB") // thickness profile
	tagShapeTiming = tag("tGTI") // component timing/info
)

// Palette entry tags.
var (
	tagColorRGBA = tag("TCSC")
	tagColorID   = tag("CLID")
)

// encodingTag marks how a wrapped payload's bytes are laid out (§"Encoded
// payload framing" in SPEC_FULL.md): raw or zlib-compressed. Every
// structural container (main body, layer list, palette) is wrapped this
// way before its own tag stream begins.
type encodingTag [4]byte

var (
	encodingRaw  = encodingTag(tag("UNCO"))
	encodingZlib = encodingTag(tag("ZLIB"))
)

func (e encodingTag) String() string {
	return string(e[:])
}
