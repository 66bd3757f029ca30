package tvg

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// TagRecord is one tag-length-value record: a 4-byte id, a 4-byte
// big-endian length, and a Body reader scoped to exactly that many bytes
// (§4.2). Every structural level of the format — the file envelope, the
// main body, layer lists, shapes, components — is a sequence of these.
type TagRecord struct {
	ID   tagID
	Body *Reader
}

// ReadTagRecord reads one TagRecord. It returns ErrTruncatedInput if fewer
// than 8 bytes (id + length) remain, or if the declared length exceeds
// what's left in r.
func (r *Reader) ReadTagRecord() (TagRecord, error) {
	idBytes, err := r.ReadBytes(4)
	if err != nil {
		return TagRecord{}, err
	}
	length, err := r.ReadU32BE()
	if err != nil {
		return TagRecord{}, err
	}
	body, err := r.Subreader(int(length))
	if err != nil {
		return TagRecord{}, err
	}
	var id tagID
	copy(id[:], idBytes)
	return TagRecord{ID: id, Body: body}, nil
}

// unknownRecord captures a TagRecord this package doesn't interpret as an
// UnknownRecord, consuming the rest of its body.
func (t TagRecord) unknownRecord() UnknownRecord {
	raw := make([]byte, t.Body.Remaining())
	copy(raw, t.Body.buf[t.Body.pos:])
	t.Body.SkipRest()
	return UnknownRecord{Tag: t.ID.String(), Payload: raw}
}

// readEncodedPayload unwraps the encoding-tag + length + bytes frame that
// wraps every structural container's payload (main body, layer list,
// palette): a 4-byte encoding tag ("UNCO" raw or "ZLIB" zlib-compressed),
// a 4-byte big-endian length, and the payload bytes in that encoding.
// Grounded on original_source/src/util.rs::read_encoded_data.
func readEncodedPayload(r *Reader) (*Reader, error) {
	offset := r.Offset()
	encBytes, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	length, err := r.ReadU32BE()
	if err != nil {
		return nil, err
	}
	raw, err := r.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}

	var enc encodingTag
	copy(enc[:], encBytes)
	switch enc {
	case encodingRaw:
		return &Reader{buf: raw, base: offset + 8}, nil
	case encodingZlib:
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, newErr(ErrTruncatedInput, offset, "invalid zlib stream: %v", err)
		}
		defer zr.Close()
		decompressed, err := io.ReadAll(zr)
		if err != nil {
			return nil, newErr(ErrTruncatedInput, offset, "corrupt zlib stream: %v", err)
		}
		return NewReader(decompressed), nil
	default:
		return nil, newErr(ErrTruncatedInput, offset, "unrecognized encoding tag %q", enc)
	}
}
