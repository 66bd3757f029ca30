package tvg

import "unicode/utf8"

// Reader is a cursor over a contiguous, immutable byte slice. It never
// mutates the underlying buffer, so independent readers over disjoint
// slices (or disjoint subreader windows of the same slice) may be used
// from separate goroutines.
//
// Every multi-byte integer read is big-endian unless the method name says
// otherwise.
type Reader struct {
	buf  []byte
	pos  int
	base int64 // absolute offset of buf[0] in the original input
}

// NewReader returns a Reader over buf, whose absolute byte offsets (as
// reported in DecodeError.Offset) start at 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the reader's current absolute position in the original
// input that was passed to Decode. For a reader over a ZLIB-decompressed
// payload, positions count from the start of the decompressed bytes.
func (r *Reader) Offset() int64 {
	return r.base + int64(r.pos)
}

// Remaining returns the number of unread bytes in the reader's window.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// AtEnd reports whether the reader's window is fully consumed.
func (r *Reader) AtEnd() bool {
	return r.pos >= len(r.buf)
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return newErr(ErrTruncatedInput, r.Offset(), "need %d bytes, have %d", n, r.Remaining())
	}
	return nil
}

// PeekU8 returns the next byte without advancing the cursor.
func (r *Reader) PeekU8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.buf[r.pos], nil
}

// ReadU8 reads and consumes a single byte.
func (r *Reader) ReadU8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadU16BE reads a big-endian 16-bit unsigned integer.
func (r *Reader) ReadU16BE() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := uint16(r.buf[r.pos])<<8 | uint16(r.buf[r.pos+1])
	r.pos += 2
	return v, nil
}

// ReadU32BE reads a big-endian 32-bit unsigned integer.
func (r *Reader) ReadU32BE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := uint32(r.buf[r.pos])<<24 | uint32(r.buf[r.pos+1])<<16 |
		uint32(r.buf[r.pos+2])<<8 | uint32(r.buf[r.pos+3])
	r.pos += 4
	return v, nil
}

// ReadU64BE reads a big-endian 64-bit unsigned integer.
func (r *Reader) ReadU64BE() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(r.buf[r.pos+i])
	}
	r.pos += 8
	return v, nil
}

// ReadBytes reads and consumes exactly n bytes, returning a copy so the
// result never aliases the input buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, newErr(ErrTruncatedInput, r.Offset(), "negative length %d", n)
	}
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadUTF8 reads a length-prefixed (length given by the caller) run of
// bytes and validates it as UTF-8.
func (r *Reader) ReadUTF8(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newErr(ErrTruncatedInput, r.Offset()-int64(n), "invalid utf-8 in %d-byte string", n)
	}
	return string(b), nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Subreader carves out the next n bytes as an independent reader whose
// window is exactly those n bytes. The parent's cursor advances by n
// regardless of how much of the subreader the caller later consumes.
//
// Per §4.1's contract, the caller (a structural decoder) MUST fully
// consume the subreader — check Remaining() == 0 before returning, or call
// SkipRest() explicitly when forward-compatible trailing bytes are
// expected.
func (r *Reader) Subreader(n int) (*Reader, error) {
	if n < 0 {
		return nil, newErr(ErrTruncatedInput, r.Offset(), "negative subreader length %d", n)
	}
	if err := r.need(n); err != nil {
		return nil, err
	}
	sub := &Reader{
		buf:  r.buf[r.pos : r.pos+n],
		base: r.base + int64(r.pos),
	}
	r.pos += n
	return sub, nil
}

// RequireExhausted returns ErrTrailingBytes if the reader's window has
// unread bytes left. Structural decoders call this after reading every
// tag they recognize, so forward-incompatible leftovers are caught rather
// than silently ignored.
func (r *Reader) RequireExhausted() error {
	if r.Remaining() != 0 {
		return newErr(ErrTrailingBytes, r.Offset(), "%d trailing bytes", r.Remaining())
	}
	return nil
}

// SkipRest discards any bytes left in the reader's window, for contexts
// that explicitly tolerate forward-compatible extended payloads.
func (r *Reader) SkipRest() {
	r.pos = len(r.buf)
}
