package tvg

import "encoding/binary"

// Fixture-building helpers shared across the package's tests. Tests build
// byte sequences by hand rather than through a writer, since this package
// only ever reads the wire format.

func u32be(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u64be(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// record builds a complete tag-length-value record: 4-byte ascii id,
// 4-byte big-endian length, payload.
func record(id string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, []byte(id)...)
	out = append(out, u32be(uint32(len(payload)))...)
	out = append(out, payload...)
	return out
}

// encodedPayload wraps a payload in the "UNCO" (uncompressed) encoding-tag
// frame every structural container expects.
func encodedPayload(payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, []byte("UNCO")...)
	out = append(out, u32be(uint32(len(payload)))...)
	out = append(out, payload...)
	return out
}

// numberWord encodes the value 2^exp (negated when sign is set) directly
// into the format's 32-bit word, for tests that need to produce specific
// decoded values without reasoning about bit patterns by hand. It only needs to
// invert decodeNumber's exact-power-of-two, zero-fraction case, which
// covers every coordinate value these fixtures use.
func numberWord(exp int, sign bool) []byte {
	word := uint32(exp+0x75) << 23
	if sign {
		word |= 0x8000_0000
	}
	return u32be(word)
}

// zeroWord is the number word that decodes to exactly 0.
var zeroWord = u32be(0)

func point(exp int, sign bool) []byte {
	return append(append([]byte{}, numberWord(exp, sign)...), numberWord(exp, sign)...)
}
