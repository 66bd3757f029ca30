package tvg

import (
	"fmt"
	"unicode/utf16"
)

// decodeUTF16LE decodes a little-endian UTF-16 byte run (the wire encoding
// for palette color and project names, original_source/src/palette.rs)
// into a Go string.
func decodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("UTF-16 byte run has odd length %d", len(b))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return string(utf16.Decode(units)), nil
}
