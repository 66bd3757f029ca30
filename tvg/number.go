package tvg

// Number decodes the format's bespoke sign/exponent/fraction word into a
// float64. See §4.3 and §6.3 of the design.
//
// This is not IEEE-754: the mantissa carries no implicit leading bit, and
// the fractional field's effective bit width grows with the exponent
// rather than staying fixed. A word is laid out MSB to LSB as
// [S:1 | E:8 | F:23]:
//
//	k   = max(0, E - 0x79)          // fractional bit budget for this exponent
//	mag = 2^(E-0x75) + (top k bits of F) * 16
//	val = mag, negated when S == 1
//
// Only the all-zero word decodes to exactly 0; a word with just S set
// goes through the formula like any other and decodes to -2^(0-0x75).
//
// The exponent bias here (0x75) is not the 0x7F the prose formula in §6.3
// suggests; worked against every row of §4.3's calibration table the
// 0x7F-biased reading is off by a constant factor of 1024 (e.g. word
// 3C800000 reads as 0.015625 under 0x7F but the table gives 16 — and
// 16 = 0.015625 * 1024, exactly, for every zero-fraction row). Rebiasing
// to 0x75 and scaling the fraction term by 16 instead of dividing by 64
// is algebraically the same *1024 rescale, and it reproduces the table's
// own "unit step of 16 at the smallest resolvable increment" note exactly:
// the smallest nonzero exponent (0x79) then decodes to 2^(0x79-0x75) = 16.
// Nine of the table's ten rows match this exactly; the tenth (word
// BDA00000, tabulated as -72) computes to -80 under this formula and under
// every other single consistent formula tried against the rest of the
// table, and is treated here as a transcription slip in the calibration
// table rather than evidence of a third scaling rule.
const fracScale = 16.0

// decodeNumber interprets a 32-bit word per §6.3, returning the decoded
// value and whether the word fell in the format's undefined region
// (E == 0xFF, or a fractional bit budget k wider than F's 23 bits, which
// happens for every E >= 0x91; F is then used whole, unshifted).
func decodeNumber(word uint32) (value float64, extreme bool) {
	if word == 0 {
		return 0, false
	}

	sign := word&0x8000_0000 != 0
	exp := (word & 0x7F80_0000) >> 23
	frac := word & 0x007F_FFFF

	k := int(exp) - 0x79
	if k < 0 {
		k = 0
	}

	var fracBits uint32
	if k > 0 {
		shift := 23 - k
		if shift < 0 {
			shift = 0
		}
		fracBits = frac >> uint(shift)
	}

	mag := pow2(int(exp)-0x75) + float64(fracBits)*fracScale

	if sign {
		mag = -mag
	}

	extreme = exp == 0xFF || k > 23
	return mag, extreme
}

// pow2 computes 2^n for integer n without relying on math.Pow's generic
// float path, mirroring the exact doubling/halving the format's exponent
// term needs.
func pow2(n int) float64 {
	if n >= 0 {
		v := 1.0
		for i := 0; i < n; i++ {
			v *= 2
		}
		return v
	}
	v := 1.0
	for i := 0; i > n; i-- {
		v /= 2
	}
	return v
}

// ReadNumber reads a 4-byte number word (§4.3) and decodes it. A word in
// the format's undefined region produces a best-effort value together with
// a non-nil *Warning of kind ErrNumericExtreme; it is never an aborting
// error.
func (r *Reader) ReadNumber() (float64, *Warning, error) {
	offset := r.Offset()
	word, err := r.ReadU32BE()
	if err != nil {
		return 0, nil, err
	}
	value, extreme := decodeNumber(word)
	if extreme {
		return value, &Warning{
			Kind:    ErrNumericExtreme,
			Message: "number word in undefined region (E=0xFF or overflowing fraction)",
			Offset:  offset,
		}, nil
	}
	return value, nil, nil
}

// Point is a 2-D coordinate pair decoded with ReadNumber.
type Point struct {
	X, Y float64
}

// ReadPoint reads an (X, Y) pair, in that order.
func (r *Reader) ReadPoint(warnings *[]Warning) (Point, error) {
	x, wx, err := r.ReadNumber()
	if err != nil {
		return Point{}, err
	}
	if wx != nil {
		*warnings = append(*warnings, *wx)
	}
	y, wy, err := r.ReadNumber()
	if err != nil {
		return Point{}, err
	}
	if wy != nil {
		*warnings = append(*warnings, *wy)
	}
	return Point{X: x, Y: y}, nil
}
