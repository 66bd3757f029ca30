package tvg

import "testing"

func seqPoints(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: float64(i), Y: float64(i)}
	}
	return pts
}

func kinds(segs []Segment) []SegmentKind {
	out := make([]SegmentKind, len(segs))
	for i, s := range segs {
		out[i] = s.Kind
	}
	return out
}

func kindsEqual(a, b []SegmentKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// These six worked examples (§8) exercise the bitstream's anchor-bit skip,
// the zeros-counter state machine (0 zeros -> Line, 2 zeros -> Cubic), and
// the exact point accounting: anchor (1 point) + each segment's point
// count must sum to point_count.
func TestDecodePathSegmentsWorkedExamples(t *testing.T) {
	cases := []struct {
		name       string
		bits       []byte
		pointCount int
		want       []SegmentKind
	}{
		{"single line", []byte{0x03}, 2, []SegmentKind{SegLine}},
		{"single cubic", []byte{0x09}, 4, []SegmentKind{SegCubic}},
		{"two cubics", []byte{0x49}, 7, []SegmentKind{SegCubic, SegCubic}},
		{"three cubics", []byte{0x49, 0x02}, 10, []SegmentKind{SegCubic, SegCubic, SegCubic}},
		{"three cubics then a line", []byte{0x49, 0x06}, 11, []SegmentKind{SegCubic, SegCubic, SegCubic, SegLine}},
		{"line then ten cubics", []byte{0x93, 0x24, 0x49, 0x92}, 32,
			[]SegmentKind{SegLine, SegCubic, SegCubic, SegCubic, SegCubic, SegCubic, SegCubic, SegCubic, SegCubic, SegCubic, SegCubic}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path, err := decodePathSegments(c.bits, seqPoints(c.pointCount), 0)
			if err != nil {
				t.Fatalf("decodePathSegments: %v", err)
			}
			got := kinds(path.Segments)
			if !kindsEqual(got, c.want) {
				t.Errorf("segment kinds = %v, want %v", got, c.want)
			}

			consumed := 1 // anchor
			for _, s := range path.Segments {
				if s.Kind == SegLine {
					consumed++
				} else {
					consumed += 3
				}
			}
			if consumed != c.pointCount {
				t.Errorf("consumed %d points, want %d", consumed, c.pointCount)
			}
			if path.Start != (Point{X: 0, Y: 0}) {
				t.Errorf("Start = %v, want the first wire point", path.Start)
			}
		})
	}
}

func TestDecodePathSegmentsRequiresLeadingOne(t *testing.T) {
	_, err := decodePathSegments([]byte{0x00}, seqPoints(2), 0)
	if err == nil {
		t.Fatal("expected error for a bitstream not starting with 1")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrMalformedPath {
		t.Errorf("got %v, want ErrMalformedPath", err)
	}
}

func TestDecodePathSegmentsRejectsNonzeroPadding(t *testing.T) {
	// 0x03 decodes a single Line from point_count=2 using only its bottom
	// two bits; setting any higher bit violates the zero-padding
	// invariant.
	_, err := decodePathSegments([]byte{0x03 | 0x80}, seqPoints(2), 0)
	if err == nil {
		t.Fatal("expected error for nonzero padding bits")
	}
}

func TestDecodePathSegmentsRejectsBadZerosCount(t *testing.T) {
	// A single leading zero bit (zeros==1) before the terminating 1 is
	// neither Line (0) nor Cubic (2).
	_, err := decodePathSegments([]byte{0x05}, seqPoints(3), 0) // 1,0,1 LSB-first
	if err == nil {
		t.Fatal("expected error for a segment token with 1 leading zero")
	}
}
