package tvg

import "testing"

func TestParsePaletteSingleColor(t *testing.T) {
	name := utf16le("Red")
	proj := utf16le("Demo")

	clid := append(append(u32be(3), name...), u64be(42)...)
	clid = append(clid, u32be(4)...)
	clid = append(clid, proj...)

	body := append(u32be(1), record("TCSC", []byte{0xFF, 0x00, 0x00, 0xFF})...)
	body = append(body, record("CLID", clid)...)

	colors, unknown, err := parsePalette(NewReader(body), newBudget(Options{}))
	if err != nil {
		t.Fatalf("parsePalette: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown records: %v", unknown)
	}
	if len(colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(colors))
	}
	c := colors[0]
	if c.ColorID != 42 || c.Name != "Red" || c.ProjectName != "Demo" {
		t.Errorf("got %+v", c)
	}
	if c.RGBA != ([4]byte{0xFF, 0x00, 0x00, 0xFF}) {
		t.Errorf("RGBA = %v", c.RGBA)
	}
}

func TestParsePalettePreservesUnknownTrailingTag(t *testing.T) {
	body := append(u32be(0), record("XTRA", []byte{1, 2, 3})...)

	colors, unknown, err := parsePalette(NewReader(body), newBudget(Options{}))
	if err != nil {
		t.Fatalf("parsePalette: %v", err)
	}
	if len(colors) != 0 {
		t.Errorf("got %d colors, want 0", len(colors))
	}
	if len(unknown) != 1 || unknown[0].Tag != "XTRA" {
		t.Errorf("got unknown=%v, want one XTRA record", unknown)
	}
}

func utf16le(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}
