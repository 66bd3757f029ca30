package tvg

import "testing"

func TestParseLayerListReordersToFixedKindOrder(t *testing.T) {
	overlay := append([]byte{3}, record("XTRA", []byte{9})...) // role=overlay, one unknown tag
	underlay := []byte{0}                                      // role=underlay, no shapes

	body := append(record("LAYR", overlay), record("LAYR", underlay)...)

	layers, _, unknown, err := parseLayerList(NewReader(body), newBudget(Options{}))
	if err != nil {
		t.Fatalf("parseLayerList: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if layers[0].Kind != LayerUnderlay || layers[1].Kind != LayerOverlay {
		t.Errorf("got order %v, %v; want underlay before overlay (wire order reversed)", layers[0].Kind, layers[1].Kind)
	}
	if len(unknown) != 1 || unknown[0].Tag != "XTRA" {
		t.Errorf("got unknown=%v, want one XTRA record from the overlay layer", unknown)
	}
}

func TestParseLayerShapeComponentAndThickness(t *testing.T) {
	componentPayload := u32be(0)                    // kind = fill
	componentPayload = append(componentPayload, 1)  // hasColor
	componentPayload = append(componentPayload, u64be(7)...)
	componentPayload = append(componentPayload, u32be(2)...) // point count
	componentPayload = append(componentPayload, 0x03)        // curve-instruction prefix (derived length: 1 byte)
	componentPayload = append(componentPayload, point(0, false)...)
	componentPayload = append(componentPayload, point(0, false)...)

	thicknessPayload := []byte{0x00} // reuse
	thicknessPayload = append(thicknessPayload, numberWord(0, false)...)
	thicknessPayload = append(thicknessPayload, numberWord(1, false)...)

	layerBody := []byte{1} // role = color
	layerBody = append(layerBody, record("TGSD", u32be(3))...) // shape kind = stroke
	layerBody = append(layerBody, record("TGBP", componentPayload)...)
	layerBody = append(layerBody, record("tGTB", thicknessPayload)...)

	body := record("LAYR", layerBody)

	layers, warnings, unknown, err := parseLayerList(NewReader(body), newBudget(Options{}))
	if err != nil {
		t.Fatalf("parseLayerList: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown records: %v", unknown)
	}
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}
	layer := layers[0]
	if layer.Kind != LayerColor {
		t.Errorf("layer.Kind = %v, want LayerColor", layer.Kind)
	}
	if len(layer.Shapes) != 1 || layer.Shapes[0].Kind != ShapeStroke {
		t.Fatalf("shapes = %+v", layer.Shapes)
	}
	shape := layer.Shapes[0]
	if len(shape.Components) != 1 {
		t.Fatalf("components = %+v", shape.Components)
	}
	comp := shape.Components[0]
	if comp.Kind != ComponentFill || !comp.HasColor || comp.ColorID != 7 {
		t.Errorf("component = %+v", comp)
	}
	if len(comp.Path.Segments) != 1 || comp.Path.Segments[0].Kind != SegLine {
		t.Errorf("path segments = %+v", comp.Path.Segments)
	}
	if comp.Thickness == nil || comp.Thickness.Definition != nil {
		t.Errorf("thickness = %+v, want a reused (nil-definition) profile", comp.Thickness)
	}
}
