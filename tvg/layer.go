package tvg

// classifyShape maps a shape's wire discriminator to a ShapeKind,
// preserving reserved/unrecognized values as ShapeUnknown rather than
// rejecting them (original_source/src/layer.rs ShapeType; SUPPLEMENTED
// FEATURES in SPEC_FULL.md).
func classifyShape(raw uint32) ShapeKind {
	switch raw {
	case 2:
		return ShapeFill
	case 3:
		return ShapeStroke
	case 6:
		return ShapeLine
	default:
		return ShapeUnknown
	}
}

// classifyComponent maps a component's wire discriminator to a
// ComponentKind, same forward-compatibility treatment as classifyShape.
func classifyComponent(raw uint32) ComponentKind {
	switch raw {
	case 0:
		return ComponentFill
	case 2:
		return ComponentStroke
	case 4:
		return ComponentPencil
	default:
		return ComponentUnknown
	}
}

// parseLayerList decodes an unwrapped "LYRS" body: a sequence of "LAYR"
// records, each carrying a role byte (classifying it into the fixed
// underlay/color/line/overlay rendering order — see reorderLayers) and a
// tag loop of shape records.
func parseLayerList(body *Reader, b *budget) ([]Layer, []Warning, []UnknownRecord, error) {
	var layers []Layer
	var warnings []Warning
	var unknown []UnknownRecord

	for !body.AtEnd() {
		rec, err := body.ReadTagRecord()
		if err != nil {
			return nil, nil, nil, err
		}
		if rec.ID != tagLayer {
			unknown = append(unknown, rec.unknownRecord())
			continue
		}
		if err := b.reserve(int64(rec.Body.Remaining()), rec.Body.Offset()); err != nil {
			return nil, nil, nil, err
		}
		layer, lw, lu, err := parseLayer(rec.Body, b)
		if err != nil {
			return nil, nil, nil, err
		}
		layers = append(layers, layer)
		warnings = append(warnings, lw...)
		unknown = append(unknown, lu...)
	}

	return reorderLayers(layers), warnings, unknown, nil
}

// reorderLayers returns layers sorted into the fixed rendering order —
// underlay, color, line, overlay, then anything unclassified — regardless
// of the order they appeared on the wire (§3's layer-ordering invariant).
// The sort is stable, so relative order within a kind is preserved.
func reorderLayers(layers []Layer) []Layer {
	out := make([]Layer, 0, len(layers))
	for _, kind := range []LayerKind{LayerUnderlay, LayerColor, LayerLine, LayerOverlay, LayerUnknown} {
		for _, l := range layers {
			if l.Kind == kind {
				out = append(out, l)
			}
		}
	}
	return out
}

func layerKindFromRole(role byte) LayerKind {
	switch role {
	case 0:
		return LayerUnderlay
	case 1:
		return LayerColor
	case 2:
		return LayerLine
	case 3:
		return LayerOverlay
	default:
		return LayerUnknown
	}
}

func parseLayer(body *Reader, b *budget) (Layer, []Warning, []UnknownRecord, error) {
	role, err := body.ReadU8()
	if err != nil {
		return Layer{}, nil, nil, err
	}
	layer := Layer{Kind: layerKindFromRole(role)}

	var warnings []Warning
	var unknown []UnknownRecord

	for !body.AtEnd() {
		rec, err := body.ReadTagRecord()
		if err != nil {
			return Layer{}, nil, nil, err
		}
		switch rec.ID {
		case tagShapeDef:
			if err := b.reserve(int64(rec.Body.Remaining()), rec.Body.Offset()); err != nil {
				return Layer{}, nil, nil, err
			}
			kind, err := rec.Body.ReadU32BE()
			if err != nil {
				return Layer{}, nil, nil, err
			}
			if err := rec.Body.RequireExhausted(); err != nil {
				return Layer{}, nil, nil, err
			}
			layer.Shapes = append(layer.Shapes, Shape{Kind: classifyShape(kind), RawKind: kind})

		case tagShapePath:
			if len(layer.Shapes) == 0 {
				return Layer{}, nil, nil, newErr(ErrMalformedPath, rec.Body.Offset(), "component record with no preceding shape definition")
			}
			comp, cw, err := parseComponent(rec.Body, b)
			if err != nil {
				return Layer{}, nil, nil, err
			}
			cur := &layer.Shapes[len(layer.Shapes)-1]
			cur.Components = append(cur.Components, comp)
			warnings = append(warnings, cw...)

		case tagShapeThick:
			if len(layer.Shapes) == 0 || len(layer.Shapes[len(layer.Shapes)-1].Components) == 0 {
				return Layer{}, nil, nil, newErr(ErrMalformedPath, rec.Body.Offset(), "thickness record with no preceding component")
			}
			thick, tw, err := parseThickness(rec.Body, b)
			if err != nil {
				return Layer{}, nil, nil, err
			}
			cur := &layer.Shapes[len(layer.Shapes)-1]
			cur.Components[len(cur.Components)-1].Thickness = thick
			warnings = append(warnings, tw...)

		default:
			unknown = append(unknown, rec.unknownRecord())
		}
	}

	return layer, warnings, unknown, nil
}

// parseComponent decodes a "TGBP" record: a component kind, an optional
// color reference, a declared point count, the curve-instruction prefix,
// and then the point list itself — prefix before points, per §4.4
// (original_source/src/layer.rs Path::read reads point_count, decodes the
// bitstream, then reads the point values).
//
// The prefix carries no explicit length field on the wire (§4.4: "the
// prefix length is exactly ceil(token_bits_total/8)... validate against
// the declared tag length minus the point-bytes"); since body is already
// bounded to this record's declared tag length, that length is derived
// here as whatever remains after the point list's fixed 8-bytes-per-point
// is subtracted out.
func parseComponent(body *Reader, b *budget) (Component, []Warning, error) {
	var warnings []Warning

	kind, err := body.ReadU32BE()
	if err != nil {
		return Component{}, nil, err
	}

	hasColor, err := body.ReadU8()
	if err != nil {
		return Component{}, nil, err
	}
	var colorID uint64
	if hasColor != 0 {
		colorID, err = body.ReadU64BE()
		if err != nil {
			return Component{}, nil, err
		}
	}

	pointOffset := body.Offset()
	pointCount, err := body.ReadU32BE()
	if err != nil {
		return Component{}, nil, err
	}
	if err := b.reserve(int64(pointCount)*16, pointOffset); err != nil {
		return Component{}, nil, err
	}

	pointBytes := int64(pointCount) * 8
	remaining := int64(body.Remaining())
	if pointBytes > remaining {
		return Component{}, nil, newErr(ErrMalformedPath, body.Offset(),
			"point list declares %d points (%d bytes) but only %d bytes remain", pointCount, pointBytes, remaining)
	}
	bits, err := body.ReadBytes(int(remaining - pointBytes))
	if err != nil {
		return Component{}, nil, err
	}

	points := make([]Point, pointCount)
	for i := range points {
		p, err := body.ReadPoint(&warnings)
		if err != nil {
			return Component{}, nil, err
		}
		points[i] = p
	}

	if err := body.RequireExhausted(); err != nil {
		return Component{}, nil, err
	}

	path, err := decodePathSegments(bits, points, pointOffset)
	if err != nil {
		return Component{}, nil, err
	}

	return Component{
		Kind:     classifyComponent(kind),
		RawKind:  kind,
		ColorID:  colorID,
		HasColor: hasColor != 0,
		Path:     path,
	}, warnings, nil
}
