package tvg

// perThicknessPoint is the number of 4-byte numeric fields a defined
// control point carries: location, plus offset/ctrl_back(x,y)/ctrl_fwd(x,y)
// for each of the left and right sides (1 + 2*5).
const perThicknessPoint = 11

// parseThickness decodes a tGTB record body (§"Thickness profile reuse" in
// SPEC_FULL.md, grounded on original_source/tvg/src/pencil.rs): a mode
// byte (0x00 reuse an earlier profile, 0x01 define a new one), an optional
// point list when defining, and a domain pair that's always present.
//
// Each defined point carries 11 numeric fields in wire order: location,
// then per side (left, then right) the side's offset followed by its
// ctrl_back and ctrl_fwd handles, each a 2-D point
// (original_source/tvg/src/pencil.rs StrokeThicknessPoint /
// StrokeThicknessSide).
func parseThickness(body *Reader, b *budget) (*Thickness, []Warning, error) {
	var warnings []Warning

	mode, err := body.ReadU8()
	if err != nil {
		return nil, nil, err
	}

	var def []ThicknessPoint
	if mode == 0x01 {
		countOffset := body.Offset()
		count, err := body.ReadU32BE()
		if err != nil {
			return nil, nil, err
		}
		if err := b.reserve(int64(count)*perThicknessPoint*4, countOffset); err != nil {
			return nil, nil, err
		}
		def = make([]ThicknessPoint, count)
		for i := range def {
			pointOffset := body.Offset()
			loc, w, err := body.ReadNumber()
			if err != nil {
				return nil, nil, err
			}
			appendWarning(&warnings, w)

			left, err := readThicknessSide(body, &warnings)
			if err != nil {
				return nil, nil, err
			}
			right, err := readThicknessSide(body, &warnings)
			if err != nil {
				return nil, nil, err
			}

			if i > 0 && loc < def[i-1].Location {
				return nil, nil, newErr(ErrMalformedThickness, pointOffset,
					"control point %d location %v is less than preceding point's %v", i, loc, def[i-1].Location)
			}

			def[i] = ThicknessPoint{Location: loc, Left: left, Right: right}
		}
	}

	domainLo, w, err := body.ReadNumber()
	if err != nil {
		return nil, nil, err
	}
	appendWarning(&warnings, w)
	domainHi, w, err := body.ReadNumber()
	if err != nil {
		return nil, nil, err
	}
	appendWarning(&warnings, w)

	if err := body.RequireExhausted(); err != nil {
		return nil, nil, err
	}

	return &Thickness{Definition: def, Domain: [2]float64{domainLo, domainHi}}, warnings, nil
}

func readThicknessSide(body *Reader, warnings *[]Warning) (ThicknessSide, error) {
	offset, w, err := body.ReadNumber()
	if err != nil {
		return ThicknessSide{}, err
	}
	appendWarning(warnings, w)
	back, err := body.ReadPoint(warnings)
	if err != nil {
		return ThicknessSide{}, err
	}
	fwd, err := body.ReadPoint(warnings)
	if err != nil {
		return ThicknessSide{}, err
	}
	return ThicknessSide{Offset: offset, CtrlBack: back, CtrlFwd: fwd}, nil
}

func appendWarning(warnings *[]Warning, w *Warning) {
	if w != nil {
		*warnings = append(*warnings, *w)
	}
}
