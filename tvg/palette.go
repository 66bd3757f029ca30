package tvg

// parsePalette decodes a palette container's unwrapped body: a color count
// followed by that many color entries, each a TCSC (RGBA) record and a
// CLID (color id + names) record in either order; unrecognized records
// inside an entry are kept as unknown. Unlike
// original_source/src/palette.rs, which scans for a raw sentinel tag to
// find the end of each entry, every record here is already length-framed,
// so no sentinel is needed — the loop simply reads color_count pairs.
func parsePalette(body *Reader, b *budget) ([]PaletteColor, []UnknownRecord, error) {
	offset := body.Offset()
	count, err := body.ReadU32BE()
	if err != nil {
		return nil, nil, err
	}
	if err := b.reserve(int64(count)*int64(16), offset); err != nil {
		return nil, nil, err
	}

	colors := make([]PaletteColor, 0, count)
	var unknown []UnknownRecord

	for i := uint32(0); i < count; i++ {
		var color PaletteColor
		for needRGBA, needID := true, true; needRGBA || needID; {
			if body.AtEnd() {
				return nil, nil, newErr(ErrMalformedPalette, body.Offset(), "color entry %d is missing its TCSC or CLID record", i)
			}
			rec, err := body.ReadTagRecord()
			if err != nil {
				return nil, nil, err
			}
			switch rec.ID {
			case tagColorRGBA:
				rgba, err := rec.Body.ReadBytes(4)
				if err != nil {
					return nil, nil, err
				}
				if err := rec.Body.RequireExhausted(); err != nil {
					return nil, nil, err
				}
				copy(color.RGBA[:], rgba)
				needRGBA = false
			case tagColorID:
				if err := parseColorID(rec.Body, &color); err != nil {
					return nil, nil, err
				}
				needID = false
			default:
				unknown = append(unknown, rec.unknownRecord())
			}
		}
		colors = append(colors, color)
	}

	for !body.AtEnd() {
		rec, err := body.ReadTagRecord()
		if err != nil {
			return nil, nil, err
		}
		unknown = append(unknown, rec.unknownRecord())
	}

	return colors, unknown, nil
}

// parseColorID decodes a CLID record: name length + UTF-16LE name, a
// 64-bit color id, and project-name length + UTF-16LE project name
// (original_source/src/palette.rs ColorId).
func parseColorID(r *Reader, color *PaletteColor) error {
	nameChars, err := r.ReadU32BE()
	if err != nil {
		return err
	}
	nameBytes, err := r.ReadBytes(int(nameChars) * 2)
	if err != nil {
		return err
	}
	name, err := decodeUTF16LE(nameBytes)
	if err != nil {
		return newErr(ErrMalformedPalette, r.Offset(), "color name: %v", err)
	}

	id, err := r.ReadU64BE()
	if err != nil {
		return err
	}

	projChars, err := r.ReadU32BE()
	if err != nil {
		return err
	}
	projBytes, err := r.ReadBytes(int(projChars) * 2)
	if err != nil {
		return err
	}
	proj, err := decodeUTF16LE(projBytes)
	if err != nil {
		return newErr(ErrMalformedPalette, r.Offset(), "project name: %v", err)
	}

	if err := r.RequireExhausted(); err != nil {
		return err
	}

	color.Name = name
	color.ProjectName = proj
	color.ColorID = id
	return nil
}
