package tvg

import "bytes"

var fileMagic = [8]byte{'O', 'T', 'V', 'G', 'f', 'u', 'l', 'l'}

const fileVersion = 1009

// Decode parses a complete file into a Document. It never panics on
// malformed input: every failure is reported as a *DecodeError.
func Decode(data []byte, opts Options) (*Document, error) {
	r := NewReader(data)
	b := newBudget(opts)

	magic, err := r.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, fileMagic[:]) {
		return nil, newErr(ErrUnknownVersion, 0, "bad magic %q, expected %q", magic, fileMagic[:])
	}

	version, err := r.ReadU32BE()
	if err != nil {
		return nil, err
	}
	if version != fileVersion {
		return nil, newErr(ErrUnknownVersion, 8, "unsupported version %d, expected %d", version, fileVersion)
	}

	doc := &Document{}

	for !r.AtEnd() {
		rec, err := r.ReadTagRecord()
		if err != nil {
			return nil, err
		}
		switch rec.ID {
		case tagMain:
			main, warnings, err := parseMainRecord(rec.Body, b)
			if err != nil {
				return nil, err
			}
			doc.Main = main
			doc.Warnings = append(doc.Warnings, warnings...)
		case tagCertificate:
			u := rec.unknownRecord()
			doc.Certificate = &u
		case tagIdentity:
			u := rec.unknownRecord()
			doc.Identity = &u
		case tagSignature:
			u := rec.unknownRecord()
			doc.Signature = &u
		default:
			doc.Unknown = append(doc.Unknown, rec.unknownRecord())
		}
	}

	return doc, nil
}

// parseMainRecord unwraps and decodes a "MAIN" record's encoded payload
// into a MainBody: its palette and its layers, normalized into the fixed
// rendering order.
func parseMainRecord(body *Reader, b *budget) (*MainBody, []Warning, error) {
	inner, err := readEncodedPayload(body)
	if err != nil {
		return nil, nil, err
	}

	main := &MainBody{}
	var warnings []Warning

	for !inner.AtEnd() {
		rec, err := inner.ReadTagRecord()
		if err != nil {
			return nil, nil, err
		}
		switch rec.ID {
		case tagPalette:
			paletteInner, err := readEncodedPayload(rec.Body)
			if err != nil {
				return nil, nil, err
			}
			colors, unknown, err := parsePalette(paletteInner, b)
			if err != nil {
				return nil, nil, err
			}
			main.Palette = colors
			main.Unknown = append(main.Unknown, unknown...)

		case tagLayers:
			layersInner, err := readEncodedPayload(rec.Body)
			if err != nil {
				return nil, nil, err
			}
			layers, lw, unknown, err := parseLayerList(layersInner, b)
			if err != nil {
				return nil, nil, err
			}
			main.Layers = layers
			warnings = append(warnings, lw...)
			main.Unknown = append(main.Unknown, unknown...)

		default:
			main.Unknown = append(main.Unknown, rec.unknownRecord())
		}
	}

	return main, warnings, nil
}
