package tvg

// Node is the self-describing tree §6.2 serializes: every structural piece
// of a decoded Document becomes a Node tagged with its own Type name, so a
// reader holding nothing but the boundary encoding (no copy of this
// package) can still tell records apart. Content holds either a Go
// primitive (string, []byte, float64, uint64, bool), a []Node, or a
// map[string]Node for named fields — msgpack's own type tags (§6.2)
// disambiguate those on the wire without needing a schema.
type Node struct {
	Type    string
	Content any
}

// ToNode converts a decoded Document into its boundary-encoding tree.
func (d *Document) ToNode() Node {
	fields := map[string]Node{}
	if d.Main != nil {
		fields["main"] = d.Main.toNode()
	}
	if d.Certificate != nil {
		fields["certificate"] = unknownNode(*d.Certificate)
	}
	if d.Identity != nil {
		fields["identity"] = unknownNode(*d.Identity)
	}
	if d.Signature != nil {
		fields["signature"] = unknownNode(*d.Signature)
	}
	fields["unknown"] = unknownListNode(d.Unknown)
	return Node{Type: "document", Content: fields}
}

func (m *MainBody) toNode() Node {
	palette := make([]Node, len(m.Palette))
	for i, c := range m.Palette {
		palette[i] = c.toNode()
	}
	layers := make([]Node, len(m.Layers))
	for i, l := range m.Layers {
		layers[i] = l.toNode()
	}
	return Node{Type: "main", Content: map[string]Node{
		"palette": {Type: "palette", Content: palette},
		"layers":  {Type: "layers", Content: layers},
		"unknown": unknownListNode(m.Unknown),
	}}
}

func (c *PaletteColor) toNode() Node {
	return Node{Type: "color", Content: map[string]Node{
		"color_id":     {Type: "uint64", Content: c.ColorID},
		"rgba":         {Type: "bytes", Content: append([]byte(nil), c.RGBA[:]...)},
		"name":         {Type: "string", Content: c.Name},
		"project_name": {Type: "string", Content: c.ProjectName},
	}}
}

func (l *Layer) toNode() Node {
	shapes := make([]Node, len(l.Shapes))
	for i, s := range l.Shapes {
		shapes[i] = s.toNode()
	}
	return Node{Type: "layer", Content: map[string]Node{
		"kind":   {Type: "uint64", Content: uint64(l.Kind)},
		"shapes": {Type: "shapes", Content: shapes},
	}}
}

func (s *Shape) toNode() Node {
	components := make([]Node, len(s.Components))
	for i, c := range s.Components {
		components[i] = c.toNode()
	}
	return Node{Type: "shape", Content: map[string]Node{
		"kind":       {Type: "uint64", Content: uint64(s.Kind)},
		"raw_kind":   {Type: "uint64", Content: uint64(s.RawKind)},
		"components": {Type: "components", Content: components},
	}}
}

func (c *Component) toNode() Node {
	fields := map[string]Node{
		"kind":      {Type: "uint64", Content: uint64(c.Kind)},
		"raw_kind":  {Type: "uint64", Content: uint64(c.RawKind)},
		"has_color": {Type: "bool", Content: c.HasColor},
		"path":      c.Path.toNode(),
	}
	if c.HasColor {
		fields["color_id"] = Node{Type: "uint64", Content: c.ColorID}
	}
	if c.Thickness != nil {
		fields["thickness"] = c.Thickness.toNode()
	}
	return Node{Type: "component", Content: fields}
}

func (p *Path) toNode() Node {
	segments := make([]Node, len(p.Segments))
	for i, seg := range p.Segments {
		segments[i] = seg.toNode()
	}
	return Node{Type: "path", Content: map[string]Node{
		"start":    pointNode(p.Start),
		"segments": {Type: "segments", Content: segments},
	}}
}

func (s *Segment) toNode() Node {
	switch s.Kind {
	case SegLine:
		return Node{Type: "line", Content: map[string]Node{"to": pointNode(s.P1)}}
	case SegCubic:
		return Node{Type: "cubic", Content: map[string]Node{
			"c1": pointNode(s.P1),
			"c2": pointNode(s.P2),
			"to": pointNode(s.P3),
		}}
	default:
		return Node{Type: "unknown_segment", Content: nil}
	}
}

func pointNode(p Point) Node {
	return Node{Type: "point", Content: map[string]Node{
		"x": {Type: "float64", Content: p.X},
		"y": {Type: "float64", Content: p.Y},
	}}
}

func (t *Thickness) toNode() Node {
	def := make([]Node, len(t.Definition))
	for i, p := range t.Definition {
		def[i] = p.toNode()
	}
	return Node{Type: "thickness", Content: map[string]Node{
		"definition": {Type: "thickness_points", Content: def},
		"domain_lo":  {Type: "float64", Content: t.Domain[0]},
		"domain_hi":  {Type: "float64", Content: t.Domain[1]},
	}}
}

func (p *ThicknessPoint) toNode() Node {
	return Node{Type: "thickness_point", Content: map[string]Node{
		"location": {Type: "float64", Content: p.Location},
		"left":     p.Left.toNode(),
		"right":    p.Right.toNode(),
	}}
}

func (s *ThicknessSide) toNode() Node {
	return Node{Type: "thickness_side", Content: map[string]Node{
		"offset":    {Type: "float64", Content: s.Offset},
		"ctrl_back": pointNode(s.CtrlBack),
		"ctrl_fwd":  pointNode(s.CtrlFwd),
	}}
}

func unknownNode(u UnknownRecord) Node {
	return Node{Type: "unknown_record", Content: map[string]Node{
		"tag":     {Type: "string", Content: u.Tag},
		"payload": {Type: "bytes", Content: u.Payload},
	}}
}

func unknownListNode(records []UnknownRecord) Node {
	nodes := make([]Node, len(records))
	for i, u := range records {
		nodes[i] = unknownNode(u)
	}
	return Node{Type: "unknown_records", Content: nodes}
}
