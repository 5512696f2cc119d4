package props

// The merge functions below overlay a more specific bag onto a less specific
// one and return a fresh value; neither input is mutated. Scalar (pointer)
// fields are replaced when the overlay sets them. Spacing, Indent and Borders
// merge field-by-field inside the nested object. TabStops concatenate,
// base first.

func override[T any](base, over *T) *T {
	if over != nil {
		v := *over
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

// MergeRun overlays over onto base.
func MergeRun(base, over *RunProperties) *RunProperties {
	if base == nil && over == nil {
		return &RunProperties{}
	}
	if base == nil {
		base = &RunProperties{}
	}
	if over == nil {
		over = &RunProperties{}
	}
	return &RunProperties{
		StyleID:   override(base.StyleID, over.StyleID),
		Bold:      override(base.Bold, over.Bold),
		Italic:    override(base.Italic, over.Italic),
		Underline: override(base.Underline, over.Underline),
		Strike:    override(base.Strike, over.Strike),
		Caps:      override(base.Caps, over.Caps),
		SmallCaps: override(base.SmallCaps, over.SmallCaps),
		Color:     override(base.Color, over.Color),
		Highlight: override(base.Highlight, over.Highlight),
		FontSize:  override(base.FontSize, over.FontSize),
		VertAlign: override(base.VertAlign, over.VertAlign),
		Fonts:     override(base.Fonts, over.Fonts),
		Shading:   override(base.Shading, over.Shading),
	}
}

// MergeSpacing merges nested spacing key-by-key: before from one stage
// survives alongside after from another.
func MergeSpacing(base, over *Spacing) *Spacing {
	if base == nil && over == nil {
		return nil
	}
	if base == nil {
		base = &Spacing{}
	}
	if over == nil {
		over = &Spacing{}
	}
	return &Spacing{
		Before:   override(base.Before, over.Before),
		After:    override(base.After, over.After),
		Line:     override(base.Line, over.Line),
		LineRule: override(base.LineRule, over.LineRule),
	}
}

// MergeIndent merges nested indentation key-by-key.
func MergeIndent(base, over *Indent) *Indent {
	if base == nil && over == nil {
		return nil
	}
	if base == nil {
		base = &Indent{}
	}
	if over == nil {
		over = &Indent{}
	}
	return &Indent{
		Left:      override(base.Left, over.Left),
		Right:     override(base.Right, over.Right),
		FirstLine: override(base.FirstLine, over.FirstLine),
		Hanging:   override(base.Hanging, over.Hanging),
	}
}

// MergeBorders merges per direction: an edge set by the base stage survives
// unless the overlay sets that same direction.
func MergeBorders(base, over *Borders) *Borders {
	if base == nil && over == nil {
		return nil
	}
	if base == nil {
		base = &Borders{}
	}
	if over == nil {
		over = &Borders{}
	}
	return &Borders{
		Top:     override(base.Top, over.Top),
		Bottom:  override(base.Bottom, over.Bottom),
		Left:    override(base.Left, over.Left),
		Right:   override(base.Right, over.Right),
		InsideH: override(base.InsideH, over.InsideH),
		InsideV: override(base.InsideV, over.InsideV),
	}
}

// MergeParagraph overlays over onto base.
func MergeParagraph(base, over *ParagraphProperties) *ParagraphProperties {
	if base == nil && over == nil {
		return &ParagraphProperties{}
	}
	if base == nil {
		base = &ParagraphProperties{}
	}
	if over == nil {
		over = &ParagraphProperties{}
	}
	tabs := make([]TabStop, 0, len(base.TabStops)+len(over.TabStops))
	tabs = append(tabs, base.TabStops...)
	tabs = append(tabs, over.TabStops...)
	if len(tabs) == 0 {
		tabs = nil
	}
	return &ParagraphProperties{
		StyleID:      override(base.StyleID, over.StyleID),
		Alignment:    override(base.Alignment, over.Alignment),
		Spacing:      MergeSpacing(base.Spacing, over.Spacing),
		Indent:       MergeIndent(base.Indent, over.Indent),
		TabStops:     tabs,
		Numbering:    override(base.Numbering, over.Numbering),
		Shading:      override(base.Shading, over.Shading),
		KeepNext:     override(base.KeepNext, over.KeepNext),
		KeepLines:    override(base.KeepLines, over.KeepLines),
		OutlineLevel: override(base.OutlineLevel, over.OutlineLevel),
	}
}

// MergeTable overlays over onto base.
func MergeTable(base, over *TableProperties) *TableProperties {
	if base == nil && over == nil {
		return &TableProperties{}
	}
	if base == nil {
		base = &TableProperties{}
	}
	if over == nil {
		over = &TableProperties{}
	}
	return &TableProperties{
		StyleID:     override(base.StyleID, over.StyleID),
		Look:        override(base.Look, over.Look),
		RowBandSize: override(base.RowBandSize, over.RowBandSize),
		ColBandSize: override(base.ColBandSize, over.ColBandSize),
		Borders:     MergeBorders(base.Borders, over.Borders),
		CellMargins: override(base.CellMargins, over.CellMargins),
		Indent:      override(base.Indent, over.Indent),
		Alignment:   override(base.Alignment, over.Alignment),
	}
}

// MergeCell overlays over onto base.
func MergeCell(base, over *TableCellProperties) *TableCellProperties {
	if base == nil && over == nil {
		return &TableCellProperties{}
	}
	if base == nil {
		base = &TableCellProperties{}
	}
	if over == nil {
		over = &TableCellProperties{}
	}
	return &TableCellProperties{
		Shading:       override(base.Shading, over.Shading),
		Borders:       MergeBorders(base.Borders, over.Borders),
		Margins:       override(base.Margins, over.Margins),
		VerticalAlign: override(base.VerticalAlign, over.VerticalAlign),
		Conditional:   override(base.Conditional, over.Conditional),
	}
}
