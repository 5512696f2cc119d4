// Package props defines the per-category property bags that flow through the
// style cascade, and the merge rules between them.
//
// Merge semantics are deliberately explicit per field rather than a generic
// deep merge: top-level values are replaced by the more specific source,
// spacing/indent/borders merge key-by-key inside the nested object, and tab
// stops accumulate across cascade stages instead of replacing.
package props

// FontFamily is the rFonts attribute group.
type FontFamily struct {
	ASCII    string `json:"ascii,omitempty"`
	HAnsi    string `json:"hAnsi,omitempty"`
	EastAsia string `json:"eastAsia,omitempty"`
	CS       string `json:"cs,omitempty"`
}

// RunProperties is the resolved or partial rPr bag.
type RunProperties struct {
	StyleID   *string     `json:"styleId,omitempty"` // referenced character style (rStyle)
	Bold      *bool       `json:"bold,omitempty"`
	Italic    *bool       `json:"italic,omitempty"`
	Underline *string     `json:"underline,omitempty"` // single, double, none, ...
	Strike    *bool       `json:"strike,omitempty"`
	Caps      *bool       `json:"caps,omitempty"`
	SmallCaps *bool       `json:"smallCaps,omitempty"`
	Color     *string     `json:"color,omitempty"` // hex RGB, no leading #
	Highlight *string     `json:"highlight,omitempty"`
	FontSize  *int        `json:"fontSize,omitempty"` // half-points (w:sz)
	VertAlign *string     `json:"vertAlign,omitempty"`
	Fonts     *FontFamily `json:"fonts,omitempty"`
	Shading   *Shading    `json:"shading,omitempty"`
}

// Spacing is the pPr spacing group. Values are twentieths of a point.
type Spacing struct {
	Before   *int    `json:"before,omitempty"`
	After    *int    `json:"after,omitempty"`
	Line     *int    `json:"line,omitempty"`
	LineRule *string `json:"lineRule,omitempty"`
}

// Indent is the pPr indentation group. Values are twentieths of a point.
type Indent struct {
	Left      *int `json:"left,omitempty"`
	Right     *int `json:"right,omitempty"`
	FirstLine *int `json:"firstLine,omitempty"`
	Hanging   *int `json:"hanging,omitempty"`
}

// TabStop is one w:tab entry. Tab stops concatenate across cascade stages.
type TabStop struct {
	Pos    int    `json:"pos"`
	Val    string `json:"val,omitempty"`    // left, center, right, decimal, clear
	Leader string `json:"leader,omitempty"` // dot, hyphen, underscore, ...
}

// NumberingRef is the pPr numPr group: which numbering definition and level a
// paragraph participates in.
type NumberingRef struct {
	NumID *string `json:"numId,omitempty"`
	Level *int    `json:"level,omitempty"`
}

// Shading is a w:shd fill.
type Shading struct {
	Fill    string `json:"fill,omitempty"`
	Color   string `json:"color,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// ParagraphProperties is the resolved or partial pPr bag.
type ParagraphProperties struct {
	StyleID      *string       `json:"styleId,omitempty"` // referenced paragraph style (pStyle)
	Alignment    *string       `json:"alignment,omitempty"`
	Spacing      *Spacing      `json:"spacing,omitempty"`
	Indent       *Indent       `json:"indent,omitempty"`
	TabStops     []TabStop     `json:"tabStops,omitempty"`
	Numbering    *NumberingRef `json:"numbering,omitempty"`
	Shading      *Shading      `json:"shading,omitempty"`
	KeepNext     *bool         `json:"keepNext,omitempty"`
	KeepLines    *bool         `json:"keepLines,omitempty"`
	OutlineLevel *int          `json:"outlineLevel,omitempty"`
}

// BorderEdge is one side of a border group.
type BorderEdge struct {
	Val   string `json:"val,omitempty"` // single, double, dashed, nil, ...
	Size  *int   `json:"size,omitempty"`
	Space *int   `json:"space,omitempty"`
	Color string `json:"color,omitempty"`
}

// Borders is a per-direction border group. Directions merge independently
// across cascade stages: a later stage setting only bottom leaves an earlier
// stage's top in place.
type Borders struct {
	Top     *BorderEdge `json:"top,omitempty"`
	Bottom  *BorderEdge `json:"bottom,omitempty"`
	Left    *BorderEdge `json:"left,omitempty"`
	Right   *BorderEdge `json:"right,omitempty"`
	InsideH *BorderEdge `json:"insideH,omitempty"`
	InsideV *BorderEdge `json:"insideV,omitempty"`
}

// CellMargins is the tcMar group. Values are twentieths of a point.
type CellMargins struct {
	Top    *int `json:"top,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
	Left   *int `json:"left,omitempty"`
	Right  *int `json:"right,omitempty"`
}

// TableLook is the tblLook flag set selecting which conditional-format
// variants of a table style are in play.
type TableLook struct {
	FirstRow    bool `json:"firstRow,omitempty"`
	LastRow     bool `json:"lastRow,omitempty"`
	FirstColumn bool `json:"firstColumn,omitempty"`
	LastColumn  bool `json:"lastColumn,omitempty"`
	NoHBand     bool `json:"noHBand,omitempty"`
	NoVBand     bool `json:"noVBand,omitempty"`
}

// ConditionalFormat is a cnfStyle override carried on a cell or row. A nil
// field means "no opinion"; enablement falls through to the next scope.
type ConditionalFormat struct {
	FirstRow    *bool `json:"firstRow,omitempty"`
	LastRow     *bool `json:"lastRow,omitempty"`
	FirstColumn *bool `json:"firstColumn,omitempty"`
	LastColumn  *bool `json:"lastColumn,omitempty"`
}

// TableProperties is the resolved or partial tblPr bag.
type TableProperties struct {
	StyleID     *string      `json:"styleId,omitempty"`
	Look        *TableLook   `json:"look,omitempty"`
	RowBandSize *int         `json:"rowBandSize,omitempty"`
	ColBandSize *int         `json:"colBandSize,omitempty"`
	Borders     *Borders     `json:"borders,omitempty"`
	CellMargins *CellMargins `json:"cellMargins,omitempty"`
	Indent      *int         `json:"indent,omitempty"`
	Alignment   *string      `json:"alignment,omitempty"`
}

// TableCellProperties is the resolved or partial tcPr bag.
type TableCellProperties struct {
	Shading       *Shading           `json:"shading,omitempty"`
	Borders       *Borders           `json:"borders,omitempty"`
	Margins       *CellMargins       `json:"margins,omitempty"`
	VerticalAlign *string            `json:"verticalAlign,omitempty"`
	Conditional   *ConditionalFormat `json:"conditional,omitempty"`
}

// IsEmpty reports whether no run property is set.
func (p *RunProperties) IsEmpty() bool {
	if p == nil {
		return true
	}
	return *p == RunProperties{}
}

// IsEmpty reports whether no paragraph property is set.
func (p *ParagraphProperties) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.StyleID == nil && p.Alignment == nil && p.Spacing == nil &&
		p.Indent == nil && len(p.TabStops) == 0 && p.Numbering == nil &&
		p.Shading == nil && p.KeepNext == nil && p.KeepLines == nil &&
		p.OutlineLevel == nil
}
