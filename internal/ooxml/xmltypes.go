package ooxml

import (
	"strconv"
	"strings"

	"github.com/dgallion1/stylecast/internal/props"
)

// Raw OOXML elements. encoding/xml matches by local name, so the w: prefix
// never appears in the tags.

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlToggle struct {
	Val string `xml:"val,attr"`
}

// on reports a toggle element's state: presence means on unless val says
// otherwise.
func (t *xmlToggle) on() *bool {
	if t == nil {
		return nil
	}
	v := true
	switch strings.ToLower(t.Val) {
	case "0", "false", "off", "none":
		v = false
	}
	return &v
}

type xmlFonts struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	EastAsia string `xml:"eastAsia,attr"`
	CS       string `xml:"cs,attr"`
}

type xmlShd struct {
	Val   string `xml:"val,attr"`
	Fill  string `xml:"fill,attr"`
	Color string `xml:"color,attr"`
}

type xmlRPr struct {
	Style     *xmlVal    `xml:"rStyle"`
	Bold      *xmlToggle `xml:"b"`
	Italic    *xmlToggle `xml:"i"`
	Underline *xmlVal    `xml:"u"`
	Strike    *xmlToggle `xml:"strike"`
	Caps      *xmlToggle `xml:"caps"`
	SmallCaps *xmlToggle `xml:"smallCaps"`
	Color     *xmlVal    `xml:"color"`
	Highlight *xmlVal    `xml:"highlight"`
	Size      *xmlVal    `xml:"sz"`
	VertAlign *xmlVal    `xml:"vertAlign"`
	Fonts     *xmlFonts  `xml:"rFonts"`
	Shd       *xmlShd    `xml:"shd"`
}

type xmlSpacing struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

type xmlInd struct {
	Left      string `xml:"left,attr"`
	Start     string `xml:"start,attr"`
	Right     string `xml:"right,attr"`
	End       string `xml:"end,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

type xmlTab struct {
	Val    string `xml:"val,attr"`
	Pos    string `xml:"pos,attr"`
	Leader string `xml:"leader,attr"`
}

type xmlNumPr struct {
	Ilvl  *xmlVal `xml:"ilvl"`
	NumID *xmlVal `xml:"numId"`
}

type xmlPPr struct {
	Style      *xmlVal     `xml:"pStyle"`
	Jc         *xmlVal     `xml:"jc"`
	Spacing    *xmlSpacing `xml:"spacing"`
	Ind        *xmlInd     `xml:"ind"`
	Tabs       []xmlTab    `xml:"tabs>tab"`
	NumPr      *xmlNumPr   `xml:"numPr"`
	Shd        *xmlShd     `xml:"shd"`
	KeepNext   *xmlToggle  `xml:"keepNext"`
	KeepLines  *xmlToggle  `xml:"keepLines"`
	OutlineLvl *xmlVal     `xml:"outlineLvl"`
}

type xmlBorderEdge struct {
	Val   string `xml:"val,attr"`
	Sz    string `xml:"sz,attr"`
	Space string `xml:"space,attr"`
	Color string `xml:"color,attr"`
}

type xmlBorders struct {
	Top     *xmlBorderEdge `xml:"top"`
	Bottom  *xmlBorderEdge `xml:"bottom"`
	Left    *xmlBorderEdge `xml:"left"`
	Right   *xmlBorderEdge `xml:"right"`
	InsideH *xmlBorderEdge `xml:"insideH"`
	InsideV *xmlBorderEdge `xml:"insideV"`
}

type xmlWidth struct {
	W string `xml:"w,attr"`
}

type xmlMargins struct {
	Top    *xmlWidth `xml:"top"`
	Bottom *xmlWidth `xml:"bottom"`
	Left   *xmlWidth `xml:"left"`
	Right  *xmlWidth `xml:"right"`
}

type xmlTblLook struct {
	Val         string `xml:"val,attr"`
	FirstRow    string `xml:"firstRow,attr"`
	LastRow     string `xml:"lastRow,attr"`
	FirstColumn string `xml:"firstColumn,attr"`
	LastColumn  string `xml:"lastColumn,attr"`
	NoHBand     string `xml:"noHBand,attr"`
	NoVBand     string `xml:"noVBand,attr"`
}

type xmlTblPr struct {
	Style       *xmlVal     `xml:"tblStyle"`
	RowBandSize *xmlVal     `xml:"tblStyleRowBandSize"`
	ColBandSize *xmlVal     `xml:"tblStyleColBandSize"`
	Borders     *xmlBorders `xml:"tblBorders"`
	CellMar     *xmlMargins `xml:"tblCellMar"`
	Ind         *xmlWidth   `xml:"tblInd"`
	Jc          *xmlVal     `xml:"jc"`
	Look        *xmlTblLook `xml:"tblLook"`
}

type xmlTcPr struct {
	Shd      *xmlShd     `xml:"shd"`
	Borders  *xmlBorders `xml:"tcBorders"`
	Margins  *xmlMargins `xml:"tcMar"`
	VAlign   *xmlVal     `xml:"vAlign"`
	CnfStyle *xmlVal     `xml:"cnfStyle"`
}

func atoiPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func strPtr(v *xmlVal) *string {
	if v == nil || v.Val == "" {
		return nil
	}
	s := v.Val
	return &s
}

func attrBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "true", "on":
		return true, true
	case "0", "false", "off":
		return false, true
	}
	return false, false
}

func convertRPr(x *xmlRPr) *props.RunProperties {
	if x == nil {
		return nil
	}
	out := &props.RunProperties{
		StyleID:   strPtr(x.Style),
		Bold:      x.Bold.on(),
		Italic:    x.Italic.on(),
		Underline: strPtr(x.Underline),
		Strike:    x.Strike.on(),
		Caps:      x.Caps.on(),
		SmallCaps: x.SmallCaps.on(),
		Color:     strPtr(x.Color),
		Highlight: strPtr(x.Highlight),
		VertAlign: strPtr(x.VertAlign),
	}
	if x.Size != nil {
		out.FontSize = atoiPtr(x.Size.Val)
	}
	if x.Fonts != nil {
		out.Fonts = &props.FontFamily{
			ASCII:    x.Fonts.ASCII,
			HAnsi:    x.Fonts.HAnsi,
			EastAsia: x.Fonts.EastAsia,
			CS:       x.Fonts.CS,
		}
	}
	out.Shading = convertShd(x.Shd)
	return out
}

func convertShd(x *xmlShd) *props.Shading {
	if x == nil {
		return nil
	}
	return &props.Shading{Fill: x.Fill, Color: x.Color, Pattern: x.Val}
}

func convertPPr(x *xmlPPr) *props.ParagraphProperties {
	if x == nil {
		return nil
	}
	out := &props.ParagraphProperties{
		StyleID:   strPtr(x.Style),
		Alignment: strPtr(x.Jc),
		Shading:   convertShd(x.Shd),
		KeepNext:  x.KeepNext.on(),
		KeepLines: x.KeepLines.on(),
	}
	if x.OutlineLvl != nil {
		out.OutlineLevel = atoiPtr(x.OutlineLvl.Val)
	}
	if x.Spacing != nil {
		out.Spacing = &props.Spacing{
			Before: atoiPtr(x.Spacing.Before),
			After:  atoiPtr(x.Spacing.After),
			Line:   atoiPtr(x.Spacing.Line),
		}
		if x.Spacing.LineRule != "" {
			lr := x.Spacing.LineRule
			out.Spacing.LineRule = &lr
		}
	}
	if x.Ind != nil {
		left := x.Ind.Left
		if left == "" {
			left = x.Ind.Start
		}
		right := x.Ind.Right
		if right == "" {
			right = x.Ind.End
		}
		out.Indent = &props.Indent{
			Left:      atoiPtr(left),
			Right:     atoiPtr(right),
			FirstLine: atoiPtr(x.Ind.FirstLine),
			Hanging:   atoiPtr(x.Ind.Hanging),
		}
	}
	for _, t := range x.Tabs {
		pos := atoiPtr(t.Pos)
		stop := props.TabStop{Val: t.Val, Leader: t.Leader}
		if pos != nil {
			stop.Pos = *pos
		}
		out.TabStops = append(out.TabStops, stop)
	}
	if x.NumPr != nil {
		ref := &props.NumberingRef{NumID: strPtr(x.NumPr.NumID)}
		if x.NumPr.Ilvl != nil {
			ref.Level = atoiPtr(x.NumPr.Ilvl.Val)
		}
		out.Numbering = ref
	}
	return out
}

func convertEdge(x *xmlBorderEdge) *props.BorderEdge {
	if x == nil {
		return nil
	}
	return &props.BorderEdge{
		Val:   x.Val,
		Size:  atoiPtr(x.Sz),
		Space: atoiPtr(x.Space),
		Color: x.Color,
	}
}

func convertBorders(x *xmlBorders) *props.Borders {
	if x == nil {
		return nil
	}
	return &props.Borders{
		Top:     convertEdge(x.Top),
		Bottom:  convertEdge(x.Bottom),
		Left:    convertEdge(x.Left),
		Right:   convertEdge(x.Right),
		InsideH: convertEdge(x.InsideH),
		InsideV: convertEdge(x.InsideV),
	}
}

func convertMargins(x *xmlMargins) *props.CellMargins {
	if x == nil {
		return nil
	}
	out := &props.CellMargins{}
	if x.Top != nil {
		out.Top = atoiPtr(x.Top.W)
	}
	if x.Bottom != nil {
		out.Bottom = atoiPtr(x.Bottom.W)
	}
	if x.Left != nil {
		out.Left = atoiPtr(x.Left.W)
	}
	if x.Right != nil {
		out.Right = atoiPtr(x.Right.W)
	}
	return out
}

// tblLook val bitmask, used by documents that predate the attribute form.
const (
	lookFirstRow    = 0x0020
	lookLastRow     = 0x0040
	lookFirstColumn = 0x0080
	lookLastColumn  = 0x0100
	lookNoHBand     = 0x0200
	lookNoVBand     = 0x0400
)

func convertLook(x *xmlTblLook) *props.TableLook {
	if x == nil {
		return nil
	}
	out := &props.TableLook{}
	attrSeen := false
	set := func(dst *bool, raw string) {
		if v, ok := attrBool(raw); ok {
			*dst = v
			attrSeen = true
		}
	}
	set(&out.FirstRow, x.FirstRow)
	set(&out.LastRow, x.LastRow)
	set(&out.FirstColumn, x.FirstColumn)
	set(&out.LastColumn, x.LastColumn)
	set(&out.NoHBand, x.NoHBand)
	set(&out.NoVBand, x.NoVBand)
	if !attrSeen && x.Val != "" {
		if mask, err := strconv.ParseUint(x.Val, 16, 32); err == nil {
			out.FirstRow = mask&lookFirstRow != 0
			out.LastRow = mask&lookLastRow != 0
			out.FirstColumn = mask&lookFirstColumn != 0
			out.LastColumn = mask&lookLastColumn != 0
			out.NoHBand = mask&lookNoHBand != 0
			out.NoVBand = mask&lookNoVBand != 0
		}
	}
	return out
}

func convertTblPr(x *xmlTblPr) *props.TableProperties {
	if x == nil {
		return nil
	}
	out := &props.TableProperties{
		StyleID:   strPtr(x.Style),
		Look:      convertLook(x.Look),
		Borders:   convertBorders(x.Borders),
		Alignment: strPtr(x.Jc),
	}
	if x.RowBandSize != nil {
		out.RowBandSize = atoiPtr(x.RowBandSize.Val)
	}
	if x.ColBandSize != nil {
		out.ColBandSize = atoiPtr(x.ColBandSize.Val)
	}
	if x.Ind != nil {
		out.Indent = atoiPtr(x.Ind.W)
	}
	out.CellMargins = convertMargins(x.CellMar)
	return out
}

// cnfStyle val is a 12-bit string; the first four bits are firstRow, lastRow,
// firstColumn, lastColumn.
func convertCnf(x *xmlVal) *props.ConditionalFormat {
	if x == nil || len(x.Val) < 4 {
		return nil
	}
	bit := func(i int) *bool {
		v := x.Val[i] == '1'
		return &v
	}
	return &props.ConditionalFormat{
		FirstRow:    bit(0),
		LastRow:     bit(1),
		FirstColumn: bit(2),
		LastColumn:  bit(3),
	}
}

func convertTcPr(x *xmlTcPr) *props.TableCellProperties {
	if x == nil {
		return nil
	}
	return &props.TableCellProperties{
		Shading:       convertShd(x.Shd),
		Borders:       convertBorders(x.Borders),
		Margins:       convertMargins(x.Margins),
		VerticalAlign: strPtr(x.VAlign),
		Conditional:   convertCnf(x.CnfStyle),
	}
}
