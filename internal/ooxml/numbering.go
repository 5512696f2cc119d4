package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/dgallion1/stylecast/internal/stylestore"
)

type xmlNumbering struct {
	XMLName      xml.Name         `xml:"numbering"`
	AbstractNums []xmlAbstractNum `xml:"abstractNum"`
	Nums         []xmlNum         `xml:"num"`
}

type xmlAbstractNum struct {
	AbstractNumID string   `xml:"abstractNumId,attr"`
	Levels        []xmlLvl `xml:"lvl"`
}

type xmlLvl struct {
	Ilvl    string  `xml:"ilvl,attr"`
	Start   *xmlVal `xml:"start"`
	Restart *xmlVal `xml:"lvlRestart"`
	NumFmt  *xmlVal `xml:"numFmt"`
	LvlText *xmlVal `xml:"lvlText"`
	Suffix  *xmlVal `xml:"suff"`
	PStyle  *xmlVal `xml:"pStyle"`
	PPr     *xmlPPr `xml:"pPr"`
	RPr     *xmlRPr `xml:"rPr"`
}

type xmlNum struct {
	NumID         string           `xml:"numId,attr"`
	AbstractNumID *xmlVal          `xml:"abstractNumId"`
	Overrides     []xmlLvlOverride `xml:"lvlOverride"`
}

type xmlLvlOverride struct {
	Ilvl          string  `xml:"ilvl,attr"`
	StartOverride *xmlVal `xml:"startOverride"`
	Lvl           *xmlLvl `xml:"lvl"`
}

func convertLvl(x xmlLvl, level int) *stylestore.LevelDefinition {
	def := &stylestore.LevelDefinition{
		Level:     level,
		Paragraph: convertPPr(x.PPr),
		Run:       convertRPr(x.RPr),
		StyleID:   strPtr(x.PStyle),
	}
	if x.Start != nil {
		def.Start = atoiPtr(x.Start.Val)
	}
	if x.Restart != nil {
		def.Restart = atoiPtr(x.Restart.Val)
	}
	if x.NumFmt != nil {
		def.NumberingType = x.NumFmt.Val
	}
	if x.Suffix != nil {
		def.Suffix = x.Suffix.Val
	}
	if x.LvlText != nil {
		def.Text = x.LvlText.Val
	}
	return def
}

// ParseNumbering decodes a numbering.xml stream into an immutable numbering
// store.
func ParseNumbering(r io.Reader) (*stylestore.NumberingDefinitionStore, error) {
	var raw xmlNumbering
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode numbering.xml: %w", err)
	}

	abstracts := make([]*stylestore.AbstractNumberingDefinition, 0, len(raw.AbstractNums))
	for _, a := range raw.AbstractNums {
		abs := &stylestore.AbstractNumberingDefinition{
			ID:     a.AbstractNumID,
			Levels: make(map[int]*stylestore.LevelDefinition, len(a.Levels)),
		}
		for _, l := range a.Levels {
			lv := atoiPtr(l.Ilvl)
			if lv == nil || *lv < 0 || *lv > stylestore.MaxLevel {
				continue
			}
			abs.Levels[*lv] = convertLvl(l, *lv)
		}
		abstracts = append(abstracts, abs)
	}

	nums := make([]*stylestore.NumberingDefinition, 0, len(raw.Nums))
	for _, n := range raw.Nums {
		def := &stylestore.NumberingDefinition{NumID: n.NumID}
		if n.AbstractNumID != nil {
			def.AbstractNumID = n.AbstractNumID.Val
		}
		for _, o := range n.Overrides {
			lv := atoiPtr(o.Ilvl)
			if lv == nil || *lv < 0 || *lv > stylestore.MaxLevel {
				continue
			}
			var over *stylestore.LevelDefinition
			if o.Lvl != nil {
				over = convertLvl(*o.Lvl, *lv)
			} else {
				over = &stylestore.LevelDefinition{Level: *lv}
			}
			if o.StartOverride != nil {
				over.Start = atoiPtr(o.StartOverride.Val)
				over.StartOverridden = true
			}
			if def.LvlOverrides == nil {
				def.LvlOverrides = make(map[int]*stylestore.LevelDefinition)
			}
			def.LvlOverrides[*lv] = over
		}
		nums = append(nums, def)
	}

	return stylestore.NewNumberingDefinitionStore(abstracts, nums), nil
}
