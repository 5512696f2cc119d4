package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/dgallion1/stylecast/internal/stylestore"
)

type xmlStyles struct {
	XMLName      xml.Name         `xml:"styles"`
	DocDefaults  *xmlDocDefaults  `xml:"docDefaults"`
	LatentStyles *xmlLatentStyles `xml:"latentStyles"`
	Styles       []xmlStyle       `xml:"style"`
}

type xmlDocDefaults struct {
	RPrDefault *struct {
		RPr *xmlRPr `xml:"rPr"`
	} `xml:"rPrDefault"`
	PPrDefault *struct {
		PPr *xmlPPr `xml:"pPr"`
	} `xml:"pPrDefault"`
}

type xmlLatentStyles struct {
	Exceptions []xmlLsdException `xml:"lsdException"`
}

type xmlLsdException struct {
	Name           string `xml:"name,attr"`
	UIPriority     string `xml:"uiPriority,attr"`
	SemiHidden     string `xml:"semiHidden,attr"`
	UnhideWhenUsed string `xml:"unhideWhenUsed,attr"`
	QFormat        string `xml:"qFormat,attr"`
}

type xmlStyle struct {
	Type     string       `xml:"type,attr"`
	StyleID  string       `xml:"styleId,attr"`
	Default  string       `xml:"default,attr"`
	Name     *xmlVal      `xml:"name"`
	BasedOn  *xmlVal      `xml:"basedOn"`
	RPr      *xmlRPr      `xml:"rPr"`
	PPr      *xmlPPr      `xml:"pPr"`
	TblPr    *xmlTblPr    `xml:"tblPr"`
	TcPr     *xmlTcPr     `xml:"tcPr"`
	Variants []xmlVariant `xml:"tblStylePr"`
}

type xmlVariant struct {
	Type  string    `xml:"type,attr"`
	RPr   *xmlRPr   `xml:"rPr"`
	PPr   *xmlPPr   `xml:"pPr"`
	TblPr *xmlTblPr `xml:"tblPr"`
	TcPr  *xmlTcPr  `xml:"tcPr"`
}

// ParseStyles decodes a styles.xml stream into an immutable style store.
func ParseStyles(r io.Reader) (*stylestore.StyleDefinitionStore, error) {
	var raw xmlStyles
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode styles.xml: %w", err)
	}

	var defaults stylestore.DocDefaults
	if raw.DocDefaults != nil {
		if raw.DocDefaults.RPrDefault != nil {
			defaults.Run = convertRPr(raw.DocDefaults.RPrDefault.RPr)
		}
		if raw.DocDefaults.PPrDefault != nil {
			defaults.Paragraph = convertPPr(raw.DocDefaults.PPrDefault.PPr)
		}
	}

	var latent []stylestore.LatentStyle
	if raw.LatentStyles != nil {
		for _, e := range raw.LatentStyles.Exceptions {
			ls := stylestore.LatentStyle{Name: e.Name, UIPriority: atoiPtr(e.UIPriority)}
			if v, ok := attrBool(e.SemiHidden); ok {
				ls.SemiHidden = v
			}
			if v, ok := attrBool(e.UnhideWhenUsed); ok {
				ls.UnhideWhenUsed = v
			}
			if v, ok := attrBool(e.QFormat); ok {
				ls.QFormat = v
			}
			latent = append(latent, ls)
		}
	}

	styles := make([]*stylestore.StyleDefinition, 0, len(raw.Styles))
	for _, s := range raw.Styles {
		def := &stylestore.StyleDefinition{
			ID:        s.StyleID,
			Type:      stylestore.StyleType(s.Type),
			Run:       convertRPr(s.RPr),
			Paragraph: convertPPr(s.PPr),
			Table:     convertTblPr(s.TblPr),
			Cell:      convertTcPr(s.TcPr),
		}
		if s.Name != nil {
			def.Name = s.Name.Val
		}
		if s.BasedOn != nil {
			def.BasedOn = s.BasedOn.Val
		}
		if v, ok := attrBool(s.Default); ok {
			def.Default = v
		}
		for _, vnt := range s.Variants {
			if vnt.Type == "" {
				continue
			}
			if def.TableVariants == nil {
				def.TableVariants = make(map[stylestore.Variant]*stylestore.ConditionalStyle)
			}
			def.TableVariants[stylestore.Variant(vnt.Type)] = &stylestore.ConditionalStyle{
				Run:       convertRPr(vnt.RPr),
				Paragraph: convertPPr(vnt.PPr),
				Table:     convertTblPr(vnt.TblPr),
				Cell:      convertTcPr(vnt.TcPr),
			}
		}
		styles = append(styles, def)
	}

	return stylestore.NewStyleDefinitionStore(defaults, latent, styles), nil
}
