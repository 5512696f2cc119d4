// Package stylestore holds the parsed style and numbering definition tables
// for one document. Stores are built once per document load and never mutated
// afterwards, which is what makes the resolvers in internal/cascade safe to
// call concurrently.
package stylestore

import "github.com/dgallion1/stylecast/internal/props"

// StyleType is the w:style type attribute.
type StyleType string

const (
	StyleTypeParagraph StyleType = "paragraph"
	StyleTypeCharacter StyleType = "character"
	StyleTypeTable     StyleType = "table"
	StyleTypeNumbering StyleType = "numbering"
)

// Variant names one conditional-format slice of a table style (w:tblStylePr
// type attribute).
type Variant string

const (
	VariantWholeTable Variant = "wholeTable"
	VariantBand1Horz  Variant = "band1Horz"
	VariantBand2Horz  Variant = "band2Horz"
	VariantBand1Vert  Variant = "band1Vert"
	VariantBand2Vert  Variant = "band2Vert"
	VariantFirstRow   Variant = "firstRow"
	VariantLastRow    Variant = "lastRow"
	VariantFirstCol   Variant = "firstCol"
	VariantLastCol    Variant = "lastCol"
	VariantNWCell     Variant = "nwCell"
	VariantNECell     Variant = "neCell"
	VariantSWCell     Variant = "swCell"
	VariantSECell     Variant = "seCell"
)

// ConditionalStyle is the partial property set a table style carries for one
// variant.
type ConditionalStyle struct {
	Run       *props.RunProperties
	Paragraph *props.ParagraphProperties
	Table     *props.TableProperties
	Cell      *props.TableCellProperties
}

// StyleDefinition is one named style from styles.xml.
type StyleDefinition struct {
	ID      string
	Name    string
	Type    StyleType
	BasedOn string // empty when the style has no parent
	Default bool   // w:default="1"

	Run       *props.RunProperties
	Paragraph *props.ParagraphProperties
	Table     *props.TableProperties
	Cell      *props.TableCellProperties

	// TableVariants maps conditional-format variant name to its partial
	// property bags. Only table styles carry these.
	TableVariants map[Variant]*ConditionalStyle
}

// DocDefaults are the document-wide fallback properties applied before any
// named style.
type DocDefaults struct {
	Run       *props.RunProperties
	Paragraph *props.ParagraphProperties
}

// LatentStyle is a latent-style exception entry. Latent styles never
// participate in the basedOn chain; they are kept for round-tripping and
// priority queries.
type LatentStyle struct {
	Name           string
	UIPriority     *int
	SemiHidden     bool
	UnhideWhenUsed bool
	QFormat        bool
}

// StyleDefinitionStore is the immutable named-style table for one document.
type StyleDefinitionStore struct {
	defaults DocDefaults
	latent   []LatentStyle
	byID     map[string]*StyleDefinition
}

// NewStyleDefinitionStore builds a store from parsed definitions. The slices
// and maps are copied shallowly; callers must not mutate the definitions
// afterwards.
func NewStyleDefinitionStore(defaults DocDefaults, latent []LatentStyle, styles []*StyleDefinition) *StyleDefinitionStore {
	byID := make(map[string]*StyleDefinition, len(styles))
	for _, s := range styles {
		if s != nil && s.ID != "" {
			byID[s.ID] = s
		}
	}
	return &StyleDefinitionStore{
		defaults: defaults,
		latent:   latent,
		byID:     byID,
	}
}

// DocDefaults returns the document-wide fallback bags.
func (s *StyleDefinitionStore) DocDefaults() DocDefaults {
	if s == nil {
		return DocDefaults{}
	}
	return s.defaults
}

// LatentStyles returns the latent-style table.
func (s *StyleDefinitionStore) LatentStyles() []LatentStyle {
	if s == nil {
		return nil
	}
	return s.latent
}

// Style looks up a style by id. Returns nil when the id is unknown; a missing
// style contributes nothing to the cascade.
func (s *StyleDefinitionStore) Style(id string) *StyleDefinition {
	if s == nil || id == "" {
		return nil
	}
	return s.byID[id]
}

// DefaultStyle returns the style flagged default for the given type, or, if
// none is flagged, the style literally named "Normal" for paragraph styles.
func (s *StyleDefinitionStore) DefaultStyle(t StyleType) *StyleDefinition {
	if s == nil {
		return nil
	}
	for _, def := range s.byID {
		if def.Default && def.Type == t {
			return def
		}
	}
	if t == StyleTypeParagraph {
		return s.byID["Normal"]
	}
	return nil
}

// Len returns the number of named styles.
func (s *StyleDefinitionStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byID)
}
