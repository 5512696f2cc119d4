package cascade

import (
	"regexp"

	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
)

// Table-of-Contents paragraph styles suppress the run's own character style.
var tocStylePattern = regexp.MustCompile(`^TOC\d+$`)

// RunSource says where a run came from, which changes how its inline
// properties cascade.
type RunSource struct {
	// NumberingGlyph marks the auto-generated list number run.
	NumberingGlyph bool
	// InlineNumbering is set when the paragraph carries its own numPr rather
	// than inheriting numbering from a style.
	InlineNumbering bool
}

// Resolver composes the chain, level and band resolvers into final property
// bags with Word's precedence rules. Stateless; safe for concurrent use.
type Resolver struct {
	styles *stylestore.StyleDefinitionStore
	chain  *ChainResolver
	levels *LevelResolver
	bands  BandSelector
}

// New builds a resolver over the two stores. Either store may be nil; a
// missing store simply contributes nothing.
func New(styles *stylestore.StyleDefinitionStore, nums *stylestore.NumberingDefinitionStore) *Resolver {
	return &Resolver{
		styles: styles,
		chain:  NewChainResolver(styles),
		levels: NewLevelResolver(nums),
	}
}

// Chain exposes the style-chain resolver.
func (r *Resolver) Chain() *ChainResolver { return r.chain }

// Levels exposes the numbering-level resolver.
func (r *Resolver) Levels() *LevelResolver { return r.levels }

// ResolveRun computes the effective run properties.
//
// Precedence, low to high: docDefaults, the default ("Normal") paragraph
// style, the paragraph style chain, the run's character style chain, the
// table conditional-format cascade, then the inline bag. Two exceptions:
//
//   - TOC paragraphs (style id TOC1..TOC9) skip the run's character style
//     entirely; the TOC paragraph style's run properties still apply.
//   - For the numbering glyph of a style-numbered paragraph the inline bag is
//     discarded and the numbering level's own run properties take its place,
//     so the generated number renders with the list-level formatting instead
//     of the paragraph mark's.
func (r *Resolver) ResolveRun(inline *props.RunProperties, para *props.ParagraphProperties, info *TableInfo, src RunSource) *props.RunProperties {
	bag := props.MergeRun(nil, r.styles.DocDefaults().Run)

	if normal := r.styles.DefaultStyle(stylestore.StyleTypeParagraph); normal != nil {
		bag = props.MergeRun(bag, r.chain.Run(normal.ID))
	}

	tocParagraph := false
	if para != nil && para.StyleID != nil {
		tocParagraph = tocStylePattern.MatchString(*para.StyleID)
		bag = props.MergeRun(bag, r.chain.Run(*para.StyleID))
	}

	if !tocParagraph && inline != nil && inline.StyleID != nil {
		bag = props.MergeRun(bag, r.chain.Run(*inline.StyleID))
	}

	if info != nil {
		for _, v := range r.bands.Select(info) {
			cs := r.tableVariant(info, v)
			if cs != nil && cs.Run != nil {
				bag = props.MergeRun(bag, cs.Run)
			}
		}
	}

	if src.NumberingGlyph && !src.InlineNumbering {
		if ref := r.effectiveNumbering(para); ref != nil && ref.NumID != nil {
			bag = props.MergeRun(bag, r.levels.Run(*ref.NumID, levelOf(ref)))
		}
		return bag
	}
	if inline != nil {
		bag = props.MergeRun(bag, inline)
	}
	return bag
}

// ResolveParagraph computes the effective paragraph properties.
//
// Precedence, low to high: docDefaults, Normal, the paragraph style chain,
// the table cascade, then the inline bag. When the paragraph carries inline
// numbering, the numbering level's indent replaces the merged indent outright
// — numbering indentation wins over every style-derived indent, including the
// basedOn ancestors'.
func (r *Resolver) ResolveParagraph(inline *props.ParagraphProperties, info *TableInfo) *props.ParagraphProperties {
	bag := props.MergeParagraph(nil, r.styles.DocDefaults().Paragraph)

	if normal := r.styles.DefaultStyle(stylestore.StyleTypeParagraph); normal != nil {
		bag = props.MergeParagraph(bag, r.chain.Paragraph(normal.ID))
	}

	if inline != nil && inline.StyleID != nil {
		bag = props.MergeParagraph(bag, r.chain.Paragraph(*inline.StyleID))
	}

	if info != nil {
		for _, v := range r.bands.Select(info) {
			cs := r.tableVariant(info, v)
			if cs != nil && cs.Paragraph != nil {
				bag = props.MergeParagraph(bag, cs.Paragraph)
			}
		}
	}

	if inline != nil {
		bag = props.MergeParagraph(bag, inline)
	}

	if inline != nil && inline.Numbering != nil && inline.Numbering.NumID != nil {
		lvl := r.levels.Paragraph(*inline.Numbering.NumID, levelOf(inline.Numbering))
		if lvl.Indent != nil {
			ind := *lvl.Indent
			bag.Indent = &ind
		}
	}
	return bag
}

// ResolveCell computes the effective table-cell properties: the table style
// chain's base cell bag, then the conditional-format cascade, then inline.
// Borders merge per direction across every stage, so a top border from the
// style survives alongside a bottom border set inline.
func (r *Resolver) ResolveCell(inline *props.TableCellProperties, info *TableInfo) *props.TableCellProperties {
	styleID := ""
	if info != nil && info.Table != nil && info.Table.StyleID != nil {
		styleID = *info.Table.StyleID
	}
	if inline == nil && styleID == "" {
		return &props.TableCellProperties{}
	}

	bag := &props.TableCellProperties{}
	if styleID != "" {
		bag = props.MergeCell(bag, r.chain.Cell(styleID))
		for _, v := range r.bands.Select(info) {
			cs := r.chain.Variant(styleID, v)
			if cs != nil && cs.Cell != nil {
				bag = props.MergeCell(bag, cs.Cell)
			}
		}
	}
	if inline != nil {
		bag = props.MergeCell(bag, inline)
	}
	return bag
}

// ResolveFontFamily extracts the ascii font name from an rFonts bag. Returns
// nil for a missing or empty bag; never fails.
func ResolveFontFamily(fonts *props.FontFamily) *string {
	if fonts == nil || fonts.ASCII == "" {
		return nil
	}
	name := fonts.ASCII
	return &name
}

// effectiveNumbering finds the numbering reference in play for a paragraph:
// its own numPr when present, otherwise the one inherited through its style
// chain.
func (r *Resolver) effectiveNumbering(para *props.ParagraphProperties) *props.NumberingRef {
	if para == nil {
		return nil
	}
	if para.Numbering != nil {
		return para.Numbering
	}
	if para.StyleID != nil {
		return r.chain.Paragraph(*para.StyleID).Numbering
	}
	return nil
}

func (r *Resolver) tableVariant(info *TableInfo, v stylestore.Variant) *stylestore.ConditionalStyle {
	if info.Table == nil || info.Table.StyleID == nil {
		return nil
	}
	return r.chain.Variant(*info.Table.StyleID, v)
}

func levelOf(ref *props.NumberingRef) int {
	if ref == nil || ref.Level == nil {
		return 0
	}
	return *ref.Level
}
