// Package cascade resolves effective formatting properties the way Word does:
// document defaults, then the default ("Normal") style, then the referenced
// style's basedOn chain, then table conditional formatting, then inline
// properties — with the handful of precedence exceptions Word applies on top
// (TOC character-style suppression, numbering-glyph formatting, numbering
// indent override).
//
// Everything in this package is a pure computation over the immutable stores;
// resolvers are safe for concurrent use.
package cascade

import (
	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
)

// ChainResolver walks a style's basedOn chain and merges one property
// category bottom-up: ancestor keys survive unless a descendant overrides
// them.
type ChainResolver struct {
	styles *stylestore.StyleDefinitionStore
}

// NewChainResolver wraps a style store. A nil store resolves everything to
// empty bags.
func NewChainResolver(styles *stylestore.StyleDefinitionStore) *ChainResolver {
	return &ChainResolver{styles: styles}
}

// Run resolves the merged run properties for styleID. Unknown ids contribute
// nothing.
func (r *ChainResolver) Run(styleID string) *props.RunProperties {
	return r.runChain(styleID, map[string]bool{})
}

func (r *ChainResolver) runChain(styleID string, seen map[string]bool) *props.RunProperties {
	def := r.styles.Style(styleID)
	// A revisited id means the basedOn chain loops; stop without re-applying.
	if def == nil || seen[styleID] {
		return &props.RunProperties{}
	}
	seen[styleID] = true
	base := &props.RunProperties{}
	if def.BasedOn != "" {
		base = r.runChain(def.BasedOn, seen)
	}
	return props.MergeRun(base, def.Run)
}

// Paragraph resolves the merged paragraph properties for styleID.
func (r *ChainResolver) Paragraph(styleID string) *props.ParagraphProperties {
	return r.paragraphChain(styleID, map[string]bool{})
}

func (r *ChainResolver) paragraphChain(styleID string, seen map[string]bool) *props.ParagraphProperties {
	def := r.styles.Style(styleID)
	if def == nil || seen[styleID] {
		return &props.ParagraphProperties{}
	}
	seen[styleID] = true
	base := &props.ParagraphProperties{}
	if def.BasedOn != "" {
		base = r.paragraphChain(def.BasedOn, seen)
	}
	return props.MergeParagraph(base, def.Paragraph)
}

// Table resolves the merged table properties for styleID.
func (r *ChainResolver) Table(styleID string) *props.TableProperties {
	return r.tableChain(styleID, map[string]bool{})
}

func (r *ChainResolver) tableChain(styleID string, seen map[string]bool) *props.TableProperties {
	def := r.styles.Style(styleID)
	if def == nil || seen[styleID] {
		return &props.TableProperties{}
	}
	seen[styleID] = true
	base := &props.TableProperties{}
	if def.BasedOn != "" {
		base = r.tableChain(def.BasedOn, seen)
	}
	return props.MergeTable(base, def.Table)
}

// Cell resolves the merged table-cell properties for styleID.
func (r *ChainResolver) Cell(styleID string) *props.TableCellProperties {
	return r.cellChain(styleID, map[string]bool{})
}

func (r *ChainResolver) cellChain(styleID string, seen map[string]bool) *props.TableCellProperties {
	def := r.styles.Style(styleID)
	if def == nil || seen[styleID] {
		return &props.TableCellProperties{}
	}
	seen[styleID] = true
	base := &props.TableCellProperties{}
	if def.BasedOn != "" {
		base = r.cellChain(def.BasedOn, seen)
	}
	return props.MergeCell(base, def.Cell)
}

// Variant resolves one conditional-format variant of a table style across the
// basedOn chain. Returns nil when no style on the chain defines the variant.
func (r *ChainResolver) Variant(styleID string, v stylestore.Variant) *stylestore.ConditionalStyle {
	return r.variantChain(styleID, v, map[string]bool{})
}

func (r *ChainResolver) variantChain(styleID string, v stylestore.Variant, seen map[string]bool) *stylestore.ConditionalStyle {
	def := r.styles.Style(styleID)
	if def == nil || seen[styleID] {
		return nil
	}
	seen[styleID] = true
	var base *stylestore.ConditionalStyle
	if def.BasedOn != "" {
		base = r.variantChain(def.BasedOn, v, seen)
	}
	own := def.TableVariants[v]
	if own == nil {
		return base
	}
	if base == nil {
		return own
	}
	return &stylestore.ConditionalStyle{
		Run:       props.MergeRun(base.Run, own.Run),
		Paragraph: props.MergeParagraph(base.Paragraph, own.Paragraph),
		Table:     props.MergeTable(base.Table, own.Table),
		Cell:      props.MergeCell(base.Cell, own.Cell),
	}
}
