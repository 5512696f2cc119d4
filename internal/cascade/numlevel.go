package cascade

import (
	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
)

// LevelResolver resolves one numbering level's property bags: the abstract
// definition's level with any lvlOverride applied on top.
type LevelResolver struct {
	nums *stylestore.NumberingDefinitionStore
}

// NewLevelResolver wraps a numbering store. A nil store resolves everything
// to empty bags.
func NewLevelResolver(nums *stylestore.NumberingDefinitionStore) *LevelResolver {
	return &LevelResolver{nums: nums}
}

// Run returns the run properties for numID's given level. Unknown numbering
// definitions contribute nothing.
func (r *LevelResolver) Run(numID string, level int) *props.RunProperties {
	lvl := r.nums.Level(numID, level)
	if lvl == nil || lvl.Run == nil {
		return &props.RunProperties{}
	}
	bag := *lvl.Run
	return &bag
}

// Paragraph returns the paragraph properties for numID's given level.
func (r *LevelResolver) Paragraph(numID string, level int) *props.ParagraphProperties {
	lvl := r.nums.Level(numID, level)
	if lvl == nil || lvl.Paragraph == nil {
		return &props.ParagraphProperties{}
	}
	bag := *lvl.Paragraph
	return &bag
}

// Level exposes the merged level definition itself (numbering type, suffix,
// start) for callers that need more than the property bags.
func (r *LevelResolver) Level(numID string, level int) *stylestore.LevelDefinition {
	return r.nums.Level(numID, level)
}
