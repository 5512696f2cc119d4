package stylestore

import "github.com/dgallion1/stylecast/internal/props"

// MaxLevel is the deepest list level OOXML allows (w:ilvl 0..8).
const MaxLevel = 8

// LevelDefinition describes one level of an abstract numbering definition, or
// a partial override of one.
type LevelDefinition struct {
	Level           int
	Start           *int // w:start
	Restart         *int // w:lvlRestart
	StartOverridden bool // true when Start came from a w:startOverride
	NumberingType   string  // w:numFmt: decimal, lowerLetter, upperRoman, bullet, ...
	Suffix          string  // w:suff: tab, space, nothing
	Text            string  // w:lvlText, e.g. "%1.%2."
	StyleID         *string // w:pStyle link

	Paragraph *props.ParagraphProperties
	Run       *props.RunProperties
}

// AbstractNumberingDefinition is one w:abstractNum entry.
type AbstractNumberingDefinition struct {
	ID     string
	Levels map[int]*LevelDefinition
}

// NumberingDefinition is one concrete w:num entry: a reference to an abstract
// definition plus optional per-level overrides.
type NumberingDefinition struct {
	NumID         string
	AbstractNumID string
	LvlOverrides  map[int]*LevelDefinition
}

// NumberingDefinitionStore is the immutable numbering table for one document.
type NumberingDefinitionStore struct {
	abstracts map[string]*AbstractNumberingDefinition
	nums      map[string]*NumberingDefinition
}

// NewNumberingDefinitionStore builds a store from parsed definitions.
func NewNumberingDefinitionStore(abstracts []*AbstractNumberingDefinition, nums []*NumberingDefinition) *NumberingDefinitionStore {
	byAbstract := make(map[string]*AbstractNumberingDefinition, len(abstracts))
	for _, a := range abstracts {
		if a != nil && a.ID != "" {
			byAbstract[a.ID] = a
		}
	}
	byNum := make(map[string]*NumberingDefinition, len(nums))
	for _, n := range nums {
		if n != nil && n.NumID != "" {
			byNum[n.NumID] = n
		}
	}
	return &NumberingDefinitionStore{abstracts: byAbstract, nums: byNum}
}

// Definition looks up a concrete numbering definition by numId. Returns nil
// when unknown.
func (s *NumberingDefinitionStore) Definition(numID string) *NumberingDefinition {
	if s == nil || numID == "" {
		return nil
	}
	return s.nums[numID]
}

// Definitions returns every concrete numbering definition, in no particular
// order.
func (s *NumberingDefinitionStore) Definitions() []*NumberingDefinition {
	if s == nil {
		return nil
	}
	out := make([]*NumberingDefinition, 0, len(s.nums))
	for _, n := range s.nums {
		out = append(out, n)
	}
	return out
}

// Abstract looks up an abstract numbering definition by id. Returns nil when
// unknown.
func (s *NumberingDefinitionStore) Abstract(id string) *AbstractNumberingDefinition {
	if s == nil || id == "" {
		return nil
	}
	return s.abstracts[id]
}

// Level resolves the merged level definition for numId at the given level:
// the abstract level with any lvlOverride fields applied on top. Returns nil
// when the definition, its abstract, or the level is missing.
func (s *NumberingDefinitionStore) Level(numID string, level int) *LevelDefinition {
	def := s.Definition(numID)
	if def == nil {
		return nil
	}
	abs := s.Abstract(def.AbstractNumID)
	if abs == nil {
		return nil
	}
	base := abs.Levels[level]
	over := def.LvlOverrides[level]
	if base == nil && over == nil {
		return nil
	}
	if over == nil {
		return base
	}
	if base == nil {
		return over
	}
	merged := *base
	if over.Start != nil {
		merged.Start = over.Start
		merged.StartOverridden = merged.StartOverridden || over.StartOverridden
	}
	if over.Restart != nil {
		merged.Restart = over.Restart
	}
	if over.NumberingType != "" {
		merged.NumberingType = over.NumberingType
	}
	if over.Suffix != "" {
		merged.Suffix = over.Suffix
	}
	if over.Text != "" {
		merged.Text = over.Text
	}
	if over.StyleID != nil {
		merged.StyleID = over.StyleID
	}
	if over.Paragraph != nil {
		merged.Paragraph = props.MergeParagraph(base.Paragraph, over.Paragraph)
	}
	if over.Run != nil {
		merged.Run = props.MergeRun(base.Run, over.Run)
	}
	return &merged
}
