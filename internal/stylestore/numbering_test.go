package stylestore

import (
	"testing"

	"github.com/dgallion1/stylecast/internal/props"
)

func intp(v int) *int { return &v }

func numberingFixture() *NumberingDefinitionStore {
	abstract := &AbstractNumberingDefinition{
		ID: "0",
		Levels: map[int]*LevelDefinition{
			0: {
				Level:         0,
				Start:         intp(1),
				NumberingType: "decimal",
				Suffix:        "tab",
				Paragraph: &props.ParagraphProperties{
					Spacing: &props.Spacing{Before: intp(240)},
				},
			},
		},
	}
	num := &NumberingDefinition{
		NumID:         "5",
		AbstractNumID: "0",
		LvlOverrides: map[int]*LevelDefinition{
			0: {
				Level: 0,
				Paragraph: &props.ParagraphProperties{
					Spacing: &props.Spacing{After: intp(120)},
				},
			},
		},
	}
	return NewNumberingDefinitionStore(
		[]*AbstractNumberingDefinition{abstract},
		[]*NumberingDefinition{num},
	)
}

func TestLevel_OverrideMergesNestedSpacing(t *testing.T) {
	store := numberingFixture()

	lvl := store.Level("5", 0)
	if lvl == nil {
		t.Fatal("expected level definition")
	}
	sp := lvl.Paragraph.Spacing
	if sp == nil {
		t.Fatal("expected spacing")
	}
	if sp.Before == nil || *sp.Before != 240 {
		t.Errorf("expected before 240 from abstract, got %v", sp.Before)
	}
	if sp.After == nil || *sp.After != 120 {
		t.Errorf("expected after 120 from override, got %v", sp.After)
	}
	if lvl.NumberingType != "decimal" {
		t.Errorf("expected numbering type from abstract, got %q", lvl.NumberingType)
	}
}

func TestLevel_UnknownNumIDYieldsNil(t *testing.T) {
	store := numberingFixture()
	if lvl := store.Level("99", 0); lvl != nil {
		t.Errorf("expected nil for unknown numId, got %+v", lvl)
	}
	if lvl := store.Level("5", 3); lvl != nil {
		t.Errorf("expected nil for undefined level, got %+v", lvl)
	}
}

func TestLevel_StartOverride(t *testing.T) {
	abstract := &AbstractNumberingDefinition{
		ID: "0",
		Levels: map[int]*LevelDefinition{
			0: {Level: 0, Start: intp(1), NumberingType: "decimal"},
		},
	}
	num := &NumberingDefinition{
		NumID:         "7",
		AbstractNumID: "0",
		LvlOverrides: map[int]*LevelDefinition{
			0: {Level: 0, Start: intp(10), StartOverridden: true},
		},
	}
	store := NewNumberingDefinitionStore(
		[]*AbstractNumberingDefinition{abstract},
		[]*NumberingDefinition{num},
	)

	lvl := store.Level("7", 0)
	if lvl == nil || lvl.Start == nil || *lvl.Start != 10 {
		t.Fatalf("expected start 10, got %+v", lvl)
	}
	if !lvl.StartOverridden {
		t.Error("expected StartOverridden flag")
	}
}

func TestDefaultStyle_FallsBackToNormal(t *testing.T) {
	styles := NewStyleDefinitionStore(DocDefaults{}, nil, []*StyleDefinition{
		{ID: "Normal", Type: StyleTypeParagraph},
		{ID: "Heading1", Type: StyleTypeParagraph, BasedOn: "Normal"},
	})
	def := styles.DefaultStyle(StyleTypeParagraph)
	if def == nil || def.ID != "Normal" {
		t.Fatalf("expected Normal fallback, got %+v", def)
	}

	flagged := NewStyleDefinitionStore(DocDefaults{}, nil, []*StyleDefinition{
		{ID: "Body", Type: StyleTypeParagraph, Default: true},
		{ID: "Normal", Type: StyleTypeParagraph},
	})
	def = flagged.DefaultStyle(StyleTypeParagraph)
	if def == nil || def.ID != "Body" {
		t.Fatalf("expected flagged default to win, got %+v", def)
	}
}
