package docwalk

import (
	"testing"

	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func fixtureStores() (*stylestore.StyleDefinitionStore, *stylestore.NumberingDefinitionStore) {
	styles := stylestore.NewStyleDefinitionStore(stylestore.DocDefaults{}, nil,
		[]*stylestore.StyleDefinition{
			{ID: "Normal", Type: stylestore.StyleTypeParagraph, Default: true},
			{
				ID:      "ListParagraph",
				Type:    stylestore.StyleTypeParagraph,
				BasedOn: "Normal",
				Paragraph: &props.ParagraphProperties{
					Numbering: &props.NumberingRef{NumID: strp("5"), Level: intp(0)},
				},
			},
		},
	)
	nums := stylestore.NewNumberingDefinitionStore(
		[]*stylestore.AbstractNumberingDefinition{
			{
				ID: "0",
				Levels: map[int]*stylestore.LevelDefinition{
					0: {Level: 0, Start: intp(1), NumberingType: "decimal", Suffix: "tab"},
				},
			},
		},
		[]*stylestore.NumberingDefinition{
			{NumID: "5", AbstractNumID: "0"},
		},
	)
	return styles, nums
}

func TestResolveAll_CountersAdvanceInDocumentOrder(t *testing.T) {
	styles, nums := fixtureStores()
	w, err := New(styles, nums)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	recs := []record{
		{styleID: "ListParagraph", text: "first item"},
		{styleID: "", text: "plain paragraph"},
		{styleID: "ListParagraph", text: "second item"},
		{styleID: "ListParagraph", text: "third item"},
	}
	entries, err := w.resolveAll(recs)
	if err != nil {
		t.Fatalf("resolveAll: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	if entries[0].Counter != 1 || entries[2].Counter != 2 || entries[3].Counter != 3 {
		t.Errorf("expected counters 1,2,3, got %d,%d,%d",
			entries[0].Counter, entries[2].Counter, entries[3].Counter)
	}
	if entries[1].NumID != "" {
		t.Errorf("plain paragraph must not be numbered, got numId %q", entries[1].NumID)
	}
	if entries[0].NumberingType != "decimal" || entries[0].Suffix != "tab" {
		t.Errorf("expected numbering type/suffix, got %+v", entries[0])
	}
	if len(entries[3].Path) != 1 || entries[3].Path[0] != 3 {
		t.Errorf("expected path [3] for a level-0 item, got %v", entries[3].Path)
	}
}

func TestNew_SeedsStartSettings(t *testing.T) {
	styles, _ := fixtureStores()
	nums := stylestore.NewNumberingDefinitionStore(
		[]*stylestore.AbstractNumberingDefinition{
			{
				ID: "0",
				Levels: map[int]*stylestore.LevelDefinition{
					0: {Level: 0, Start: intp(7), NumberingType: "decimal"},
				},
			},
		},
		[]*stylestore.NumberingDefinition{
			{NumID: "5", AbstractNumID: "0"},
		},
	)

	w, err := New(styles, nums)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := w.Engine().StartSettings("5", 0)
	if got.Start != 7 {
		t.Errorf("expected seeded start 7, got %+v", got)
	}

	entries, err := w.resolveAll([]record{{styleID: "ListParagraph"}})
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Counter != 7 {
		t.Errorf("expected first counter 7, got %d", entries[0].Counter)
	}
}
