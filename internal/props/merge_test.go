package props

import "testing"

func boolp(v bool) *bool { return &v }
func intp(v int) *int    { return &v }

func TestMergeRun_OverlayWinsBaseSurvives(t *testing.T) {
	base := &RunProperties{FontSize: intp(22), Italic: boolp(true)}
	over := &RunProperties{FontSize: intp(24), Bold: boolp(true)}

	got := MergeRun(base, over)

	if got.FontSize == nil || *got.FontSize != 24 {
		t.Errorf("expected fontSize 24, got %v", got.FontSize)
	}
	if got.Bold == nil || !*got.Bold {
		t.Errorf("expected bold from overlay")
	}
	if got.Italic == nil || !*got.Italic {
		t.Errorf("expected italic to survive from base")
	}
}

func TestMergeRun_DoesNotMutateInputs(t *testing.T) {
	base := &RunProperties{FontSize: intp(22)}
	over := &RunProperties{FontSize: intp(24)}
	MergeRun(base, over)
	if *base.FontSize != 22 || *over.FontSize != 24 {
		t.Fatalf("inputs mutated: base=%d over=%d", *base.FontSize, *over.FontSize)
	}
}

func TestMergeSpacing_KeyByKey(t *testing.T) {
	base := &Spacing{Before: intp(240)}
	over := &Spacing{After: intp(120)}

	got := MergeSpacing(base, over)

	if got.Before == nil || *got.Before != 240 {
		t.Errorf("expected before 240 to survive, got %v", got.Before)
	}
	if got.After == nil || *got.After != 120 {
		t.Errorf("expected after 120 from overlay, got %v", got.After)
	}
}

func TestMergeBorders_PerDirection(t *testing.T) {
	base := &Borders{Top: &BorderEdge{Val: "single", Size: intp(4)}}
	over := &Borders{Bottom: &BorderEdge{Val: "double", Size: intp(8)}}

	got := MergeBorders(base, over)

	if got.Top == nil || got.Top.Val != "single" {
		t.Errorf("expected top border to survive, got %+v", got.Top)
	}
	if got.Bottom == nil || got.Bottom.Val != "double" {
		t.Errorf("expected bottom border from overlay, got %+v", got.Bottom)
	}
}

func TestMergeParagraph_TabStopsConcatenate(t *testing.T) {
	base := &ParagraphProperties{TabStops: []TabStop{{Pos: 720, Val: "left"}}}
	over := &ParagraphProperties{TabStops: []TabStop{{Pos: 1440, Val: "right"}}}

	got := MergeParagraph(base, over)

	if len(got.TabStops) != 2 {
		t.Fatalf("expected 2 tab stops, got %d", len(got.TabStops))
	}
	// Low-precedence stops come first.
	if got.TabStops[0].Pos != 720 || got.TabStops[1].Pos != 1440 {
		t.Errorf("tab stops out of order: %+v", got.TabStops)
	}
}

func TestMergeParagraph_NestedIndent(t *testing.T) {
	base := &ParagraphProperties{Indent: &Indent{Left: intp(2000), Hanging: intp(360)}}
	over := &ParagraphProperties{Indent: &Indent{Left: intp(800)}}

	got := MergeParagraph(base, over)

	if got.Indent == nil || *got.Indent.Left != 800 {
		t.Fatalf("expected left 800, got %+v", got.Indent)
	}
	if got.Indent.Hanging == nil || *got.Indent.Hanging != 360 {
		t.Errorf("expected hanging 360 to survive, got %+v", got.Indent)
	}
}

func TestMergeCell_ShadingReplaced(t *testing.T) {
	base := &TableCellProperties{Shading: &Shading{Fill: "BBBBBB"}}
	over := &TableCellProperties{Shading: &Shading{Fill: "CCCCCC"}}

	got := MergeCell(base, over)

	if got.Shading == nil || got.Shading.Fill != "CCCCCC" {
		t.Errorf("expected shading replaced by overlay, got %+v", got.Shading)
	}
}

func TestMerge_NilInputsYieldEmptyBag(t *testing.T) {
	if got := MergeRun(nil, nil); !got.IsEmpty() {
		t.Errorf("expected empty bag, got %+v", got)
	}
	if got := MergeParagraph(nil, nil); !got.IsEmpty() {
		t.Errorf("expected empty bag, got %+v", got)
	}
}
