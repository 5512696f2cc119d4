package cascade

import (
	"testing"

	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
)

func fullLook() *props.TableLook {
	return &props.TableLook{FirstRow: true, LastRow: true, FirstColumn: true, LastColumn: true}
}

func containsVariant(vs []stylestore.Variant, want stylestore.Variant) bool {
	for _, v := range vs {
		if v == want {
			return true
		}
	}
	return false
}

func TestSelect_OrderAndCorners(t *testing.T) {
	var sel BandSelector
	info := &TableInfo{
		Table:     &props.TableProperties{Look: fullLook()},
		RowIndex:  0,
		CellIndex: 0,
		NumRows:   2,
		NumCells:  2,
	}

	got := sel.Select(info)

	want := []stylestore.Variant{
		stylestore.VariantWholeTable,
		stylestore.VariantBand1Horz,
		stylestore.VariantBand1Vert,
		stylestore.VariantFirstRow,
		stylestore.VariantFirstCol,
		stylestore.VariantNWCell,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelect_NoBandFlagsSuppressBanding(t *testing.T) {
	var sel BandSelector
	info := &TableInfo{
		Table: &props.TableProperties{
			Look: &props.TableLook{NoHBand: true, NoVBand: true},
		},
		RowIndex: 1, CellIndex: 1, NumRows: 4, NumCells: 4,
	}

	got := sel.Select(info)
	if len(got) != 1 || got[0] != stylestore.VariantWholeTable {
		t.Fatalf("expected only wholeTable, got %v", got)
	}
}

func TestSelect_BandSizeArithmetic(t *testing.T) {
	var sel BandSelector
	// Band size 2: rows 0,1 are band1; rows 2,3 band2.
	info := &TableInfo{
		Table: &props.TableProperties{
			Look:        &props.TableLook{NoVBand: true},
			RowBandSize: intp(2),
		},
		RowIndex: 3, CellIndex: 0, NumRows: 6, NumCells: 3,
	}
	got := sel.Select(info)
	if !containsVariant(got, stylestore.VariantBand2Horz) {
		t.Errorf("expected band2Horz for row 3 with band size 2, got %v", got)
	}
	if containsVariant(got, stylestore.VariantBand1Horz) {
		t.Errorf("band1Horz must not apply, got %v", got)
	}
}

func TestSelect_LastRowLastColSECorner(t *testing.T) {
	var sel BandSelector
	info := &TableInfo{
		Table:     &props.TableProperties{Look: fullLook()},
		RowIndex:  1,
		CellIndex: 1,
		NumRows:   2,
		NumCells:  2,
	}
	got := sel.Select(info)
	if !containsVariant(got, stylestore.VariantLastRow) || !containsVariant(got, stylestore.VariantLastCol) {
		t.Fatalf("expected lastRow and lastCol, got %v", got)
	}
	if got[len(got)-1] != stylestore.VariantSECell {
		t.Errorf("expected seCell last, got %v", got)
	}
}

func TestSelect_CnfDisablesFirstRow(t *testing.T) {
	var sel BandSelector
	info := &TableInfo{
		Table:     &props.TableProperties{Look: fullLook()},
		RowIndex:  0,
		CellIndex: 1,
		NumRows:   3,
		NumCells:  3,
		Cell:      &props.ConditionalFormat{FirstRow: boolp(false)},
	}
	got := sel.Select(info)
	if containsVariant(got, stylestore.VariantFirstRow) {
		t.Errorf("cell cnfStyle must disable firstRow, got %v", got)
	}
}

func TestSelect_RowCnfFallsThroughWhenCellSilent(t *testing.T) {
	var sel BandSelector
	info := &TableInfo{
		Table:     &props.TableProperties{Look: fullLook()},
		RowIndex:  0,
		CellIndex: 1,
		NumRows:   3,
		NumCells:  3,
		Row:       &props.ConditionalFormat{FirstRow: boolp(false)},
	}
	got := sel.Select(info)
	if containsVariant(got, stylestore.VariantFirstRow) {
		t.Errorf("row cnfStyle must disable firstRow when cell has no opinion, got %v", got)
	}

	// Cell override wins over row.
	info.Cell = &props.ConditionalFormat{FirstRow: boolp(true)}
	got = sel.Select(info)
	if !containsVariant(got, stylestore.VariantFirstRow) {
		t.Errorf("cell cnfStyle must re-enable firstRow, got %v", got)
	}
}
