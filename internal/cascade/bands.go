package cascade

import (
	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
)

// TableInfo locates one cell inside a table for conditional-format selection.
// It is query input, never stored.
type TableInfo struct {
	Table     *props.TableProperties
	RowIndex  int
	CellIndex int
	NumRows   int
	NumCells  int

	// cnfStyle overrides carried on the cell and its row. Enablement checks
	// fall through cell, then row, then default true.
	Cell *props.ConditionalFormat
	Row  *props.ConditionalFormat
}

// BandSelector computes which conditional-format variants of a table style
// apply to a specific cell, in ascending precedence: callers fold the
// returned list left to right, later entries win.
type BandSelector struct{}

// Select returns the ordered variant names for the cell described by info.
// Variants a style does not define are filtered out by the caller at fold
// time; Select only decides applicability and order.
func (BandSelector) Select(info *TableInfo) []stylestore.Variant {
	if info == nil {
		return nil
	}
	var look props.TableLook
	if info.Table != nil && info.Table.Look != nil {
		look = *info.Table.Look
	}

	out := []stylestore.Variant{stylestore.VariantWholeTable}

	if !look.NoHBand {
		if bandIndex(info.RowIndex, bandSize(tableRowBand(info))) == 0 {
			out = append(out, stylestore.VariantBand1Horz)
		} else {
			out = append(out, stylestore.VariantBand2Horz)
		}
	}
	// Vertical banding follows horizontal, so a property set by both wins
	// from the vertical variant.
	if !look.NoVBand {
		if bandIndex(info.CellIndex, bandSize(tableColBand(info))) == 0 {
			out = append(out, stylestore.VariantBand1Vert)
		} else {
			out = append(out, stylestore.VariantBand2Vert)
		}
	}

	firstRow := look.FirstRow && info.RowIndex == 0 && styleEnabled(info, cnfFirstRow)
	lastRow := look.LastRow && info.NumRows > 0 && info.RowIndex == info.NumRows-1 && styleEnabled(info, cnfLastRow)
	firstCol := look.FirstColumn && info.CellIndex == 0 && styleEnabled(info, cnfFirstColumn)
	lastCol := look.LastColumn && info.NumCells > 0 && info.CellIndex == info.NumCells-1 && styleEnabled(info, cnfLastColumn)

	if firstRow {
		out = append(out, stylestore.VariantFirstRow)
	}
	if lastRow {
		out = append(out, stylestore.VariantLastRow)
	}
	if firstCol {
		out = append(out, stylestore.VariantFirstCol)
	}
	if lastCol {
		out = append(out, stylestore.VariantLastCol)
	}

	// Corner variants carry the highest precedence of all table-style-derived
	// properties; inline and style-chain stages are applied afterwards by the
	// cascade resolver.
	if firstRow && firstCol {
		out = append(out, stylestore.VariantNWCell)
	}
	if firstRow && lastCol {
		out = append(out, stylestore.VariantNECell)
	}
	if lastRow && firstCol {
		out = append(out, stylestore.VariantSWCell)
	}
	if lastRow && lastCol {
		out = append(out, stylestore.VariantSECell)
	}
	return out
}

func tableRowBand(info *TableInfo) *int {
	if info.Table == nil {
		return nil
	}
	return info.Table.RowBandSize
}

func tableColBand(info *TableInfo) *int {
	if info.Table == nil {
		return nil
	}
	return info.Table.ColBandSize
}

func bandSize(v *int) int {
	if v == nil || *v < 1 {
		return 1
	}
	return *v
}

func bandIndex(index, size int) int {
	if index < 0 {
		index = 0
	}
	return (index / size) % 2
}

type cnfFlag int

const (
	cnfFirstRow cnfFlag = iota
	cnfLastRow
	cnfFirstColumn
	cnfLastColumn
)

// styleEnabled cascades the cnfStyle boolean for one flag: the cell's
// override wins, then the row's, then the default true.
func styleEnabled(info *TableInfo, flag cnfFlag) bool {
	for _, cnf := range []*props.ConditionalFormat{info.Cell, info.Row} {
		if cnf == nil {
			continue
		}
		var v *bool
		switch flag {
		case cnfFirstRow:
			v = cnf.FirstRow
		case cnfLastRow:
			v = cnf.LastRow
		case cnfFirstColumn:
			v = cnf.FirstColumn
		case cnfLastColumn:
			v = cnf.LastColumn
		}
		if v != nil {
			return *v
		}
	}
	return true
}
