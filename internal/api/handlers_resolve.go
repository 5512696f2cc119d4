package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/stylecast/internal/cascade"
	"github.com/dgallion1/stylecast/internal/props"
	"github.com/go-chi/chi/v5"
)

// tableInfoRequest mirrors cascade.TableInfo for JSON input.
type tableInfoRequest struct {
	Table     *props.TableProperties   `json:"table,omitempty"`
	RowIndex  int                      `json:"rowIndex"`
	CellIndex int                      `json:"cellIndex"`
	NumRows   int                      `json:"numRows"`
	NumCells  int                      `json:"numCells"`
	Cell      *props.ConditionalFormat `json:"cellConditional,omitempty"`
	Row       *props.ConditionalFormat `json:"rowConditional,omitempty"`
}

func (t *tableInfoRequest) toInfo() *cascade.TableInfo {
	if t == nil {
		return nil
	}
	return &cascade.TableInfo{
		Table:     t.Table,
		RowIndex:  t.RowIndex,
		CellIndex: t.CellIndex,
		NumRows:   t.NumRows,
		NumCells:  t.NumCells,
		Cell:      t.Cell,
		Row:       t.Row,
	}
}

type resolveRunRequest struct {
	Inline          *props.RunProperties       `json:"inline,omitempty"`
	Paragraph       *props.ParagraphProperties `json:"paragraph,omitempty"`
	Table           *tableInfoRequest          `json:"tableInfo,omitempty"`
	NumberingGlyph  bool                       `json:"numberingGlyph,omitempty"`
	InlineNumbering bool                       `json:"inlineNumbering,omitempty"`
}

func (s *Server) handleResolveRun(w http.ResponseWriter, r *http.Request) {
	doc := s.registry.Get(chi.URLParam(r, "docID"))
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	var req resolveRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	resolved := doc.Resolver().ResolveRun(req.Inline, req.Paragraph, req.Table.toInfo(), cascade.RunSource{
		NumberingGlyph:  req.NumberingGlyph,
		InlineNumbering: req.InlineNumbering,
	})
	writeJSON(w, http.StatusOK, resolved)
}

type resolveParagraphRequest struct {
	Inline *props.ParagraphProperties `json:"inline,omitempty"`
	Table  *tableInfoRequest          `json:"tableInfo,omitempty"`
}

func (s *Server) handleResolveParagraph(w http.ResponseWriter, r *http.Request) {
	doc := s.registry.Get(chi.URLParam(r, "docID"))
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	var req resolveParagraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, doc.Resolver().ResolveParagraph(req.Inline, req.Table.toInfo()))
}

type resolveCellRequest struct {
	Inline *props.TableCellProperties `json:"inline,omitempty"`
	Table  *tableInfoRequest          `json:"tableInfo,omitempty"`
}

func (s *Server) handleResolveCell(w http.ResponseWriter, r *http.Request) {
	doc := s.registry.Get(chi.URLParam(r, "docID"))
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	var req resolveCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, doc.Resolver().ResolveCell(req.Inline, req.Table.toInfo()))
}
