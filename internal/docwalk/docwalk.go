// Package docwalk runs the single forward pass over a document body: each
// paragraph's effective properties are resolved through the cascade, and the
// numbering counter engine is driven in document order so every numbered
// paragraph gets its counter and ancestor path.
package docwalk

import (
	"fmt"
	"strings"

	"github.com/dgallion1/stylecast/internal/cascade"
	"github.com/dgallion1/stylecast/internal/counter"
	"github.com/dgallion1/stylecast/internal/props"
	"github.com/dgallion1/stylecast/internal/stylestore"
	"github.com/fumiama/go-docx"
)

// Entry is one resolved paragraph of the outline.
type Entry struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	StyleID string `json:"styleId,omitempty"`

	Paragraph *props.ParagraphProperties `json:"paragraph,omitempty"`
	Run       *props.RunProperties       `json:"run,omitempty"`

	// Numbering output, present only for numbered paragraphs.
	NumID         string `json:"numId,omitempty"`
	Level         int    `json:"level,omitempty"`
	Counter       int    `json:"counter,omitempty"`
	Path          []int  `json:"path,omitempty"`
	NumberingType string `json:"numberingType,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
}

// Walker resolves a document body against its stores.
type Walker struct {
	nums     *stylestore.NumberingDefinitionStore
	resolver *cascade.Resolver
	engine   *counter.Engine
}

// New builds a walker and seeds the counter engine's start settings from the
// numbering store.
func New(styles *stylestore.StyleDefinitionStore, nums *stylestore.NumberingDefinitionStore) (*Walker, error) {
	w := &Walker{
		nums:     nums,
		resolver: cascade.New(styles, nums),
		engine:   counter.New(),
	}
	for _, def := range nums.Definitions() {
		for lv := 0; lv <= stylestore.MaxLevel; lv++ {
			lvl := nums.Level(def.NumID, lv)
			if lvl == nil {
				continue
			}
			start := 1
			if lvl.Start != nil {
				start = *lvl.Start
			}
			if err := w.engine.SetStartSettings(def.NumID, lv, start, lvl.Restart, lvl.StartOverridden); err != nil {
				return nil, fmt.Errorf("seed start settings for num %s level %d: %w", def.NumID, lv, err)
			}
		}
	}
	return w, nil
}

// Resolver exposes the cascade resolver backing this walker.
func (w *Walker) Resolver() *cascade.Resolver { return w.resolver }

// Engine exposes the counter engine; callers must not drive it concurrently
// with Walk.
func (w *Walker) Engine() *counter.Engine { return w.engine }

// record is the neutral per-paragraph view extracted from the parsed body,
// kept separate from go-docx types so resolution is testable on its own.
type record struct {
	styleID string
	text    string
}

// Walk resolves every paragraph of a parsed document in order.
func (w *Walker) Walk(doc *docx.Docx) ([]Entry, error) {
	return w.resolveAll(extract(doc))
}

func extract(doc *docx.Docx) []record {
	if doc == nil {
		return nil
	}
	var recs []record
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		rec := record{text: paragraphText(para)}
		if para.Properties != nil && para.Properties.Style != nil {
			rec.styleID = para.Properties.Style.Val
		}
		recs = append(recs, rec)
	}
	return recs
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func (w *Walker) resolveAll(recs []record) ([]Entry, error) {
	entries := make([]Entry, 0, len(recs))
	for i, rec := range recs {
		inline := &props.ParagraphProperties{}
		if rec.styleID != "" {
			id := rec.styleID
			inline.StyleID = &id
		}
		resolved := w.resolver.ResolveParagraph(inline, nil)
		entry := Entry{
			Index:     i,
			Text:      rec.text,
			StyleID:   rec.styleID,
			Paragraph: resolved,
			Run:       w.resolver.ResolveRun(nil, inline, nil, cascade.RunSource{}),
		}

		if ref := resolved.Numbering; ref != nil && ref.NumID != nil {
			numID := *ref.NumID
			level := 0
			if ref.Level != nil {
				level = *ref.Level
			}
			value, err := w.engine.CalculateCounter(numID, level, i)
			if err != nil {
				return nil, fmt.Errorf("paragraph %d: %w", i, err)
			}
			if err := w.engine.SetCounter(numID, level, i, value, ""); err != nil {
				return nil, fmt.Errorf("paragraph %d: %w", i, err)
			}
			path, err := w.engine.CalculatePath(numID, level, i)
			if err != nil {
				return nil, fmt.Errorf("paragraph %d: %w", i, err)
			}
			entry.NumID = numID
			entry.Level = level
			entry.Counter = value
			entry.Path = path
			if lvl := w.nums.Level(numID, level); lvl != nil {
				entry.NumberingType = lvl.NumberingType
				entry.Suffix = lvl.Suffix
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
