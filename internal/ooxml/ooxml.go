// Package ooxml reads style and numbering definitions out of a .docx archive
// and builds the immutable stores the resolvers run against. It decodes
// word/styles.xml and word/numbering.xml directly; the document body itself
// is handled elsewhere.
package ooxml

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/dgallion1/stylecast/internal/stylestore"
)

// Load reads word/styles.xml and word/numbering.xml from a .docx archive.
// A missing part yields an empty store rather than an error: documents
// without lists carry no numbering.xml at all.
func Load(r io.ReaderAt, size int64) (*stylestore.StyleDefinitionStore, *stylestore.NumberingDefinitionStore, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, nil, fmt.Errorf("open docx archive: %w", err)
	}

	styles := stylestore.NewStyleDefinitionStore(stylestore.DocDefaults{}, nil, nil)
	nums := stylestore.NewNumberingDefinitionStore(nil, nil)

	for _, f := range zr.File {
		switch f.Name {
		case "word/styles.xml":
			rc, err := f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("open %s: %w", f.Name, err)
			}
			styles, err = ParseStyles(rc)
			rc.Close()
			if err != nil {
				return nil, nil, err
			}
		case "word/numbering.xml":
			rc, err := f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("open %s: %w", f.Name, err)
			}
			nums, err = ParseNumbering(rc)
			rc.Close()
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return styles, nums, nil
}
