package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/stylecast/internal/docwalk"
	"github.com/dgallion1/stylecast/internal/ooxml"
	"github.com/fumiama/go-docx"
	"github.com/go-chi/chi/v5"
)

// handleLoadDocument accepts a .docx upload, builds its stores, runs the
// forward pass, and registers the result.
func (s *Server) handleLoadDocument(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".docx") {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	styles, nums, err := ooxml.Load(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		jsonError(w, "failed to read definitions: "+err.Error(), http.StatusBadRequest)
		return
	}

	parsed, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		jsonError(w, "failed to parse document body: "+err.Error(), http.StatusBadRequest)
		return
	}

	walker, err := docwalk.New(styles, nums)
	if err != nil {
		jsonError(w, "failed to seed numbering: "+err.Error(), http.StatusInternalServerError)
		return
	}
	outline, err := walker.Walk(parsed)
	if err != nil {
		jsonError(w, "failed to resolve document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	doc := &Document{
		Filename: filename,
		Styles:   styles.Len(),
		resolver: walker.Resolver(),
		outline:  outline,
	}
	id, err := s.registry.Add(doc)
	if err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	s.log.Info("document loaded",
		"doc_id", id,
		"filename", filename,
		"styles", styles.Len(),
		"paragraphs", len(outline),
	)
	writeJSON(w, http.StatusCreated, doc)
}

// handleListDocuments lists loaded documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"documents": s.registry.List()})
}

// handleOutline returns the resolved per-paragraph outline.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	doc := s.registry.Get(chi.URLParam(r, "docID"))
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"doc_id":  doc.ID,
		"outline": doc.Outline(),
	})
}

// handleDeleteDocument unloads a document.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docID")
	if !s.registry.Delete(id) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"doc_id": id, "status": "deleted"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
