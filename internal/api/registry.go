package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/stylecast/internal/cascade"
	"github.com/dgallion1/stylecast/internal/docwalk"
)

// Document is one loaded .docx: its immutable stores, a resolver over them,
// and the outline produced by the forward pass.
type Document struct {
	ID       string    `json:"doc_id"`
	Filename string    `json:"filename"`
	Styles   int       `json:"styles"`
	LoadedAt time.Time `json:"loaded_at"`

	// Internal: not serialized.
	resolver *cascade.Resolver
	outline  []docwalk.Entry
}

// Resolver returns the document's cascade resolver.
func (d *Document) Resolver() *cascade.Resolver { return d.resolver }

// Outline returns the resolved per-paragraph outline.
func (d *Document) Outline() []docwalk.Entry { return d.outline }

// Registry is the in-memory table of loaded documents, expired after a TTL.
type Registry struct {
	mu   sync.Mutex
	docs map[string]*Document

	maxDocs int
	ttl     time.Duration
}

// NewRegistry creates a registry holding at most maxDocs documents for ttl
// each.
func NewRegistry(maxDocs int, ttl time.Duration) *Registry {
	return &Registry{
		docs:    make(map[string]*Document),
		maxDocs: maxDocs,
		ttl:     ttl,
	}
}

// Add registers a loaded document and assigns it an id.
func (r *Registry) Add(doc *Document) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	if len(r.docs) >= r.maxDocs {
		return "", fmt.Errorf("document registry full (%d loaded)", len(r.docs))
	}
	id := newDocID()
	doc.ID = id
	doc.LoadedAt = time.Now()
	r.docs[id] = doc
	return id, nil
}

// Get returns a loaded document, or nil when unknown or expired.
func (r *Registry) Get(id string) *Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := r.docs[id]
	if doc == nil {
		return nil
	}
	if r.ttl > 0 && time.Since(doc.LoadedAt) > r.ttl {
		delete(r.docs, id)
		return nil
	}
	return doc
}

// List returns every loaded document.
func (r *Registry) List() []*Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	out := make([]*Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out
}

// Delete unloads a document. Returns false when the id is unknown.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return false
	}
	delete(r.docs, id)
	return true
}

func (r *Registry) sweepLocked() {
	if r.ttl <= 0 {
		return
	}
	for id, d := range r.docs {
		if time.Since(d.LoadedAt) > r.ttl {
			delete(r.docs, id)
		}
	}
}

func newDocID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
