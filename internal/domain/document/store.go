package document

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/veritaslex/arbilens/pkg/errors"
)

// Document is one uploaded text with an optional party role.  Text is
// already-decoded plain text: format decoding (PDF/DOCX) happens in the
// uploading collaborator, and a document that fails decoding never reaches
// the store.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	// Role is a free-form party classification such as "claimant memorial".
	// The engine does not interpret it beyond substring containment of
	// "claimant" or "respondent" when partitioning for the comparative
	// argument table.
	Role string `json:"role,omitempty"`
}

// Store is the in-memory document map shared by the HTTP and CLI surfaces.
// Content is immutable once stored; Put with an existing id is rejected.
type Store struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]Document)}
}

// Put stores a document and returns its id, generating a uuid when the
// caller supplies none.  Empty text and duplicate ids are rejected.
func (s *Store) Put(doc Document) (string, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return "", errors.New(errors.ErrCodeDocumentEmpty, "document text must not be empty")
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doc.ID]; ok {
		return "", errors.New(errors.ErrCodeConflict, "document id already exists").
			WithDetail("id=" + doc.ID)
	}
	s.docs[doc.ID] = doc
	return doc.ID, nil
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Remove deletes a document.  Fails with ErrCodeDocumentNotFound if absent.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return errors.New(errors.ErrCodeDocumentNotFound, "document not found").
			WithDetail("id=" + id)
	}
	delete(s.docs, id)
	return nil
}

// List returns every document sorted by id, texts included.
func (s *Store) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// TextMap returns an id→text snapshot in the shape the analysis functions
// consume.
func (s *Store) TextMap() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.docs))
	for id, d := range s.docs {
		out[id] = d.Text
	}
	return out
}

// IDsByRole returns the sorted ids of documents whose role contains label as
// a case-insensitive substring ("claimant", "respondent").
func (s *Store) IDsByRole(label string) []string {
	label = strings.ToLower(label)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0)
	for id, d := range s.docs {
		if strings.Contains(strings.ToLower(d.Role), label) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
