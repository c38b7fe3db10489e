// Package concept holds the mutable registry of legal concepts and their
// lexical variations — the source of truth for concept-aware matching across
// segmentation, search, comparison, and argument mining.
//
// The registry is the engine's only shared mutable state.  Reads are safe
// concurrently; mutations replace the full variation list of one concept and
// are serialized behind a write lock.  Callers performing a multi-read
// logical operation (a whole search, say) hold no lock across reads — the
// operational contract is that registry edits are not interleaved with
// in-flight analysis.
package concept

import (
	"sort"
	"strings"
	"sync"

	"github.com/veritaslex/arbilens/pkg/errors"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// Registry maps canonical concept names to their variation lists.
type Registry struct {
	mu       sync.RWMutex
	concepts map[string][]string
}

// NewRegistry returns a registry seeded with the default arbitration
// concepts.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, c := range DefaultConcepts() {
		r.concepts[c.Name] = append([]string(nil), c.Variations...)
	}
	return r
}

// NewEmptyRegistry returns a registry with no concepts, for callers that
// seed entirely from a file or per-tenant source.
func NewEmptyRegistry() *Registry {
	return &Registry{concepts: make(map[string][]string)}
}

// DefaultConcepts is the built-in seed set.  "force majeure" and its
// variations are relied on throughout the test corpus.
func DefaultConcepts() []analysis.Concept {
	return []analysis.Concept{
		{Name: "force majeure", Variations: []string{"act of god", "unforeseeable circumstances", "beyond reasonable control"}},
		{Name: "breach of contract", Variations: []string{"contractual breach", "failure to perform", "non-performance"}},
		{Name: "damages", Variations: []string{"compensation", "indemnification", "monetary relief"}},
		{Name: "jurisdiction", Variations: []string{"competence of the tribunal", "arbitral jurisdiction", "seat of arbitration"}},
		{Name: "liability", Variations: []string{"liable", "responsibility for loss", "accountable"}},
		{Name: "termination", Variations: []string{"terminate the agreement", "rescission", "cancellation"}},
		{Name: "good faith", Variations: []string{"bona fide", "fair dealing"}},
	}
}

// cleanVariations trims each variation and drops empties, preserving order.
func cleanVariations(variations []string) []string {
	out := make([]string, 0, len(variations))
	for _, v := range variations {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Add registers a new concept.  It fails with ErrCodeConceptExists if the
// name is already present and ErrCodeVariationsEmpty if no variation
// survives trimming; the registry is unchanged on failure.
func (r *Registry) Add(name string, variations []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(errors.ErrCodeConceptNameEmpty, "concept name must not be empty")
	}
	cleaned := cleanVariations(variations)
	if len(cleaned) == 0 {
		return errors.New(errors.ErrCodeVariationsEmpty, "concept variations must not be empty").
			WithDetail("name=" + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.concepts[name]; ok {
		return errors.New(errors.ErrCodeConceptExists, "concept already exists").
			WithDetail("name=" + name)
	}
	r.concepts[name] = cleaned
	return nil
}

// UpdateVariations replaces the full variation list of an existing concept.
// No partial merge: the supplied list becomes the concept's entire list.
func (r *Registry) UpdateVariations(name string, variations []string) error {
	cleaned := cleanVariations(variations)
	if len(cleaned) == 0 {
		return errors.New(errors.ErrCodeVariationsEmpty, "concept variations must not be empty").
			WithDetail("name=" + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.concepts[name]; !ok {
		return errors.New(errors.ErrCodeConceptNotFound, "concept not found").
			WithDetail("name=" + name)
	}
	r.concepts[name] = cleaned
	return nil
}

// Remove deletes a concept.  Fails with ErrCodeConceptNotFound if absent.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.concepts[name]; !ok {
		return errors.New(errors.ErrCodeConceptNotFound, "concept not found").
			WithDetail("name=" + name)
	}
	delete(r.concepts, name)
	return nil
}

// Replace swaps the entire concept set in one step.  Used by the file
// watcher so a reload is atomic with respect to readers.
func (r *Registry) Replace(concepts []analysis.Concept) {
	next := make(map[string][]string, len(concepts))
	for _, c := range concepts {
		name := strings.TrimSpace(c.Name)
		cleaned := cleanVariations(c.Variations)
		if name == "" || len(cleaned) == 0 {
			continue
		}
		next[name] = cleaned
	}

	r.mu.Lock()
	r.concepts = next
	r.mu.Unlock()
}

// List returns every concept sorted by name, with copied variation slices.
func (r *Registry) List() []analysis.Concept {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]analysis.Concept, 0, len(r.concepts))
	for name, vars := range r.concepts {
		out = append(out, analysis.Concept{
			Name:       name,
			Variations: append([]string(nil), vars...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered concepts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.concepts)
}

// Get returns one concept by name.
func (r *Registry) Get(name string) (analysis.Concept, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vars, ok := r.concepts[name]
	if !ok {
		return analysis.Concept{}, false
	}
	return analysis.Concept{Name: name, Variations: append([]string(nil), vars...)}, true
}

// Matches reports whether the named concept occurs in text: true when the
// concept name or any variation is a case-insensitive substring.  A concept
// that is not registered never matches.
func (r *Registry) Matches(text, name string) bool {
	r.mu.RLock()
	vars, ok := r.concepts[name]
	if ok {
		// Copy under lock; matching happens outside it.
		vars = append([]string(nil), vars...)
	}
	r.mu.RUnlock()
	if !ok {
		return false
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, strings.ToLower(name)) {
		return true
	}
	for _, v := range vars {
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// ConceptsIn returns the sorted names of every registered concept matched by
// text.  The concept set is snapshotted once, so a concurrent edit cannot
// split a single scan.
func (r *Registry) ConceptsIn(text string) []string {
	r.mu.RLock()
	snapshot := make(map[string][]string, len(r.concepts))
	for name, vars := range r.concepts {
		snapshot[name] = vars
	}
	r.mu.RUnlock()

	lower := strings.ToLower(text)
	names := make([]string, 0)
	for name, vars := range snapshot {
		if strings.Contains(lower, strings.ToLower(name)) {
			names = append(names, name)
			continue
		}
		for _, v := range vars {
			if strings.Contains(lower, strings.ToLower(v)) {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}
