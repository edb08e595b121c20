// Package history tracks the bios already shown in the current session
// so the engine can reject repeats across generation rounds.
package history

import "github.com/instabio/bioforge/internal/similarity"

// History is a set of normalized bio keys plus the raw texts behind
// them. The engine is the only writer, and only after a round
// completes, so History carries no locking; each session owns an
// independent instance.
type History struct {
	keys  map[string]struct{}
	texts []string
}

// New creates an empty history.
func New() *History {
	return &History{keys: make(map[string]struct{})}
}

// Add records text under its normalized key. Returns false if the key
// was already present or the text normalizes to empty; the raw text is
// retained only on first insertion, preserving set semantics.
func (h *History) Add(text string) bool {
	key := similarity.Normalize(text)
	if key == "" {
		return false
	}
	if _, ok := h.keys[key]; ok {
		return false
	}
	h.keys[key] = struct{}{}
	h.texts = append(h.texts, text)
	return true
}

// Contains reports whether text's normalized key is recorded.
func (h *History) Contains(text string) bool {
	_, ok := h.keys[similarity.Normalize(text)]
	return ok
}

// Len returns the number of recorded bios.
func (h *History) Len() int {
	return len(h.keys)
}

// Texts returns a copy of the raw recorded bios, in insertion order.
// The classifier compares candidates against these.
func (h *History) Texts() []string {
	out := make([]string, len(h.texts))
	copy(out, h.texts)
	return out
}

// Keys returns the normalized keys of all recorded bios.
func (h *History) Keys() []string {
	out := make([]string, 0, len(h.keys))
	for k := range h.keys {
		out = append(out, k)
	}
	return out
}

// Reset clears the history, as on a fresh page load.
func (h *History) Reset() {
	h.keys = make(map[string]struct{})
	h.texts = nil
}
