// Package generator defines the external bio generation capability and
// its Anthropic-backed implementation. The orchestration engine treats
// generation as a black box: a parameter set goes in, candidate bio
// strings or an error come out.
package generator

import (
	"context"

	"github.com/instabio/bioforge/internal/types"
)

// Request describes one generation call.
type Request struct {
	// Params is the parameter set shaping this attempt's output.
	Params types.ParameterSet

	// Count is how many candidate bios to ask for. Zero means the
	// implementation's default.
	Count int
}

// Generator produces candidate bios from a parameter set. Candidates
// are raw text: they may contain embedded newlines, emoji, and
// punctuation, and have not been filtered or formatted.
type Generator interface {
	GenerateBios(ctx context.Context, req Request) ([]string, error)
}
