// Package engine orchestrates bio generation: it drives repeated calls
// to the external generator with varied parameter sets, filters
// near-duplicates within and across batches, reflows survivors to three
// lines, and maintains the session history of bios already shown.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/instabio/bioforge/internal/format"
	"github.com/instabio/bioforge/internal/generator"
	"github.com/instabio/bioforge/internal/history"
	"github.com/instabio/bioforge/internal/params"
	"github.com/instabio/bioforge/internal/similarity"
	"github.com/instabio/bioforge/internal/types"
)

// Engine runs generation rounds. Create one per session; the engine
// itself is stateless between rounds except for the stale-request
// token, so a single Engine may serve several histories.
type Engine struct {
	gen    generator.Generator
	config Config
	cross  *similarity.Classifier
	batch  *similarity.Classifier

	// wait paces consecutive generation calls. Defaults to a rate
	// limiter derived from Config.CallInterval; tests inject a no-op.
	wait func(ctx context.Context) error

	mu     sync.Mutex
	latest string // token of the most recently started round
}

// New creates an engine around the given generator.
func New(gen generator.Generator, config Config) (*Engine, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cross, err := similarity.NewClassifier(config.CrossBatch)
	if err != nil {
		return nil, fmt.Errorf("cross-batch classifier: %w", err)
	}
	batch, err := similarity.NewClassifier(config.WithinBatch)
	if err != nil {
		return nil, fmt.Errorf("within-batch classifier: %w", err)
	}

	e := &Engine{
		gen:    gen,
		config: config,
		cross:  cross,
		batch:  batch,
	}

	if config.CallInterval > 0 {
		limiter := rate.NewLimiter(rate.Every(config.CallInterval), 1)
		e.wait = limiter.Wait
	} else {
		e.wait = func(context.Context) error { return nil }
	}

	return e, nil
}

// GenerateUnique runs one generation round for a category.
//
// It iterates the category's fixed parameter sets, paced by the call
// interval, tolerating individual call failures. Candidates are
// deduplicated within the batch, then against hist, then reflowed to
// at most three lines and capped at the target count. When history
// filtering leaves fewer than the minimum viable count, the engine
// relaxes to the within-batch-unique set rather than returning nothing.
// The normalized keys of all returned bios are added to hist before
// returning.
//
// Total failure of every generation attempt yields a result with
// Source == SourceFailed and no error; the caller decides whether to
// retry or fall back to curated content. An error is returned only for
// caller mistakes (unknown category, nil history).
func (e *Engine) GenerateUnique(ctx context.Context, category types.Category, hist *history.History) (*types.Result, error) {
	startTime := time.Now()

	if hist == nil {
		return nil, fmt.Errorf("history cannot be nil")
	}
	sets := params.Sets(category)
	if len(sets) == 0 {
		return nil, fmt.Errorf("no parameter sets for category %q", category)
	}

	token := uuid.NewString()
	e.setLatest(token)

	stats := types.Stats{}
	var candidates []string

	for i, set := range sets {
		if i > 0 {
			if err := e.wait(ctx); err != nil {
				return nil, fmt.Errorf("canceled while pacing calls: %w", err)
			}
		}

		stats.AttemptedSets++
		raw, err := e.gen.GenerateBios(ctx, generator.Request{Params: set, Count: e.config.PerCallCount})
		if err != nil {
			// One failed call doesn't abort the round; later parameter
			// sets may still succeed.
			stats.FailedSets++
			log.Printf("[ENGINE] generation call %d/%d failed for %s: %v", i+1, len(sets), category, err)
			continue
		}
		candidates = append(candidates, raw...)

		if e.uniqueCount(candidates, hist) >= e.config.TargetCount {
			break
		}
	}

	stats.RawCandidates = len(candidates)

	if len(candidates) == 0 {
		log.Printf("[ENGINE] all %d generation attempts failed for %s", stats.AttemptedSets, category)
		stats.ProcessingTimeMs = time.Since(startTime).Milliseconds()
		return &types.Result{
			Source:    types.SourceFailed,
			RequestID: token,
			Stale:     e.isStale(token),
			Stats:     stats,
		}, nil
	}

	// Within-batch first: a single response repeating itself is pruned
	// before candidates are held against the session history.
	batchUnique := e.filterWithinBatch(candidates)
	stats.WithinBatchDuplicates = len(candidates) - len(batchUnique)

	survivors := e.filterAgainstHistory(batchUnique, hist)
	stats.HistoryDuplicates = len(batchUnique) - len(survivors)

	opts := e.formatOptions(category)
	formatted, empty := formatAll(opts, survivors)
	stats.EmptyAfterFormat = empty

	relaxed := false
	if len(formatted) < e.config.MinViable {
		// Over-filtering is not a failure: fall back to the
		// within-batch-unique set so the user still sees content.
		relaxed = true
		formatted, empty = formatAll(opts, batchUnique)
		stats.EmptyAfterFormat = empty
		log.Printf("[ENGINE] relaxed history filtering for %s (%d survivors below minimum %d)",
			category, len(survivors), e.config.MinViable)
	}

	if len(formatted) > e.config.TargetCount {
		formatted = formatted[:e.config.TargetCount]
	}

	for _, bio := range formatted {
		hist.Add(bio)
	}

	stats.Returned = len(formatted)
	stats.Relaxed = relaxed
	stats.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return &types.Result{
		Bios:      formatted,
		Source:    types.SourceAI,
		RequestID: token,
		Stale:     e.isStale(token),
		Stats:     stats,
	}, nil
}

// filterWithinBatch drops candidates that duplicate an earlier
// candidate in the same round, under the looser within-batch profile.
func (e *Engine) filterWithinBatch(candidates []string) []string {
	kept := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if similarity.Normalize(cand) == "" {
			continue
		}
		if e.batch.IsDuplicate(cand, kept) {
			continue
		}
		kept = append(kept, cand)
	}
	return kept
}

// filterAgainstHistory drops candidates that duplicate a bio already
// shown this session, under the strict cross-batch profile.
func (e *Engine) filterAgainstHistory(candidates []string, hist *history.History) []string {
	prior := hist.Texts()
	kept := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if e.cross.IsDuplicate(cand, prior) {
			continue
		}
		kept = append(kept, cand)
	}
	return kept
}

// uniqueCount estimates how many unique formatted bios the accumulated
// candidates would yield right now. Used for the early-stop check
// between generation calls.
func (e *Engine) uniqueCount(candidates []string, hist *history.History) int {
	survivors := e.filterAgainstHistory(e.filterWithinBatch(candidates), hist)
	return len(survivors)
}

// formatOptions builds the reflow options for a category, extending the
// base closing keywords with category-specific terms.
func (e *Engine) formatOptions(category types.Category) format.Options {
	opts := format.DefaultOptions()
	opts.ClosingKeywords = append(opts.ClosingKeywords, params.ClosingKeywords(category)...)
	return opts
}

// formatAll reflows candidates, dropping any that format to empty.
func formatAll(opts format.Options, candidates []string) (formatted []string, empty int) {
	formatted = make([]string, 0, len(candidates))
	for _, cand := range candidates {
		f := opts.Format(cand)
		if f == "" {
			empty++
			continue
		}
		formatted = append(formatted, f)
	}
	return formatted, empty
}

// setLatest records token as the most recently started round.
func (e *Engine) setLatest(token string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.latest = token
}

// isStale reports whether a newer round has started since token was
// issued. Callers that allow overlapping regenerate actions discard
// stale results instead of racing them.
func (e *Engine) isStale(token string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest != token
}
