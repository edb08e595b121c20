// Package types defines the shared data model for the bio generation
// pipeline: categories, generation parameter sets, and the result type
// returned by the orchestration engine.
package types

import (
	"fmt"
	"strings"
)

// Category identifies a bio category. Each category has its own fixed
// list of generation parameter sets and its own curated fallback bios.
type Category string

const (
	CategoryAesthetic Category = "aesthetic"
	CategoryFunny     Category = "funny"
	CategoryBusiness  Category = "business"
	CategoryCool      Category = "cool"
)

// AllCategories returns every known category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAesthetic,
		CategoryFunny,
		CategoryBusiness,
		CategoryCool,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryAesthetic, CategoryFunny, CategoryBusiness, CategoryCool:
		return true
	}
	return false
}

// ParseCategory converts a user-supplied string to a Category.
// Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		names := make([]string, 0, len(AllCategories()))
		for _, known := range AllCategories() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unknown category %q (expected one of: %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}

// ParameterSet is an immutable bundle of generation-request attributes.
// Each category defines several sets, each nudging topic/tone/style to
// diversify the generator's output across attempts.
type ParameterSet struct {
	Interests    string   // comma-separated topical interests
	Profession   string   // professions/roles to draw from
	Personality  string   // personality traits shaping the voice
	Tone         string   // e.g. "Aesthetic", "Funny", "Professional"
	Style        string   // e.g. "With Emojis", "Clean Text"
	Category     Category // category tag
	Format       string   // optional format hint (e.g. "three short lines")
	Instructions string   // optional free-text instructions
}

// Validate checks that the parameter set carries enough signal to build
// a generation prompt from.
func (p *ParameterSet) Validate() error {
	if !p.Category.Valid() {
		return fmt.Errorf("invalid category %q", p.Category)
	}
	if p.Interests == "" && p.Profession == "" && p.Personality == "" {
		return fmt.Errorf("parameter set must specify at least one of interests, profession, personality")
	}
	if p.Tone == "" {
		return fmt.Errorf("tone is required")
	}
	return nil
}

// Source indicates where a result's bios came from.
type Source string

const (
	// SourceAI means the bios were generated and survived filtering.
	SourceAI Source = "ai"

	// SourceCurated means a caller substituted the static curated list.
	// The engine never returns this itself; it is set by callers that
	// fall back after a failed result.
	SourceCurated Source = "curated"

	// SourceFailed means every generation attempt failed or returned
	// zero usable candidates. Bios is empty in this case.
	SourceFailed Source = "failed"
)

// Result is the outcome of one orchestrated generation round.
type Result struct {
	// Bios are the formatted survivors, at most the configured target
	// count, each at most three lines.
	Bios []string

	// Source distinguishes AI output from total generation failure.
	Source Source

	// RequestID is the token assigned to this round. Callers that allow
	// overlapping regenerate actions should discard results whose Stale
	// flag is set.
	RequestID string

	// Stale is true when a newer round started before this one finished.
	Stale bool

	// Stats describes the filtering work done for this round.
	Stats Stats
}

// Failed reports whether the round produced no usable output at all.
// This is distinct from "zero unique bios after filtering", which the
// engine resolves internally by relaxing to within-batch-unique results.
func (r *Result) Failed() bool {
	return r.Source == SourceFailed
}

// Stats holds metrics about one generation round.
type Stats struct {
	AttemptedSets         int   `json:"attempted_sets"`          // parameter sets tried
	FailedSets            int   `json:"failed_sets"`             // sets whose call errored
	RawCandidates         int   `json:"raw_candidates"`          // candidates received pre-filtering
	WithinBatchDuplicates int   `json:"within_batch_duplicates"` // dropped against the batch itself
	HistoryDuplicates     int   `json:"history_duplicates"`      // dropped against session history
	EmptyAfterFormat      int   `json:"empty_after_format"`      // dropped as empty post-format
	Returned              int   `json:"returned"`                // bios handed back
	Relaxed               bool  `json:"relaxed"`                 // true if history filtering was relaxed
	ProcessingTimeMs      int64 `json:"processing_time_ms"`
}

// Validate checks internal consistency of the stats.
func (s *Stats) Validate() error {
	if s.AttemptedSets < 0 || s.FailedSets < 0 || s.RawCandidates < 0 {
		return fmt.Errorf("counts cannot be negative")
	}
	if s.FailedSets > s.AttemptedSets {
		return fmt.Errorf("failed_sets (%d) cannot exceed attempted_sets (%d)", s.FailedSets, s.AttemptedSets)
	}
	if s.Returned > s.RawCandidates {
		return fmt.Errorf("returned (%d) cannot exceed raw_candidates (%d)", s.Returned, s.RawCandidates)
	}
	return nil
}
