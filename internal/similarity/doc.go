// Package similarity implements near-duplicate detection for generated
// bio text.
//
// AI generators repeat themselves: across batches they reuse the same
// structure and phrasing with superficial variation, so exact-match
// deduplication alone lets obvious repeats through. The classifier in
// this package layers several lexical signals, cheapest first, and
// short-circuits on the first one that fires:
//
//  1. Exact match on the normalized text
//  2. Word-overlap ratio over stop-word-free tokens
//  3. Shared n-word phrases (bigrams/trigrams cross-batch, 4-word
//     chunks within a batch)
//  4. Sentence-level edit-distance similarity
//  5. Emoji-set overlap (pluggable signal)
//
// Two threshold profiles exist because repetition tolerance differs by
// scope: some repetition inside a single generator response is
// acceptable (the looser within-batch profile), but repeats against
// bios the user has already seen are not (the stricter cross-batch
// profile). Thresholds live in Config rather than inline constants;
// they are policy choices, not derived values.
//
// All functions in this package are total over arbitrary string input,
// including empty strings, strings without newlines, and strings
// containing only emoji. Nothing here panics or returns an error for
// malformed text.
//
// Example usage:
//
//	clf, err := similarity.NewClassifier(similarity.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if clf.IsDuplicate(candidate, history.Texts()) {
//	    // drop the candidate
//	}
package similarity
