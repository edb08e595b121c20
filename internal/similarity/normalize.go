package similarity

import "strings"

// Normalize returns the canonical comparison form of text: trimmed,
// lowercased, with runs of whitespace collapsed to a single space.
// It is pure, deterministic, and idempotent:
// Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// words splits normalized text into its whitespace-separated words.
// Returns nil for empty input.
func words(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// contentTokens returns the unique words of text longer than minLength
// runes, excluding stop words. Used for word-overlap scoring, where
// short glue words would inflate the ratio.
func contentTokens(text string, minLength int, stopwords map[string]struct{}) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, w := range words(text) {
		if len([]rune(w)) <= minLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens[w] = struct{}{}
	}
	return tokens
}

// phrases returns the set of contiguous n-word sequences in text.
// When excludeStopwords is true, any phrase containing a stop word is
// skipped; phrases are joined with a single space.
func phrases(text string, n int, excludeStopwords bool, stopwords map[string]struct{}) map[string]struct{} {
	ws := words(text)
	out := make(map[string]struct{})
	if n <= 0 || len(ws) < n {
		return out
	}
	for i := 0; i+n <= len(ws); i++ {
		chunk := ws[i : i+n]
		if excludeStopwords {
			skip := false
			for _, w := range chunk {
				if _, stop := stopwords[w]; stop {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
		}
		out[strings.Join(chunk, " ")] = struct{}{}
	}
	return out
}

// sentences splits text on sentence-ending punctuation and newlines,
// keeping trimmed fragments longer than minLength runes.
func sentences(text string, minLength int) []string {
	frags := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', '\n':
			return true
		}
		return false
	})
	out := make([]string, 0, len(frags))
	for _, f := range frags {
		f = strings.TrimSpace(f)
		if len([]rune(f)) > minLength {
			out = append(out, f)
		}
	}
	return out
}
