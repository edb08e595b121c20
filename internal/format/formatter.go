// Package format reflows generated bio text into the three-line shape
// used for display. Formatting only rearranges input: it splits long
// lines at existing delimiters, merges excess lines, and truncates. It
// never pads short input with filler content.
package format

import "strings"

// Options configures the reflow heuristics.
type Options struct {
	// MaxLines is the line cap. Default: 3.
	MaxLines int

	// MaxLineLength is the rune length above which a line is a
	// candidate for splitting when the bio has too few lines.
	// Default: 60.
	MaxLineLength int

	// ShortClosingLength is the rune length under which a final line
	// may be treated as a closing line and preserved during merging.
	// Default: 50.
	ShortClosingLength int

	// Delimiters is the ordered preference list of split points tried
	// when breaking a long line. Default: ". ", "• ", "| ", " - ".
	Delimiters []string

	// ClosingKeywords marks a short final line as a call-to-action
	// worth keeping when merging excess lines. Callers append
	// category-specific terms to the base list.
	ClosingKeywords []string

	// Separator joins merged middle lines. Default: " • ".
	Separator string
}

// DefaultOptions returns the standard three-line reflow options.
func DefaultOptions() Options {
	return Options{
		MaxLines:           3,
		MaxLineLength:      60,
		ShortClosingLength: 50,
		Delimiters:         []string{". ", "• ", "| ", " - "},
		ClosingKeywords:    []string{"dm", "follow", "connect"},
		Separator:          " • ",
	}
}

// ToThreeLines formats text with DefaultOptions.
func ToThreeLines(text string) string {
	return DefaultOptions().Format(text)
}

// Format reflows text to at most o.MaxLines non-empty lines joined by
// newlines. Short or empty input yields fewer lines — possibly the
// empty string — never synthesized filler.
func (o Options) Format(text string) string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return ""
	}

	maxLines := o.MaxLines
	if maxLines <= 0 {
		maxLines = 3
	}

	if len(lines) < maxLines {
		lines = o.expand(lines, maxLines)
	}
	if len(lines) > maxLines {
		lines = o.condense(lines, maxLines)
	}

	return strings.Join(lines, "\n")
}

// splitLines breaks text on runs of newlines, trimming each line and
// dropping empties.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// expand tries to reach maxLines by splitting long lines at the first
// delimiter found in preference order. Lines with no good split point
// stay whole; no content is invented.
func (o Options) expand(lines []string, maxLines int) []string {
	for len(lines) < maxLines {
		split := false
		for i, line := range lines {
			if len([]rune(line)) <= o.MaxLineLength {
				continue
			}
			head, tail, ok := o.splitAtDelimiter(line)
			if !ok {
				continue
			}
			expanded := make([]string, 0, len(lines)+1)
			expanded = append(expanded, lines[:i]...)
			expanded = append(expanded, head, tail)
			expanded = append(expanded, lines[i+1:]...)
			lines = expanded
			split = true
			break
		}
		if !split {
			break
		}
	}
	return lines
}

// splitAtDelimiter breaks line at the first delimiter from the
// preference list, keeping sentence-ending punctuation with the head.
func (o Options) splitAtDelimiter(line string) (head, tail string, ok bool) {
	for _, delim := range o.Delimiters {
		idx := strings.Index(line, delim)
		if idx <= 0 {
			continue
		}
		cut := idx
		if delim == ". " {
			cut = idx + 1 // keep the period on the head
		}
		head = strings.TrimSpace(line[:cut])
		tail = strings.TrimSpace(line[idx+len(delim):])
		if head == "" || tail == "" {
			continue
		}
		return head, tail, true
	}
	return "", "", false
}

// condense reduces lines to maxLines. If the final line looks like a
// short closing call-to-action, the first and last lines are kept and
// the middle joined with the separator; otherwise the excess is simply
// truncated.
func (o Options) condense(lines []string, maxLines int) []string {
	last := lines[len(lines)-1]
	if o.isClosingLine(last) && maxLines >= 3 {
		middle := strings.Join(lines[1:len(lines)-1], o.Separator)
		return []string{lines[0], middle, last}
	}
	return lines[:maxLines]
}

// isClosingLine reports whether line is short and contains a recognized
// closing keyword.
func (o Options) isClosingLine(line string) bool {
	if len([]rune(line)) >= o.ShortClosingLength {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range o.ClosingKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
