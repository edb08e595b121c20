package similarity

// EmojiExtractor returns the set of emoji runes in text. The classifier
// consults it as a pluggable signal so emoji coverage can be updated
// without touching the core logic.
type EmojiExtractor func(text string) map[rune]struct{}

// emojiRanges covers the common emoji blocks. Not exhaustive; bios
// generated by the upstream model stay within these.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended-A
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B00, 0x2BFF},   // arrows, stars
}

// ExtractEmoji is the default EmojiExtractor.
func ExtractEmoji(text string) map[rune]struct{} {
	out := make(map[rune]struct{})
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				out[r] = struct{}{}
				break
			}
		}
	}
	return out
}

// emojiOverlap returns |a ∩ b| / max(|a|, |b|), or 0 when either set is
// empty. A bio with no emoji shares no emoji signal with anything.
func emojiOverlap(a, b map[rune]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for r := range a {
		if _, ok := b[r]; ok {
			shared++
		}
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return float64(shared) / float64(maxLen)
}
