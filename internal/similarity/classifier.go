package similarity

// Classifier decides whether a candidate bio is a near-duplicate of any
// previously seen bio. It layers cheap lexical checks before the more
// expensive edit-distance comparison, short-circuiting on the first
// signal that fires, which keeps filtering fast on typical batch sizes
// of a few dozen candidates.
type Classifier struct {
	config    Config
	stopwords map[string]struct{}
	extract   EmojiExtractor
}

// NewClassifier creates a classifier with the given configuration.
// Returns an error if the configuration is invalid.
func NewClassifier(config Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	extract := config.EmojiExtractor
	if extract == nil {
		extract = ExtractEmoji
	}

	return &Classifier{
		config:    config,
		stopwords: config.stopwordSet(),
		extract:   extract,
	}, nil
}

// Config returns the classifier's configuration.
func (c *Classifier) Config() Config {
	return c.config
}

// IsDuplicate reports whether candidate is a near-duplicate of any text
// in history. History entries may be raw (unnormalized) bios; all
// comparison is done on normalized forms. Total over arbitrary input:
// an empty candidate is never a duplicate of a non-empty history.
func (c *Classifier) IsDuplicate(candidate string, history []string) bool {
	key := Normalize(candidate)
	if key == "" {
		return false
	}

	for _, prior := range history {
		if c.matches(candidate, key, prior) {
			return true
		}
	}
	return false
}

// matches runs the layered signals for one candidate/prior pair.
func (c *Classifier) matches(candidate, candidateKey, prior string) bool {
	priorKey := Normalize(prior)
	if priorKey == "" {
		return false
	}

	// Signal 1: exact match on normalized text.
	if candidateKey == priorKey {
		return true
	}

	// Signal 2: word-overlap ratio over stop-word-free content tokens.
	if c.wordOverlap(candidateKey, priorKey) > c.config.WordOverlapThreshold {
		return true
	}

	// Signal 3: any shared n-word phrase. Bigrams exclude chunks
	// containing a stop word; longer phrases are specific enough on
	// their own.
	for _, n := range c.config.PhraseSizes {
		if c.sharedPhrase(candidateKey, priorKey, n) {
			return true
		}
	}

	// Signal 4: sentence-level edit-distance similarity. Most
	// expensive check, so it runs last among the text signals.
	if c.sentenceMatch(candidate, prior) {
		return true
	}

	// Signal 5: emoji-set overlap, when enabled.
	if c.config.EmojiOverlapThreshold > 0 {
		if emojiOverlap(c.extract(candidate), c.extract(prior)) > c.config.EmojiOverlapThreshold {
			return true
		}
	}

	return false
}

func (c *Classifier) wordOverlap(a, b string) float64 {
	ta := contentTokens(a, c.config.MinTokenLength, c.stopwords)
	tb := contentTokens(b, c.config.MinTokenLength, c.stopwords)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	shared := 0
	for w := range ta {
		if _, ok := tb[w]; ok {
			shared++
		}
	}

	maxLen := len(ta)
	if len(tb) > maxLen {
		maxLen = len(tb)
	}
	return float64(shared) / float64(maxLen)
}

func (c *Classifier) sharedPhrase(a, b string, n int) bool {
	excludeStop := n == 2
	pa := phrases(a, n, excludeStop, c.stopwords)
	if len(pa) == 0 {
		return false
	}
	pb := phrases(b, n, excludeStop, c.stopwords)
	for p := range pa {
		if _, ok := pb[p]; ok {
			return true
		}
	}
	return false
}

func (c *Classifier) sentenceMatch(a, b string) bool {
	sa := sentences(a, c.config.MinFragmentLength)
	if len(sa) == 0 {
		return false
	}
	sb := sentences(b, c.config.MinFragmentLength)
	for _, fa := range sa {
		na := Normalize(fa)
		for _, fb := range sb {
			if SentenceSimilarity(na, Normalize(fb)) > c.config.SentenceSimilarityThreshold {
				return true
			}
		}
	}
	return false
}
