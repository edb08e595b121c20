package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T, cfg Config) *Classifier {
	t.Helper()
	clf, err := NewClassifier(cfg)
	require.NoError(t, err)
	return clf
}

func TestClassifierExactMatch(t *testing.T) {
	clf := newTestClassifier(t, DefaultConfig())

	history := []string{"hello world today"}
	assert.True(t, clf.IsDuplicate("hello world today", history))
	assert.True(t, clf.IsDuplicate("  Hello   World   TODAY ", history), "normalization should make these identical")
}

func TestClassifierWordOverlap(t *testing.T) {
	clf := newTestClassifier(t, DefaultConfig())

	// High shared-word ratio: chasing/dreams/skies shared.
	history := []string{"chasing dreams under moonlight skies"}
	assert.True(t, clf.IsDuplicate("chasing dreams beneath moonlit skies", history))
}

func TestClassifierDistinctAccepted(t *testing.T) {
	clf := newTestClassifier(t, DefaultConfig())

	history := []string{"professional overthinker pizza lover"}
	assert.False(t, clf.IsDuplicate("certified yoga instructor morning person", history))
}

func TestClassifierSharedPhrases(t *testing.T) {
	clf := newTestClassifier(t, DefaultConfig())

	// Shared bigram "golden retriever" with otherwise different text.
	history := []string{"walking my golden retriever every single sunrise without fail"}
	candidate := "golden retriever appreciation account documenting naps"
	assert.True(t, clf.IsDuplicate(candidate, history))
}

func TestClassifierSentenceSimilarity(t *testing.T) {
	cfg := DefaultConfig()
	// Isolate the sentence signal: disable overlap-based signals.
	cfg.WordOverlapThreshold = 1.0
	cfg.PhraseSizes = []int{9}
	cfg.EmojiOverlapThreshold = 0
	clf := newTestClassifier(t, cfg)

	history := []string{"Certified dreamer living loudly."}
	assert.True(t, clf.IsDuplicate("Certified dreamer living proudly.", history),
		"one-character sentence variation should exceed the similarity threshold")
	assert.False(t, clf.IsDuplicate("Completely different words appear here.", history))
}

func TestClassifierEmojiSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordOverlapThreshold = 1.0
	cfg.PhraseSizes = []int{9}
	cfg.SentenceSimilarityThreshold = 1.0
	clf := newTestClassifier(t, cfg)

	history := []string{"🌙 night owl 🦋 becoming 💫 slowly"}
	assert.True(t, clf.IsDuplicate("🌙 different words entirely 🦋 here 💫", history),
		"full emoji-set overlap should fire the emoji signal")
	assert.False(t, clf.IsDuplicate("🌻 sunny side 🌿 garden days", history))
}

func TestClassifierEmojiSignalPluggable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordOverlapThreshold = 1.0
	cfg.PhraseSizes = []int{9}
	cfg.SentenceSimilarityThreshold = 1.0
	calls := 0
	cfg.EmojiExtractor = func(text string) map[rune]struct{} {
		calls++
		return map[rune]struct{}{'x': {}}
	}
	clf := newTestClassifier(t, cfg)

	assert.True(t, clf.IsDuplicate("anything", []string{"something else"}))
	assert.Greater(t, calls, 0, "custom extractor should be consulted")
}

func TestClassifierWithinBatchLooser(t *testing.T) {
	strict := newTestClassifier(t, DefaultConfig())
	loose := newTestClassifier(t, WithinBatchConfig())

	// Moderate word overlap: duplicate cross-batch, tolerated within a batch.
	history := []string{"coffee lover chasing sunsets daily"}
	candidate := "coffee enthusiast chasing mountains weekly"

	assert.True(t, strict.IsDuplicate(candidate, history))
	assert.False(t, loose.IsDuplicate(candidate, history))
}

func TestClassifierTotalOverArbitraryInput(t *testing.T) {
	clf := newTestClassifier(t, DefaultConfig())

	// None of these may panic; empty candidates are never duplicates.
	assert.False(t, clf.IsDuplicate("", []string{"anything"}))
	assert.False(t, clf.IsDuplicate("   ", []string{"anything"}))
	assert.False(t, clf.IsDuplicate("candidate", nil))
	assert.False(t, clf.IsDuplicate("candidate", []string{""}))
	assert.False(t, clf.IsDuplicate("🌙🦋💫", []string{"plain words"}))
}

func TestNewClassifierRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordOverlapThreshold = 1.5
	_, err := NewClassifier(cfg)
	assert.Error(t, err)
}
