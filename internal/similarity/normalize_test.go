package similarity

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "uppercase and padding",
			input:    "  Hello   WORLD  ",
			expected: "hello world",
		},
		{
			name:     "tabs and newlines collapse",
			input:    "one\ttwo\n\nthree",
			expected: "one two three",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "emoji preserved",
			input:    "✨ Dream   Big ✨",
			expected: "✨ dream big ✨",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestNormalizeIdempotent verifies normalize(normalize(s)) == normalize(s).
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Hello World",
		"  MIXED \t Case\n\nwith   gaps  ",
		"🌙 moon child at heart 🌙",
		"line one\nline two\nline three",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestContentTokens(t *testing.T) {
	stopwords := map[string]struct{}{"the": {}, "and": {}}

	tokens := contentTokens("The cat and the curious dog", 2, stopwords)

	for _, want := range []string{"cat", "curious", "dog"} {
		if _, ok := tokens[want]; !ok {
			t.Errorf("expected token %q in %v", want, tokens)
		}
	}
	if _, ok := tokens["the"]; ok {
		t.Error("stop word 'the' should be excluded")
	}
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
}

func TestPhrases(t *testing.T) {
	stopwords := map[string]struct{}{"the": {}}

	bigrams := phrases("chasing the wild dreams", 2, true, stopwords)
	if _, ok := bigrams["wild dreams"]; !ok {
		t.Errorf("expected bigram 'wild dreams' in %v", bigrams)
	}
	if _, ok := bigrams["chasing the"]; ok {
		t.Error("bigram containing stop word should be excluded")
	}

	trigrams := phrases("one two three four", 3, false, nil)
	if len(trigrams) != 2 {
		t.Errorf("expected 2 trigrams, got %d: %v", len(trigrams), trigrams)
	}

	// Text shorter than n yields nothing.
	if got := phrases("short", 4, false, nil); len(got) != 0 {
		t.Errorf("expected no 4-grams from one word, got %v", got)
	}
}

func TestSentences(t *testing.T) {
	got := sentences("First fragment here. Tiny!\nAnother long fragment follows", 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %v", len(got), got)
	}
	if got[0] != "First fragment here" {
		t.Errorf("unexpected first fragment: %q", got[0])
	}
}
