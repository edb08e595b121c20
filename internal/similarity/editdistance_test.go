package similarity

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"both empty", "", "", 0},
		{"one empty", "", "abc", 3},
		{"identical", "kitten", "kitten", 0},
		{"classic kitten sitting", "kitten", "sitting", 3},
		{"single substitution", "cat", "bat", 1},
		{"single insertion", "cat", "cats", 1},
		{"completely different", "abc", "xyz", 3},
		{"multibyte runes", "héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditDistance(tt.a, tt.b); got != tt.expected {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

// TestEditDistanceSymmetry verifies d(a,b) == d(b,a) and d(a,a) == 0.
func TestEditDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"hello world", "world hello"},
		{"", "nonempty"},
		{"✨ dream big ✨", "dream bigger"},
		{"same", "same"},
	}
	for _, p := range pairs {
		ab := EditDistance(p[0], p[1])
		ba := EditDistance(p[1], p[0])
		if ab != ba {
			t.Errorf("asymmetric: d(%q,%q)=%d but d(%q,%q)=%d", p[0], p[1], ab, p[1], p[0], ba)
		}
		if d := EditDistance(p[0], p[0]); d != 0 {
			t.Errorf("d(%q,%q) = %d, want 0", p[0], p[0], d)
		}
	}
}

// TestEditDistanceBound verifies d(a,b) <= len(a) + len(b).
func TestEditDistanceBound(t *testing.T) {
	pairs := [][2]string{
		{"short", "a much longer string entirely"},
		{"", ""},
		{"xyz", "abc"},
	}
	for _, p := range pairs {
		d := EditDistance(p[0], p[1])
		bound := len([]rune(p[0])) + len([]rune(p[1]))
		if d > bound {
			t.Errorf("d(%q,%q) = %d exceeds bound %d", p[0], p[1], d, bound)
		}
	}
}

func TestSentenceSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"both empty scores zero", "", "", 0},
		{"identical", "hello", "hello", 1.0},
		{"disjoint", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SentenceSimilarity(tt.a, tt.b); got != tt.expected {
				t.Errorf("SentenceSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}

	// Near-identical sentences score high.
	sim := SentenceSimilarity("living my best life today", "living my best life todays")
	if sim <= 0.9 {
		t.Errorf("expected similarity > 0.9 for near-identical sentences, got %v", sim)
	}
}
