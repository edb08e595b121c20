package similarity

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"word overlap too high", func(c *Config) { c.WordOverlapThreshold = 1.5 }, true},
		{"word overlap negative", func(c *Config) { c.WordOverlapThreshold = -0.1 }, true},
		{"sentence threshold too high", func(c *Config) { c.SentenceSimilarityThreshold = 2.0 }, true},
		{"emoji threshold negative", func(c *Config) { c.EmojiOverlapThreshold = -1 }, true},
		{"emoji disabled is valid", func(c *Config) { c.EmojiOverlapThreshold = 0 }, false},
		{"empty phrase sizes", func(c *Config) { c.PhraseSizes = nil }, true},
		{"phrase size too small", func(c *Config) { c.PhraseSizes = []int{1} }, true},
		{"phrase size too large", func(c *Config) { c.PhraseSizes = []int{11} }, true},
		{"token length out of range", func(c *Config) { c.MinTokenLength = 21 }, true},
		{"fragment length negative", func(c *Config) { c.MinFragmentLength = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWithinBatchConfigValid(t *testing.T) {
	cfg := WithinBatchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("within-batch profile should validate: %v", err)
	}
	strict := DefaultConfig()
	if cfg.WordOverlapThreshold <= strict.WordOverlapThreshold {
		t.Error("within-batch word-overlap threshold should be looser than cross-batch")
	}
	if cfg.SentenceSimilarityThreshold <= strict.SentenceSimilarityThreshold {
		t.Error("within-batch sentence threshold should be looser than cross-batch")
	}
}

func TestConfigString(t *testing.T) {
	s := DefaultConfig().String()
	for _, want := range []string{"0.25", "0.65", "0.50", "2,3"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("BIOFORGE_SIM_WORD_OVERLAP", "")
		cfg, err := ConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WordOverlapThreshold != 0.25 {
			t.Errorf("WordOverlapThreshold = %v, want 0.25", cfg.WordOverlapThreshold)
		}
	})

	t.Run("overrides applied", func(t *testing.T) {
		t.Setenv("BIOFORGE_SIM_WORD_OVERLAP", "0.4")
		t.Setenv("BIOFORGE_SIM_SENTENCE", "0.7")
		t.Setenv("BIOFORGE_SIM_EMOJI", "0")
		t.Setenv("BIOFORGE_SIM_PHRASE_SIZES", "3, 4")

		cfg, err := ConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WordOverlapThreshold != 0.4 {
			t.Errorf("WordOverlapThreshold = %v, want 0.4", cfg.WordOverlapThreshold)
		}
		if cfg.SentenceSimilarityThreshold != 0.7 {
			t.Errorf("SentenceSimilarityThreshold = %v, want 0.7", cfg.SentenceSimilarityThreshold)
		}
		if cfg.EmojiOverlapThreshold != 0 {
			t.Errorf("EmojiOverlapThreshold = %v, want 0", cfg.EmojiOverlapThreshold)
		}
		if len(cfg.PhraseSizes) != 2 || cfg.PhraseSizes[0] != 3 || cfg.PhraseSizes[1] != 4 {
			t.Errorf("PhraseSizes = %v, want [3 4]", cfg.PhraseSizes)
		}
	})

	t.Run("malformed value rejected", func(t *testing.T) {
		t.Setenv("BIOFORGE_SIM_WORD_OVERLAP", "not-a-number")
		if _, err := ConfigFromEnv(); err == nil {
			t.Error("expected error for malformed float")
		}
	})

	t.Run("out-of-range value rejected", func(t *testing.T) {
		t.Setenv("BIOFORGE_SIM_WORD_OVERLAP", "3.0")
		if _, err := ConfigFromEnv(); err == nil {
			t.Error("expected error for out-of-range threshold")
		}
	})
}

func TestStopwordSet(t *testing.T) {
	cfg := DefaultConfig()
	set := cfg.stopwordSet()
	if _, ok := set["the"]; !ok {
		t.Error("default stop words should include 'the'")
	}

	cfg.Stopwords = []string{"ONLY"}
	set = cfg.stopwordSet()
	if _, ok := set["only"]; !ok {
		t.Error("custom stop words should be lowercased")
	}
	if _, ok := set["the"]; ok {
		t.Error("custom list should replace the defaults")
	}
}
