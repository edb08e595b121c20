package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// biosEnvelope is the expected response shape.
type biosEnvelope struct {
	Bios []string `json:"bios"`
}

// ExtractBios parses candidate bios out of a model response. Models
// occasionally wrap JSON in code fences or prose despite instructions,
// so the parser scans for the outermost JSON object (or bare array)
// before unmarshaling. Blank candidates are dropped.
func ExtractBios(response string) ([]string, error) {
	text := stripCodeFences(response)

	jsonStr, ok := sliceJSON(text, '{', '}')
	if ok {
		var env biosEnvelope
		if err := json.Unmarshal([]byte(jsonStr), &env); err == nil {
			return cleanBios(env.Bios), nil
		}
	}

	// Some responses are a bare JSON array.
	jsonStr, ok = sliceJSON(text, '[', ']')
	if ok {
		var bios []string
		if err := json.Unmarshal([]byte(jsonStr), &bios); err == nil {
			return cleanBios(bios), nil
		}
	}

	return nil, fmt.Errorf("no parsable JSON in response: %s", truncate(response, 200))
}

// sliceJSON returns the substring from the first open delimiter to the
// last close delimiter.
func sliceJSON(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// stripCodeFences removes markdown code fences if present.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// cleanBios trims candidates and drops empties.
func cleanBios(bios []string) []string {
	out := make([]string, 0, len(bios))
	for _, b := range bios {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
