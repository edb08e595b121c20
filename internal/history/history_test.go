package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryAdd(t *testing.T) {
	h := New()

	assert.True(t, h.Add("first bio"))
	assert.False(t, h.Add("first bio"), "repeat insert should be rejected")
	assert.False(t, h.Add("  FIRST   bio "), "normalization should collapse case and spacing")
	assert.True(t, h.Add("second bio"))
	assert.Equal(t, 2, h.Len())
}

func TestHistoryAddEmptyRejected(t *testing.T) {
	h := New()

	assert.False(t, h.Add(""))
	assert.False(t, h.Add("   \n\t  "))
	assert.Equal(t, 0, h.Len())
}

func TestHistoryContains(t *testing.T) {
	h := New()
	h.Add("Coffee first ☕")

	assert.True(t, h.Contains("Coffee first ☕"))
	assert.True(t, h.Contains("coffee   FIRST ☕"))
	assert.False(t, h.Contains("tea first"))
}

func TestHistoryTextsInsertionOrder(t *testing.T) {
	h := New()
	h.Add("alpha")
	h.Add("beta")
	h.Add("Alpha") // duplicate key, raw text must not be retained
	h.Add("gamma")

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, h.Texts())
}

func TestHistoryTextsReturnsCopy(t *testing.T) {
	h := New()
	h.Add("original")

	texts := h.Texts()
	texts[0] = "mutated"

	assert.Equal(t, []string{"original"}, h.Texts())
}

func TestHistoryKeys(t *testing.T) {
	h := New()
	h.Add("  One Line ")
	h.Add("Two\nLines")

	keys := h.Keys()
	assert.Len(t, keys, 2)
	assert.ElementsMatch(t, []string{"one line", "two lines"}, keys)
}

func TestHistoryReset(t *testing.T) {
	h := New()
	h.Add("something")
	h.Reset()

	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Texts())
	assert.True(t, h.Add("something"), "reset history should accept prior entries again")
}
