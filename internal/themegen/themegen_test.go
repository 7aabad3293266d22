package themegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPromptDeterministic(t *testing.T) {
	a := FromPrompt("abc")
	b := FromPrompt("abc")
	assert.Equal(t, a, b)
}

func TestFromPromptKeyedByLength(t *testing.T) {
	// Prompts of the same length land on the same palette.
	a := FromPrompt("abc")
	b := FromPrompt("xyz")
	assert.Equal(t, a.Primary, b.Primary)

	// Lengths 0, 1, 2 cover all three palettes.
	colors := map[string]bool{}
	for _, prompt := range []string{"", "a", "ab"} {
		colors[FromPrompt(prompt).Primary] = true
	}
	assert.Len(t, colors, 3)
}

func TestFromPromptRationaleMentionsPrompt(t *testing.T) {
	g := FromPrompt("calm fintech blue")
	assert.Contains(t, g.Rationale, "calm fintech blue")
	assert.NotEmpty(t, g.Primary)
	assert.NotEmpty(t, g.Accent)
	assert.NotEmpty(t, g.Neutral)
}
