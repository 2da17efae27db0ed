package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	got := Apply(Options{Temperature: 0.7, Model: "base"}, WithModel("override"), WithMaxTokens(256))
	assert.Equal(t, Options{Temperature: 0.7, Model: "override", MaxTokens: 256}, got)

	got = Apply(Options{Temperature: 0.7}, WithTemperature(0))
	assert.Zero(t, got.Temperature)
}

func TestSplitSystem(t *testing.T) {
	system, rest := SplitSystem([]Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleSystem, Content: "be kind"},
		{Role: RoleAssistant, Content: "hello"},
	})

	assert.Equal(t, "be brief\n\nbe kind", system)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "hello"}}, rest)
}
