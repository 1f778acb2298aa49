package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTherapyPromptVariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, sessionType := range TherapySessionTypes() {
		prompt := TherapyPrompt(sessionType)
		assert.NotEmpty(t, prompt, "session type %s", sessionType)
		assert.False(t, seen[prompt], "session type %s shares a prompt with another type", sessionType)
		seen[prompt] = true
	}
	assert.Len(t, seen, 5)
}

func TestTherapyPromptUnknownFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, TherapyPrompt("general"), TherapyPrompt("does-not-exist"))
	assert.Equal(t, TherapyPrompt("general"), TherapyPrompt(""))
}
