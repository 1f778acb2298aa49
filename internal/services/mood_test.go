package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoodAnalysis(t *testing.T) {
	analysis, err := ParseMoodAnalysis(`{"mood": "Happy", "intensity": 4}`)
	require.NoError(t, err)
	assert.Equal(t, "Happy", analysis.Mood)
	assert.Equal(t, 4, analysis.Intensity)
}

func TestParseMoodAnalysisCodeFence(t *testing.T) {
	reply := "```json\n{\"mood\": \"Calm\", \"intensity\": 2}\n```"
	analysis, err := ParseMoodAnalysis(reply)
	require.NoError(t, err)
	assert.Equal(t, "Calm", analysis.Mood)
	assert.Equal(t, 2, analysis.Intensity)
}

func TestParseMoodAnalysisProseAroundJSON(t *testing.T) {
	reply := `Sure! Here is the analysis: {"mood": "Tired", "intensity": 5} Hope that helps.`
	analysis, err := ParseMoodAnalysis(reply)
	require.NoError(t, err)
	assert.Equal(t, "Tired", analysis.Mood)
}

func TestParseMoodAnalysisNormalizesCase(t *testing.T) {
	analysis, err := ParseMoodAnalysis(`{"mood": "anxious", "intensity": 3}`)
	require.NoError(t, err)
	assert.Equal(t, "Anxious", analysis.Mood)
}

func TestParseMoodAnalysisRejectsUnknownMood(t *testing.T) {
	_, err := ParseMoodAnalysis(`{"mood": "Ecstatic", "intensity": 3}`)
	assert.Error(t, err)
}

func TestParseMoodAnalysisRejectsIntensityOutOfRange(t *testing.T) {
	for _, intensity := range []string{"0", "6", "-1"} {
		_, err := ParseMoodAnalysis(`{"mood": "Happy", "intensity": ` + intensity + `}`)
		assert.Error(t, err, "intensity %s should be rejected", intensity)
	}
}

func TestParseMoodAnalysisRejectsNonJSON(t *testing.T) {
	_, err := ParseMoodAnalysis("I think you are feeling happy today!")
	assert.Error(t, err)
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSONObject("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(`Here you go: {"a":1} done`))
	assert.Equal(t, "", ExtractJSONObject("no object here"))
}
