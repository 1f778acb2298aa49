package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reverie-app/journal-backend/internal/models"
)

// MoodAnalysis is the classifier's structured reply for a diary entry.
type MoodAnalysis struct {
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
}

// ClassifyMood sends entry text to the model and parses the mood/intensity
// reply. A diary save fails entirely when this fails; there is no fallback
// mood.
func ClassifyMood(ctx context.Context, entryText string) (MoodAnalysis, error) {
	reply, err := AI.CompleteWithSystem(ctx, MoodClassifierPrompt, nil, entryText)
	if err != nil {
		return MoodAnalysis{}, err
	}
	return ParseMoodAnalysis(reply)
}

// ParseMoodAnalysis parses the classifier output. Models occasionally wrap the
// JSON in code fences or prose, so parsing starts at the first '{' and ends at
// the last '}'. The mood must be one of the six labels and the intensity must
// already be within [1,5]; anything else fails the save.
func ParseMoodAnalysis(reply string) (MoodAnalysis, error) {
	raw := ExtractJSONObject(reply)
	if raw == "" {
		return MoodAnalysis{}, fmt.Errorf("no JSON object in classifier reply")
	}

	var analysis MoodAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return MoodAnalysis{}, fmt.Errorf("invalid classifier JSON: %w", err)
	}

	analysis.Mood = normalizeMood(analysis.Mood)
	if !models.IsValidMood(analysis.Mood) {
		return MoodAnalysis{}, fmt.Errorf("unknown mood %q", analysis.Mood)
	}
	if analysis.Intensity < 1 || analysis.Intensity > 5 {
		return MoodAnalysis{}, fmt.Errorf("intensity %d out of range", analysis.Intensity)
	}

	return analysis, nil
}

// ExtractJSONObject returns the substring from the first '{' to the last '}',
// or "" when the reply contains no object. Models occasionally wrap their JSON
// in code fences or prose; every structured reply is trimmed through here.
func ExtractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

// normalizeMood title-cases the label so "happy" and "HAPPY" both match.
func normalizeMood(mood string) string {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return mood
	}
	return strings.ToUpper(mood[:1]) + strings.ToLower(mood[1:])
}
