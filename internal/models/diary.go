package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Moods is the fixed set of labels the classifier may return.
var Moods = []string{"Happy", "Calm", "Sad", "Anxious", "Energetic", "Tired"}

// IsValidMood reports whether mood is one of the six fixed labels.
func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// JournalTypes are the tags selecting which guiding prompts accompany an entry.
var JournalTypes = []string{"free", "guided", "gratitude", "reflection", "growth", "mindfulness", "creativity"}

// PromptAnswer is one guided-journal question with the user's answer.
type PromptAnswer struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// DiaryEntry is a journal entry with its AI-derived mood. Mood and intensity
// are set once at creation and never mutated afterwards.
type DiaryEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID        string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Entry         string             `bson:"entry" json:"entry"`
	Date          time.Time          `bson:"date" json:"date"`
	Mood          string             `bson:"mood" json:"mood"`
	MoodIntensity int                `bson:"mood_intensity" json:"moodIntensity"`
	JournalType   string             `bson:"journal_type,omitempty" json:"journalType,omitempty"`
	Prompts       []PromptAnswer     `bson:"prompts,omitempty" json:"prompts,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// MoodStat is one bucket of the stats aggregation. The _id field carries the
// mood label because the frontend consumes the Mongo aggregation shape.
type MoodStat struct {
	Mood             string  `bson:"_id" json:"_id"`
	Count            int     `bson:"count" json:"count"`
	AverageIntensity float64 `bson:"averageIntensity" json:"averageIntensity"`
}
