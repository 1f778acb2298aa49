package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MorningThought holds a user's thought list for one calendar day. The date is
// a plain YYYY-MM-DD string so lookups match exactly; a compound unique index
// on (user_id, date) guarantees at most one document per user per day.
type MorningThought struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Date     string             `bson:"date" json:"date"`
	Thoughts []string           `bson:"thoughts" json:"thoughts"`
}
