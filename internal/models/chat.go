package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is one turn of a supportive conversation, persisted so the
// history endpoint can replay past sessions. One document per message.
type ChatMessage struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	ConversationID string             `bson:"conversation_id" json:"conversation_id"`
	SessionType    string             `bson:"session_type,omitempty" json:"session_type,omitempty"`
	Role           string             `bson:"role" json:"role"` // "user" or "assistant"
	Text           string             `bson:"text" json:"text"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
