package services

import (
	"context"
	"log"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the collections depend on. Called from
// main once Mongo is connected.
func EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_email_unique"),
			},
		},
		"diary_entries": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
				Options: options.Index().SetName("idx_user_date"),
			},
		},
		"goals": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_user_created"),
			},
		},
		"recipes": {
			{
				Keys:    bson.D{{Key: "mood", Value: 1}},
				Options: options.Index().SetName("idx_mood"),
			},
		},
		// The compound unique index enforces one thought document per user per day.
		"morning_thoughts": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_user_date_unique"),
			},
		},
		"chat_messages": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_user_created"),
			},
		},
	}

	for collection, specs := range indexes {
		if _, err := database.DB.Collection(collection).Indexes().CreateMany(ctx, specs); err != nil {
			return err
		}
	}
	return nil
}

// SaveChatMessageAsync persists a chat message without blocking the WebSocket
// loop. Fire-and-forget: a lost message costs a line of history, nothing more.
func SaveChatMessageAsync(msg models.ChatMessage) {
	go func(m models.ChatMessage) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}

		if _, err := database.DB.Collection("chat_messages").InsertOne(ctx, m); err != nil {
			log.Printf("failed to persist chat message: %v", err)
		}
	}(msg)
}

// LoadChatHistory returns a user's persisted chat messages, newest first.
func LoadChatHistory(ctx context.Context, userID string, limit, skip int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := database.DB.Collection("chat_messages").Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := make([]models.ChatMessage, 0, limit)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
