// Command associate-entries backfills an owning user id onto diary entries
// created before authentication existed. Run once with the target user's id:
//
//	associate-entries -user 64f1c0...
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/reverie-app/journal-backend/internal/config"
	"github.com/reverie-app/journal-backend/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func main() {
	userID := flag.String("user", "", "hex id of the user to assign orphaned entries to")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}
	if _, err := primitive.ObjectIDFromHex(*userID); err != nil {
		log.Fatalf("-user must be a valid object id: %v", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := database.DB.Collection("diary_entries").UpdateMany(ctx,
		bson.M{"user_id": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"user_id": *userID}},
	)
	if err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Printf("Migration complete: %d entries associated with user %s", result.ModifiedCount, *userID)
}
