package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recipe is a catalog item suggested by mood. The collection is reseeded from
// a fixed catalog at startup; the create endpoint exists for ad-hoc additions.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Mood         string             `bson:"mood" json:"mood"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	PrepTime     int                `bson:"prep_time,omitempty" json:"prepTime,omitempty"` // minutes
	ImageURL     string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Dietary      string             `bson:"dietary,omitempty" json:"dietary,omitempty"`
}
