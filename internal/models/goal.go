package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalCategories are the selectable goal groupings.
var GoalCategories = []string{"Personal", "Health", "Career", "Learning"}

// SubTask is a single checklist item under a goal.
type SubTask struct {
	Description string `bson:"description" json:"description"`
	Completed   bool   `bson:"completed" json:"completed"`
}

// ProgressPoint is one recorded progress value; the client appends these and
// sends the full history on update.
type ProgressPoint struct {
	Value int       `bson:"value" json:"value"`
	Date  time.Time `bson:"date" json:"date"`
}

type Goal struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Description     string             `bson:"description" json:"description"`
	Category        string             `bson:"category" json:"category"`
	Deadline        *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Progress        int                `bson:"progress" json:"progress"`
	Completed       bool               `bson:"completed" json:"completed"`
	SubTasks        []SubTask          `bson:"sub_tasks" json:"subTasks"`
	ProgressHistory []ProgressPoint    `bson:"progress_history" json:"progressHistory"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}
