package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reverie-app/journal-backend/internal/models"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestApplyGoalPatchClampsProgress(t *testing.T) {
	goal := models.Goal{Progress: 40}

	applyGoalPatch(&goal, GoalPatch{Progress: intPtr(150)})
	assert.Equal(t, 100, goal.Progress)
	assert.True(t, goal.Completed)

	applyGoalPatch(&goal, GoalPatch{Progress: intPtr(-10), Completed: boolPtr(false)})
	assert.Equal(t, 0, goal.Progress)
	assert.False(t, goal.Completed)
}

func TestApplyGoalPatchCompletesAtFullProgress(t *testing.T) {
	goal := models.Goal{Progress: 90}
	applyGoalPatch(&goal, GoalPatch{Progress: intPtr(100)})
	assert.True(t, goal.Completed)
}

func TestApplyGoalPatchFullProgressOverridesCompletedFlag(t *testing.T) {
	// The create path always sends a progress value; a zero-valued completed
	// flag must not undo the progress==100 derivation.
	goal := models.Goal{}
	applyGoalPatch(&goal, GoalPatch{Progress: intPtr(100), Completed: boolPtr(false)})
	assert.Equal(t, 100, goal.Progress)
	assert.True(t, goal.Completed)
}

func TestApplyGoalPatchLeavesUnsetFields(t *testing.T) {
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := models.Goal{
		Description: "Read 12 books",
		Category:    "Personal",
		Deadline:    &deadline,
		Progress:    25,
	}

	applyGoalPatch(&goal, GoalPatch{Description: strPtr("Read 20 books")})

	assert.Equal(t, "Read 20 books", goal.Description)
	assert.Equal(t, "Personal", goal.Category)
	assert.Equal(t, 25, goal.Progress)
	assert.Equal(t, &deadline, goal.Deadline)
}

func TestApplyGoalPatchReplacesArraysWholesale(t *testing.T) {
	goal := models.Goal{
		SubTasks: []models.SubTask{
			{Description: "old task", Completed: true},
			{Description: "another", Completed: false},
		},
	}

	newTasks := []models.SubTask{{Description: "only task", Completed: false}}
	applyGoalPatch(&goal, GoalPatch{SubTasks: &newTasks})

	assert.Equal(t, newTasks, goal.SubTasks)

	empty := []models.SubTask{}
	applyGoalPatch(&goal, GoalPatch{SubTasks: &empty})
	assert.Empty(t, goal.SubTasks)
}

func TestApplyGoalPatchUncompletingRequiresLowerProgress(t *testing.T) {
	// A goal at full progress stays completed; un-completing it means the
	// patch must also drop the progress below 100.
	goal := models.Goal{Progress: 100, Completed: true}
	applyGoalPatch(&goal, GoalPatch{Completed: boolPtr(false)})
	assert.True(t, goal.Completed)

	applyGoalPatch(&goal, GoalPatch{Progress: intPtr(80), Completed: boolPtr(false)})
	assert.False(t, goal.Completed)
	assert.Equal(t, 80, goal.Progress)
}
