package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reverie-app/journal-backend/internal/models"
)

func TestRecipeCatalogCoversEveryMood(t *testing.T) {
	perMood := make(map[string]int)
	for _, recipe := range RecipeCatalog {
		perMood[recipe.Mood]++
	}
	for _, mood := range models.Moods {
		assert.GreaterOrEqual(t, perMood[mood], 2, "mood %s needs at least two recipes", mood)
	}
}

func TestRecipeCatalogEntriesAreComplete(t *testing.T) {
	for _, recipe := range RecipeCatalog {
		assert.NotEmpty(t, recipe.Name)
		assert.True(t, models.IsValidMood(recipe.Mood), "recipe %q has unknown mood %q", recipe.Name, recipe.Mood)
		assert.NotEmpty(t, recipe.Ingredients, "recipe %q", recipe.Name)
		assert.NotEmpty(t, recipe.Instructions, "recipe %q", recipe.Name)
		assert.Greater(t, recipe.PrepTime, 0, "recipe %q", recipe.Name)
	}
}
