package services

import (
	"context"
	"log"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// RecipeCatalog is the fixed set of mood-keyed recipes loaded at startup.
// Every mood label has at least two entries.
var RecipeCatalog = []models.Recipe{
	{
		Name:         "Sunshine Smoothie Bowl",
		Mood:         "Happy",
		Description:  "A bright bowl of blended mango and banana topped with granola and berries.",
		Ingredients:  []string{"1 mango", "1 banana", "1/2 cup Greek yogurt", "1/4 cup granola", "Mixed berries"},
		Instructions: []string{"Blend mango, banana, and yogurt until smooth.", "Pour into a bowl.", "Top with granola and berries."},
		PrepTime:     10,
		Tags:         []string{"breakfast", "fruit"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Rainbow Veggie Tacos",
		Mood:         "Happy",
		Description:  "Colorful tacos loaded with roasted peppers, corn, and avocado.",
		Ingredients:  []string{"Corn tortillas", "Bell peppers", "Sweet corn", "Avocado", "Lime", "Cilantro"},
		Instructions: []string{"Roast peppers and corn.", "Warm the tortillas.", "Fill with vegetables, avocado, lime, and cilantro."},
		PrepTime:     25,
		Tags:         []string{"dinner", "mexican"},
		Dietary:      "vegan",
	},
	{
		Name:         "Chamomile Honey Oatmeal",
		Mood:         "Calm",
		Description:  "Slow-cooked oats steeped in chamomile with a drizzle of honey.",
		Ingredients:  []string{"1 cup rolled oats", "1 chamomile tea bag", "2 cups water", "Honey", "Sliced almonds"},
		Instructions: []string{"Brew chamomile in the water.", "Simmer oats in the tea until creamy.", "Finish with honey and almonds."},
		PrepTime:     15,
		Tags:         []string{"breakfast", "cozy"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Miso Soup with Tofu",
		Mood:         "Calm",
		Description:  "A quiet, warming bowl of miso broth with silken tofu and wakame.",
		Ingredients:  []string{"3 tbsp miso paste", "Silken tofu", "Wakame", "Scallions", "4 cups dashi or water"},
		Instructions: []string{"Heat the dashi gently.", "Whisk in miso off the boil.", "Add tofu, wakame, and scallions."},
		PrepTime:     15,
		Tags:         []string{"soup", "japanese"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Dark Chocolate Banana Bread",
		Mood:         "Sad",
		Description:  "Comforting banana bread with melted pockets of dark chocolate.",
		Ingredients:  []string{"3 ripe bananas", "2 cups flour", "1/2 cup butter", "2 eggs", "Dark chocolate chunks"},
		Instructions: []string{"Mash bananas with butter and eggs.", "Fold in flour and chocolate.", "Bake at 175C for 55 minutes."},
		PrepTime:     70,
		Tags:         []string{"baking", "comfort"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Creamy Tomato Soup with Grilled Cheese",
		Mood:         "Sad",
		Description:  "The classic comfort pairing, made from scratch.",
		Ingredients:  []string{"Canned tomatoes", "Onion", "Cream", "Bread", "Cheddar", "Butter"},
		Instructions: []string{"Simmer tomatoes and onion, then blend with cream.", "Grill the sandwich until golden.", "Serve together."},
		PrepTime:     35,
		Tags:         []string{"soup", "comfort"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Lavender Blueberry Overnight Oats",
		Mood:         "Anxious",
		Description:  "Make-ahead oats with calming lavender and sweet blueberries.",
		Ingredients:  []string{"1/2 cup oats", "1/2 cup milk", "Dried lavender", "Blueberries", "Maple syrup"},
		Instructions: []string{"Stir everything together in a jar.", "Refrigerate overnight.", "Top with extra berries before eating."},
		PrepTime:     5,
		Tags:         []string{"breakfast", "make-ahead"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Ginger Turmeric Lentil Stew",
		Mood:         "Anxious",
		Description:  "A grounding one-pot stew with warming spices.",
		Ingredients:  []string{"Red lentils", "Fresh ginger", "Turmeric", "Coconut milk", "Spinach"},
		Instructions: []string{"Saute ginger and turmeric.", "Add lentils and coconut milk; simmer 20 minutes.", "Wilt in the spinach."},
		PrepTime:     30,
		Tags:         []string{"dinner", "one-pot"},
		Dietary:      "vegan",
	},
	{
		Name:         "Power Quinoa Salad",
		Mood:         "Energetic",
		Description:  "A protein-packed salad to keep the momentum going.",
		Ingredients:  []string{"Quinoa", "Chickpeas", "Cucumber", "Cherry tomatoes", "Feta", "Lemon vinaigrette"},
		Instructions: []string{"Cook and cool the quinoa.", "Toss with vegetables and chickpeas.", "Dress with lemon vinaigrette and feta."},
		PrepTime:     20,
		Tags:         []string{"lunch", "high-protein"},
		Dietary:      "vegetarian",
	},
	{
		Name:         "Spicy Peanut Noodles",
		Mood:         "Energetic",
		Description:  "Quick noodles with a punchy peanut-chili sauce.",
		Ingredients:  []string{"Rice noodles", "Peanut butter", "Soy sauce", "Chili oil", "Scallions", "Lime"},
		Instructions: []string{"Cook the noodles.", "Whisk the sauce.", "Toss together and top with scallions and lime."},
		PrepTime:     15,
		Tags:         []string{"dinner", "quick"},
		Dietary:      "vegan",
	},
	{
		Name:         "Slow-Roasted Sweet Potato Bowl",
		Mood:         "Tired",
		Description:  "A low-effort bowl of roasted sweet potato, rice, and tahini.",
		Ingredients:  []string{"Sweet potatoes", "Cooked rice", "Tahini", "Lemon", "Toasted seeds"},
		Instructions: []string{"Roast sweet potato wedges until caramelized.", "Pile onto rice.", "Drizzle with lemony tahini and seeds."},
		PrepTime:     45,
		Tags:         []string{"dinner", "low-effort"},
		Dietary:      "vegan",
	},
	{
		Name:         "Golden Milk",
		Mood:         "Tired",
		Description:  "A warm turmeric latte for winding down.",
		Ingredients:  []string{"1 cup milk", "1 tsp turmeric", "Cinnamon", "Honey", "Pinch of black pepper"},
		Instructions: []string{"Warm the milk gently.", "Whisk in the spices.", "Sweeten with honey."},
		PrepTime:     10,
		Tags:         []string{"drink", "evening"},
		Dietary:      "vegetarian",
	},
}

// SeedRecipes clears the recipes collection and repopulates it from the fixed
// catalog. Runs once at startup before the server accepts traffic.
func SeedRecipes(ctx context.Context) error {
	col := database.DB.Collection("recipes")

	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, len(RecipeCatalog))
	for i, r := range RecipeCatalog {
		docs[i] = r
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return err
	}

	// Seeded data invalidates any cached lists.
	keys := []string{RecipeCacheKey("")}
	for _, mood := range models.Moods {
		keys = append(keys, RecipeCacheKey(mood))
	}
	Cache.Delete(ctx, keys...)

	log.Printf("✅ Seeded %d recipes", len(RecipeCatalog))
	return nil
}
