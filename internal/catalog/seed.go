package catalog

import "saison/internal/models"

// seedCategories returns the built-in categories: nine per season. Ids are
// assigned sequentially, so the same name gets a different id per season.
func seedCategories() []models.Category {
	names := []struct {
		name string
		icon string
	}{
		{"starters", "🥖"},
		{"soups", "🍜"},
		{"salads", "🥗"},
		{"breakfast", "🍳"},
		{"lunch", "🍝"},
		{"dinner", "🍲"},
		{"snacks", "🥨"},
		{"beverages", "🍹"},
		{"desserts", "🍰"},
	}

	var out []models.Category
	id := 1
	for _, season := range []string{models.SeasonAutumnWinter, models.SeasonSpringSummer} {
		for _, n := range names {
			out = append(out, models.Category{ID: id, Name: n.name, Icon: n.icon, Season: season})
			id++
		}
	}
	return out
}

// seedRecipes returns the built-in recipes. Category ids reference
// seedCategories: 1 is autumn-winter starters, 2 autumn-winter soups,
// 10 spring-summer starters.
func seedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:         1,
			Title:      "Tomato Bruschetta",
			Icon:       "🍅",
			Time:       15,
			PrepTime:   10,
			CookTime:   5,
			Servings:   4,
			Rating:     "4.8",
			Reviews:    24,
			Season:     models.SeasonSpringSummer,
			CategoryID: 10,
			Ingredients: []string{
				"1 baguette, sliced into 1/2 inch pieces",
				"6 ripe tomatoes, diced",
				"1/4 cup fresh basil, chopped",
				"3 cloves garlic, minced",
				"2 tablespoons extra virgin olive oil",
				"1 tablespoon balsamic vinegar",
				"Salt and pepper to taste",
			},
			Preparation: []string{
				"Preheat the oven to 350°F (175°C).",
				"Dice the tomatoes into small cubes and place in a bowl.",
				"Finely chop the fresh basil leaves.",
				"Mince the garlic cloves.",
				"Slice the baguette into approximately 1/2 inch thick pieces.",
				"In a bowl, combine the diced tomatoes, chopped basil, minced garlic, olive oil, and balsamic vinegar. Season with salt and pepper to taste. Mix well and set aside to marinate for at least 15 minutes.",
			},
			Cooking: []string{
				"Place the baguette slices on a baking sheet.",
				"Lightly brush each slice with olive oil.",
				"Bake in the preheated oven for about 5 minutes or until lightly toasted.",
				"Remove from the oven and let cool for a minute.",
				"Top each bread slice with a generous spoonful of the tomato mixture.",
				"Serve immediately and enjoy!",
			},
			Tips: []string{
				"For best flavor, let the tomato mixture marinate for at least 15 minutes before serving.",
				"You can add a sprinkle of grated Parmesan cheese on top if desired.",
				"This dish is best served fresh, as the bread can become soggy if left too long with the tomato mixture on top.",
			},
		},
		{
			ID:         2,
			Title:      "Stuffed Mushrooms",
			Icon:       "🍄",
			Time:       30,
			PrepTime:   15,
			CookTime:   15,
			Servings:   6,
			Rating:     "4.6",
			Reviews:    18,
			Season:     models.SeasonAutumnWinter,
			CategoryID: 1,
			Ingredients: []string{
				"24 large button mushrooms",
				"2 tablespoons olive oil",
				"1 small onion, finely chopped",
				"3 cloves garlic, minced",
				"1/2 cup breadcrumbs",
				"1/4 cup grated Parmesan cheese",
				"2 tablespoons fresh parsley, chopped",
				"Salt and pepper to taste",
			},
			Preparation: []string{
				"Preheat oven to 375°F (190°C).",
				"Clean mushrooms and remove stems, keeping caps intact.",
				"Finely chop the mushroom stems.",
				"In a pan, heat olive oil over medium heat.",
				"Add chopped onion and cook until translucent.",
				"Add minced garlic and chopped mushroom stems, cook for 2 minutes.",
				"Remove from heat and mix in breadcrumbs, Parmesan cheese, and parsley. Season with salt and pepper.",
			},
			Cooking: []string{
				"Place mushroom caps on a baking sheet.",
				"Stuff each cap with the filling mixture.",
				"Bake for 15-20 minutes until mushrooms are tender and tops are golden.",
				"Let cool slightly before serving.",
			},
			Tips: []string{
				"You can add cooked bacon or sausage to the filling for extra flavor.",
				"These can be prepared a day ahead and refrigerated until ready to bake.",
				"Sprinkle with extra cheese just before serving for a more decadent appetizer.",
			},
		},
		{
			ID:         3,
			Title:      "Deviled Eggs",
			Icon:       "🥚",
			Time:       25,
			PrepTime:   15,
			CookTime:   10,
			Servings:   6,
			Rating:     "4.5",
			Reviews:    15,
			Season:     models.SeasonSpringSummer,
			CategoryID: 10,
			Ingredients: []string{
				"12 large eggs",
				"1/2 cup mayonnaise",
				"2 teaspoons Dijon mustard",
				"1 teaspoon white vinegar",
				"1/4 teaspoon salt",
				"1/4 teaspoon black pepper",
				"Paprika for garnish",
				"Fresh chives, chopped (optional)",
			},
			Preparation: []string{
				"Place eggs in a single layer in a saucepan; cover with water.",
				"Bring to a boil, then remove from heat.",
				"Cover and let stand for 12 minutes.",
				"Drain and cool in ice water.",
				"Peel eggs and cut in half lengthwise.",
				"Remove yolks and place in a bowl.",
			},
			Cooking: []string{
				"Mash yolks with a fork.",
				"Mix in mayonnaise, mustard, vinegar, salt, and pepper.",
				"Spoon or pipe the yolk mixture back into the egg whites.",
				"Sprinkle with paprika and garnish with chives if desired.",
				"Refrigerate until ready to serve.",
			},
			Tips: []string{
				"For easier peeling, use eggs that are a few days old rather than very fresh.",
				"You can add finely chopped pickle relish or bacon bits to the filling for variation.",
				"These can be made up to 24 hours ahead and kept covered in the refrigerator.",
			},
		},
		{
			ID:         4,
			Title:      "Shrimp Cocktail",
			Icon:       "🍤",
			Time:       20,
			PrepTime:   10,
			CookTime:   10,
			Servings:   4,
			Rating:     "4.7",
			Reviews:    20,
			Season:     models.SeasonSpringSummer,
			CategoryID: 10,
			Ingredients: []string{
				"1 pound large shrimp, peeled and deveined",
				"1 cup ketchup",
				"2 tablespoons horseradish",
				"1 tablespoon lemon juice",
				"1/2 teaspoon Worcestershire sauce",
				"Hot sauce to taste",
				"Lemon wedges for garnish",
				"Fresh parsley for garnish",
			},
			Preparation: []string{
				"Bring a large pot of salted water to a boil.",
				"Add shrimp and cook until they turn pink, about 2-3 minutes.",
				"Drain and place in ice water to stop cooking.",
				"In a bowl, mix ketchup, horseradish, lemon juice, Worcestershire sauce, and hot sauce to make the cocktail sauce.",
			},
			Cooking: []string{
				"Drain the cooled shrimp and pat dry.",
				"Arrange shrimp on the rim of a serving glass or bowl.",
				"Pour cocktail sauce in the center.",
				"Garnish with lemon wedges and fresh parsley.",
				"Serve chilled.",
			},
			Tips: []string{
				"For the best flavor, make the cocktail sauce a few hours ahead to allow flavors to meld.",
				"You can add a splash of vodka to the cocktail sauce for an adult twist.",
				"Use jumbo shrimp for a more impressive presentation.",
			},
		},
		{
			ID:         5,
			Title:      "Pumpkin Soup",
			Icon:       "🎃",
			Time:       40,
			PrepTime:   15,
			CookTime:   25,
			Servings:   6,
			Rating:     "4.9",
			Reviews:    28,
			Season:     models.SeasonAutumnWinter,
			CategoryID: 2,
			Ingredients: []string{
				"2 pounds pumpkin, peeled and cut into chunks",
				"1 large onion, chopped",
				"2 carrots, chopped",
				"2 cloves garlic, minced",
				"4 cups vegetable broth",
				"1 cup heavy cream",
				"2 tablespoons olive oil",
				"1 teaspoon nutmeg",
				"Salt and pepper to taste",
				"Pumpkin seeds for garnish",
			},
			Preparation: []string{
				"Peel and dice the pumpkin into 1-inch cubes.",
				"Chop the onion and carrots.",
				"Mince the garlic.",
				"Heat olive oil in a large pot over medium heat.",
			},
			Cooking: []string{
				"Add onion and cook until translucent.",
				"Add garlic and cook for 1 minute.",
				"Add pumpkin and carrots, cook for 5 minutes.",
				"Pour in vegetable broth and bring to a boil.",
				"Reduce heat and simmer for 20 minutes until vegetables are tender.",
				"Use an immersion blender to puree the soup.",
				"Stir in cream and nutmeg, season with salt and pepper.",
				"Heat through and serve with roasted pumpkin seeds.",
			},
			Tips: []string{
				"For a dairy-free version, substitute coconut milk for heavy cream.",
				"Add a pinch of cinnamon or curry powder for extra flavor.",
				"This soup freezes well for up to 3 months.",
			},
		},
	}
}
