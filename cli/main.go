package main

import (
	"fmt"
	"os"
)

const usage = `saison <command> [args]

Commands:
  categories <season>           List categories for a season
  recipes <season> <category>   List recipes for a season and category
  recipe <id>                   Show one recipe
  plan                          Show the meal plan
  shopping                      Show the shopping list
  generate                      Generate the shopping list from the meal plan

Environment:
  SAISON_API_URL   API base URL (default http://localhost:8080)
  SAISON_USER_ID   Collection scope sent as X-User-ID
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	client := NewApiClient()
	var err error

	switch os.Args[1] {
	case "categories":
		err = runCategories(client, os.Args[2:])
	case "recipes":
		err = runRecipes(client, os.Args[2:])
	case "recipe":
		err = runRecipe(client, os.Args[2:])
	case "plan":
		err = runPlan(client)
	case "shopping":
		err = runShopping(client)
	case "generate":
		err = runGenerate(client)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCategories(client *ApiClient, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: saison categories <season>")
	}
	categories, err := client.Categories(args[0])
	if err != nil {
		return err
	}
	for _, cat := range categories {
		fmt.Printf("%s  %s\n", cat.Icon, cat.Name)
	}
	return nil
}

func runRecipes(client *ApiClient, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: saison recipes <season> <category>")
	}
	recipes, err := client.Recipes(args[0], args[1])
	if err != nil {
		return err
	}
	for _, r := range recipes {
		fmt.Printf("%-8d %s %s (%d min, serves %d, ★%s)\n",
			r.ID, r.Icon, r.Title, r.Time, r.Servings, r.Rating)
	}
	return nil
}

func runRecipe(client *ApiClient, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: saison recipe <id>")
	}
	r, err := client.Recipe(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%d min, serves %d)\n\n", r.Icon, r.Title, r.Time, r.Servings)
	fmt.Println("Ingredients:")
	for _, ing := range r.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	printSteps("Preparation", r.Preparation)
	printSteps("Cooking", r.Cooking)
	if len(r.Tips) > 0 {
		fmt.Println("\nTips:")
		for _, tip := range r.Tips {
			fmt.Printf("  - %s\n", tip)
		}
	}
	return nil
}

func printSteps(title string, steps []string) {
	if len(steps) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for i, step := range steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}

func runPlan(client *ApiClient) error {
	items, err := client.MealPlan()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Meal plan is empty.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%-10s %-10s recipe %d\n", item.DayID, item.MealType, item.RecipeID)
	}
	return nil
}

func runShopping(client *ApiClient) error {
	items, err := client.ShoppingList()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Shopping list is empty.")
		return nil
	}
	for _, item := range items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		fmt.Printf("[%s] %-10s %s\n", mark, item.Category, item.Name)
	}
	return nil
}

func runGenerate(client *ApiClient) error {
	result, err := client.GenerateShoppingList()
	if err != nil {
		return err
	}
	fmt.Printf("Added %d items (%d total).\n", result.Added, len(result.Items))
	return nil
}
