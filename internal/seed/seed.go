// Package seed preloads a pantry and a cookbook with sample data.
package seed

import (
	"fmt"
	"time"

	"github.com/hammamikhairi/ottopantry/internal/domain"
)

type stockItem struct {
	name   string
	amount float64
	unit   string
	expire time.Time
	price  float64
}

type requirement struct {
	name   string
	amount float64
	unit   string
}

type sampleRecipe struct {
	category     domain.Category
	name         string
	description  string
	instructions string
	ingredients  []requirement
}

func d(y int, m time.Month, day int) time.Time { return domain.Date(y, m, day) }

var pantryItems = []stockItem{
	{"Eggs", 10, "pcs", d(2023, 12, 1), 50},
	{"Milk", 2, "liter", d(2023, 11, 30), 60},
	{"Flour", 1, "kg", d(2024, 5, 15), 25},
	{"Butter", 0.2, "kg", d(2023, 12, 5), 20},
	{"Tomato Sauce", 2, "can", d(2024, 3, 10), 50},
	{"Ground Beef", 0.5, "kg", d(2023, 12, 20), 100},
	{"Lettuce", 2, "head", d(2023, 11, 28), 40},
	{"Croutons", 0.1, "kg", d(2024, 1, 10), 15},
	{"Chicken Breast", 1, "kg", d(2023, 11, 29), 150},
	{"Mozzarella", 0.5, "kg", d(2023, 12, 5), 100},
	{"Broccoli", 2, "head", d(2023, 11, 28), 30},
	{"Carrots", 5, "pcs", d(2023, 12, 2), 20},
	{"Bell Pepper", 3, "pcs", d(2023, 12, 3), 36},
	{"Soy Sauce", 1, "bottle", d(2024, 1, 15), 40},
	{"Cucumber", 2, "pcs", d(2023, 11, 30), 20},
	{"Sugar", 1, "kg", d(2025, 1, 15), 40},
	{"Cocoa Powder", 0.5, "kg", d(2024, 6, 10), 75},
	{"Pizza Dough", 3, "pcs", d(2023, 12, 15), 90},
	{"Apple", 6, "pcs", d(2023, 12, 5), 30},
	{"Banana", 8, "pcs", d(2023, 12, 3), 24},
	{"Oats", 1, "kg", d(2024, 4, 15), 40},
	{"Honey", 0.5, "jar", d(2025, 6, 15), 50},
	{"Cheddar Cheese", 0.5, "kg", d(2023, 12, 10), 120},
	{"Parmesan Cheese", 0.2, "kg", d(2024, 2, 10), 80},
	{"Basil", 20, "g", d(2024, 1, 20), 15},
	{"Rosemary", 15, "g", d(2024, 1, 25), 20},
	{"Cinnamon", 30, "g", d(2025, 3, 15), 25},
	{"Vanilla Extract", 1, "bottle", d(2025, 8, 10), 75},
	{"Almond Milk", 1, "liter", d(2024, 3, 10), 40},
	{"Coconut Milk", 2, "cans", d(2024, 4, 5), 70},
	{"Rice", 2, "kg", d(2025, 7, 15), 90},
	{"Pasta", 1.5, "kg", d(2024, 2, 20), 50},
	{"Tomato", 4, "pcs", d(2023, 12, 2), 20},
	{"Potato", 5, "kg", d(2023, 12, 10), 50},
	{"Onion", 3, "kg", d(2023, 12, 12), 40},
	{"Garlic", 0.5, "kg", d(2023, 12, 18), 30},
	{"Vegetable Broth", 1, "liter", d(2024, 6, 10), 50},
	{"Chili Powder", 50, "g", d(2025, 4, 10), 30},
	{"Curry Paste", 1, "bottle", d(2024, 7, 10), 60},
	{"Ground Chicken", 1, "kg", d(2023, 12, 10), 120},
	{"Shrimp", 0.5, "kg", d(2023, 12, 8), 180},
	{"Salmon", 0.6, "kg", d(2023, 12, 12), 200},
	{"Bread", 2, "loaves", d(2023, 12, 2), 40},
	{"Dark Chocolate", 200, "g", d(2024, 9, 15), 70},
	{"Walnuts", 150, "g", d(2024, 6, 10), 50},
	{"Almonds", 100, "g", d(2024, 5, 10), 45},
	{"Mushrooms", 500, "g", d(2023, 12, 3), 60},
	{"Spinach", 250, "g", d(2023, 12, 4), 30},
	{"Zucchini", 2, "pcs", d(2023, 12, 6), 40},
}

var cookbookRecipes = []sampleRecipe{
	{domain.CategoryBreakfast, "Pancake", "A simple pancake recipe", "Mix all ingredients and cook.", []requirement{
		{"Eggs", 2, "pcs"}, {"Milk", 0.5, "liter"}, {"Flour", 0.2, "kg"},
	}},
	{domain.CategoryBreakfast, "Scrambled Eggs", "Quick scrambled eggs.", "Whisk eggs, cook in a pan.", []requirement{
		{"Eggs", 4, "pcs"}, {"Butter", 20, "g"},
	}},
	{domain.CategoryLunch, "Spaghetti Bolognese", "Classic Italian dish.", "Cook spaghetti, prepare sauce, mix.", []requirement{
		{"Spaghetti", 0.5, "kg"}, {"Ground Beef", 0.4, "kg"}, {"Tomato Sauce", 1, "can"},
	}},
	{domain.CategoryLunch, "Caesar Salad", "A fresh Caesar salad.", "Mix lettuce, croutons, dressing, and chicken.", []requirement{
		{"Lettuce", 1, "head"}, {"Croutons", 50, "g"}, {"Chicken Breast", 0.3, "kg"}, {"Caesar Dressing", 100, "ml"},
	}},
	{domain.CategoryDessert, "Chocolate Cake", "Rich chocolate cake.", "Mix, bake, and frost.", []requirement{
		{"Flour", 250, "g"}, {"Sugar", 200, "g"}, {"Cocoa Powder", 50, "g"}, {"Butter", 100, "g"}, {"Eggs", 3, "pcs"},
	}},
	{domain.CategoryBreakfast, "French Toast", "Classic French toast with a sweet twist.", "Whisk eggs, dip bread, and cook on a pan.", []requirement{
		{"Eggs", 2, "pcs"}, {"Milk", 0.2, "liter"}, {"Bread", 4, "slices"}, {"Cinnamon", 5, "g"}, {"Butter", 10, "g"},
	}},
	{domain.CategoryBreakfast, "Oatmeal", "Healthy and filling breakfast.", "Cook oats with milk and top with fruits.", []requirement{
		{"Oats", 50, "g"}, {"Milk", 0.3, "liter"}, {"Banana", 1, "pcs"}, {"Honey", 10, "ml"},
	}},
	{domain.CategoryDessert, "Brownies", "Chewy and fudgy brownies.", "Mix ingredients, bake, and cool.", []requirement{
		{"Flour", 150, "g"}, {"Sugar", 100, "g"}, {"Cocoa Powder", 30, "g"}, {"Butter", 80, "g"}, {"Eggs", 2, "pcs"},
	}},
	{domain.CategoryDessert, "Apple Pie", "Traditional apple pie with a flaky crust.", "Prepare crust, fill with apples, and bake.", []requirement{
		{"Flour", 300, "g"}, {"Sugar", 150, "g"}, {"Apples", 3, "pcs"}, {"Butter", 120, "g"}, {"Cinnamon", 10, "g"},
	}},
	{domain.CategoryDinner, "Grilled Chicken", "Juicy grilled chicken with herbs.", "Season chicken and grill until done.", []requirement{
		{"Chicken Breast", 2, "pcs"}, {"Olive Oil", 20, "ml"}, {"Garlic", 2, "cloves"}, {"Rosemary", 5, "g"}, {"Salt", 2, "g"},
	}},
	{domain.CategoryDinner, "Lasagna", "Classic Italian lasagna with meat sauce.", "Layer pasta, sauce, and cheese, then bake.", []requirement{
		{"Lasagna Sheets", 12, "pcs"}, {"Ground Beef", 500, "g"}, {"Tomato Sauce", 300, "ml"}, {"Mozzarella", 200, "g"}, {"Parmesan", 50, "g"},
	}},
	{domain.CategoryDinner, "Beef Stew", "Hearty stew with tender beef and vegetables.", "Simmer beef and vegetables in broth.", []requirement{
		{"Beef Chuck", 500, "g"}, {"Carrots", 2, "pcs"}, {"Potatoes", 3, "pcs"}, {"Onions", 1, "pcs"}, {"Beef Broth", 500, "ml"},
	}},
	{domain.CategoryDinner, "Vegetable Curry", "Aromatic curry with fresh vegetables.", "Cook vegetables in a spicy curry sauce.", []requirement{
		{"Bell Pepper", 2, "pcs"}, {"Carrots", 3, "pcs"}, {"Coconut Milk", 400, "ml"}, {"Curry Paste", 50, "g"}, {"Rice", 200, "g"},
	}},
	{domain.CategoryLunch, "Chicken Wrap", "Healthy chicken wrap with veggies.", "Wrap chicken and vegetables in flatbread.", []requirement{
		{"Flatbread", 2, "pcs"}, {"Chicken Breast", 1, "pcs"}, {"Lettuce", 2, "leaves"}, {"Tomato", 1, "pcs"}, {"Yogurt Dressing", 20, "ml"},
	}},
}

// Pantry adds the sample ingredients to store and returns how many were
// added.
func Pantry(store domain.IngredientStore) int {
	for _, it := range pantryItems {
		store.Add(it.name, it.amount, it.unit, it.expire, it.price)
	}
	return len(pantryItems)
}

// Cookbook adds the sample recipes to catalog.
func Cookbook(catalog domain.RecipeCatalog) (int, error) {
	for _, s := range cookbookRecipes {
		r := domain.NewRecipe(s.name, s.description, s.instructions)
		for _, req := range s.ingredients {
			r.AddIngredient(req.name, req.amount, req.unit)
		}
		if _, err := catalog.Add(r, s.category); err != nil {
			return 0, fmt.Errorf("seeding %q: %w", s.name, err)
		}
	}
	return len(cookbookRecipes), nil
}
