package cooking

// Ingredient is a pan-cookable ingredient. Slots 1-6 map to the
// Ingredients order.
type Ingredient struct {
	ID       string
	Name     string
	CookSecs int
}

// Recipe is an ordered list of ingredient IDs worth a fixed score.
type Recipe struct {
	Name        string
	Ingredients []string
	Points      int
}

// Ingredients is the fixed catalog, in slot order.
var Ingredients = []Ingredient{
	{ID: "carrot", Name: "Carrot", CookSecs: 5},
	{ID: "potato", Name: "Potato", CookSecs: 8},
	{ID: "onion", Name: "Onion", CookSecs: 3},
	{ID: "tomato", Name: "Tomato", CookSecs: 4},
	{ID: "mushroom", Name: "Mushroom", CookSecs: 6},
	{ID: "pepper", Name: "Pepper", CookSecs: 4},
}

// Recipes is the fixed recipe book. Extended mode unlocks later entries
// as the player levels up.
var Recipes = []Recipe{
	{Name: "Vegetable Stir Fry", Ingredients: []string{"carrot", "onion", "pepper"}, Points: 100},
	{Name: "Garden Salad", Ingredients: []string{"tomato", "onion", "carrot"}, Points: 80},
	{Name: "Mushroom Medley", Ingredients: []string{"mushroom", "onion", "pepper"}, Points: 120},
	{Name: "Root Vegetables", Ingredients: []string{"potato", "carrot", "onion"}, Points: 150},
}

// ingredientByID looks up a catalog ingredient.
func ingredientByID(id string) (Ingredient, bool) {
	for _, ing := range Ingredients {
		if ing.ID == id {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// recipePoints returns the score of the first recipe whose ingredients
// are all present in the pan, or the fallback for an unknown set.
func recipePoints(pan []string, fallback int) int {
	inPan := func(id string) bool {
		for _, p := range pan {
			if p == id {
				return true
			}
		}
		return false
	}
	for _, r := range Recipes {
		all := true
		for _, id := range r.Ingredients {
			if !inPan(id) {
				all = false
				break
			}
		}
		if all {
			return r.Points
		}
	}
	return fallback
}
