// Package catalog holds the fixed storefront menu: rolls, sides, drinks and
// the ingredients available for custom roll assembly. The data is defined at
// startup and never mutated. All prices are integer paise.
package catalog

import (
	"strings"

	"roll-point/models"
)

// Roll categories offered by the menu filter, "all" first.
var Categories = []string{"all", "chicken", "beef", "vegetarian", "pork", "seafood"}

// Drink categories offered by the drinks filter, "all" first.
var DrinkCategories = []string{"all", "hot", "cold", "smoothies", "coffee", "tea"}

var rolls = []models.MenuItem{
	{
		ID:          1,
		Name:        "Classic Chicken Roll",
		Description: "Tender grilled chicken breast with crisp lettuce, juicy tomatoes, and our signature creamy sauce wrapped in a warm tortilla",
		Price:       107817,
		Image:       "/static/images/R1.jpg",
		Rating:      4.8,
		Category:    "chicken",
		Ingredients: []string{"grilled chicken breast", "crisp lettuce", "fresh tomatoes", "cucumber", "signature sauce"},
		Calories:    450,
		SpicyLevel:  1,
		PrepTime:    "8-10 mins",
	},
	{
		ID:          2,
		Name:        "Spicy Beef Delight",
		Description: "Succulent marinated beef with roasted peppers, melted cheese, and spicy chipotle sauce",
		Price:       124417,
		Image:       "/static/images/R2.jpg",
		Rating:      4.9,
		Category:    "beef",
		Ingredients: []string{"marinated beef", "roasted peppers", "melted cheese", "red onions", "chipotle sauce"},
		Calories:    520,
		SpicyLevel:  3,
		Popular:     true,
		PrepTime:    "10-12 mins",
	},
	{
		ID:          3,
		Name:        "Mediterranean Veggie",
		Description: "Fresh vegetables with creamy hummus, feta cheese, and Mediterranean herbs",
		Price:       99517,
		Image:       "/static/images/R3.jpg",
		Rating:      4.7,
		Category:    "vegetarian",
		Ingredients: []string{"mixed vegetables", "hummus", "feta cheese", "olives", "herbs"},
		Calories:    380,
		SpicyLevel:  0,
		PrepTime:    "6-8 mins",
	},
	{
		ID:          4,
		Name:        "BBQ Pulled Pork",
		Description: "Slow-cooked BBQ pulled pork with coleslaw and tangy barbecue sauce",
		Price:       128567,
		Image:       "/static/images/R4.jpg",
		Rating:      4.8,
		Category:    "pork",
		Ingredients: []string{"BBQ pulled pork", "coleslaw", "pickles", "BBQ sauce"},
		Calories:    580,
		SpicyLevel:  2,
		PrepTime:    "12-15 mins",
	},
	{
		ID:          5,
		Name:        "Crispy Fish Fusion",
		Description: "Golden crispy fish fillet with fresh slaw and zesty tartar sauce",
		Price:       116117,
		Image:       "/static/images/R5.jpg",
		Rating:      4.6,
		Category:    "seafood",
		Ingredients: []string{"crispy fish fillet", "fresh slaw", "tartar sauce", "lettuce"},
		Calories:    480,
		SpicyLevel:  1,
		PrepTime:    "10-12 mins",
	},
	{
		ID:          6,
		Name:        "Buffalo Chicken Wrap",
		Description: "Spicy buffalo chicken with ranch dressing, celery, and blue cheese crumbles",
		Price:       111967,
		Image:       "/static/images/R1.jpg",
		Rating:      4.7,
		Category:    "chicken",
		Ingredients: []string{"buffalo chicken", "ranch dressing", "celery", "blue cheese"},
		Calories:    510,
		SpicyLevel:  3,
		PrepTime:    "8-10 mins",
	},
	{
		ID:          7,
		Name:        "Tandoori Paneer Delight",
		Description: "Grilled tandoori-spiced paneer with mint chutney, caramelized onions, and fresh coriander wrapped in a soft tortilla",
		Price:       132417,
		Image:       "/static/images/R2.jpg",
		Rating:      4.9,
		Category:    "vegetarian",
		Ingredients: []string{"tandoori paneer", "mint chutney", "caramelized onions", "fresh coriander", "yogurt sauce", "bell peppers"},
		Calories:    420,
		SpicyLevel:  2,
		Popular:     true,
		PrepTime:    "10-12 mins",
	},
}

var sides = []models.MenuItem{
	{ID: 101, Name: "Crispy Sweet Potato Fries", Price: 49717, Image: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=300&h=200&fit=crop"},
	{ID: 102, Name: "Loaded Onion Rings", Price: 53867, Image: "https://images.unsplash.com/photo-1639024471283-03518883512d?w=300&h=200&fit=crop"},
	{ID: 103, Name: "Nachos Supreme", Price: 74617, Image: "https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?w=300&h=200&fit=crop"},
	{ID: 104, Name: "Garden Fresh Salad", Price: 62167, Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=300&h=200&fit=crop"},
}

var drinks = []models.MenuItem{
	{
		ID:          201,
		Name:        "Fresh Lemonade",
		Description: "Refreshing homemade lemonade with a perfect balance of sweet and tart flavors",
		Price:       33117,
		Image:       "https://images.unsplash.com/photo-1621263764928-df1444c5e859?w=300&h=200&fit=crop",
		Category:    "cold",
		Cold:        true,
		Size:        "Regular",
		Popular:     true,
	},
	{
		ID:          202,
		Name:        "Iced Green Tea",
		Description: "Premium green tea served over ice with natural antioxidants",
		Price:       24817,
		Image:       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=300&h=200&fit=crop",
		Category:    "tea",
		Cold:        true,
		Size:        "Regular",
	},
	{
		ID:          203,
		Name:        "Tropical Smoothie",
		Description: "Blend of mango, pineapple, and coconut with a hint of lime",
		Price:       58017,
		Image:       "https://images.unsplash.com/photo-1546173159-315724a31696?w=300&h=200&fit=crop",
		Category:    "smoothies",
		Cold:        true,
		Size:        "Large",
		Organic:     true,
	},
	{
		ID:          204,
		Name:        "Premium Coffee",
		Description: "Rich and aromatic coffee brewed from freshly ground beans",
		Price:       20667,
		Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=300&h=200&fit=crop",
		Category:    "coffee",
		Hot:         true,
		Caffeine:    true,
		Size:        "Regular",
	},
	{
		ID:          205,
		Name:        "Chai Latte",
		Description: "Spiced Indian tea with steamed milk and aromatic spices",
		Price:       33117,
		Image:       "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=300&h=200&fit=crop",
		Category:    "tea",
		Hot:         true,
		Caffeine:    true,
		Size:        "Regular",
		Popular:     true,
	},
	{
		ID:          206,
		Name:        "Berry Blast Smoothie",
		Description: "Mixed berries with yogurt and honey for a healthy boost",
		Price:       49717,
		Image:       "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=300&h=200&fit=crop",
		Category:    "smoothies",
		Cold:        true,
		Size:        "Large",
		Organic:     true,
		New:         true,
	},
	{
		ID:          207,
		Name:        "Espresso Shot",
		Description: "Strong and concentrated coffee shot for the perfect caffeine kick",
		Price:       16567,
		Image:       "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=300&h=200&fit=crop",
		Category:    "coffee",
		Hot:         true,
		Caffeine:    true,
		Size:        "Small",
	},
	{
		ID:          208,
		Name:        "Mint Iced Tea",
		Description: "Refreshing mint-infused iced tea with a cooling sensation",
		Price:       24817,
		Image:       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=300&h=200&fit=crop",
		Category:    "tea",
		Cold:        true,
		Size:        "Regular",
	},
	{
		ID:          209,
		Name:        "Hot Chocolate",
		Description: "Rich and creamy hot chocolate topped with marshmallows",
		Price:       37217,
		Image:       "https://images.unsplash.com/photo-1542990253-0d0f5be5f0ed?w=300&h=200&fit=crop",
		Category:    "hot",
		Hot:         true,
		Size:        "Regular",
		Popular:     true,
	},
	{
		ID:          210,
		Name:        "Orange Juice",
		Description: "Freshly squeezed orange juice packed with vitamin C",
		Price:       29017,
		Image:       "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=300&h=200&fit=crop",
		Category:    "cold",
		Cold:        true,
		Size:        "Regular",
		Organic:     true,
	},
	{
		ID:          211,
		Name:        "Cappuccino",
		Description: "Classic Italian coffee with equal parts espresso, steamed milk, and milk foam",
		Price:       37217,
		Image:       "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=300&h=200&fit=crop",
		Category:    "coffee",
		Hot:         true,
		Caffeine:    true,
		Size:        "Regular",
	},
	{
		ID:          212,
		Name:        "Herbal Tea",
		Description: "Soothing chamomile and lavender herbal tea blend",
		Price:       20667,
		Image:       "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=300&h=200&fit=crop",
		Category:    "tea",
		Hot:         true,
		Size:        "Regular",
	},
	{
		ID:          213,
		Name:        "Strawberry Banana Smoothie",
		Description: "Classic combination of strawberries and banana with almond milk",
		Price:       49717,
		Image:       "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=300&h=200&fit=crop",
		Category:    "smoothies",
		Cold:        true,
		Size:        "Large",
		Organic:     true,
	},
	{
		ID:          214,
		Name:        "Iced Americano",
		Description: "Espresso shots over ice with cold water for a refreshing coffee experience",
		Price:       29017,
		Image:       "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=300&h=200&fit=crop",
		Category:    "coffee",
		Cold:        true,
		Caffeine:    true,
		Size:        "Regular",
		New:         true,
	},
}

var ingredients = []models.Ingredient{
	{ID: 1, Name: "Grilled Chicken", Price: 24900, Image: "/static/images/ingredient_chicken.png"},
	{ID: 2, Name: "Spicy Beef", Price: 29050, Image: "/static/images/ingredient_beef.png"},
	{ID: 3, Name: "Crispy Fish", Price: 26560, Image: "/static/images/ingredient_fish.png"},
	{ID: 4, Name: "Fresh Lettuce", Price: 5810, Image: "/static/images/ingredient_lettuce.png"},
	{ID: 5, Name: "Tomato", Price: 4150, Image: "/static/images/ingredient_tomato.png"},
	{ID: 6, Name: "Cucumber", Price: 4150, Image: "/static/images/ingredient_cucumber.png"},
	{ID: 7, Name: "Cheese", Price: 8300, Image: "/static/images/ingredient_cheese.png"},
	{ID: 8, Name: "Hummus", Price: 9960, Image: "/static/images/ingredient_hummus.png"},
	{ID: 9, Name: "BBQ Sauce", Price: 4980, Image: "/static/images/ingredient_bbq.png"},
	{ID: 10, Name: "Chipotle Sauce", Price: 4980, Image: "/static/images/ingredient_chipotle.png"},
	{ID: 11, Name: "Feta Cheese", Price: 8300, Image: "/static/images/ingredient_feta.png"},
	{ID: 12, Name: "Olives", Price: 6640, Image: "/static/images/ingredient_olives.png"},
	{ID: 13, Name: "Coleslaw", Price: 7470, Image: "/static/images/ingredient_coleslaw.png"},
	{ID: 14, Name: "Pickles", Price: 4150, Image: "/static/images/ingredient_pickles.png"},
	{ID: 15, Name: "Ranch Dressing", Price: 5810, Image: "/static/images/ingredient_ranch.png"},
	{ID: 16, Name: "Buffalo Sauce", Price: 5810, Image: "/static/images/ingredient_buffalo.png"},
	{ID: 17, Name: "Celery", Price: 3320, Image: "/static/images/ingredient_celery.png"},
	{ID: 18, Name: "Blue Cheese", Price: 9130, Image: "/static/images/ingredient_bluecheese.png"},
	{ID: 19, Name: "Tortilla Wrap", Price: 8300, Image: "/static/images/ingredient_wrap.png", Base: true},
}

// Rolls returns all rolls, optionally filtered by category ("all" or empty
// keeps everything) and a case-insensitive search over name and description.
func Rolls(category, search string) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(rolls))
	search = strings.ToLower(search)
	for _, r := range rolls {
		if category != "" && category != "all" && r.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FeaturedRolls returns the first n rolls for the landing page.
func FeaturedRolls(n int) []models.MenuItem {
	if n > len(rolls) {
		n = len(rolls)
	}
	return rolls[:n]
}

func Sides() []models.MenuItem { return sides }

// Drinks returns drinks filtered like Rolls.
func Drinks(category, search string) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(drinks))
	search = strings.ToLower(search)
	for _, d := range drinks {
		if category != "" && category != "all" && d.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Description), search) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DrinkCategoryCounts returns the number of drinks per filter category.
func DrinkCategoryCounts() map[string]int {
	counts := make(map[string]int, len(DrinkCategories))
	for _, cat := range DrinkCategories {
		if cat == "all" {
			counts[cat] = len(drinks)
			continue
		}
		n := 0
		for _, d := range drinks {
			if d.Category == cat {
				n++
			}
		}
		counts[cat] = n
	}
	return counts
}

func Ingredients() []models.Ingredient { return ingredients }

// FindItem looks up a catalog entry by type and id.
func FindItem(itemType string, id int) (models.MenuItem, bool) {
	var list []models.MenuItem
	switch itemType {
	case models.TypeRoll:
		list = rolls
	case models.TypeSide:
		list = sides
	case models.TypeDrink:
		list = drinks
	default:
		return models.MenuItem{}, false
	}
	for _, it := range list {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// FindIngredient looks up a custom roll ingredient by id.
func FindIngredient(id int) (models.Ingredient, bool) {
	for _, ing := range ingredients {
		if ing.ID == id {
			return ing, true
		}
	}
	return models.Ingredient{}, false
}
