package models

// Item type tags used on cart lines and catalog lookups.
const (
	TypeRoll       = "roll"
	TypeSide       = "side"
	TypeDrink      = "drink"
	TypeCustomRoll = "custom_roll"
)

// MenuItem is an immutable catalog entry. Prices are integer paise.
// Optional attributes vary by item type: rolls carry ingredients and a spicy
// level, drinks carry temperature/caffeine flags and a size, sides carry
// neither.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Category    string   `json:"category,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Calories    int      `json:"calories,omitempty"`
	SpicyLevel  int      `json:"spicy_level,omitempty"`
	PrepTime    string   `json:"prep_time,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
	New         bool     `json:"new,omitempty"`
	Organic     bool     `json:"organic,omitempty"`
	Hot         bool     `json:"hot,omitempty"`
	Cold        bool     `json:"cold,omitempty"`
	Caffeine    bool     `json:"caffeine,omitempty"`
	Size        string   `json:"size,omitempty"`
}

// Ingredient is an immutable catalog entry used for custom roll assembly.
type Ingredient struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image,omitempty"`
	Base  bool   `json:"base,omitempty"`
}
