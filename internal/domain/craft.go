package domain

// MissingMaterial describes a cost line the inventory cannot cover
type MissingMaterial struct {
	ItemID   int `json:"itemId"`
	Required int `json:"required"`
	OnHand   int `json:"onHand"`
}

// CraftCheck is the affordability report for one recipe
type CraftCheck struct {
	RecipeID  int               `json:"recipeId"`
	Craftable bool              `json:"craftable"`
	Missing   []MissingMaterial `json:"missing"`
}

// QuantityChange records one ledger mutation applied by a craft
type QuantityChange struct {
	ItemID int `json:"itemId"`
	Before int `json:"before"`
	After  int `json:"after"`
}

// CraftResult summarises a committed craft attempt
type CraftResult struct {
	RecipeID int              `json:"recipeId"`
	Outcome  Outcome          `json:"outcome"`
	Consumed []QuantityChange `json:"consumed"`
	Produced []QuantityChange `json:"produced"`
}
