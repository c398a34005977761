package domain

// ItemChangedPayload is carried by items.changed
type ItemChangedPayload struct {
	ItemID int    `json:"itemId"`
	Action string `json:"action"`
}

// InventoryChangedPayload is carried by inventory.changed
type InventoryChangedPayload struct {
	ItemID int `json:"itemId"`
	Amount int `json:"amount"`
}

// RecipeChangedPayload is carried by recipes.changed
type RecipeChangedPayload struct {
	RecipeID int    `json:"recipeId"`
	Action   string `json:"action"`
}

// CraftCompletedPayload is carried by craft.completed
type CraftCompletedPayload struct {
	RecipeID int     `json:"recipeId"`
	Outcome  Outcome `json:"outcome"`
	Consumed int     `json:"consumed"`
	Produced int     `json:"produced"`
}
