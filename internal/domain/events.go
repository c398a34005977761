package domain

// Event types published after committed writes.
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeItemsChanged is published when a catalog entry is saved or deleted
	EventTypeItemsChanged = "items.changed"

	// EventTypeInventoryChanged is published when an on-hand quantity changes outside a craft
	EventTypeInventoryChanged = "inventory.changed"

	// EventTypeRecipesChanged is published when a recipe is saved or deleted
	EventTypeRecipesChanged = "recipes.changed"

	// EventTypeCraftCompleted is published after a craft attempt commits
	EventTypeCraftCompleted = "craft.completed"
)

// Change actions carried in change payloads
const (
	ActionSaved   = "saved"
	ActionDeleted = "deleted"
)
