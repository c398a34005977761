package handler

import "time"

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid %s: must be a positive integer"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgItemInUseError      = "Item is used by a recipe. Remove it from recipes first."
	ErrMsgNotEnoughMaterials  = "Crafting interrupted: not enough materials"
	ErrMsgRecipeSaveError     = "Recipe could not be saved. No changes were made."
)

// Success messages
const (
	MsgItemDeleted     = "Item deleted"
	MsgQuantityUpdated = "Quantity updated"
	MsgRecipeDeleted   = "Recipe deleted"
	MsgCacheCleared    = "Cache cleared"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)

// URL parameter names
const (
	ParamID = "id"
)

// Timeouts
const (
	ReadinessTimeout = 2 * time.Second
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgCacheCleared    = "Query cache cleared"
)
