package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemInUse    = "item is referenced by a recipe"

	// Recipe errors
	ErrMsgRecipeNotFound   = "recipe not found"
	ErrMsgRecipeSaveFailed = "recipe save failed"

	// Crafting errors
	ErrMsgInsufficientMaterials = "crafting interrupted: insufficient materials"
	ErrMsgInvalidOutcome        = "invalid outcome"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrItemInUse    = errors.New(ErrMsgItemInUse)

	ErrRecipeNotFound   = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeSaveFailed = errors.New(ErrMsgRecipeSaveFailed)

	ErrInsufficientMaterials = errors.New(ErrMsgInsufficientMaterials)
	ErrInvalidOutcome        = errors.New(ErrMsgInvalidOutcome)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
