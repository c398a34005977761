package recipe

// Log messages
const (
	LogMsgListRecipesFailed = "Failed to list recipes, returning empty list"
	LogMsgRecipeSaved       = "Recipe saved"
	LogMsgRecipeDeleted     = "Recipe deleted"
	LogMsgRecipeSaveFailed  = "Recipe save rolled back"
)

// Error message fragments
const (
	ErrMsgBeginTx      = "failed to begin transaction"
	ErrMsgCommitTx     = "failed to commit transaction"
	ErrMsgUnknownItems = "recipe lines reference unknown items"
)
