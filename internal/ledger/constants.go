package ledger

// Log messages
const (
	LogMsgListItemsFailed     = "Failed to list items, returning empty catalog"
	LogMsgListInventoryFailed = "Failed to list inventory, returning empty ledger"
	LogMsgItemSaved           = "Item saved"
	LogMsgItemDeleted         = "Item deleted"
	LogMsgQuantitySet         = "Quantity set"
)

// Error message fragments
const (
	ErrMsgBeginTx  = "failed to begin transaction"
	ErrMsgCommitTx = "failed to commit transaction"
)

// UncategorizedLabel groups stock whose item has an empty category or no catalog entry
const UncategorizedLabel = "Uncategorized"
