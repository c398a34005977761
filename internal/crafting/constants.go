package crafting

// Log messages
const (
	LogMsgCraftResolved = "Craft resolved"
	LogMsgCraftRejected = "Craft rejected"
)

// Error message fragments
const (
	ErrMsgBeginTx  = "failed to begin transaction"
	ErrMsgCommitTx = "failed to commit transaction"
	ErrMsgReadTx   = "failed to read inventory"
)
