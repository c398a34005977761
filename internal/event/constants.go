package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat is used when one or more handlers fail
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	LogMsgPublishFailed = "Failed to publish event"
)
