package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting CraftLedger"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store
// =============================================================================

const (
	LogMsgStoreOpened          = "Store opened"
	ErrMsgFailedCreateStoreDir = "failed to create store directory"
	ErrMsgFailedOpenStore      = "failed to open store"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgStateCollectorsRegistered  = "State collectors registered"
	ErrMsgFailedRegisterCollectors   = "failed to register state collectors"
)

// =============================================================================
// Seeding
// =============================================================================

const (
	LogMsgSeedSkippedNotEmpty = "Catalog not empty, seed skipped"
	LogMsgSeedFileMissing     = "Seed file not found, starting empty"
	LogMsgSeedApplied         = "Starter catalog seeded"
	ErrMsgFailedSeed          = "failed to seed starter catalog"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingStore         = "Closing store"
	LogMsgStoppingSSEHub       = "Stopping SSE hub"
	LogMsgServerStopped        = "Server stopped"

	// ShutdownTimeout bounds the graceful shutdown sequence
	ShutdownTimeout = 10 * time.Second
)
