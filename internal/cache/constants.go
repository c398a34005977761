package cache

// SchemaVersion is the current version of the cached value layout.
// Increment it when cached types change so old entries are dropped.
const SchemaVersion = "1.0"

// Query keys for the collections served through the cache
const (
	KeyItems     = "items"
	KeyInventory = "inventory"
	KeyRecipes   = "recipes"
)

// Defaults used when configuration leaves size or TTL unset
const (
	DefaultSize = 64
	DefaultTTL  = 5 * 60 // seconds
)
