package seed

// DefaultPath is where the starter catalog lives relative to the repository root
const DefaultPath = "configs/seed.json"

// LogMsgSeedApplied is logged after a successful load
const LogMsgSeedApplied = "Seed catalog applied"
