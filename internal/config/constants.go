package config

import "time"

// Defaults applied when an environment variable is unset
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "craftledger"
	DefaultVersion           = "dev"
	DefaultDBDriver          = DriverSQLite
	DefaultSQLitePath        = "data/craftledger.db"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultCacheSize         = 64
	DefaultCacheTTL          = 5 * time.Minute
	DefaultAllowedOrigins    = "http://localhost:5173"
	DefaultSeedPath          = "configs/seed.json"
	DefaultRateLimit         = 1000
)

// Store drivers accepted by DB_DRIVER
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
