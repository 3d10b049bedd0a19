package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	BootstrapTimeout   = 30 * time.Second
)

const (
	StatsCacheTTL = 5 * time.Minute
)

// Upstream retry policy: transient failures get a small fixed budget.
// 503s honor the server's Retry-After hint up to MaxRetryAfterHint; other
// failures back off exponentially from RetryBaseDelay.
const (
	MaxAPIRetries     = 3
	RetryBaseDelay    = 250 * time.Millisecond
	MaxRetryAfterHint = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	MaxSearchIDs = 10
)
